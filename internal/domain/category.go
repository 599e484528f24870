package domain

import "strings"

// Category is a thematic tag used to bias word selection.
type Category string

const (
	CategoryNature   Category = "nature"
	CategoryEmotion  Category = "emotion"
	CategoryAbstract Category = "abstract"
	CategorySensory  Category = "sensory"
)

// BuiltinCategories lists the categories shipped with the embedded vocabulary,
// in their canonical order.
var BuiltinCategories = []Category{
	CategoryNature,
	CategoryEmotion,
	CategoryAbstract,
	CategorySensory,
}

// NormalizeCategory lower-cases and trims a user-supplied category name.
// It does not check that the category exists; callers validate against the
// vocabulary they actually loaded.
func NormalizeCategory(s string) Category {
	return Category(strings.ToLower(strings.TrimSpace(s)))
}

func (c Category) String() string { return string(c) }

// IsZero reports whether no category was given.
func (c Category) IsZero() bool { return c == "" }
