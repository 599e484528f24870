package domain

import "fmt"

type LineStyle string

const (
	StyleUnspecified LineStyle = ""
	StyleStandard    LineStyle = "standard"
	StyleMetaphor    LineStyle = "metaphor"
	StyleImage       LineStyle = "image"
)

// ValidLineStyles is the canonical set of accepted style strings.
var ValidLineStyles = map[string]LineStyle{
	"standard": StyleStandard,
	"metaphor": StyleMetaphor,
	"image":    StyleImage,
}

// ParseLineStyle converts a style name into a LineStyle. The empty string
// yields StyleUnspecified.
func ParseLineStyle(s string) (LineStyle, error) {
	if s == "" {
		return StyleUnspecified, nil
	}
	style, ok := ValidLineStyles[s]
	if !ok {
		return StyleUnspecified, fmt.Errorf("unknown line style %q (expected standard, metaphor or image)", s)
	}
	return style, nil
}

// LineSpec is a single line generation request.
type LineSpec struct {
	Syllables int
	Mood      Category  // optional
	EndWord   string    // optional, best-effort
	Style     LineStyle // optional
}
