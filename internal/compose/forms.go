package compose

import "github.com/alexanderramin/stanza/internal/domain"

var (
	std  = domain.StyleStandard
	img  = domain.StyleImage
	meta = domain.StyleMetaphor
)

// HaikuForm is three lines of 5/7/5 with an image in the middle.
var HaikuForm = domain.PoemForm{
	Kind:      domain.FormHaiku,
	Syllables: []int{5, 7, 5},
	Focus:     []domain.Category{domain.CategoryNature, domain.CategorySensory, domain.CategoryEmotion},
	Styles:    []domain.LineStyle{std, img, std},
}

// TankaForm extends the haiku with two seven syllable lines.
var TankaForm = domain.PoemForm{
	Kind:      domain.FormTanka,
	Syllables: []int{5, 7, 5, 7, 7},
	Focus:     []domain.Category{domain.CategoryEmotion, domain.CategoryNature, domain.CategoryAbstract},
	Styles:    []domain.LineStyle{std, img, std, meta, std},
}

// SonnetForm is the Shakespearean sonnet: three quatrains and a couplet of
// ten syllable lines. Each quatrain opens on a metaphor with an image on its
// third line.
var SonnetForm = domain.PoemForm{
	Kind:        domain.FormSonnet,
	Syllables:   []int{10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10},
	RhymeScheme: "ABABCDCDEFEFGG",
	Styles:      sonnetStyles(14),
}

func sonnetStyles(n int) []domain.LineStyle {
	out := make([]domain.LineStyle, n)
	for i := range out {
		switch i % 4 {
		case 0:
			out[i] = meta
		case 2:
			out[i] = img
		default:
			out[i] = std
		}
	}
	return out
}

// freeVerseStyles rotate by line index.
var freeVerseStyles = []domain.LineStyle{meta, img, std}

// Forms lists the fixed forms by kind.
var Forms = map[domain.FormKind]domain.PoemForm{
	domain.FormHaiku:  HaikuForm,
	domain.FormTanka:  TankaForm,
	domain.FormSonnet: SonnetForm,
}
