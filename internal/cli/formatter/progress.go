package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderSyllables renders a fixed-width meter of got against want, such as
// "█████░░ 5/7". A full line is green, a short one yellow, an overlong
// one red.
func RenderSyllables(got, want int) string {
	if want <= 0 {
		return fmt.Sprintf("%d", got)
	}
	filled := min(max(got, 0), want)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, want-filled)

	style := StyleGreen
	switch {
	case got > want:
		style = StyleRed
	case got < want:
		style = StyleYellow
	}
	return fmt.Sprintf("%s %s", style.Render(bar), Dim(fmt.Sprintf("%d/%d", got, want)))
}
