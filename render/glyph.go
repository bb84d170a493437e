package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/ascii-clock/parameter"
)

// cellWidth measures block lines; ambiguous-width block elements count as one cell regardless of locale
var cellWidth = &runewidth.Condition{EastAsianWidth: false}

// GlyphBlock is the rendering of a short string, one string per font row
type GlyphBlock struct {
	Lines []string
}

// String joins the lines into one multi-line block
func (b GlyphBlock) String() string {
	return strings.Join(b.Lines, "\n")
}

// Height returns the number of rows
func (b GlyphBlock) Height() int {
	return len(b.Lines)
}

// Width returns the widest row in terminal cells
func (b GlyphBlock) Width() int {
	w := 0
	for _, line := range b.Lines {
		w = max(w, LineWidth(line))
	}
	return w
}

// LineWidth returns the terminal cell width of a single block line
func LineWidth(line string) int {
	return cellWidth.StringWidth(line)
}

// Render converts text into a GlyphBlock, one glyph cell per rune
// Fails without partial output if any rune is missing from the font
func (f *Font) Render(text string) (GlyphBlock, error) {
	runes := []rune(text)
	bitmaps := make([][]uint16, len(runes))
	for i, r := range runes {
		bm, ok := f.glyphs[r]
		if !ok {
			return GlyphBlock{}, fmt.Errorf("%w %q in %q", ErrUnsupportedRune, r, text)
		}
		bitmaps[i] = bm
	}

	lines := make([]string, f.height)
	var sb strings.Builder
	for row := 0; row < f.height; row++ {
		sb.Reset()
		for i, bm := range bitmaps {
			if i > 0 {
				for range parameter.GlyphSpacing {
					sb.WriteRune(parameter.GlyphBlank)
				}
			}

			rowBits := bm[row]
			for col := 0; col < f.width; col++ {
				// MSB-first: bit 15 = column 0
				if rowBits&(1<<(15-col)) != 0 {
					sb.WriteRune(parameter.GlyphPixel)
				} else {
					sb.WriteRune(parameter.GlyphBlank)
				}
			}
		}
		lines[row] = sb.String()
	}

	return GlyphBlock{Lines: lines}, nil
}
