package render

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/ascii-clock/parameter"
)

var (
	// ErrMalformedFont is returned by LoadFont for any sheet it cannot parse
	ErrMalformedFont = errors.New("malformed font sheet")

	// ErrUnsupportedRune is returned by Render when the font has no glyph for a rune
	ErrUnsupportedRune = errors.New("unsupported rune")
)

// Font is a fixed-width bitmap font
// Each glyph is Height rows, bits MSB-first: bit 15 = column 0
type Font struct {
	width  int
	height int
	glyphs map[rune][]uint16
}

// LoadFont parses a glyph sheet
//
// Sheet layout:
//
//	height 7
//	width 6
//	glyph 0
//	.####.
//	...
//
// Lines starting with '#' outside a glyph body are comments. '#' inside a body is a lit cell
func LoadFont(sheet []byte) (*Font, error) {
	p := &fontParser{
		font: &Font{glyphs: make(map[rune][]uint16)},
	}

	sc := bufio.NewScanner(bytes.NewReader(sheet))
	for sc.Scan() {
		p.line++
		if err := p.parseLine(strings.TrimRight(sc.Text(), " \t\r")); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read font sheet: %w", err)
	}

	if p.inGlyph {
		return nil, p.errorf("glyph %q has %d rows, want %d", p.current, len(p.rows), p.font.height)
	}
	if len(p.font.glyphs) == 0 {
		return nil, fmt.Errorf("%w: no glyphs defined", ErrMalformedFont)
	}
	return p.font, nil
}

// Width returns the cell width of every glyph
func (f *Font) Width() int { return f.width }

// Height returns the row count of every glyph
func (f *Font) Height() int { return f.height }

// Has reports whether the font can draw r
func (f *Font) Has(r rune) bool {
	_, ok := f.glyphs[r]
	return ok
}

// BlockWidth returns the width of n glyphs side by side including spacing
func (f *Font) BlockWidth(n int) int {
	if n <= 0 {
		return 0
	}
	return n*f.width + (n-1)*parameter.GlyphSpacing
}

type fontParser struct {
	font    *Font
	line    int
	current rune
	rows    []uint16
	inGlyph bool
}

func (p *fontParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedFont, p.line, fmt.Sprintf(format, args...))
}

func (p *fontParser) parseLine(line string) error {
	if p.inGlyph {
		if line == "" {
			return p.errorf("glyph %q has %d rows, want %d", p.current, len(p.rows), p.font.height)
		}
		return p.parseRow(line)
	}

	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	key, value, ok := strings.Cut(line, " ")
	if !ok {
		return p.errorf("expected directive, got %q", line)
	}
	value = strings.TrimSpace(value)

	switch key {
	case "height":
		n, err := p.parseDimension(key, value, 1<<10)
		if err != nil {
			return err
		}
		p.font.height = n
	case "width":
		n, err := p.parseDimension(key, value, parameter.GlyphMaxWidth)
		if err != nil {
			return err
		}
		p.font.width = n
	case "glyph":
		return p.beginGlyph(value)
	default:
		return p.errorf("unknown directive %q", key)
	}
	return nil
}

func (p *fontParser) parseDimension(key, value string, limit int) (int, error) {
	if len(p.font.glyphs) > 0 {
		return 0, p.errorf("%s set after first glyph", key)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, p.errorf("%s: %v", key, err)
	}
	if n < 1 || n > limit {
		return 0, p.errorf("%s %d out of range [1,%d]", key, n, limit)
	}
	return n, nil
}

func (p *fontParser) beginGlyph(name string) error {
	if p.font.width == 0 || p.font.height == 0 {
		return p.errorf("glyph before height and width")
	}

	var r rune
	switch runes := []rune(name); {
	case name == "space":
		r = ' '
	case len(runes) == 1:
		r = runes[0]
	default:
		return p.errorf("glyph name %q is not a single rune", name)
	}

	if _, dup := p.font.glyphs[r]; dup {
		return p.errorf("duplicate glyph %q", r)
	}

	p.current = r
	p.rows = make([]uint16, 0, p.font.height)
	p.inGlyph = true
	return nil
}

func (p *fontParser) parseRow(line string) error {
	cells := []rune(line)
	if len(cells) != p.font.width {
		return p.errorf("glyph %q row %d is %d cells wide, want %d", p.current, len(p.rows), len(cells), p.font.width)
	}

	var bits uint16
	for col, c := range cells {
		switch c {
		case '#':
			bits |= 1 << (15 - col)
		case '.':
		default:
			return p.errorf("glyph %q: invalid cell %q", p.current, c)
		}
	}
	p.rows = append(p.rows, bits)

	if len(p.rows) == p.font.height {
		p.font.glyphs[p.current] = p.rows
		p.rows = nil
		p.inGlyph = false
	}
	return nil
}
