package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ascii-clock/asset"
	"github.com/lixenwraith/ascii-clock/parameter"
)

func loadBuiltin(t *testing.T) *Font {
	t.Helper()
	f, err := LoadFont(asset.BlockFont)
	require.NoError(t, err)
	return f
}

func TestLoadFont_Builtin(t *testing.T) {
	f := loadBuiltin(t)

	assert.Equal(t, 7, f.Height())
	assert.Equal(t, 6, f.Width())
	for _, r := range "0123456789: " {
		assert.True(t, f.Has(r), "missing glyph %q", r)
	}
	assert.False(t, f.Has('x'))
}

func TestLoadFont_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		sheet string
		want  string
	}{
		{"empty", "", "no glyphs"},
		{"glyph before header", "glyph 0\n#\n", "before height and width"},
		{"bad height", "height x\nwidth 1\n", "height"},
		{"width too large", "height 1\nwidth 17\n", "out of range"},
		{"unknown directive", "height 1\nwidth 1\ncolor red\n", "unknown directive"},
		{"not a directive", "height 1\nwidth 1\nbogus\n", "expected directive"},
		{"wide row", "height 1\nwidth 2\nglyph a\n###\n", "3 cells wide"},
		{"invalid cell", "height 1\nwidth 2\nglyph a\n#x\n", "invalid cell"},
		{"short glyph", "height 2\nwidth 1\nglyph a\n#\n\nglyph b\n#\n#\n", "1 rows, want 2"},
		{"truncated", "height 2\nwidth 1\nglyph a\n#\n", "1 rows, want 2"},
		{"duplicate", "height 1\nwidth 1\nglyph a\n#\nglyph a\n.\n", "duplicate"},
		{"multi-rune name", "height 1\nwidth 1\nglyph ab\n#\n", "not a single rune"},
		{"resize after glyph", "height 1\nwidth 1\nglyph a\n#\nwidth 2\n", "after first glyph"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := LoadFont([]byte(tt.sheet))
			require.Error(t, err)
			assert.Nil(t, f)
			assert.ErrorIs(t, err, ErrMalformedFont)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFont_CommentsAndSpace(t *testing.T) {
	sheet := "# comment\nheight 2\nwidth 3\n\n# first\nglyph space\n...\n...\nglyph #\n#.#\n.#.\n"
	f, err := LoadFont([]byte(sheet))
	require.NoError(t, err)

	assert.True(t, f.Has(' '))
	assert.True(t, f.Has('#'))

	b, err := f.Render("# ")
	require.NoError(t, err)
	assert.Equal(t, []string{"█ █    ", " █     "}, b.Lines)
}

func TestRender_ClockString(t *testing.T) {
	f := loadBuiltin(t)

	b, err := f.Render("08:05:09")
	require.NoError(t, err)

	assert.Equal(t, f.Height(), b.Height())
	limit := f.BlockWidth(parameter.ClockTextLength)
	for i, line := range b.Lines {
		assert.LessOrEqual(t, LineWidth(line), limit, "line %d", i)
	}
	assert.Equal(t, limit, b.Width())
	assert.Equal(t, 55, limit)
}

func TestRender_Bitmap(t *testing.T) {
	f := loadBuiltin(t)

	b, err := f.Render("1")
	require.NoError(t, err)
	require.Len(t, b.Lines, 7)
	assert.Equal(t, "  ██  ", b.Lines[0])
	assert.Equal(t, " ████ ", b.Lines[6])
}

func TestRender_StringJoinsLines(t *testing.T) {
	f := loadBuiltin(t)

	b, err := f.Render("12:34:56")
	require.NoError(t, err)

	s := b.String()
	assert.Equal(t, f.Height()-1, strings.Count(s, "\n"))
	assert.False(t, strings.HasSuffix(s, "\n"))
}

func TestRender_UnsupportedRune(t *testing.T) {
	f := loadBuiltin(t)

	b, err := f.Render("12:3x:56")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedRune)
	assert.Contains(t, err.Error(), "'x'")
	assert.Empty(t, b.Lines)
}

func TestFont_BlockWidth(t *testing.T) {
	f := loadBuiltin(t)

	assert.Zero(t, f.BlockWidth(0))
	assert.Equal(t, 6, f.BlockWidth(1))
	assert.Equal(t, 13, f.BlockWidth(2))
}
