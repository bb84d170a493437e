package parameter

// Clock Glyphs
const (
	// GlyphPixel is the rune drawn for a set bitmap cell
	GlyphPixel = '█'

	// GlyphBlank is the rune drawn for an unset bitmap cell
	GlyphBlank = ' '

	// GlyphSpacing is the number of blank columns between adjacent glyphs
	GlyphSpacing = 1

	// GlyphMaxWidth is the widest glyph a uint16 row bitmap can hold
	GlyphMaxWidth = 16

	// ClockTextLength is the length of an HH:MM:SS string
	ClockTextLength = 8
)

// Clock Footprint
const (
	// NominalWidth is the estimated width of a rendered HH:MM:SS block
	NominalWidth = 60

	// NominalHeight is the estimated height of a rendered HH:MM:SS block
	NominalHeight = 10

	// MeasureFootprint selects the measured block size over the nominal estimate for layout
	MeasureFootprint = true
)
