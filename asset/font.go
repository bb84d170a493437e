package asset

import _ "embed"

// BlockFont is the built-in glyph sheet for the clock face, parsed by render.LoadFont
//
//go:embed block.font
var BlockFont []byte
