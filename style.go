package ratatui

import "github.com/holo-q/ratatui-go/internal/ffi"

// Style is the wire style struct. Build one with the fluent helpers:
//
//	ratatui.NewStyle().WithFg(ratatui.ColorCyan).Bold()
type Style = ffi.Style

// NewStyle returns the default style (reset colors, no modifiers).
func NewStyle() Style { return Style{} }

// Named palette colors for Style.Fg / Style.Bg.
const (
	ColorReset        = ffi.ColorReset
	ColorBlack        = ffi.ColorBlack
	ColorRed          = ffi.ColorRed
	ColorGreen        = ffi.ColorGreen
	ColorYellow       = ffi.ColorYellow
	ColorBlue         = ffi.ColorBlue
	ColorMagenta      = ffi.ColorMagenta
	ColorCyan         = ffi.ColorCyan
	ColorGray         = ffi.ColorGray
	ColorDarkGray     = ffi.ColorDarkGray
	ColorLightRed     = ffi.ColorLightRed
	ColorLightGreen   = ffi.ColorLightGreen
	ColorLightYellow  = ffi.ColorLightYellow
	ColorLightBlue    = ffi.ColorLightBlue
	ColorLightMagenta = ffi.ColorLightMagenta
	ColorLightCyan    = ffi.ColorLightCyan
	ColorWhite        = ffi.ColorWhite
)

// Style modifier bits.
const (
	ModBold       = ffi.ModBold
	ModDim        = ffi.ModDim
	ModItalic     = ffi.ModItalic
	ModUnderlined = ffi.ModUnderlined
	ModReversed   = ffi.ModReversed
	ModCrossedOut = ffi.ModCrossedOut
)

// RGB packs a truecolor value for Style.Fg / Style.Bg.
func RGB(r, g, b uint8) uint32 { return ffi.RGB(r, g, b) }

// IndexedColor packs a 256-palette index for Style.Fg / Style.Bg.
func IndexedColor(i uint8) uint32 { return ffi.IndexedColor(i) }

// Paragraph text alignment.
const (
	AlignLeft   uint32 = 0
	AlignCenter uint32 = 1
	AlignRight  uint32 = 2
)
