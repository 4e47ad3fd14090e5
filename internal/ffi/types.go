package ffi

// C-struct mirrors and enums for the ratatui_ffi C ABI. Field order and
// widths must match the Rust #[repr(C)] definitions exactly.

// Handle is an opaque pointer to a native-side object (terminal, widget,
// layout result). A handle is only valid between its constructor call and
// its single destructor call.
type Handle = uintptr

// Rect mirrors FfiRect: terminal cell coordinates.
type Rect struct {
	X      uint16
	Y      uint16
	Width  uint16
	Height uint16
}

// Style mirrors FfiStyle. Fg/Bg use the engine's packed color encoding
// (0..16 named palette, 0x40000000|idx indexed, 0x80000000|rgb truecolor).
type Style struct {
	Fg   uint32
	Bg   uint32
	Mods uint16
}

// Fluent helpers returning a new Style for chaining.

func (s Style) WithFg(fg uint32) Style { s.Fg = fg; return s }

func (s Style) WithBg(bg uint32) Style { s.Bg = bg; return s }

func (s Style) WithMods(mods uint16) Style { s.Mods = mods; return s }

func (s Style) AddMods(mods uint16) Style { s.Mods |= mods; return s }

func (s Style) Bold() Style { return s.AddMods(ModBold) }

func (s Style) Italic() Style { return s.AddMods(ModItalic) }

func (s Style) Underlined() Style { return s.AddMods(ModUnderlined) }

func (s Style) Reversed() Style { return s.AddMods(ModReversed) }

func (s Style) Dim() Style { return s.AddMods(ModDim) }

// KeyEvent mirrors FfiKeyEvent.
type KeyEvent struct {
	Code uint32
	Ch   uint32
	Mods uint8
}

// Event mirrors FfiEvent: a tagged union over key, resize and mouse input.
// The zero value is the "no event" (timeout) case.
type Event struct {
	Kind      EventKind
	Key       KeyEvent
	Width     uint16
	Height    uint16
	MouseX    uint16
	MouseY    uint16
	MouseKind uint32
	MouseBtn  uint32
	MouseMods uint8
}

// EventKind discriminates Event. Values are fixed by the C ABI; EventTick
// is synthesized Go-side by the run-loop and never crosses the boundary.
type EventKind uint32

const (
	EventNone   EventKind = 0
	EventKey    EventKind = 1
	EventResize EventKind = 2
	EventMouse  EventKind = 3

	// EventTick marks an expired poll budget in the run-loop.
	EventTick EventKind = 100
)

// Char returns the rune for a key event carrying a character, or 0.
func (e Event) Char() rune {
	if e.Kind != EventKey || KeyCode(e.Key.Code) != KeyChar {
		return 0
	}
	return rune(e.Key.Ch)
}

// KeyCode returns the decoded key code for key events.
func (e Event) KeyCode() KeyCode {
	return KeyCode(e.Key.Code)
}

// HasShift reports whether Shift was held on a key or mouse event.
func (e Event) HasShift() bool { return e.mods()&ModShiftKey != 0 }

// HasAlt reports whether Alt was held on a key or mouse event.
func (e Event) HasAlt() bool { return e.mods()&ModAltKey != 0 }

// HasCtrl reports whether Ctrl was held on a key or mouse event.
func (e Event) HasCtrl() bool { return e.mods()&ModCtrlKey != 0 }

func (e Event) mods() uint8 {
	if e.Kind == EventMouse {
		return e.MouseMods
	}
	return e.Key.Mods
}

// KeyCode values mirror the ratatui_ffi key code enum.
type KeyCode uint32

const (
	KeyChar      KeyCode = 0
	KeyEnter     KeyCode = 1
	KeyLeft      KeyCode = 2
	KeyRight     KeyCode = 3
	KeyUp        KeyCode = 4
	KeyDown      KeyCode = 5
	KeyEsc       KeyCode = 6
	KeyBackspace KeyCode = 7
	KeyTab       KeyCode = 8
	KeyDelete    KeyCode = 9
	KeyHome      KeyCode = 10
	KeyEnd       KeyCode = 11
	KeyPageUp    KeyCode = 12
	KeyPageDown  KeyCode = 13
	KeyInsert    KeyCode = 14

	KeyF1  KeyCode = 100
	KeyF2  KeyCode = 101
	KeyF3  KeyCode = 102
	KeyF4  KeyCode = 103
	KeyF5  KeyCode = 104
	KeyF6  KeyCode = 105
	KeyF7  KeyCode = 106
	KeyF8  KeyCode = 107
	KeyF9  KeyCode = 108
	KeyF10 KeyCode = 109
	KeyF11 KeyCode = 110
	KeyF12 KeyCode = 111
)

// Key modifier bitflags (Event.Key.Mods / Event.MouseMods).
const (
	ModShiftKey uint8 = 1 << 0
	ModAltKey   uint8 = 1 << 1
	ModCtrlKey  uint8 = 1 << 2
)

// Style modifier bitflags (Style.Mods), matching crossterm's attribute bits
// as re-exported by ratatui_ffi.
const (
	ModBold       uint16 = 1 << 0
	ModDim        uint16 = 1 << 1
	ModItalic     uint16 = 1 << 2
	ModUnderlined uint16 = 1 << 3
	ModReversed   uint16 = 1 << 6
	ModCrossedOut uint16 = 1 << 8
)

// Named palette colors.
const (
	ColorReset        uint32 = 0
	ColorBlack        uint32 = 1
	ColorRed          uint32 = 2
	ColorGreen        uint32 = 3
	ColorYellow       uint32 = 4
	ColorBlue         uint32 = 5
	ColorMagenta      uint32 = 6
	ColorCyan         uint32 = 7
	ColorGray         uint32 = 8
	ColorDarkGray     uint32 = 9
	ColorLightRed     uint32 = 10
	ColorLightGreen   uint32 = 11
	ColorLightYellow  uint32 = 12
	ColorLightBlue    uint32 = 13
	ColorLightMagenta uint32 = 14
	ColorLightCyan    uint32 = 15
	ColorWhite        uint32 = 16
)

// MouseKind values for Event.MouseKind.
const (
	MouseDown       uint32 = 1
	MouseUp         uint32 = 2
	MouseDrag       uint32 = 3
	MouseMoved      uint32 = 4
	MouseScrollUp   uint32 = 5
	MouseScrollDown uint32 = 6
)

// Mouse buttons for Event.MouseBtn.
const (
	MouseButtonNone   uint32 = 0
	MouseButtonLeft   uint32 = 1
	MouseButtonRight  uint32 = 2
	MouseButtonMiddle uint32 = 3
)

// WidgetKind tags a handle for batched frame drawing (FfiDrawCmd.kind) and
// for dispatching per-kind draw/free/headless symbols.
type WidgetKind uint32

const (
	WidgetParagraph WidgetKind = 1
	WidgetList      WidgetKind = 2
	WidgetTable     WidgetKind = 3
	WidgetGauge     WidgetKind = 4
	WidgetTabs      WidgetKind = 5
	WidgetBarChart  WidgetKind = 6
	WidgetSparkline WidgetKind = 7
	WidgetChart     WidgetKind = 8
	WidgetScrollbar WidgetKind = 9
)

func (k WidgetKind) String() string {
	switch k {
	case WidgetParagraph:
		return "paragraph"
	case WidgetList:
		return "list"
	case WidgetTable:
		return "table"
	case WidgetGauge:
		return "gauge"
	case WidgetTabs:
		return "tabs"
	case WidgetBarChart:
		return "barchart"
	case WidgetSparkline:
		return "sparkline"
	case WidgetChart:
		return "chart"
	case WidgetScrollbar:
		return "scrollbar"
	default:
		return "unknown"
	}
}

// DrawCmd mirrors FfiDrawCmd for batched frame drawing.
type DrawCmd struct {
	Kind   uint32
	Handle Handle
	Rect   Rect
}

// Scrollbar orientations for ratatui_scrollbar_configure.
const (
	ScrollbarVertical   uint32 = 0
	ScrollbarHorizontal uint32 = 1
)

// RGB packs a truecolor value in the engine's color encoding. The native
// helper is preferred when the loaded build exports it.
func RGB(r, g, b uint8) uint32 {
	if fnColorRGB != nil {
		return fnColorRGB(r, g, b)
	}
	return 0x80000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// IndexedColor packs a 256-palette index in the engine's color encoding.
func IndexedColor(i uint8) uint32 {
	if fnColorIndexed != nil {
		return fnColorIndexed(i)
	}
	return 0x40000000 | uint32(i)
}
