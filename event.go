package ratatui

import "github.com/holo-q/ratatui-go/internal/ffi"

// Event is the normalized input event. Kind discriminates; the remaining
// fields are meaningful only for the matching kind. A timeout yields Kind
// EventNone, which is a first-class value rather than an error.
type Event = ffi.Event

// EventKind discriminates Event.
type EventKind = ffi.EventKind

const (
	EventNone   = ffi.EventNone
	EventKey    = ffi.EventKey
	EventResize = ffi.EventResize
	EventMouse  = ffi.EventMouse
	EventTick   = ffi.EventTick
)

// KeyEvent carries the key payload of a key event.
type KeyEvent = ffi.KeyEvent

// KeyCode identifies a non-character key, or KeyChar for printable input.
type KeyCode = ffi.KeyCode

const (
	KeyChar      = ffi.KeyChar
	KeyEnter     = ffi.KeyEnter
	KeyLeft      = ffi.KeyLeft
	KeyRight     = ffi.KeyRight
	KeyUp        = ffi.KeyUp
	KeyDown      = ffi.KeyDown
	KeyEsc       = ffi.KeyEsc
	KeyBackspace = ffi.KeyBackspace
	KeyTab       = ffi.KeyTab
	KeyDelete    = ffi.KeyDelete
	KeyHome      = ffi.KeyHome
	KeyEnd       = ffi.KeyEnd
	KeyPageUp    = ffi.KeyPageUp
	KeyPageDown  = ffi.KeyPageDown
	KeyInsert    = ffi.KeyInsert
	KeyF1        = ffi.KeyF1
	KeyF2        = ffi.KeyF2
	KeyF3        = ffi.KeyF3
	KeyF4        = ffi.KeyF4
	KeyF5        = ffi.KeyF5
	KeyF6        = ffi.KeyF6
	KeyF7        = ffi.KeyF7
	KeyF8        = ffi.KeyF8
	KeyF9        = ffi.KeyF9
	KeyF10       = ffi.KeyF10
	KeyF11       = ffi.KeyF11
	KeyF12       = ffi.KeyF12
)

// Key modifier bits for Event.Key.Mods and Event.MouseMods.
const (
	ModShiftKey = ffi.ModShiftKey
	ModAltKey   = ffi.ModAltKey
	ModCtrlKey  = ffi.ModCtrlKey
)

// Mouse event kinds.
const (
	MouseDown       = ffi.MouseDown
	MouseUp         = ffi.MouseUp
	MouseDrag       = ffi.MouseDrag
	MouseMoved      = ffi.MouseMoved
	MouseScrollUp   = ffi.MouseScrollUp
	MouseScrollDown = ffi.MouseScrollDown
)

// Mouse buttons.
const (
	MouseButtonNone   = ffi.MouseButtonNone
	MouseButtonLeft   = ffi.MouseButtonLeft
	MouseButtonRight  = ffi.MouseButtonRight
	MouseButtonMiddle = ffi.MouseButtonMiddle
)

// KeyPress builds a key event, mostly useful with Terminal.InjectKey and in
// tests.
func KeyPress(code KeyCode, ch rune, mods uint8) Event {
	return Event{
		Kind: EventKey,
		Key:  KeyEvent{Code: uint32(code), Ch: uint32(ch), Mods: mods},
	}
}
