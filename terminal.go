package ratatui

import (
	"errors"
	"os"
	"time"

	"github.com/holo-q/ratatui-go/internal/ffi"
	"github.com/mattn/go-isatty"
)

// Terminal is an open interactive session: raw mode, alternate screen.
// Exactly one goroutine may use a Terminal; the binding is single-threaded
// by contract. Close restores the terminal mode and is idempotent.
type Terminal struct {
	eng    engine
	handle ffi.Handle
	closed bool
}

// OpenTerminal enters raw mode on the controlling terminal. Fails with
// CodeTerminalInit when stdout is not a TTY, so a redirected or CI run
// fails fast instead of corrupting the stream.
func OpenTerminal() (*Terminal, error) {
	e, err := loadEngine()
	if err != nil {
		return nil, err
	}
	return openTerminal(e, true)
}

func openTerminal(e engine, requireTTY bool) (*Terminal, error) {
	if requireTTY {
		fd := os.Stdout.Fd()
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			return nil, &Error{
				Code: CodeTerminalInit,
				Op:   "OpenTerminal",
				Err:  errors.New("stdout is not a terminal"),
			}
		}
	}
	h, err := e.InitTerminal()
	if err != nil {
		return nil, &Error{Code: CodeTerminalInit, Op: "OpenTerminal", Err: err}
	}
	return &Terminal{eng: e, handle: h}, nil
}

// Size returns the viewport dimensions in cells.
func (t *Terminal) Size() (width, height int, err error) {
	if t.closed {
		return 0, 0, releasedErr("Terminal.Size")
	}
	w, h, err := t.eng.TerminalSize()
	if err != nil {
		return 0, 0, nativeErr("Terminal.Size", err)
	}
	return int(w), int(h), nil
}

// Viewport returns the full terminal area as a Rect, for layout splitting.
func (t *Terminal) Viewport() (Rect, error) {
	w, h, err := t.Size()
	if err != nil {
		return Rect{}, err
	}
	return Rect{Width: w, Height: h}, nil
}

// Draw renders one widget's current state. A nil rect targets the full
// viewport.
func (t *Terminal) Draw(w Widget, rect *Rect) error {
	if t.closed {
		return releasedErr("Terminal.Draw")
	}
	kind, h, err := w.native("Terminal.Draw")
	if err != nil {
		return err
	}
	if rect == nil {
		if kind == ffi.WidgetParagraph {
			if err := t.eng.TerminalDrawFull(t.handle, kind, h); err != nil {
				return nativeErr("Terminal.Draw", err)
			}
			return nil
		}
		vp, err := t.Viewport()
		if err != nil {
			return err
		}
		rect = &vp
	}
	fr, err := rect.toFFI("Terminal.Draw")
	if err != nil {
		return err
	}
	if err := t.eng.TerminalDrawIn(t.handle, kind, h, fr); err != nil {
		return nativeErr("Terminal.Draw", err)
	}
	return nil
}

// Render submits a batched frame in one native call.
func (t *Terminal) Render(f *Frame) error {
	if t.closed {
		return releasedErr("Terminal.Render")
	}
	if err := f.Err(); err != nil {
		return err
	}
	if err := t.eng.TerminalDrawFrame(t.handle, f.cmds); err != nil {
		return nativeErr("Terminal.Render", err)
	}
	return nil
}

// Clear wipes the screen.
func (t *Terminal) Clear() error {
	if t.closed {
		return releasedErr("Terminal.Clear")
	}
	t.eng.TerminalClear(t.handle)
	return nil
}

// NextEvent blocks for at most timeout waiting for input. Expiry with
// nothing pending returns an Event of kind EventNone; a zero timeout polls
// without blocking.
func (t *Terminal) NextEvent(timeout time.Duration) (Event, error) {
	if t.closed {
		return Event{}, releasedErr("Terminal.NextEvent")
	}
	if timeout < 0 {
		timeout = 0
	}
	evt, err := t.eng.NextEvent(uint64(timeout / time.Millisecond))
	if err != nil {
		return Event{}, nativeErr("Terminal.NextEvent", err)
	}
	return evt, nil
}

// InjectKey queues a synthetic key event, as if typed. Test aid.
func (t *Terminal) InjectKey(code KeyCode, ch rune, mods uint8) {
	if t.closed {
		return
	}
	t.eng.InjectKey(uint32(code), ch, mods)
}

// InjectResize queues a synthetic resize event.
func (t *Terminal) InjectResize(width, height int) {
	if t.closed {
		return
	}
	t.eng.InjectResize(clampCell(width), clampCell(height))
}

// InjectMouse queues a synthetic mouse event.
func (t *Terminal) InjectMouse(kind, btn uint32, x, y int, mods uint8) {
	if t.closed {
		return
	}
	t.eng.InjectMouse(kind, btn, clampCell(x), clampCell(y), mods)
}

// Close leaves raw mode and releases the native terminal. Idempotent; the
// second and later calls are no-ops. This is the safety-critical release
// point: a leaked raw-mode terminal corrupts the user's shell.
func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	t.eng.TerminalFree(t.handle)
	return nil
}

// Closed reports whether the session has been closed.
func (t *Terminal) Closed() bool { return t.closed }
