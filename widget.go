package ratatui

import "github.com/holo-q/ratatui-go/internal/ffi"

// Widget is any drawable proxy owning a native handle. All implementations
// live in this package; the interface exists so draw and headless-render
// paths can take any widget kind.
type Widget interface {
	native(op string) (ffi.WidgetKind, ffi.Handle, error)
}

// widget is the shared ownership core embedded by every proxy. It holds
// the native handle and a one-shot release flag so the destructor runs at
// most once and a released handle never reaches the native boundary again.
type widget struct {
	eng      engine
	kind     ffi.WidgetKind
	handle   ffi.Handle
	released bool
}

func newWidget(op string, kind ffi.WidgetKind, ctor func(engine) (ffi.Handle, error)) (widget, error) {
	e, err := loadEngine()
	if err != nil {
		return widget{}, err
	}
	h, err := ctor(e)
	if err != nil {
		return widget{}, &Error{Code: CodeNativeConstruction, Op: op, Err: err}
	}
	return widget{eng: e, kind: kind, handle: h}, nil
}

func (w *widget) native(op string) (ffi.WidgetKind, ffi.Handle, error) {
	if w.released {
		return w.kind, 0, releasedErr(op)
	}
	return w.kind, w.handle, nil
}

// live reports whether the handle may still cross the native boundary.
// Mutators use it to turn post-release calls into no-ops.
func (w *widget) live() bool { return !w.released }

// Close releases the native handle. Safe to call more than once; only the
// first call frees.
func (w *widget) Close() error {
	if w.released {
		return nil
	}
	w.released = true
	w.eng.WidgetFree(w.kind, w.handle)
	return nil
}

// Closed reports whether the widget's handle has been released.
func (w *widget) Closed() bool { return w.released }
