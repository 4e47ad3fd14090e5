package ratatui

import "github.com/holo-q/ratatui-go/internal/ffi"

// Frame accumulates draw commands client-side and submits them in a single
// native call via Terminal.Render or RenderFrameToString. Unlike widget
// mutators, frame building has no native side effects until submission.
type Frame struct {
	cmds []ffi.DrawCmd
	err  error
}

func NewFrame() *Frame { return &Frame{} }

// Draw appends one widget/rect pair to the frame.
func (f *Frame) Draw(w Widget, rect Rect) *Frame {
	if f.err != nil {
		return f
	}
	kind, h, err := w.native("Frame.Draw")
	if err != nil {
		f.err = err
		return f
	}
	fr, err := rect.toFFI("Frame.Draw")
	if err != nil {
		f.err = err
		return f
	}
	f.cmds = append(f.cmds, ffi.DrawCmd{Kind: uint32(kind), Handle: h, Rect: fr})
	return f
}

// Len reports the number of buffered draw commands.
func (f *Frame) Len() int { return len(f.cmds) }

// Err returns the first error recorded while building the frame. A frame
// with a recorded error is rejected at submission.
func (f *Frame) Err() error { return f.err }
