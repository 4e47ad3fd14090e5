package ratatui

import "github.com/holo-q/ratatui-go/internal/ffi"

// Rect is a region of the terminal in cell coordinates. Width and height
// may be zero; a degenerate rect draws nothing.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect builds a rect from x, y, width, height.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Margin shrinks the rect by amount on every side. Dimensions clamp to
// zero instead of going negative.
func (r Rect) Margin(amount int) Rect {
	if amount <= 0 {
		return r
	}
	out := Rect{X: r.X + amount, Y: r.Y + amount}
	if w := r.Width - 2*amount; w > 0 {
		out.Width = w
	}
	if h := r.Height - 2*amount; h > 0 {
		out.Height = h
	}
	return out
}

// SplitH partitions the rect into len(ratios) horizontally adjacent
// sub-rects proportional to the given weights. The weights need not sum to
// any particular value. Integer rounding remainder goes to the last
// segment, so the sub-rects cover the input exactly with no gaps or
// overlaps.
func (r Rect) SplitH(ratios ...int) []Rect {
	spans := splitSpan(r.X, r.Width, ratios)
	if len(spans) == 0 {
		return nil
	}
	out := make([]Rect, len(spans))
	for i, s := range spans {
		out[i] = Rect{X: s[0], Y: r.Y, Width: s[1], Height: r.Height}
	}
	return out
}

// SplitV partitions the rect into vertically adjacent sub-rects. Same
// weight and remainder semantics as SplitH.
func (r Rect) SplitV(ratios ...int) []Rect {
	spans := splitSpan(r.Y, r.Height, ratios)
	if len(spans) == 0 {
		return nil
	}
	out := make([]Rect, len(spans))
	for i, s := range spans {
		out[i] = Rect{X: r.X, Y: s[0], Width: r.Width, Height: s[1]}
	}
	return out
}

// splitSpan divides [start, start+length) into weighted segments, each
// returned as (start, length). The last segment absorbs the remainder.
func splitSpan(start, length int, ratios []int) [][2]int {
	if len(ratios) == 0 {
		return nil
	}
	total := 0
	for _, w := range ratios {
		if w > 0 {
			total += w
		}
	}
	out := make([][2]int, len(ratios))
	pos := start
	for i, w := range ratios {
		var seg int
		switch {
		case i == len(ratios)-1:
			seg = start + length - pos
		case total > 0 && w > 0:
			seg = length * w / total
		}
		if seg < 0 {
			seg = 0
		}
		out[i] = [2]int{pos, seg}
		pos += seg
	}
	return out
}

// toFFI converts to the wire rect, rejecting coordinates the u16 cell
// space cannot represent.
func (r Rect) toFFI(op string) (ffi.Rect, error) {
	if r.X < 0 || r.Y < 0 || r.Width < 0 || r.Height < 0 {
		return ffi.Rect{}, invalidArg(op, "negative rect %+v", r)
	}
	const maxCell = 0xFFFF
	if r.X > maxCell || r.Y > maxCell || r.Width > maxCell || r.Height > maxCell {
		return ffi.Rect{}, invalidArg(op, "rect %+v exceeds cell space", r)
	}
	return ffi.Rect{
		X:      uint16(r.X),
		Y:      uint16(r.Y),
		Width:  uint16(r.Width),
		Height: uint16(r.Height),
	}, nil
}
