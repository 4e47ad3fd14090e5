package ratatui

import "github.com/holo-q/ratatui-go/internal/ffi"

// Scrollbar orientation.
const (
	ScrollbarVertical   = ffi.ScrollbarVertical
	ScrollbarHorizontal = ffi.ScrollbarHorizontal
)

// Scrollbar marks a scroll position within a content range. Construction
// fails with CodeNativeConstruction when the loaded native build lacks the
// scrollbar feature.
type Scrollbar struct {
	widget
}

func NewScrollbar() (*Scrollbar, error) {
	w, err := newWidget("NewScrollbar", ffi.WidgetScrollbar, func(e engine) (ffi.Handle, error) {
		return e.ScrollbarNew()
	})
	if err != nil {
		return nil, err
	}
	return &Scrollbar{widget: w}, nil
}

// Configure sets orientation, position and the content/viewport extents in
// one call. Negative values are clamped to zero.
func (s *Scrollbar) Configure(orient uint32, position, contentLen, viewportLen int) *Scrollbar {
	if s.live() {
		s.eng.ScrollbarConfigure(s.handle, orient,
			clampCell(position), clampCell(contentLen), clampCell(viewportLen))
	}
	return s
}

// BlockTitle sets the surrounding block's title and border.
func (s *Scrollbar) BlockTitle(title string, border bool) *Scrollbar {
	if s.live() {
		s.eng.ScrollbarSetBlockTitle(s.handle, title, border)
	}
	return s
}

func clampCell(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > 0xFFFF {
		return 0xFFFF
	}
	return uint16(v)
}
