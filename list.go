package ratatui

import "github.com/holo-q/ratatui-go/internal/ffi"

// List is a selectable list of styled items.
type List struct {
	widget
}

func NewList() (*List, error) {
	w, err := newWidget("NewList", ffi.WidgetList, func(e engine) (ffi.Handle, error) {
		return e.ListNew()
	})
	if err != nil {
		return nil, err
	}
	return &List{widget: w}, nil
}

// AppendItem adds one item.
func (l *List) AppendItem(text string, style Style) *List {
	if l.live() {
		l.eng.ListAppendItem(l.handle, text, style)
	}
	return l
}

// BlockTitle sets the surrounding block's title and border.
func (l *List) BlockTitle(title string, border bool) *List {
	if l.live() {
		l.eng.ListSetBlockTitle(l.handle, title, border)
	}
	return l
}

// Select sets the selected index. A negative index clears the selection;
// out-of-range indices are left to the native side to clamp.
func (l *List) Select(idx int) *List {
	if l.live() {
		l.eng.ListSetSelected(l.handle, int32(idx))
	}
	return l
}

// HighlightStyle sets the style applied to the selected item.
func (l *List) HighlightStyle(style Style) *List {
	if l.live() {
		l.eng.ListSetHighlightStyle(l.handle, style)
	}
	return l
}

// HighlightSymbol sets the marker drawn before the selected item.
func (l *List) HighlightSymbol(sym string) *List {
	if l.live() {
		l.eng.ListSetHighlightSymbol(l.handle, sym)
	}
	return l
}
