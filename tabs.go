package ratatui

import (
	"strings"

	"github.com/holo-q/ratatui-go/internal/ffi"
)

// Tabs is a horizontal tab strip.
type Tabs struct {
	widget
}

func NewTabs() (*Tabs, error) {
	w, err := newWidget("NewTabs", ffi.WidgetTabs, func(e engine) (ffi.Handle, error) {
		return e.TabsNew()
	})
	if err != nil {
		return nil, err
	}
	return &Tabs{widget: w}, nil
}

// Titles replaces the tab titles.
func (t *Tabs) Titles(titles ...string) *Tabs {
	if t.live() {
		t.eng.TabsSetTitles(t.handle, strings.Join(titles, "\t"))
	}
	return t
}

// Select sets the active tab index. Out-of-range is clamped natively.
func (t *Tabs) Select(idx int) *Tabs {
	if idx < 0 {
		idx = 0
	}
	if t.live() {
		t.eng.TabsSetSelected(t.handle, uint16(idx))
	}
	return t
}

// BlockTitle sets the surrounding block's title and border.
func (t *Tabs) BlockTitle(title string, border bool) *Tabs {
	if t.live() {
		t.eng.TabsSetBlockTitle(t.handle, title, border)
	}
	return t
}
