package ratatui

import (
	"strings"

	"github.com/holo-q/ratatui-go/internal/ffi"
)

// Table is a row/column widget. Cells cross the boundary as tab-separated
// strings, matching the native wire format.
type Table struct {
	widget
}

func NewTable() (*Table, error) {
	w, err := newWidget("NewTable", ffi.WidgetTable, func(e engine) (ffi.Handle, error) {
		return e.TableNew()
	})
	if err != nil {
		return nil, err
	}
	return &Table{widget: w}, nil
}

// Headers sets the header row.
func (t *Table) Headers(cells ...string) *Table {
	if t.live() {
		t.eng.TableSetHeaders(t.handle, strings.Join(cells, "\t"))
	}
	return t
}

// AppendRow adds one data row.
func (t *Table) AppendRow(cells ...string) *Table {
	if t.live() {
		t.eng.TableAppendRow(t.handle, strings.Join(cells, "\t"))
	}
	return t
}

// BlockTitle sets the surrounding block's title and border.
func (t *Table) BlockTitle(title string, border bool) *Table {
	if t.live() {
		t.eng.TableSetBlockTitle(t.handle, title, border)
	}
	return t
}

// Select sets the selected row. Negative clears the selection.
func (t *Table) Select(idx int) *Table {
	if t.live() {
		t.eng.TableSetSelected(t.handle, int32(idx))
	}
	return t
}

// HighlightStyle sets the style applied to the selected row.
func (t *Table) HighlightStyle(style Style) *Table {
	if t.live() {
		t.eng.TableSetRowHighlightStyle(t.handle, style)
	}
	return t
}

// HighlightSymbol sets the marker drawn before the selected row.
func (t *Table) HighlightSymbol(sym string) *Table {
	if t.live() {
		t.eng.TableSetHighlightSymbol(t.handle, sym)
	}
	return t
}
