package ratatui

import (
	"strings"

	"github.com/holo-q/ratatui-go/internal/ffi"
)

// BarChart draws vertical bars for a series of values.
type BarChart struct {
	widget
}

func NewBarChart() (*BarChart, error) {
	w, err := newWidget("NewBarChart", ffi.WidgetBarChart, func(e engine) (ffi.Handle, error) {
		return e.BarChartNew()
	})
	if err != nil {
		return nil, err
	}
	return &BarChart{widget: w}, nil
}

// Values replaces the bar values.
func (b *BarChart) Values(values ...uint64) *BarChart {
	if b.live() {
		b.eng.BarChartSetValues(b.handle, values)
	}
	return b
}

// Labels replaces the per-bar labels.
func (b *BarChart) Labels(labels ...string) *BarChart {
	if b.live() {
		b.eng.BarChartSetLabels(b.handle, strings.Join(labels, "\t"))
	}
	return b
}

// BlockTitle sets the surrounding block's title and border.
func (b *BarChart) BlockTitle(title string, border bool) *BarChart {
	if b.live() {
		b.eng.BarChartSetBlockTitle(b.handle, title, border)
	}
	return b
}
