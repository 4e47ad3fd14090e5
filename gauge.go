package ratatui

import "github.com/holo-q/ratatui-go/internal/ffi"

// Gauge is a progress bar.
type Gauge struct {
	widget
}

func NewGauge() (*Gauge, error) {
	w, err := newWidget("NewGauge", ffi.WidgetGauge, func(e engine) (ffi.Handle, error) {
		return e.GaugeNew()
	})
	if err != nil {
		return nil, err
	}
	return &Gauge{widget: w}, nil
}

// Ratio sets the fill fraction, clamped to [0, 1].
func (g *Gauge) Ratio(ratio float64) *Gauge {
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	if g.live() {
		g.eng.GaugeSetRatio(g.handle, float32(ratio))
	}
	return g
}

// Label sets the text drawn over the bar.
func (g *Gauge) Label(label string) *Gauge {
	if g.live() {
		g.eng.GaugeSetLabel(g.handle, label)
	}
	return g
}

// BlockTitle sets the surrounding block's title and border.
func (g *Gauge) BlockTitle(title string, border bool) *Gauge {
	if g.live() {
		g.eng.GaugeSetBlockTitle(g.handle, title, border)
	}
	return g
}
