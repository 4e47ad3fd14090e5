package ratatui

import "github.com/holo-q/ratatui-go/internal/ffi"

// Sparkline draws a compact value trace.
type Sparkline struct {
	widget
}

func NewSparkline() (*Sparkline, error) {
	w, err := newWidget("NewSparkline", ffi.WidgetSparkline, func(e engine) (ffi.Handle, error) {
		return e.SparklineNew()
	})
	if err != nil {
		return nil, err
	}
	return &Sparkline{widget: w}, nil
}

// Values replaces the sample values.
func (s *Sparkline) Values(values ...uint64) *Sparkline {
	if s.live() {
		s.eng.SparklineSetValues(s.handle, values)
	}
	return s
}

// BlockTitle sets the surrounding block's title and border.
func (s *Sparkline) BlockTitle(title string, border bool) *Sparkline {
	if s.live() {
		s.eng.SparklineSetBlockTitle(s.handle, title, border)
	}
	return s
}
