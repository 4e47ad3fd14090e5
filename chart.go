package ratatui

import "github.com/holo-q/ratatui-go/internal/ffi"

// Point is one chart sample.
type Point struct {
	X float64
	Y float64
}

// Chart draws one or more line series over labeled axes.
type Chart struct {
	widget
}

func NewChart() (*Chart, error) {
	w, err := newWidget("NewChart", ffi.WidgetChart, func(e engine) (ffi.Handle, error) {
		return e.ChartNew()
	})
	if err != nil {
		return nil, err
	}
	return &Chart{widget: w}, nil
}

// Line adds a named series. Points cross the boundary as interleaved
// x,y pairs.
func (c *Chart) Line(name string, points []Point, style Style) *Chart {
	if c.live() {
		flat := make([]float64, 0, len(points)*2)
		for _, p := range points {
			flat = append(flat, p.X, p.Y)
		}
		c.eng.ChartAddLine(c.handle, name, flat, style)
	}
	return c
}

// AxesTitles sets the x and y axis titles.
func (c *Chart) AxesTitles(x, y string) *Chart {
	if c.live() {
		c.eng.ChartSetAxesTitles(c.handle, x, y)
	}
	return c
}

// BlockTitle sets the surrounding block's title and border.
func (c *Chart) BlockTitle(title string, border bool) *Chart {
	if c.live() {
		c.eng.ChartSetBlockTitle(c.handle, title, border)
	}
	return c
}
