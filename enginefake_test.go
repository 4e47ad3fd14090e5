package ratatui

import (
	"strings"

	"github.com/holo-q/ratatui-go/internal/ffi"
)

// fakeEngine is an in-memory stand-in for the native library so the suite
// runs without the shared object. It tracks handle lifecycles and keeps
// just enough widget state to answer headless renders.
var _ engine = (*fakeEngine)(nil)

type fakeEngine struct {
	last      ffi.Handle
	freed     map[ffi.Handle]int
	termFreed int
	termAlive bool

	// paragraph content, by handle
	lines map[ffi.Handle][]string

	events []ffi.Event
	width  uint16
	height uint16

	renderedRects []ffi.Rect
	frames        [][]ffi.DrawCmd
	lastTimeout   uint64
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		freed:  make(map[ffi.Handle]int),
		lines:  make(map[ffi.Handle][]string),
		width:  80,
		height: 24,
	}
}

func (f *fakeEngine) alloc() ffi.Handle {
	f.last++
	return f.last
}

func (f *fakeEngine) pushEvent(evt ffi.Event) { f.events = append(f.events, evt) }

func (f *fakeEngine) Version() (uint16, uint16, uint16) { return 0, 1, 0 }

func (f *fakeEngine) InitTerminal() (ffi.Handle, error) {
	f.termAlive = true
	return f.alloc(), nil
}

func (f *fakeEngine) TerminalClear(ffi.Handle) {}

func (f *fakeEngine) TerminalFree(ffi.Handle) {
	f.termFreed++
	f.termAlive = false
}

func (f *fakeEngine) TerminalSize() (uint16, uint16, error) { return f.width, f.height, nil }

func (f *fakeEngine) NextEvent(timeoutMs uint64) (ffi.Event, error) {
	f.lastTimeout = timeoutMs
	if len(f.events) == 0 {
		return ffi.Event{Kind: ffi.EventNone}, nil
	}
	evt := f.events[0]
	f.events = f.events[1:]
	return evt, nil
}

func (f *fakeEngine) InjectKey(code uint32, ch rune, mods uint8) {
	f.pushEvent(ffi.Event{
		Kind: ffi.EventKey,
		Key:  ffi.KeyEvent{Code: code, Ch: uint32(ch), Mods: mods},
	})
}

func (f *fakeEngine) InjectResize(w, h uint16) {
	f.pushEvent(ffi.Event{Kind: ffi.EventResize, Width: w, Height: h})
}

func (f *fakeEngine) InjectMouse(kind, btn uint32, x, y uint16, mods uint8) {
	f.pushEvent(ffi.Event{
		Kind: ffi.EventMouse, MouseKind: kind, MouseBtn: btn,
		MouseX: x, MouseY: y, MouseMods: mods,
	})
}

func (f *fakeEngine) ParagraphNew(text string) (ffi.Handle, error) {
	h := f.alloc()
	f.lines[h] = []string{text}
	return h, nil
}

func (f *fakeEngine) ParagraphNewEmpty() (ffi.Handle, error) {
	h := f.alloc()
	f.lines[h] = nil
	return h, nil
}

func (f *fakeEngine) ListNew() (ffi.Handle, error)      { return f.alloc(), nil }
func (f *fakeEngine) TableNew() (ffi.Handle, error)     { return f.alloc(), nil }
func (f *fakeEngine) GaugeNew() (ffi.Handle, error)     { return f.alloc(), nil }
func (f *fakeEngine) TabsNew() (ffi.Handle, error)      { return f.alloc(), nil }
func (f *fakeEngine) BarChartNew() (ffi.Handle, error)  { return f.alloc(), nil }
func (f *fakeEngine) SparklineNew() (ffi.Handle, error) { return f.alloc(), nil }
func (f *fakeEngine) ChartNew() (ffi.Handle, error)     { return f.alloc(), nil }
func (f *fakeEngine) ScrollbarNew() (ffi.Handle, error) { return f.alloc(), nil }

func (f *fakeEngine) WidgetFree(kind ffi.WidgetKind, h ffi.Handle) { f.freed[h]++ }

func (f *fakeEngine) ParagraphAppendLine(h ffi.Handle, text string, _ ffi.Style) {
	f.lines[h] = append(f.lines[h], text)
}

func (f *fakeEngine) ParagraphAppendSpan(h ffi.Handle, text string, _ ffi.Style) {
	lines := f.lines[h]
	if len(lines) == 0 {
		f.lines[h] = []string{text}
		return
	}
	lines[len(lines)-1] += text
}

func (f *fakeEngine) ParagraphLineBreak(h ffi.Handle) {
	f.lines[h] = append(f.lines[h], "")
}

func (f *fakeEngine) ParagraphSetBlockTitle(ffi.Handle, string, bool) {}
func (f *fakeEngine) ParagraphSetAlignment(ffi.Handle, uint32)        {}

func (f *fakeEngine) ListAppendItem(ffi.Handle, string, ffi.Style)  {}
func (f *fakeEngine) ListSetBlockTitle(ffi.Handle, string, bool)    {}
func (f *fakeEngine) ListSetSelected(ffi.Handle, int32)             {}
func (f *fakeEngine) ListSetHighlightStyle(ffi.Handle, ffi.Style)   {}
func (f *fakeEngine) ListSetHighlightSymbol(ffi.Handle, string)     {}
func (f *fakeEngine) TableSetHeaders(ffi.Handle, string)            {}
func (f *fakeEngine) TableAppendRow(ffi.Handle, string)             {}
func (f *fakeEngine) TableSetBlockTitle(ffi.Handle, string, bool)   {}
func (f *fakeEngine) TableSetSelected(ffi.Handle, int32)            {}
func (f *fakeEngine) TableSetRowHighlightStyle(ffi.Handle, ffi.Style) {}
func (f *fakeEngine) TableSetHighlightSymbol(ffi.Handle, string)    {}
func (f *fakeEngine) GaugeSetRatio(ffi.Handle, float32)             {}
func (f *fakeEngine) GaugeSetLabel(ffi.Handle, string)              {}
func (f *fakeEngine) GaugeSetBlockTitle(ffi.Handle, string, bool)   {}
func (f *fakeEngine) TabsSetTitles(ffi.Handle, string)              {}
func (f *fakeEngine) TabsSetSelected(ffi.Handle, uint16)            {}
func (f *fakeEngine) TabsSetBlockTitle(ffi.Handle, string, bool)    {}
func (f *fakeEngine) BarChartSetValues(ffi.Handle, []uint64)        {}
func (f *fakeEngine) BarChartSetLabels(ffi.Handle, string)          {}
func (f *fakeEngine) BarChartSetBlockTitle(ffi.Handle, string, bool) {}
func (f *fakeEngine) SparklineSetValues(ffi.Handle, []uint64)       {}
func (f *fakeEngine) SparklineSetBlockTitle(ffi.Handle, string, bool) {}
func (f *fakeEngine) ChartAddLine(ffi.Handle, string, []float64, ffi.Style) {}
func (f *fakeEngine) ChartSetAxesTitles(ffi.Handle, string, string) {}
func (f *fakeEngine) ChartSetBlockTitle(ffi.Handle, string, bool)   {}
func (f *fakeEngine) ScrollbarConfigure(ffi.Handle, uint32, uint16, uint16, uint16) {}
func (f *fakeEngine) ScrollbarSetBlockTitle(ffi.Handle, string, bool) {}

func (f *fakeEngine) TerminalDrawFull(term ffi.Handle, kind ffi.WidgetKind, h ffi.Handle) error {
	f.renderedRects = append(f.renderedRects, ffi.Rect{Width: f.width, Height: f.height})
	return nil
}

func (f *fakeEngine) TerminalDrawIn(term ffi.Handle, kind ffi.WidgetKind, h ffi.Handle, rect ffi.Rect) error {
	f.renderedRects = append(f.renderedRects, rect)
	return nil
}

func (f *fakeEngine) TerminalDrawFrame(term ffi.Handle, cmds []ffi.DrawCmd) error {
	f.frames = append(f.frames, cmds)
	return nil
}

func (f *fakeEngine) HeadlessRender(kind ffi.WidgetKind, h ffi.Handle, width, height uint16) (string, error) {
	return strings.Join(f.lines[h], "\n"), nil
}

func (f *fakeEngine) HeadlessRenderFrame(width, height uint16, cmds []ffi.DrawCmd) (string, error) {
	var lines []string
	for _, cmd := range cmds {
		lines = append(lines, f.lines[cmd.Handle]...)
	}
	return strings.Join(lines, "\n"), nil
}
