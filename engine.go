package ratatui

import (
	"sync"

	"github.com/holo-q/ratatui-go/internal/ffi"
)

// engine is the call surface the binding needs from the native library.
// *ffi.Lib is the production implementation; tests substitute an in-memory
// fake so the suite runs without the native artifact.
type engine interface {
	Version() (major, minor, patch uint16)

	InitTerminal() (ffi.Handle, error)
	TerminalClear(term ffi.Handle)
	TerminalFree(term ffi.Handle)
	TerminalSize() (uint16, uint16, error)
	NextEvent(timeoutMs uint64) (ffi.Event, error)
	InjectKey(code uint32, ch rune, mods uint8)
	InjectResize(w, h uint16)
	InjectMouse(kind, btn uint32, x, y uint16, mods uint8)

	ParagraphNew(text string) (ffi.Handle, error)
	ParagraphNewEmpty() (ffi.Handle, error)
	ListNew() (ffi.Handle, error)
	TableNew() (ffi.Handle, error)
	GaugeNew() (ffi.Handle, error)
	TabsNew() (ffi.Handle, error)
	BarChartNew() (ffi.Handle, error)
	SparklineNew() (ffi.Handle, error)
	ChartNew() (ffi.Handle, error)
	ScrollbarNew() (ffi.Handle, error)
	WidgetFree(kind ffi.WidgetKind, h ffi.Handle)

	ParagraphAppendLine(h ffi.Handle, text string, style ffi.Style)
	ParagraphAppendSpan(h ffi.Handle, text string, style ffi.Style)
	ParagraphLineBreak(h ffi.Handle)
	ParagraphSetBlockTitle(h ffi.Handle, title string, border bool)
	ParagraphSetAlignment(h ffi.Handle, align uint32)

	ListAppendItem(h ffi.Handle, text string, style ffi.Style)
	ListSetBlockTitle(h ffi.Handle, title string, border bool)
	ListSetSelected(h ffi.Handle, idx int32)
	ListSetHighlightStyle(h ffi.Handle, style ffi.Style)
	ListSetHighlightSymbol(h ffi.Handle, sym string)

	TableSetHeaders(h ffi.Handle, tsv string)
	TableAppendRow(h ffi.Handle, tsv string)
	TableSetBlockTitle(h ffi.Handle, title string, border bool)
	TableSetSelected(h ffi.Handle, idx int32)
	TableSetRowHighlightStyle(h ffi.Handle, style ffi.Style)
	TableSetHighlightSymbol(h ffi.Handle, sym string)

	GaugeSetRatio(h ffi.Handle, ratio float32)
	GaugeSetLabel(h ffi.Handle, label string)
	GaugeSetBlockTitle(h ffi.Handle, title string, border bool)

	TabsSetTitles(h ffi.Handle, tsv string)
	TabsSetSelected(h ffi.Handle, idx uint16)
	TabsSetBlockTitle(h ffi.Handle, title string, border bool)

	BarChartSetValues(h ffi.Handle, values []uint64)
	BarChartSetLabels(h ffi.Handle, tsv string)
	BarChartSetBlockTitle(h ffi.Handle, title string, border bool)

	SparklineSetValues(h ffi.Handle, values []uint64)
	SparklineSetBlockTitle(h ffi.Handle, title string, border bool)

	ChartAddLine(h ffi.Handle, name string, points []float64, style ffi.Style)
	ChartSetAxesTitles(h ffi.Handle, x, y string)
	ChartSetBlockTitle(h ffi.Handle, title string, border bool)

	ScrollbarConfigure(h ffi.Handle, orient uint32, position, contentLen, viewportLen uint16)
	ScrollbarSetBlockTitle(h ffi.Handle, title string, border bool)

	TerminalDrawFull(term ffi.Handle, kind ffi.WidgetKind, h ffi.Handle) error
	TerminalDrawIn(term ffi.Handle, kind ffi.WidgetKind, h ffi.Handle, rect ffi.Rect) error
	TerminalDrawFrame(term ffi.Handle, cmds []ffi.DrawCmd) error

	HeadlessRender(kind ffi.WidgetKind, h ffi.Handle, width, height uint16) (string, error)
	HeadlessRenderFrame(width, height uint16, cmds []ffi.DrawCmd) (string, error)
}

var _ engine = (*ffi.Lib)(nil)

var (
	engineMu sync.Mutex
	eng      engine
)

// loadEngine returns the process-wide engine, loading the native library on
// first use. The library stays loaded for the life of the process; the
// native side has no unload contract.
func loadEngine() (engine, error) {
	engineMu.Lock()
	defer engineMu.Unlock()
	if eng != nil {
		return eng, nil
	}
	cfg := LoadConfig()
	lib, err := ffi.Load(cfg.LibPath)
	if err != nil {
		return nil, &Error{Code: CodeLibraryNotFound, Op: "load", Err: err}
	}
	eng = lib
	return eng, nil
}

// setEngine swaps the process engine and returns a restore func. Test hook.
func setEngine(e engine) func() {
	engineMu.Lock()
	defer engineMu.Unlock()
	prev := eng
	eng = e
	return func() {
		engineMu.Lock()
		defer engineMu.Unlock()
		eng = prev
	}
}

// Version reports the loaded native library's version.
func Version() (major, minor, patch uint16, err error) {
	e, err := loadEngine()
	if err != nil {
		return 0, 0, 0, err
	}
	major, minor, patch = e.Version()
	return major, minor, patch, nil
}
