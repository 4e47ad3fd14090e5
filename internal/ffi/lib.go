package ffi

import (
	"fmt"
	"runtime"
)

// Lib is the loaded native library. It carries no state of its own — the
// engine is a process-wide singleton — but giving the call surface a
// receiver lets callers program against an interface and lets tests
// substitute a fake engine.
type Lib struct{}

// Load resolves, opens and registers the native library. Safe to call more
// than once; every call after the first returns the cached outcome.
func Load(override string) (*Lib, error) {
	if err := load(override); err != nil {
		return nil, err
	}
	return &Lib{}, nil
}

// Loaded reports whether the native library has been initialized.
func Loaded() bool { return initialized }

// Version returns the native library's semantic version, or zeros when the
// build predates the version symbol.
func (l *Lib) Version() (major, minor, patch uint16) {
	if fnVersion == nil {
		return 0, 0, 0
	}
	fnVersion(&major, &minor, &patch)
	return major, minor, patch
}

// CallError reports a native call that signaled failure. The handle that
// was passed in remains valid.
type CallError struct {
	Symbol string
}

func (e *CallError) Error() string {
	return fmt.Sprintf("native call %s failed", e.Symbol)
}

// ---- Terminal ----

func (l *Lib) InitTerminal() (Handle, error) {
	h := fnInitTerminal()
	if h == 0 {
		return 0, &CallError{Symbol: "ratatui_init_terminal"}
	}
	return h, nil
}

func (l *Lib) TerminalClear(term Handle) { fnTerminalClear(term) }

func (l *Lib) TerminalFree(term Handle) { fnTerminalFree(term) }

func (l *Lib) TerminalSize() (uint16, uint16, error) {
	var w, h uint16
	if !fnTerminalSize(&w, &h) {
		return 0, 0, &CallError{Symbol: "ratatui_terminal_size"}
	}
	return w, h, nil
}

// NextEvent polls for input, blocking for at most timeoutMs. Expiry with no
// pending input yields an Event with Kind EventNone and no error.
func (l *Lib) NextEvent(timeoutMs uint64) (Event, error) {
	var evt Event
	if !fnNextEvent(timeoutMs, &evt) {
		return Event{Kind: EventNone}, nil
	}
	return evt, nil
}

func (l *Lib) InjectKey(code uint32, ch rune, mods uint8) {
	if fnInjectKey != nil {
		fnInjectKey(code, uint32(ch), mods)
	}
}

func (l *Lib) InjectResize(w, h uint16) {
	if fnInjectResize != nil {
		fnInjectResize(w, h)
	}
}

func (l *Lib) InjectMouse(kind, btn uint32, x, y uint16, mods uint8) {
	if fnInjectMouse != nil {
		fnInjectMouse(kind, btn, x, y, mods)
	}
}

// ---- Widget constructors ----

func (l *Lib) ParagraphNew(text string) (Handle, error) {
	buf, ptr := cString(text)
	h := fnParagraphNew(ptr)
	runtime.KeepAlive(buf)
	if h == 0 {
		return 0, &CallError{Symbol: "ratatui_paragraph_new"}
	}
	return h, nil
}

func (l *Lib) ParagraphNewEmpty() (Handle, error) {
	h := fnParagraphNewEmpty()
	if h == 0 {
		return 0, &CallError{Symbol: "ratatui_paragraph_new_empty"}
	}
	return h, nil
}

func (l *Lib) ListNew() (Handle, error)      { return ctor(fnListNew, "ratatui_list_new") }
func (l *Lib) TableNew() (Handle, error)     { return ctor(fnTableNew, "ratatui_table_new") }
func (l *Lib) GaugeNew() (Handle, error)     { return ctor(fnGaugeNew, "ratatui_gauge_new") }
func (l *Lib) TabsNew() (Handle, error)      { return ctor(fnTabsNew, "ratatui_tabs_new") }
func (l *Lib) BarChartNew() (Handle, error)  { return ctor(fnBarChartNew, "ratatui_barchart_new") }
func (l *Lib) SparklineNew() (Handle, error) { return ctor(fnSparklineNew, "ratatui_sparkline_new") }
func (l *Lib) ChartNew() (Handle, error)     { return ctor(fnChartNew, "ratatui_chart_new") }

func (l *Lib) ScrollbarNew() (Handle, error) {
	if fnScrollbarNew == nil {
		return 0, &CallError{Symbol: "ratatui_scrollbar_new (library built without scrollbar feature)"}
	}
	return ctor(fnScrollbarNew, "ratatui_scrollbar_new")
}

func ctor(fn func() uintptr, symbol string) (Handle, error) {
	h := fn()
	if h == 0 {
		return 0, &CallError{Symbol: symbol}
	}
	return h, nil
}

// WidgetFree invokes the per-kind destructor. Exactly one call per
// constructed handle; callers enforce that invariant.
func (l *Lib) WidgetFree(kind WidgetKind, h Handle) {
	switch kind {
	case WidgetParagraph:
		fnParagraphFree(h)
	case WidgetList:
		fnListFree(h)
	case WidgetTable:
		fnTableFree(h)
	case WidgetGauge:
		fnGaugeFree(h)
	case WidgetTabs:
		fnTabsFree(h)
	case WidgetBarChart:
		fnBarChartFree(h)
	case WidgetSparkline:
		fnSparklineFree(h)
	case WidgetChart:
		fnChartFree(h)
	case WidgetScrollbar:
		if fnScrollbarFree != nil {
			fnScrollbarFree(h)
		}
	}
}

// ---- Paragraph mutators ----

func (l *Lib) ParagraphAppendLine(h Handle, text string, style Style) {
	buf, ptr := cString(text)
	fnParagraphAppendLine(h, ptr, style)
	runtime.KeepAlive(buf)
}

func (l *Lib) ParagraphAppendSpan(h Handle, text string, style Style) {
	buf, ptr := cString(text)
	fnParagraphAppendSpan(h, ptr, style)
	runtime.KeepAlive(buf)
}

func (l *Lib) ParagraphLineBreak(h Handle) { fnParagraphLineBreak(h) }

func (l *Lib) ParagraphSetBlockTitle(h Handle, title string, border bool) {
	setBlockTitle(fnParagraphSetBlockTitle, h, title, border)
}

func (l *Lib) ParagraphSetAlignment(h Handle, align uint32) {
	if fnParagraphSetAlignment != nil {
		fnParagraphSetAlignment(h, align)
	}
}

// setBlockTitle passes nil for an empty title so the native side drops the
// block title instead of rendering an empty one.
func setBlockTitle(fn func(h uintptr, title uintptr, border bool), h Handle, title string, border bool) {
	if title == "" {
		fn(h, 0, border)
		return
	}
	buf, ptr := cString(title)
	fn(h, ptr, border)
	runtime.KeepAlive(buf)
}

// ---- List mutators ----

func (l *Lib) ListAppendItem(h Handle, text string, style Style) {
	buf, ptr := cString(text)
	fnListAppendItem(h, ptr, style)
	runtime.KeepAlive(buf)
}

func (l *Lib) ListSetBlockTitle(h Handle, title string, border bool) {
	setBlockTitle(fnListSetBlockTitle, h, title, border)
}

func (l *Lib) ListSetSelected(h Handle, idx int32) { fnListSetSelected(h, idx) }

func (l *Lib) ListSetHighlightStyle(h Handle, style Style) { fnListSetHighlightStyle(h, style) }

func (l *Lib) ListSetHighlightSymbol(h Handle, sym string) {
	if sym == "" {
		fnListSetHighlightSymbol(h, 0)
		return
	}
	buf, ptr := cString(sym)
	fnListSetHighlightSymbol(h, ptr)
	runtime.KeepAlive(buf)
}

// ---- Table mutators ----

func (l *Lib) TableSetHeaders(h Handle, tsv string) {
	buf, ptr := cString(tsv)
	fnTableSetHeaders(h, ptr)
	runtime.KeepAlive(buf)
}

func (l *Lib) TableAppendRow(h Handle, tsv string) {
	buf, ptr := cString(tsv)
	fnTableAppendRow(h, ptr)
	runtime.KeepAlive(buf)
}

func (l *Lib) TableSetBlockTitle(h Handle, title string, border bool) {
	setBlockTitle(fnTableSetBlockTitle, h, title, border)
}

func (l *Lib) TableSetSelected(h Handle, idx int32) { fnTableSetSelected(h, idx) }

func (l *Lib) TableSetRowHighlightStyle(h Handle, style Style) {
	fnTableSetRowHighlightStyle(h, style)
}

func (l *Lib) TableSetHighlightSymbol(h Handle, sym string) {
	if sym == "" {
		fnTableSetHighlightSymbol(h, 0)
		return
	}
	buf, ptr := cString(sym)
	fnTableSetHighlightSymbol(h, ptr)
	runtime.KeepAlive(buf)
}

// ---- Gauge mutators ----

func (l *Lib) GaugeSetRatio(h Handle, ratio float32) { fnGaugeSetRatio(h, ratio) }

func (l *Lib) GaugeSetLabel(h Handle, label string) {
	if label == "" {
		fnGaugeSetLabel(h, 0)
		return
	}
	buf, ptr := cString(label)
	fnGaugeSetLabel(h, ptr)
	runtime.KeepAlive(buf)
}

func (l *Lib) GaugeSetBlockTitle(h Handle, title string, border bool) {
	setBlockTitle(fnGaugeSetBlockTitle, h, title, border)
}

// ---- Tabs mutators ----

func (l *Lib) TabsSetTitles(h Handle, tsv string) {
	buf, ptr := cString(tsv)
	fnTabsSetTitles(h, ptr)
	runtime.KeepAlive(buf)
}

func (l *Lib) TabsSetSelected(h Handle, idx uint16) { fnTabsSetSelected(h, idx) }

func (l *Lib) TabsSetBlockTitle(h Handle, title string, border bool) {
	setBlockTitle(fnTabsSetBlockTitle, h, title, border)
}

// ---- BarChart / Sparkline mutators ----

func (l *Lib) BarChartSetValues(h Handle, values []uint64) {
	if len(values) == 0 {
		fnBarChartSetValues(h, nil, 0)
		return
	}
	fnBarChartSetValues(h, &values[0], uintptr(len(values)))
	runtime.KeepAlive(values)
}

func (l *Lib) BarChartSetLabels(h Handle, tsv string) {
	buf, ptr := cString(tsv)
	fnBarChartSetLabels(h, ptr)
	runtime.KeepAlive(buf)
}

func (l *Lib) BarChartSetBlockTitle(h Handle, title string, border bool) {
	setBlockTitle(fnBarChartSetBlockTitle, h, title, border)
}

func (l *Lib) SparklineSetValues(h Handle, values []uint64) {
	if len(values) == 0 {
		fnSparklineSetValues(h, nil, 0)
		return
	}
	fnSparklineSetValues(h, &values[0], uintptr(len(values)))
	runtime.KeepAlive(values)
}

func (l *Lib) SparklineSetBlockTitle(h Handle, title string, border bool) {
	setBlockTitle(fnSparklineSetBlockTitle, h, title, border)
}

// ---- Chart mutators ----

// ChartAddLine submits one named series as interleaved x,y pairs.
func (l *Lib) ChartAddLine(h Handle, name string, points []float64, style Style) {
	buf, ptr := cString(name)
	var base *float64
	if len(points) > 0 {
		base = &points[0]
	}
	fnChartAddLine(h, ptr, base, uintptr(len(points)/2), style)
	runtime.KeepAlive(buf)
	runtime.KeepAlive(points)
}

func (l *Lib) ChartSetAxesTitles(h Handle, x, y string) {
	xbuf, xptr := cString(x)
	ybuf, yptr := cString(y)
	if x == "" {
		xptr = 0
	}
	if y == "" {
		yptr = 0
	}
	fnChartSetAxesTitles(h, xptr, yptr)
	runtime.KeepAlive(xbuf)
	runtime.KeepAlive(ybuf)
}

func (l *Lib) ChartSetBlockTitle(h Handle, title string, border bool) {
	setBlockTitle(fnChartSetBlockTitle, h, title, border)
}

// ---- Scrollbar mutators ----

func (l *Lib) ScrollbarConfigure(h Handle, orient uint32, position, contentLen, viewportLen uint16) {
	if fnScrollbarConfigure != nil {
		fnScrollbarConfigure(h, orient, position, contentLen, viewportLen)
	}
}

func (l *Lib) ScrollbarSetBlockTitle(h Handle, title string, border bool) {
	if fnScrollbarSetBlockTitle != nil {
		setBlockTitle(fnScrollbarSetBlockTitle, h, title, border)
	}
}

// ---- Drawing ----

// TerminalDrawFull renders a paragraph over the whole viewport. Only the
// paragraph kind has a dedicated full-frame symbol; other kinds are drawn
// into an explicit rect.
func (l *Lib) TerminalDrawFull(term Handle, kind WidgetKind, h Handle) error {
	if kind != WidgetParagraph {
		return &CallError{Symbol: "ratatui_terminal_draw_" + kind.String()}
	}
	if !fnDrawParagraph(term, h) {
		return &CallError{Symbol: "ratatui_terminal_draw_paragraph"}
	}
	return nil
}

// TerminalDrawIn renders one widget's current state into rect.
func (l *Lib) TerminalDrawIn(term Handle, kind WidgetKind, h Handle, rect Rect) error {
	var ok bool
	switch kind {
	case WidgetParagraph:
		ok = fnDrawParagraphIn(term, h, rect)
	case WidgetList:
		ok = fnDrawListIn(term, h, rect)
	case WidgetTable:
		ok = fnDrawTableIn(term, h, rect)
	case WidgetGauge:
		ok = fnDrawGaugeIn(term, h, rect)
	case WidgetTabs:
		ok = fnDrawTabsIn(term, h, rect)
	case WidgetBarChart:
		ok = fnDrawBarChartIn(term, h, rect)
	case WidgetSparkline:
		ok = fnDrawSparklineIn(term, h, rect)
	case WidgetChart:
		ok = fnDrawChartIn(term, h, rect)
	case WidgetScrollbar:
		if fnDrawScrollbarIn == nil {
			return &CallError{Symbol: "ratatui_terminal_draw_scrollbar_in"}
		}
		ok = fnDrawScrollbarIn(term, h, rect)
	default:
		return &CallError{Symbol: fmt.Sprintf("draw(kind=%d)", kind)}
	}
	if !ok {
		return &CallError{Symbol: "ratatui_terminal_draw_" + kind.String() + "_in"}
	}
	return nil
}

// TerminalDrawFrame submits a batch of draw commands in one native call.
func (l *Lib) TerminalDrawFrame(term Handle, cmds []DrawCmd) error {
	if len(cmds) == 0 {
		return nil
	}
	if !fnDrawFrame(term, &cmds[0], uintptr(len(cmds))) {
		return &CallError{Symbol: "ratatui_terminal_draw_frame"}
	}
	runtime.KeepAlive(cmds)
	return nil
}

// ---- Headless rendering ----

// HeadlessRender draws one widget into an off-screen surface of the given
// size and returns the cell grid as text.
func (l *Lib) HeadlessRender(kind WidgetKind, h Handle, width, height uint16) (string, error) {
	var fn func(w, h uint16, handle uintptr, out *uintptr) bool
	switch kind {
	case WidgetParagraph:
		fn = fnHeadlessParagraph
	case WidgetList:
		fn = fnHeadlessList
	case WidgetTable:
		fn = fnHeadlessTable
	case WidgetGauge:
		fn = fnHeadlessGauge
	case WidgetTabs:
		fn = fnHeadlessTabs
	case WidgetBarChart:
		fn = fnHeadlessBarChart
	case WidgetSparkline:
		fn = fnHeadlessSparkline
	case WidgetChart:
		fn = fnHeadlessChart
	case WidgetScrollbar:
		fn = fnHeadlessScrollbar
	}
	if fn == nil {
		return "", &CallError{Symbol: "ratatui_headless_render_" + kind.String()}
	}
	var out uintptr
	if !fn(width, height, h, &out) {
		return "", &CallError{Symbol: "ratatui_headless_render_" + kind.String()}
	}
	return takeString(out), nil
}

// HeadlessRenderFrame renders a batch of draw commands off-screen.
func (l *Lib) HeadlessRenderFrame(width, height uint16, cmds []DrawCmd) (string, error) {
	if fnHeadlessFrame == nil {
		return "", &CallError{Symbol: "ratatui_headless_render_frame"}
	}
	var base *DrawCmd
	if len(cmds) > 0 {
		base = &cmds[0]
	}
	var out uintptr
	if !fnHeadlessFrame(width, height, base, uintptr(len(cmds)), &out) {
		return "", &CallError{Symbol: "ratatui_headless_render_frame"}
	}
	runtime.KeepAlive(cmds)
	return takeString(out), nil
}
