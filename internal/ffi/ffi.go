// Package ffi provides Go bindings to the ratatui_ffi native terminal
// engine via purego, eliminating the need for CGo. The library is a
// process-wide singleton: it is loaded lazily on first use and never
// unloaded (the engine documents no unload contract).
package ffi

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

var (
	libHandle   uintptr
	libOnce     sync.Once
	libErr      error
	initialized bool
)

// Library function pointers (populated by registration after Dlopen).
var (
	// Terminal
	fnInitTerminal func() uintptr
	fnTerminalClear func(term uintptr)
	fnTerminalFree func(term uintptr)
	fnTerminalSize func(w, h *uint16) bool
	fnNextEvent    func(timeoutMs uint64, out *Event) bool
	fnStringFree   func(s uintptr)
	fnVersion      func(major, minor, patch *uint16)

	// Event injection (feature-gated; used by integration tests)
	fnInjectKey    func(code, ch uint32, mods uint8)
	fnInjectResize func(w, h uint16)
	fnInjectMouse  func(kind, btn uint32, x, y uint16, mods uint8)

	// Paragraph
	fnParagraphNew           func(text uintptr) uintptr
	fnParagraphNewEmpty      func() uintptr
	fnParagraphFree          func(h uintptr)
	fnParagraphAppendLine    func(h uintptr, text uintptr, style Style)
	fnParagraphAppendSpan    func(h uintptr, text uintptr, style Style)
	fnParagraphLineBreak     func(h uintptr)
	fnParagraphSetBlockTitle func(h uintptr, title uintptr, border bool)
	fnParagraphSetAlignment  func(h uintptr, align uint32)

	// List
	fnListNew                func() uintptr
	fnListFree               func(h uintptr)
	fnListAppendItem         func(h uintptr, text uintptr, style Style)
	fnListSetBlockTitle      func(h uintptr, title uintptr, border bool)
	fnListSetSelected        func(h uintptr, idx int32)
	fnListSetHighlightStyle  func(h uintptr, style Style)
	fnListSetHighlightSymbol func(h uintptr, sym uintptr)

	// Table
	fnTableNew                  func() uintptr
	fnTableFree                 func(h uintptr)
	fnTableSetHeaders           func(h uintptr, tsv uintptr)
	fnTableAppendRow            func(h uintptr, tsv uintptr)
	fnTableSetBlockTitle        func(h uintptr, title uintptr, border bool)
	fnTableSetSelected          func(h uintptr, idx int32)
	fnTableSetRowHighlightStyle func(h uintptr, style Style)
	fnTableSetHighlightSymbol   func(h uintptr, sym uintptr)

	// Gauge
	fnGaugeNew           func() uintptr
	fnGaugeFree          func(h uintptr)
	fnGaugeSetRatio      func(h uintptr, ratio float32)
	fnGaugeSetLabel      func(h uintptr, label uintptr)
	fnGaugeSetBlockTitle func(h uintptr, title uintptr, border bool)

	// Tabs
	fnTabsNew           func() uintptr
	fnTabsFree          func(h uintptr)
	fnTabsSetTitles     func(h uintptr, tsv uintptr)
	fnTabsSetSelected   func(h uintptr, idx uint16)
	fnTabsSetBlockTitle func(h uintptr, title uintptr, border bool)

	// BarChart
	fnBarChartNew           func() uintptr
	fnBarChartFree          func(h uintptr)
	fnBarChartSetValues     func(h uintptr, values *uint64, n uintptr)
	fnBarChartSetLabels     func(h uintptr, tsv uintptr)
	fnBarChartSetBlockTitle func(h uintptr, title uintptr, border bool)

	// Sparkline
	fnSparklineNew           func() uintptr
	fnSparklineFree          func(h uintptr)
	fnSparklineSetValues     func(h uintptr, values *uint64, n uintptr)
	fnSparklineSetBlockTitle func(h uintptr, title uintptr, border bool)

	// Chart
	fnChartNew           func() uintptr
	fnChartFree          func(h uintptr)
	fnChartAddLine       func(h uintptr, name uintptr, points *float64, n uintptr, style Style)
	fnChartSetAxesTitles func(h uintptr, x uintptr, y uintptr)
	fnChartSetBlockTitle func(h uintptr, title uintptr, border bool)

	// Scrollbar (feature-gated build of ratatui_ffi)
	fnScrollbarNew           func() uintptr
	fnScrollbarFree          func(h uintptr)
	fnScrollbarConfigure     func(h uintptr, orient uint32, position, contentLen, viewportLen uint16)
	fnScrollbarSetBlockTitle func(h uintptr, title uintptr, border bool)

	// Draw (per-kind, rect-targeted) and batched frames
	fnDrawParagraph   func(term, h uintptr) bool
	fnDrawParagraphIn func(term, h uintptr, rect Rect) bool
	fnDrawListIn      func(term, h uintptr, rect Rect) bool
	fnDrawTableIn     func(term, h uintptr, rect Rect) bool
	fnDrawGaugeIn     func(term, h uintptr, rect Rect) bool
	fnDrawTabsIn      func(term, h uintptr, rect Rect) bool
	fnDrawBarChartIn  func(term, h uintptr, rect Rect) bool
	fnDrawSparklineIn func(term, h uintptr, rect Rect) bool
	fnDrawChartIn     func(term, h uintptr, rect Rect) bool
	fnDrawScrollbarIn func(term, h uintptr, rect Rect) bool
	fnDrawFrame       func(term uintptr, cmds *DrawCmd, n uintptr) bool

	// Headless rendering into a native-owned string
	fnHeadlessParagraph func(w, h uint16, handle uintptr, out *uintptr) bool
	fnHeadlessList      func(w, h uint16, handle uintptr, out *uintptr) bool
	fnHeadlessTable     func(w, h uint16, handle uintptr, out *uintptr) bool
	fnHeadlessGauge     func(w, h uint16, handle uintptr, out *uintptr) bool
	fnHeadlessTabs      func(w, h uint16, handle uintptr, out *uintptr) bool
	fnHeadlessBarChart  func(w, h uint16, handle uintptr, out *uintptr) bool
	fnHeadlessSparkline func(w, h uint16, handle uintptr, out *uintptr) bool
	fnHeadlessChart     func(w, h uint16, handle uintptr, out *uintptr) bool
	fnHeadlessScrollbar func(w, h uint16, handle uintptr, out *uintptr) bool
	fnHeadlessFrame     func(w, h uint16, cmds *DrawCmd, n uintptr, out *uintptr) bool

	// Color helpers
	fnColorRGB     func(r, g, b uint8) uint32
	fnColorIndexed func(i uint8) uint32
)

// libraryName returns the platform-specific shared object name.
func libraryName() string {
	switch runtime.GOOS {
	case "darwin":
		return "libratatui_ffi.dylib"
	case "windows":
		return "ratatui_ffi.dll"
	default:
		return "libratatui_ffi.so"
	}
}

// searchPaths returns candidate locations in resolution order: explicit
// override, RATATUI_FFI_LIB, bundled artifacts near the executable,
// development build dirs, then the bare name for system search.
func searchPaths(override string) []string {
	name := libraryName()

	var paths []string
	if override != "" {
		paths = append(paths, override)
	}
	if env := os.Getenv("RATATUI_FFI_LIB"); env != "" {
		paths = append(paths, env)
	}
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		paths = append(paths,
			filepath.Join(execDir, name),
			filepath.Join(execDir, "lib", name),
			filepath.Join(execDir, "..", "lib", name),
		)
	}
	paths = append(paths,
		name,
		filepath.Join("target", "release", name),
		filepath.Join("target", "debug", name),
	)
	return paths
}

// load resolves and opens the shared library, then registers all symbols.
// It is called at most once per process.
func load(override string) error {
	libOnce.Do(func() {
		paths := searchPaths(override)
		var lastErr error
		for _, path := range paths {
			if filepath.Base(path) != path {
				if _, err := os.Stat(path); err != nil {
					continue
				}
			}
			h, err := openLibrary(path)
			if err != nil {
				lastErr = err
				continue
			}
			log.Printf("ffi: loaded %s", path)
			libHandle = h
			break
		}
		if libHandle == 0 {
			libErr = &LoadError{Paths: paths, Err: lastErr}
			return
		}

		registerTerminalFuncs()
		registerParagraphFuncs()
		registerListFuncs()
		registerTableFuncs()
		registerGaugeFuncs()
		registerTabsFuncs()
		registerBarChartFuncs()
		registerSparklineFuncs()
		registerChartFuncs()
		registerScrollbarFuncs()
		registerDrawFuncs()
		registerHeadlessFuncs()
		registerColorFuncs()

		initialized = true
	})
	return libErr
}

// LoadError reports a failed library resolution with the attempted search
// order, so the caller can surface actionable diagnostics.
type LoadError struct {
	Paths []string
	Err   error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ratatui_ffi library not found (searched %v): %v", e.Paths, e.Err)
	}
	return fmt.Sprintf("ratatui_ffi library not found (searched %v)", e.Paths)
}

func (e *LoadError) Unwrap() error { return e.Err }

func registerTerminalFuncs() {
	purego.RegisterLibFunc(&fnInitTerminal, libHandle, "ratatui_init_terminal")
	purego.RegisterLibFunc(&fnTerminalClear, libHandle, "ratatui_terminal_clear")
	purego.RegisterLibFunc(&fnTerminalFree, libHandle, "ratatui_terminal_free")
	purego.RegisterLibFunc(&fnTerminalSize, libHandle, "ratatui_terminal_size")
	purego.RegisterLibFunc(&fnNextEvent, libHandle, "ratatui_next_event")
	purego.RegisterLibFunc(&fnStringFree, libHandle, "ratatui_string_free")
	registerOptionalFunc(&fnVersion, "ratatui_ffi_version")
	registerOptionalFunc(&fnInjectKey, "ratatui_inject_key")
	registerOptionalFunc(&fnInjectResize, "ratatui_inject_resize")
	registerOptionalFunc(&fnInjectMouse, "ratatui_inject_mouse")
}

func registerParagraphFuncs() {
	purego.RegisterLibFunc(&fnParagraphNew, libHandle, "ratatui_paragraph_new")
	purego.RegisterLibFunc(&fnParagraphNewEmpty, libHandle, "ratatui_paragraph_new_empty")
	purego.RegisterLibFunc(&fnParagraphFree, libHandle, "ratatui_paragraph_free")
	purego.RegisterLibFunc(&fnParagraphAppendLine, libHandle, "ratatui_paragraph_append_line")
	purego.RegisterLibFunc(&fnParagraphAppendSpan, libHandle, "ratatui_paragraph_append_span")
	purego.RegisterLibFunc(&fnParagraphLineBreak, libHandle, "ratatui_paragraph_line_break")
	purego.RegisterLibFunc(&fnParagraphSetBlockTitle, libHandle, "ratatui_paragraph_set_block_title")
	registerOptionalFunc(&fnParagraphSetAlignment, "ratatui_paragraph_set_alignment")
}

func registerListFuncs() {
	purego.RegisterLibFunc(&fnListNew, libHandle, "ratatui_list_new")
	purego.RegisterLibFunc(&fnListFree, libHandle, "ratatui_list_free")
	purego.RegisterLibFunc(&fnListAppendItem, libHandle, "ratatui_list_append_item")
	purego.RegisterLibFunc(&fnListSetBlockTitle, libHandle, "ratatui_list_set_block_title")
	purego.RegisterLibFunc(&fnListSetSelected, libHandle, "ratatui_list_set_selected")
	purego.RegisterLibFunc(&fnListSetHighlightStyle, libHandle, "ratatui_list_set_highlight_style")
	purego.RegisterLibFunc(&fnListSetHighlightSymbol, libHandle, "ratatui_list_set_highlight_symbol")
}

func registerTableFuncs() {
	purego.RegisterLibFunc(&fnTableNew, libHandle, "ratatui_table_new")
	purego.RegisterLibFunc(&fnTableFree, libHandle, "ratatui_table_free")
	purego.RegisterLibFunc(&fnTableSetHeaders, libHandle, "ratatui_table_set_headers")
	purego.RegisterLibFunc(&fnTableAppendRow, libHandle, "ratatui_table_append_row")
	purego.RegisterLibFunc(&fnTableSetBlockTitle, libHandle, "ratatui_table_set_block_title")
	purego.RegisterLibFunc(&fnTableSetSelected, libHandle, "ratatui_table_set_selected")
	purego.RegisterLibFunc(&fnTableSetRowHighlightStyle, libHandle, "ratatui_table_set_row_highlight_style")
	purego.RegisterLibFunc(&fnTableSetHighlightSymbol, libHandle, "ratatui_table_set_highlight_symbol")
}

func registerGaugeFuncs() {
	purego.RegisterLibFunc(&fnGaugeNew, libHandle, "ratatui_gauge_new")
	purego.RegisterLibFunc(&fnGaugeFree, libHandle, "ratatui_gauge_free")
	purego.RegisterLibFunc(&fnGaugeSetRatio, libHandle, "ratatui_gauge_set_ratio")
	purego.RegisterLibFunc(&fnGaugeSetLabel, libHandle, "ratatui_gauge_set_label")
	purego.RegisterLibFunc(&fnGaugeSetBlockTitle, libHandle, "ratatui_gauge_set_block_title")
}

func registerTabsFuncs() {
	purego.RegisterLibFunc(&fnTabsNew, libHandle, "ratatui_tabs_new")
	purego.RegisterLibFunc(&fnTabsFree, libHandle, "ratatui_tabs_free")
	purego.RegisterLibFunc(&fnTabsSetTitles, libHandle, "ratatui_tabs_set_titles")
	purego.RegisterLibFunc(&fnTabsSetSelected, libHandle, "ratatui_tabs_set_selected")
	purego.RegisterLibFunc(&fnTabsSetBlockTitle, libHandle, "ratatui_tabs_set_block_title")
}

func registerBarChartFuncs() {
	purego.RegisterLibFunc(&fnBarChartNew, libHandle, "ratatui_barchart_new")
	purego.RegisterLibFunc(&fnBarChartFree, libHandle, "ratatui_barchart_free")
	purego.RegisterLibFunc(&fnBarChartSetValues, libHandle, "ratatui_barchart_set_values")
	purego.RegisterLibFunc(&fnBarChartSetLabels, libHandle, "ratatui_barchart_set_labels")
	purego.RegisterLibFunc(&fnBarChartSetBlockTitle, libHandle, "ratatui_barchart_set_block_title")
}

func registerSparklineFuncs() {
	purego.RegisterLibFunc(&fnSparklineNew, libHandle, "ratatui_sparkline_new")
	purego.RegisterLibFunc(&fnSparklineFree, libHandle, "ratatui_sparkline_free")
	purego.RegisterLibFunc(&fnSparklineSetValues, libHandle, "ratatui_sparkline_set_values")
	purego.RegisterLibFunc(&fnSparklineSetBlockTitle, libHandle, "ratatui_sparkline_set_block_title")
}

func registerChartFuncs() {
	purego.RegisterLibFunc(&fnChartNew, libHandle, "ratatui_chart_new")
	purego.RegisterLibFunc(&fnChartFree, libHandle, "ratatui_chart_free")
	purego.RegisterLibFunc(&fnChartAddLine, libHandle, "ratatui_chart_add_line")
	purego.RegisterLibFunc(&fnChartSetAxesTitles, libHandle, "ratatui_chart_set_axes_titles")
	purego.RegisterLibFunc(&fnChartSetBlockTitle, libHandle, "ratatui_chart_set_block_title")
}

func registerScrollbarFuncs() {
	registerOptionalFunc(&fnScrollbarNew, "ratatui_scrollbar_new")
	registerOptionalFunc(&fnScrollbarFree, "ratatui_scrollbar_free")
	registerOptionalFunc(&fnScrollbarConfigure, "ratatui_scrollbar_configure")
	registerOptionalFunc(&fnScrollbarSetBlockTitle, "ratatui_scrollbar_set_block_title")
}

func registerDrawFuncs() {
	purego.RegisterLibFunc(&fnDrawParagraph, libHandle, "ratatui_terminal_draw_paragraph")
	purego.RegisterLibFunc(&fnDrawParagraphIn, libHandle, "ratatui_terminal_draw_paragraph_in")
	purego.RegisterLibFunc(&fnDrawListIn, libHandle, "ratatui_terminal_draw_list_in")
	purego.RegisterLibFunc(&fnDrawTableIn, libHandle, "ratatui_terminal_draw_table_in")
	purego.RegisterLibFunc(&fnDrawGaugeIn, libHandle, "ratatui_terminal_draw_gauge_in")
	purego.RegisterLibFunc(&fnDrawTabsIn, libHandle, "ratatui_terminal_draw_tabs_in")
	purego.RegisterLibFunc(&fnDrawBarChartIn, libHandle, "ratatui_terminal_draw_barchart_in")
	purego.RegisterLibFunc(&fnDrawSparklineIn, libHandle, "ratatui_terminal_draw_sparkline_in")
	purego.RegisterLibFunc(&fnDrawChartIn, libHandle, "ratatui_terminal_draw_chart_in")
	registerOptionalFunc(&fnDrawScrollbarIn, "ratatui_terminal_draw_scrollbar_in")
	purego.RegisterLibFunc(&fnDrawFrame, libHandle, "ratatui_terminal_draw_frame")
}

func registerHeadlessFuncs() {
	purego.RegisterLibFunc(&fnHeadlessParagraph, libHandle, "ratatui_headless_render_paragraph")
	purego.RegisterLibFunc(&fnHeadlessList, libHandle, "ratatui_headless_render_list")
	purego.RegisterLibFunc(&fnHeadlessTable, libHandle, "ratatui_headless_render_table")
	purego.RegisterLibFunc(&fnHeadlessGauge, libHandle, "ratatui_headless_render_gauge")
	purego.RegisterLibFunc(&fnHeadlessTabs, libHandle, "ratatui_headless_render_tabs")
	purego.RegisterLibFunc(&fnHeadlessBarChart, libHandle, "ratatui_headless_render_barchart")
	purego.RegisterLibFunc(&fnHeadlessSparkline, libHandle, "ratatui_headless_render_sparkline")
	purego.RegisterLibFunc(&fnHeadlessChart, libHandle, "ratatui_headless_render_chart")
	registerOptionalFunc(&fnHeadlessScrollbar, "ratatui_headless_render_scrollbar")
	registerOptionalFunc(&fnHeadlessFrame, "ratatui_headless_render_frame")
}

func registerColorFuncs() {
	registerOptionalFunc(&fnColorRGB, "ratatui_color_rgb")
	registerOptionalFunc(&fnColorIndexed, "ratatui_color_indexed")
}

// registerOptionalFunc attempts to register a function, leaving the pointer
// nil when the symbol is absent (older or feature-stripped builds).
func registerOptionalFunc[T any](fn *T, name string) {
	defer func() {
		recover()
	}()
	purego.RegisterLibFunc(fn, libHandle, name)
}

// cString returns a null-terminated byte buffer and its base pointer. The
// buffer must be kept alive (runtime.KeepAlive) across the native call.
func cString(s string) ([]byte, uintptr) {
	b := append([]byte(s), 0)
	return b, uintptr(unsafe.Pointer(&b[0]))
}

// goString copies a null-terminated C string into a Go string.
func goString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	var n int
	for {
		b := *(*byte)(unsafe.Pointer(ptr + uintptr(n)))
		if b == 0 {
			break
		}
		n++
		if n > 1<<24 { // 16MB safety limit
			break
		}
	}
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		buf[i] = *(*byte)(unsafe.Pointer(ptr + uintptr(i)))
	}
	return string(buf)
}

// takeString decodes a native-owned string and frees it.
func takeString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	s := goString(ptr)
	fnStringFree(ptr)
	return s
}
