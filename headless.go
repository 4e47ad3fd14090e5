package ratatui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// RenderToString draws one widget into an off-screen surface and returns
// the cell grid as text: exactly height lines, each padded or clipped to
// width display cells. No terminal session is needed, so this works in
// TTY-less environments and gives deterministic output for tests.
func RenderToString(w Widget, width, height int) (string, error) {
	if width < 0 || height < 0 {
		return "", invalidArg("RenderToString", "negative size %dx%d", width, height)
	}
	kind, h, err := w.native("RenderToString")
	if err != nil {
		return "", err
	}
	e, err := loadEngine()
	if err != nil {
		return "", err
	}
	out, err := e.HeadlessRender(kind, h, uint16(width), uint16(height))
	if err != nil {
		return "", nativeErr("RenderToString", err)
	}
	return normalizeGrid(out, width, height), nil
}

// RenderFrameToString draws a batched frame off-screen, same output
// contract as RenderToString.
func RenderFrameToString(f *Frame, width, height int) (string, error) {
	if width < 0 || height < 0 {
		return "", invalidArg("RenderFrameToString", "negative size %dx%d", width, height)
	}
	if err := f.Err(); err != nil {
		return "", err
	}
	e, err := loadEngine()
	if err != nil {
		return "", err
	}
	out, err := e.HeadlessRenderFrame(uint16(width), uint16(height), f.cmds)
	if err != nil {
		return "", nativeErr("RenderFrameToString", err)
	}
	return normalizeGrid(out, width, height), nil
}

// normalizeGrid forces the native text into an exact width x height grid.
// Lines are measured in display cells, so wide runes count as two.
func normalizeGrid(s string, width, height int) string {
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		if runewidth.StringWidth(line) > width {
			line = runewidth.Truncate(line, width, "")
		}
		lines[i] = runewidth.FillRight(line, width)
	}
	return strings.Join(lines, "\n")
}
