package ratatui

import (
	"strings"
	"testing"
)

func TestRenderToStringHello(t *testing.T) {
	fake := newFakeEngine()
	defer setEngine(fake)()

	p, err := NewParagraph("Hello")
	if err != nil {
		t.Fatalf("NewParagraph: %v", err)
	}
	defer p.Close()

	out, err := RenderToString(p, 10, 2)
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Hello") {
		t.Errorf("first line = %q, want prefix Hello", lines[0])
	}
	if strings.TrimSpace(lines[1]) != "" {
		t.Errorf("second line = %q, want blank padding", lines[1])
	}
	for i, line := range lines {
		if len([]rune(line)) != 10 {
			t.Errorf("line %d is %d cells wide, want 10", i, len([]rune(line)))
		}
	}
}

func TestRenderToStringDeterministic(t *testing.T) {
	fake := newFakeEngine()
	defer setEngine(fake)()

	p, err := NewParagraph("stable")
	if err != nil {
		t.Fatalf("NewParagraph: %v", err)
	}
	defer p.Close()

	first, err := RenderToString(p, 12, 3)
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	second, err := RenderToString(p, 12, 3)
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	if first != second {
		t.Errorf("repeated renders differ:\n%q\n%q", first, second)
	}
}

func TestRenderToStringClipsOverflow(t *testing.T) {
	fake := newFakeEngine()
	defer setEngine(fake)()

	p, err := NewParagraph("this line is much longer than the surface")
	if err != nil {
		t.Fatalf("NewParagraph: %v", err)
	}
	defer p.Close()
	p.AppendLine("two", NewStyle()).AppendLine("three", NewStyle())

	out, err := RenderToString(p, 8, 2)
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want height clipped to 2", len(lines))
	}
	if lines[0] != "this lin" {
		t.Errorf("first line = %q, want width clipped to 8", lines[0])
	}
}

func TestRenderToStringRejectsNegativeSize(t *testing.T) {
	fake := newFakeEngine()
	defer setEngine(fake)()

	p, err := NewParagraph("x")
	if err != nil {
		t.Fatalf("NewParagraph: %v", err)
	}
	defer p.Close()
	if _, err := RenderToString(p, -1, 2); CodeOf(err) != CodeInvalidArgument {
		t.Errorf("err = %v, want CodeInvalidArgument", err)
	}
}

func TestRenderFrameToString(t *testing.T) {
	fake := newFakeEngine()
	defer setEngine(fake)()

	p, err := NewParagraph("top")
	if err != nil {
		t.Fatalf("NewParagraph: %v", err)
	}
	defer p.Close()

	f := NewFrame().Draw(p, NewRect(0, 0, 6, 1))
	out, err := RenderFrameToString(f, 6, 2)
	if err != nil {
		t.Fatalf("RenderFrameToString: %v", err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "top") {
		t.Errorf("output = %q, want 2 lines starting with top", out)
	}
}
