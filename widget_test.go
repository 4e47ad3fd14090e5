package ratatui

import "testing"

func TestWidgetCloseExactlyOnce(t *testing.T) {
	fake := newFakeEngine()
	defer setEngine(fake)()

	p, err := NewParagraph("hi")
	if err != nil {
		t.Fatalf("NewParagraph: %v", err)
	}
	h := p.handle
	if err := p.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if got := fake.freed[h]; got != 1 {
		t.Errorf("native free called %d times, want 1", got)
	}
}

func TestMutatorAfterCloseIsNoop(t *testing.T) {
	fake := newFakeEngine()
	defer setEngine(fake)()

	p, err := NewParagraph("line one")
	if err != nil {
		t.Fatalf("NewParagraph: %v", err)
	}
	h := p.handle
	p.Close()
	p.AppendLine("after close", NewStyle())
	if got := len(fake.lines[h]); got != 1 {
		t.Errorf("released handle reached the native boundary: %d lines", got)
	}
}

func TestRenderAfterCloseFails(t *testing.T) {
	fake := newFakeEngine()
	defer setEngine(fake)()

	p, err := NewParagraph("gone")
	if err != nil {
		t.Fatalf("NewParagraph: %v", err)
	}
	p.Close()
	if _, err := RenderToString(p, 5, 1); CodeOf(err) != CodeResourceReleased {
		t.Errorf("RenderToString after Close: err = %v, want CodeResourceReleased", err)
	}
}

func TestMutatorChaining(t *testing.T) {
	fake := newFakeEngine()
	defer setEngine(fake)()

	p, err := NewEmptyParagraph()
	if err != nil {
		t.Fatalf("NewEmptyParagraph: %v", err)
	}
	defer p.Close()
	if got := p.AppendLine("a", NewStyle()).AppendSpan("b", NewStyle().Bold()).LineBreak(); got != p {
		t.Error("mutators must return the receiver for chaining")
	}
	if got := fake.lines[p.handle]; len(got) != 2 || got[0] != "ab" {
		t.Errorf("paragraph content = %q, want [ab, \"\"]", got)
	}
}

func TestAllConstructors(t *testing.T) {
	fake := newFakeEngine()
	defer setEngine(fake)()

	type closer interface{ Close() error }
	tests := []struct {
		name string
		ctor func() (closer, error)
	}{
		{"list", func() (closer, error) { w, err := NewList(); return w, err }},
		{"table", func() (closer, error) { w, err := NewTable(); return w, err }},
		{"gauge", func() (closer, error) { w, err := NewGauge(); return w, err }},
		{"tabs", func() (closer, error) { w, err := NewTabs(); return w, err }},
		{"barchart", func() (closer, error) { w, err := NewBarChart(); return w, err }},
		{"sparkline", func() (closer, error) { w, err := NewSparkline(); return w, err }},
		{"chart", func() (closer, error) { w, err := NewChart(); return w, err }},
		{"scrollbar", func() (closer, error) { w, err := NewScrollbar(); return w, err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := tt.ctor()
			if err != nil {
				t.Fatalf("constructor: %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}
		})
	}
	if len(fake.freed) != len(tests) {
		t.Errorf("%d handles freed, want %d", len(fake.freed), len(tests))
	}
}
