package ratatui

import (
	"testing"
	"time"
)

func newTestTerminal(t *testing.T, fake *fakeEngine) *Terminal {
	t.Helper()
	term, err := openTerminal(fake, false)
	if err != nil {
		t.Fatalf("openTerminal: %v", err)
	}
	return term
}

func TestTerminalCloseIdempotent(t *testing.T) {
	fake := newFakeEngine()
	defer setEngine(fake)()

	term := newTestTerminal(t, fake)
	if err := term.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := term.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if fake.termFreed != 1 {
		t.Errorf("terminal freed %d times, want 1", fake.termFreed)
	}
}

func TestNextEventZeroTimeoutReturnsImmediately(t *testing.T) {
	fake := newFakeEngine()
	defer setEngine(fake)()

	term := newTestTerminal(t, fake)
	defer term.Close()

	start := time.Now()
	evt, err := term.NextEvent(0)
	if err != nil {
		t.Fatalf("NextEvent: %v", err)
	}
	if evt.Kind != EventNone {
		t.Errorf("Kind = %v, want EventNone", evt.Kind)
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("NextEvent(0) blocked for %v", elapsed)
	}
	if fake.lastTimeout != 0 {
		t.Errorf("native timeout = %d, want 0", fake.lastTimeout)
	}
}

func TestNextEventDeliversInjectedKey(t *testing.T) {
	fake := newFakeEngine()
	defer setEngine(fake)()

	term := newTestTerminal(t, fake)
	defer term.Close()

	term.InjectKey(KeyChar, 'q', ModCtrlKey)
	evt, err := term.NextEvent(10 * time.Millisecond)
	if err != nil {
		t.Fatalf("NextEvent: %v", err)
	}
	if evt.Kind != EventKey || evt.Char() != 'q' || !evt.HasCtrl() {
		t.Errorf("event = %+v, want ctrl-q key", evt)
	}
}

func TestDrawNilRectCoversViewport(t *testing.T) {
	fake := newFakeEngine()
	defer setEngine(fake)()

	term := newTestTerminal(t, fake)
	defer term.Close()

	l, err := NewList()
	if err != nil {
		t.Fatalf("NewList: %v", err)
	}
	defer l.Close()
	if err := term.Draw(l, nil); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(fake.renderedRects) != 1 {
		t.Fatalf("%d draws recorded, want 1", len(fake.renderedRects))
	}
	got := fake.renderedRects[0]
	if got.Width != fake.width || got.Height != fake.height {
		t.Errorf("draw rect = %+v, want full %dx%d viewport", got, fake.width, fake.height)
	}
}

func TestDrawRejectsNegativeRect(t *testing.T) {
	fake := newFakeEngine()
	defer setEngine(fake)()

	term := newTestTerminal(t, fake)
	defer term.Close()

	p, err := NewParagraph("x")
	if err != nil {
		t.Fatalf("NewParagraph: %v", err)
	}
	defer p.Close()

	r := NewRect(0, 0, -1, 5)
	err = term.Draw(p, &r)
	if CodeOf(err) != CodeInvalidArgument {
		t.Errorf("Draw with negative rect: err = %v, want CodeInvalidArgument", err)
	}
	if len(fake.renderedRects) != 0 {
		t.Error("invalid rect crossed the native boundary")
	}
}

func TestInjectAfterCloseIsNoop(t *testing.T) {
	fake := newFakeEngine()
	defer setEngine(fake)()

	term := newTestTerminal(t, fake)
	term.Close()

	term.InjectKey(KeyChar, 'q', 0)
	term.InjectResize(10, 10)
	term.InjectMouse(MouseDown, MouseButtonLeft, 1, 1, 0)
	if len(fake.events) != 0 {
		t.Errorf("%d events queued through a closed session, want 0", len(fake.events))
	}
}

func TestDrawAfterCloseFails(t *testing.T) {
	fake := newFakeEngine()
	defer setEngine(fake)()

	term := newTestTerminal(t, fake)
	p, err := NewParagraph("x")
	if err != nil {
		t.Fatalf("NewParagraph: %v", err)
	}
	defer p.Close()

	term.Close()
	if err := term.Draw(p, nil); CodeOf(err) != CodeResourceReleased {
		t.Errorf("Draw after Close: err = %v, want CodeResourceReleased", err)
	}
}

func TestFrameBatchSubmitsOnce(t *testing.T) {
	fake := newFakeEngine()
	defer setEngine(fake)()

	term := newTestTerminal(t, fake)
	defer term.Close()

	p, _ := NewParagraph("a")
	defer p.Close()
	g, _ := NewGauge()
	defer g.Close()

	vp, err := term.Viewport()
	if err != nil {
		t.Fatalf("Viewport: %v", err)
	}
	rows := vp.SplitV(1, 1)
	f := NewFrame().Draw(p, rows[0]).Draw(g, rows[1])
	if f.Len() != 2 {
		t.Fatalf("frame holds %d commands, want 2", f.Len())
	}
	if err := term.Render(f); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(fake.frames) != 1 || len(fake.frames[0]) != 2 {
		t.Errorf("native frame calls = %d, want one batch of 2", len(fake.frames))
	}
}

func TestFrameRecordsBuildError(t *testing.T) {
	fake := newFakeEngine()
	defer setEngine(fake)()

	term := newTestTerminal(t, fake)
	defer term.Close()

	p, _ := NewParagraph("a")
	p.Close()
	f := NewFrame().Draw(p, NewRect(0, 0, 5, 1))
	if CodeOf(f.Err()) != CodeResourceReleased {
		t.Fatalf("Frame.Err = %v, want CodeResourceReleased", f.Err())
	}
	if err := term.Render(f); CodeOf(err) != CodeResourceReleased {
		t.Errorf("Render of broken frame: err = %v, want the recorded error", err)
	}
	if len(fake.frames) != 0 {
		t.Error("broken frame crossed the native boundary")
	}
}
