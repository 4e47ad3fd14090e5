package ratatui

import "time"

// AppState is the run-loop's lifecycle state.
type AppState int

const (
	StateStopped AppState = iota
	StateRunning
	StateStopping
)

func (s AppState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	default:
		return "stopped"
	}
}

const defaultTick = 100 * time.Millisecond

// App is a minimal cooperative scheduler over a terminal session. Each
// iteration renders, waits up to Tick for one input event, and asks
// OnEvent whether to continue. Everything runs on the calling goroutine;
// the only suspension point is the event wait.
//
// Application state lives in the closures: callbacks receive the App and
// capture whatever state the program keeps.
type App struct {
	// Render issues draw calls for the current state. A returned error
	// stops the loop and propagates.
	Render func(a *App) error
	// OnEvent decides whether the loop continues. It sees every event,
	// including the synthesized EventTick on timeout. Returning false
	// requests a stop after the current iteration.
	OnEvent func(a *App, evt Event) bool
	// OnTick, when set, runs each time the tick budget elapses on the
	// monotonic clock, whether or not input arrived in the meantime.
	OnTick func(a *App)
	// OnStart runs once after the session opens, before the first render.
	OnStart func(a *App) error
	// OnStop runs once after the session is closed. err is the error the
	// loop is about to return, nil on a clean stop.
	OnStop func(a *App, err error)

	// Tick is the tick period. Each event wait is bounded by whatever
	// remains of the current period, so a steady event stream cannot
	// starve ticks. Zero means the 100ms default.
	Tick time.Duration
	// ClearEachFrame wipes the screen before every render.
	ClearEachFrame bool

	term  *Terminal
	state AppState
}

// Terminal returns the session driving the loop. Valid from OnStart until
// the loop returns.
func (a *App) Terminal() *Terminal { return a.term }

// State returns the loop's lifecycle state.
func (a *App) State() AppState { return a.state }

// Stop requests a cooperative stop. Takes effect after the current
// iteration; safe to call from any callback.
func (a *App) Stop() {
	if a.state == StateRunning {
		a.state = StateStopping
	}
}

// Run opens a terminal session and drives the loop until a callback
// requests a stop or fails. The session is closed on every exit path,
// including callback errors, before the error propagates.
func (a *App) Run() error {
	e, err := loadEngine()
	if err != nil {
		return err
	}
	term, err := openTerminal(e, true)
	if err != nil {
		return err
	}
	return a.run(term)
}

func (a *App) run(term *Terminal) (err error) {
	a.term = term
	a.state = StateRunning
	defer func() {
		cerr := term.Close()
		if err == nil {
			err = cerr
		}
		a.state = StateStopped
		if a.OnStop != nil {
			a.OnStop(a, err)
		}
	}()

	if a.OnStart != nil {
		if err := a.OnStart(a); err != nil {
			return err
		}
	}
	tick := a.Tick
	if tick <= 0 {
		tick = defaultTick
	}
	lastTick := time.Now()
	for a.state == StateRunning {
		if a.ClearEachFrame {
			if err := term.Clear(); err != nil {
				return err
			}
		}
		if a.Render != nil {
			if err := a.Render(a); err != nil {
				return err
			}
		}
		wait := tick - time.Since(lastTick)
		if wait < 0 {
			wait = 0
		}
		evt, err := term.NextEvent(wait)
		if err != nil {
			return err
		}
		switch {
		case evt.Kind == EventNone:
			lastTick = time.Now()
			evt = Event{Kind: EventTick}
			if a.OnTick != nil {
				a.OnTick(a)
			}
		case time.Since(lastTick) >= tick:
			// A real event arrived but the period elapsed while handling
			// earlier ones; the tick still fires.
			lastTick = time.Now()
			if a.OnTick != nil {
				a.OnTick(a)
			}
		}
		if a.OnEvent != nil && !a.OnEvent(a, evt) {
			a.Stop()
		}
	}
	return nil
}
