// Package ratatui binds the ratatui_ffi native terminal rendering engine.
//
// The native library is loaded lazily on first use and stays resident for
// the life of the process. Widgets are thin proxies over native handles:
// every mutator crosses the boundary immediately and returns the receiver,
// so views are built by chaining. Each widget and each terminal session
// owns its handle exclusively and releases it exactly once via Close.
//
// A minimal program:
//
//	app := &ratatui.App{
//		Render: func(a *ratatui.App) error {
//			p, err := ratatui.NewParagraph("hello, press q")
//			if err != nil {
//				return err
//			}
//			defer p.Close()
//			return a.Terminal().Draw(p, nil)
//		},
//		OnEvent: func(a *ratatui.App, evt ratatui.Event) bool {
//			return evt.Char() != 'q'
//		},
//	}
//	if err := app.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// RenderToString draws any widget into an in-memory surface instead,
// which needs no TTY and is how the package tests itself.
//
// The binding is single-threaded by contract: a terminal session and the
// widgets drawn through it belong to one goroutine.
package ratatui
