package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/oukeidos/sortpix/internal/logger"
)

func withPanicGuard(scope string, onPanic func(any), fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered panic", "scope", scope, "panic", fmt.Sprint(r))
			if onPanic != nil {
				onPanic(r)
			}
		}
	}()
	fn()
}

// safeDo wraps event handlers so a panic in one action does not take the
// whole window down. Handlers already run on the event loop, no dispatch
// hop is needed.
func (a *labelerApp) safeDo(scope string, fn func()) {
	withPanicGuard(scope, func(r any) {
		a.handleRecoveredPanic(r)
	}, fn)
}

func (a *labelerApp) handleRecoveredPanic(_ any) {
	if a == nil {
		return
	}
	if fyne.CurrentApp() == nil {
		return
	}
	a.panicNoticeOnce.Do(func() {
		withPanicGuard("panic.notice", nil, func() {
			if a.window == nil {
				return
			}
			dialog.ShowInformation(
				"Unexpected Error",
				"An internal error occurred and the last action was stopped for safety. Please retry. If this repeats, restart the app.",
				a.window,
			)
		})
	})
}
