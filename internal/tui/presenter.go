package tui

import "sync/atomic"

// toastPresenter reports to the toast machine whether the toast bar is on
// screen. The bar is drawn whenever the program runs, so the exit phase is
// only skipped before start and after quit.
type toastPresenter struct {
	running atomic.Bool
}

func (p *toastPresenter) Rendered() bool {
	return p.running.Load()
}

// AnimateOut is a no-op: the fading snapshot reaches the model through the
// controller listener and the bar is drawn faint for the exit phase.
func (p *toastPresenter) AnimateOut() {}
