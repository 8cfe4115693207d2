// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package toast_test

import (
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-client/internal/toast"
	"github.com/MKhiriev/go-notes-client/internal/toast/toasttest"
	"github.com/MKhiriev/go-notes-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

var defaultCfg = toast.Config{
	Duration:      5000 * time.Millisecond,
	Tick:          50 * time.Millisecond,
	ExitAnimation: 300 * time.Millisecond,
}

// fakePresenter records AnimateOut calls.
type fakePresenter struct {
	rendered bool
	animated int
}

func (p *fakePresenter) Rendered() bool { return p.rendered }
func (p *fakePresenter) AnimateOut()    { p.animated++ }

// recorder collects published snapshots.
type recorder struct {
	mu    sync.Mutex
	snaps []models.Toast
}

func (r *recorder) record(t models.Toast) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, t)
}

func (r *recorder) phases() []models.ToastPhase {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.ToastPhase
	for _, s := range r.snaps {
		if len(out) == 0 || out[len(out)-1] != s.Phase {
			out = append(out, s.Phase)
		}
	}
	return out
}

func newMachine(t *testing.T, cfg toast.Config) (*toast.Machine, *toasttest.Scheduler, *recorder) {
	t.Helper()
	sched := toasttest.NewScheduler(epoch)
	m := toast.New(cfg, sched)
	rec := &recorder{}
	m.OnChange(rec.record)
	return m, sched, rec
}

// ── Show ────────────────────────────────────────────────────────────────────

func TestShow_StartsShowing(t *testing.T) {
	m, sched, rec := newMachine(t, defaultCfg)

	m.Show("Note added", models.ToastSuccess)

	got := m.State()
	assert.Equal(t, "Note added", got.Message)
	assert.Equal(t, models.ToastSuccess, got.Kind)
	assert.Equal(t, 100.0, got.Progress)
	assert.True(t, got.Active)
	assert.Equal(t, models.ToastShowing, got.Phase)
	assert.Equal(t, 1, sched.Pending())
	assert.Len(t, rec.snaps, 1)
}

func TestTick_DecrementsProgress(t *testing.T) {
	m, sched, _ := newMachine(t, defaultCfg)

	m.Show("x", models.ToastSuccess)
	sched.Advance(50 * time.Millisecond)
	assert.InDelta(t, 99.0, m.State().Progress, 1e-9)

	sched.Advance(2500 * time.Millisecond)
	assert.InDelta(t, 49.0, m.State().Progress, 1e-9)
	assert.Equal(t, 1, sched.Pending())
}

func TestShow_HidesAfterExactlyDuration(t *testing.T) {
	m, sched, rec := newMachine(t, defaultCfg)

	m.Show("x", models.ToastError)
	sched.Advance(4999 * time.Millisecond)
	assert.Equal(t, models.ToastShowing, m.State().Phase)

	sched.Advance(time.Millisecond)
	got := m.State()
	assert.False(t, got.Active)
	assert.Equal(t, models.ToastIdle, got.Phase)
	assert.Equal(t, 0, sched.Pending())
	assert.Equal(t, []models.ToastPhase{models.ToastShowing, models.ToastIdle}, rec.phases())
}

func TestShow_DeadlineWinsWhenTickDoesNotDivideDuration(t *testing.T) {
	m, sched, _ := newMachine(t, toast.Config{Duration: 120 * time.Millisecond, Tick: 50 * time.Millisecond})

	m.Show("x", models.ToastWarning)
	sched.Advance(119 * time.Millisecond)
	assert.Equal(t, models.ToastShowing, m.State().Phase)

	sched.Advance(time.Millisecond)
	assert.Equal(t, models.ToastIdle, m.State().Phase)
}

func TestShow_ReplacesCurrentToast(t *testing.T) {
	m, sched, _ := newMachine(t, defaultCfg)

	m.Show("first", models.ToastSuccess)
	sched.Advance(3000 * time.Millisecond)

	m.Show("second", models.ToastError)
	assert.Equal(t, 1, sched.Pending())
	assert.Equal(t, 100.0, m.State().Progress)

	// the first deadline passes without effect
	sched.Advance(2500 * time.Millisecond)
	got := m.State()
	assert.Equal(t, "second", got.Message)
	assert.Equal(t, models.ToastShowing, got.Phase)

	sched.Advance(2500 * time.Millisecond)
	assert.Equal(t, models.ToastIdle, m.State().Phase)
}

func TestShow_DuringFadeCancelsExit(t *testing.T) {
	m, sched, _ := newMachine(t, defaultCfg)
	m.SetPresenter(&fakePresenter{rendered: true})

	m.Show("first", models.ToastSuccess)
	sched.Advance(5000 * time.Millisecond)
	require.Equal(t, models.ToastFading, m.State().Phase)

	m.Show("second", models.ToastSuccess)
	assert.Equal(t, 1, sched.Pending())

	// the exit timer of the first toast must not close the second
	sched.Advance(300 * time.Millisecond)
	got := m.State()
	assert.True(t, got.Active)
	assert.Equal(t, models.ToastShowing, got.Phase)
	assert.Equal(t, "second", got.Message)
}

// ── Hide ────────────────────────────────────────────────────────────────────

func TestHide_RenderedFadesThenIdles(t *testing.T) {
	m, sched, rec := newMachine(t, defaultCfg)
	p := &fakePresenter{rendered: true}
	m.SetPresenter(p)

	m.Show("x", models.ToastSuccess)
	m.Hide()

	assert.Equal(t, models.ToastFading, m.State().Phase)
	assert.Equal(t, 1, p.animated)
	assert.Equal(t, 1, sched.Pending())

	sched.Advance(299 * time.Millisecond)
	assert.Equal(t, models.ToastFading, m.State().Phase)

	sched.Advance(time.Millisecond)
	assert.Equal(t, models.ToastIdle, m.State().Phase)
	assert.False(t, m.State().Active)
	assert.Equal(t, 0, sched.Pending())
	assert.Equal(t, []models.ToastPhase{models.ToastShowing, models.ToastFading, models.ToastIdle}, rec.phases())
}

func TestHide_NotRenderedIsImmediate(t *testing.T) {
	m, sched, _ := newMachine(t, defaultCfg)
	p := &fakePresenter{rendered: false}
	m.SetPresenter(p)

	m.Show("x", models.ToastSuccess)
	m.Hide()

	assert.Equal(t, models.ToastIdle, m.State().Phase)
	assert.Zero(t, p.animated)
	assert.Equal(t, 0, sched.Pending())
}

func TestHide_NoPresenterIsImmediate(t *testing.T) {
	m, sched, _ := newMachine(t, defaultCfg)

	m.Show("x", models.ToastSuccess)
	m.Hide()

	assert.Equal(t, models.ToastIdle, m.State().Phase)
	assert.Equal(t, 0, sched.Pending())
}

func TestHide_IdleIsNoOp(t *testing.T) {
	m, sched, rec := newMachine(t, defaultCfg)

	m.Hide()

	assert.Equal(t, models.ToastIdle, m.State().Phase)
	assert.Empty(t, rec.snaps)
	assert.Equal(t, 0, sched.Pending())
}

func TestHide_WhileFadingIsNoOp(t *testing.T) {
	m, sched, _ := newMachine(t, defaultCfg)
	p := &fakePresenter{rendered: true}
	m.SetPresenter(p)

	m.Show("x", models.ToastSuccess)
	m.Hide()
	m.Hide()

	assert.Equal(t, 1, p.animated)
	assert.Equal(t, 1, sched.Pending())
}

// ── Stale callbacks ─────────────────────────────────────────────────────────

// leakyScheduler hands out tasks whose Stop never prevents the callback.
type leakyScheduler struct {
	*toasttest.Scheduler
}

type leakyTask struct{}

func (leakyTask) Stop() bool { return false }

func (l leakyScheduler) AfterFunc(d time.Duration, f func()) toast.Task {
	l.Scheduler.AfterFunc(d, f)
	return leakyTask{}
}

func TestStaleTickIsIgnored(t *testing.T) {
	sched := leakyScheduler{toasttest.NewScheduler(epoch)}
	m := toast.New(defaultCfg, sched)

	m.Show("first", models.ToastSuccess)
	m.Show("second", models.ToastSuccess)

	// both callbacks fire; only the current generation counts
	sched.Advance(50 * time.Millisecond)
	assert.InDelta(t, 99.0, m.State().Progress, 1e-9)
}

// ── Close ───────────────────────────────────────────────────────────────────

func TestClose_StopsTaskAndIgnoresShow(t *testing.T) {
	m, sched, _ := newMachine(t, defaultCfg)

	m.Show("x", models.ToastSuccess)
	m.Close()
	assert.Equal(t, 0, sched.Pending())

	m.Show("y", models.ToastSuccess)
	assert.Equal(t, "x", m.State().Message)
	assert.Equal(t, 0, sched.Pending())
}

func TestNew_ZeroConfigUsesDefaults(t *testing.T) {
	m := toast.New(toast.Config{}, nil)

	cfg := m.Config()
	assert.Equal(t, toast.DefaultDuration, cfg.Duration)
	assert.Equal(t, toast.DefaultTick, cfg.Tick)
	assert.Equal(t, toast.DefaultExitAnimation, cfg.ExitAnimation)
}

func TestRealScheduler_HidesToast(t *testing.T) {
	m := toast.New(toast.Config{Duration: 20 * time.Millisecond, Tick: 5 * time.Millisecond, ExitAnimation: time.Millisecond}, toast.RealScheduler())

	m.Show("x", models.ToastSuccess)

	require.Eventually(t, func() bool {
		return m.State().Phase == models.ToastIdle
	}, time.Second, 5*time.Millisecond)
}
