package toast

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-client/models"
)

// Presenter is the front end drawing the toast.
type Presenter interface {
	// Rendered reports whether the toast element is currently on screen.
	// When it is not, hiding skips the exit animation.
	Rendered() bool
	// AnimateOut starts the exit animation. The machine returns to idle
	// after Config.ExitAnimation.
	AnimateOut()
}

// Machine is the toast state machine. It is safe for concurrent use; the
// change listener and the presenter are always called without the internal
// lock held.
type Machine struct {
	cfg   Config
	sched Scheduler

	mu        sync.Mutex
	state     models.Toast
	deadline  time.Time
	task      Task
	gen       uint64
	closed    bool
	presenter Presenter
	onChange  func(models.Toast)
}

// New creates an idle Machine. Zero timings in cfg fall back to the
// defaults.
func New(cfg Config, sched Scheduler) *Machine {
	if sched == nil {
		sched = RealScheduler()
	}
	return &Machine{
		cfg:   cfg.withDefaults(),
		sched: sched,
		state: models.Toast{Phase: models.ToastIdle},
	}
}

// SetPresenter attaches the front end. A nil presenter means nothing is
// rendered.
func (m *Machine) SetPresenter(p Presenter) {
	m.mu.Lock()
	m.presenter = p
	m.mu.Unlock()
}

// OnChange registers fn to receive a snapshot after every state change.
func (m *Machine) OnChange(fn func(models.Toast)) {
	m.mu.Lock()
	m.onChange = fn
	m.mu.Unlock()
}

// State returns the current snapshot.
func (m *Machine) State() models.Toast {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Config returns the effective timings.
func (m *Machine) Config() Config {
	return m.cfg
}

// Show displays message, replacing whatever toast is current. Progress
// restarts at 100 and the toast hides after Config.Duration.
func (m *Machine) Show(message string, kind models.ToastKind) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}

	m.cancelLocked()
	m.state = models.Toast{
		Message:  message,
		Kind:     kind,
		Progress: 100,
		Active:   true,
		Phase:    models.ToastShowing,
	}
	m.deadline = m.sched.Now().Add(m.cfg.Duration)
	m.armLocked(m.cfg.Tick, m.tick)

	m.publish()
}

// Hide starts hiding the current toast. It is a no-op when idle or already
// fading.
func (m *Machine) Hide() {
	m.mu.Lock()
	if m.state.Phase != models.ToastShowing {
		m.mu.Unlock()
		return
	}
	m.hideLocked()
}

// Close cancels the armed task. Later calls to Show are ignored.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.cancelLocked()
}

func (m *Machine) tick(gen uint64) {
	m.mu.Lock()
	if gen != m.gen || m.state.Phase != models.ToastShowing {
		m.mu.Unlock()
		return
	}
	m.task = nil

	m.state.Progress -= m.cfg.step()
	now := m.sched.Now()
	if m.state.Progress <= 0 || !now.Before(m.deadline) {
		m.state.Progress = 0
		m.hideLocked()
		return
	}

	m.armLocked(min(m.cfg.Tick, m.deadline.Sub(now)), m.tick)
	m.publish()
}

func (m *Machine) finishFade(gen uint64) {
	m.mu.Lock()
	if gen != m.gen || m.state.Phase != models.ToastFading {
		m.mu.Unlock()
		return
	}
	m.task = nil
	m.toIdleLocked()
	m.publish()
}

// hideLocked must be called with m.mu held; it releases it.
func (m *Machine) hideLocked() {
	m.cancelLocked()

	p := m.presenter
	if p == nil || !p.Rendered() {
		m.toIdleLocked()
		m.publish()
		return
	}

	m.state.Phase = models.ToastFading
	m.armLocked(m.cfg.ExitAnimation, m.finishFade)
	m.publish()
	p.AnimateOut()
}

func (m *Machine) toIdleLocked() {
	m.state.Active = false
	m.state.Phase = models.ToastIdle
	m.state.Progress = 0
}

func (m *Machine) cancelLocked() {
	if m.task != nil {
		m.task.Stop()
		m.task = nil
	}
	m.gen++
}

func (m *Machine) armLocked(d time.Duration, fn func(gen uint64)) {
	gen := m.gen
	m.task = m.sched.AfterFunc(d, func() { fn(gen) })
}

// publish must be called with m.mu held; it releases it and then notifies
// the listener.
func (m *Machine) publish() {
	snap := m.state
	fn := m.onChange
	m.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}
