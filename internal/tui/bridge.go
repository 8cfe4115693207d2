package tui

import (
	"github.com/MKhiriev/go-notes-client/internal/controller"
	tea "github.com/charmbracelet/bubbletea"
)

// stateBridge hands controller snapshots to the event loop. It never blocks
// the publisher; when the loop is behind, only the newest snapshot is kept.
type stateBridge struct {
	ch chan controller.State
}

func newStateBridge() *stateBridge {
	return &stateBridge{ch: make(chan controller.State, 1)}
}

func (b *stateBridge) publish(s controller.State) {
	for {
		select {
		case b.ch <- s:
			return
		default:
		}

		select {
		case <-b.ch:
		default:
		}
	}
}

// wait returns a command delivering the next snapshot. The model re-arms it
// after every stateMsg.
func (b *stateBridge) wait() tea.Cmd {
	return func() tea.Msg {
		return stateMsg{state: <-b.ch}
	}
}
