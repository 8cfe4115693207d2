package tui

import "github.com/MKhiriev/go-notes-client/internal/controller"

// stateMsg carries a controller snapshot into the event loop.
type stateMsg struct {
	state controller.State
}

// opDoneMsg marks the end of a controller operation started by a command.
type opDoneMsg struct{}
