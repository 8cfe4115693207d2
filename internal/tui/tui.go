// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-client/internal/controller"
	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/internal/toast"
	"github.com/MKhiriev/go-notes-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ObservableController is a [Controller] that reports its state changes.
type ObservableController interface {
	Controller
	SetListener(fn controller.Listener)
}

// TUI is the Bubble Tea front end of the notes client.
type TUI struct {
	ctrl          ObservableController
	machine       *toast.Machine
	buildInfo     models.AppBuildInfo
	serverAddress string
	logger        *logger.Logger
}

// New creates a TUI driving ctrl. machine is the toast machine ctrl shows
// notifications on; the TUI registers itself as its presenter.
func New(ctrl ObservableController, machine *toast.Machine, info models.AppBuildInfo, serverAddress string, log *logger.Logger) *TUI {
	return &TUI{
		ctrl:          ctrl,
		machine:       machine,
		buildInfo:     info,
		serverAddress: serverAddress,
		logger:        log,
	}
}

// Run shows the UI and blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	bridge := newStateBridge()
	presenter := &toastPresenter{}

	t.ctrl.SetListener(bridge.publish)
	defer t.ctrl.SetListener(nil)

	t.machine.SetPresenter(presenter)
	defer t.machine.SetPresenter(nil)

	presenter.running.Store(true)
	defer presenter.running.Store(false)

	model := newAppModel(ctx, t.ctrl, bridge, t.buildInfo, t.serverAddress)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.logger.Info().Str("server", t.serverAddress).Msg("starting terminal UI")
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Msg("terminal UI interrupted")
			return nil
		}
		return fmt.Errorf("run terminal UI: %w", err)
	}
	t.logger.Info().Msg("terminal UI closed")

	return nil
}
