// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-client/internal/adapter"
	"github.com/MKhiriev/go-notes-client/internal/config"
	"github.com/MKhiriev/go-notes-client/internal/controller"
	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/internal/store"
	"github.com/MKhiriev/go-notes-client/internal/toast"
	"github.com/MKhiriev/go-notes-client/internal/tui"
	"github.com/MKhiriev/go-notes-client/models"
)

// App owns every long-lived component of the client process.
type App struct {
	storages   *store.ClientStorages
	controller *controller.Controller
	ui         UI
	logger     *logger.Logger
}

// NewApp opens local storage, restores the cookie jar and wires the
// controller to the terminal UI.
func NewApp(ctx context.Context, cfg *config.ClientConfig, info models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	api, err := adapter.NewHTTPNotesAdapter(ctx, cfg.Adapter, storages.CookieRepository, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create notes adapter: %w", err)
	}

	sched := toast.RealScheduler()
	machine := toast.New(toast.Config{
		Duration:      cfg.Toast.Duration,
		Tick:          cfg.Toast.TickInterval,
		ExitAnimation: cfg.Toast.ExitAnimation,
	}, sched)

	ctrl := controller.New(api, machine, sched, controller.Config{
		StartPath:      cfg.App.StartPath,
		InstanceCookie: cfg.Adapter.InstanceCookie,
		VisitFollowUp:  cfg.Toast.VisitFollowUp,
		DownloadDir:    cfg.App.DownloadDir,
	}, log)

	return &App{
		storages:   storages,
		controller: ctrl,
		ui:         tui.New(ctrl, machine, info, cfg.Adapter.HTTPAddress, log),
		logger:     log,
	}, nil
}

// Run blocks until the UI exits, then releases every resource.
func (a *App) Run(ctx context.Context) error {
	runErr := a.ui.Run(ctx)

	a.controller.Close()
	closeErr := a.storages.Close()
	if closeErr != nil {
		a.logger.Err(closeErr).Msg("close local storage")
	}

	return errors.Join(runErr, closeErr)
}
