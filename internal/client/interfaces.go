// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is a front end that blocks while the user interacts with it.
type UI interface {
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)
