// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the notes
// client. It is populated by merging environment variables, command-line
// flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings of the client runtime itself.
	App App `envPrefix:"APP_"`

	// Adapter holds the notes API address and transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local SQLite database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Toast holds notification timing.
	Toast Toast `envPrefix:"TOAST_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client runtime settings.
type App struct {
	// StartPath is the page the client pretends to be opened on. The login
	// status check only runs for "/" and "/index".
	// Env: APP_START_PATH
	StartPath string `env:"START_PATH"`

	// DownloadDir is where downloaded attachments are written.
	// Env: APP_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`

	// LogFile is the path of the JSON log file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds settings of the outbound HTTP adapter.
type Adapter struct {
	// HTTPAddress is the base URL of the notes API
	// (e.g. "http://localhost:1337").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// InstanceCookie is the name of the cookie binding the client to a
	// server instance.
	// Env: ADAPTER_INSTANCE_COOKIE
	InstanceCookie string `env:"INSTANCE_COOKIE"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite file path (e.g. "notes-client.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Toast holds notification timing.
type Toast struct {
	// Duration is how long a toast stays visible.
	// Env: TOAST_DURATION
	Duration time.Duration `env:"DURATION"`

	// TickInterval is the progress bar decay step.
	// Env: TOAST_TICK_INTERVAL
	TickInterval time.Duration `env:"TICK_INTERVAL"`

	// ExitAnimation is how long the exit animation plays before the toast is
	// removed.
	// Env: TOAST_EXIT_ANIMATION
	ExitAnimation time.Duration `env:"EXIT_ANIMATION"`

	// VisitFollowUp is the delay between the "URL is valid" warning and the
	// "page visited" toast.
	// Env: TOAST_VISIT_FOLLOW_UP
	VisitFollowUp time.Duration `env:"VISIT_FOLLOW_UP"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources. For every field the first non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
