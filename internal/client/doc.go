// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires local cookie storage, the notes API adapter, the toast machine,
// the view controller and the terminal UI into a single process lifecycle.
package client
