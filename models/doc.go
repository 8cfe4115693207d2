// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the wire types of the notes API and the view types
// shared by the controller, the toast machine and the terminal UI.
package models
