// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package controller implements the view controller of the notes client.
//
// A [Controller] owns all UI state: the session, the cached note list, the
// form drafts and the toast. Front ends read it through [Controller.State]
// and change it only by calling operations. Every operation is a blocking
// call that performs at most a handful of API requests, updates the state
// and reports the outcome through a toast. Errors never escape an operation;
// the user re-triggers the action to retry.
//
// A single [Listener] receives a fresh [State] after every change, outside
// of the controller's lock, so it may call back into the controller.
package controller
