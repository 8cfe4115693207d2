// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ToastKind selects the colour and icon of a toast notification.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastWarning ToastKind = "warning"
)

// Icon returns the glyph shown next to the toast message. Unknown kinds fall
// back to the success icon.
func (k ToastKind) Icon() string {
	switch k {
	case ToastError:
		return "✖"
	case ToastWarning:
		return "⚠"
	default:
		return "✔"
	}
}

// ToastPhase is the lifecycle position of the toast.
type ToastPhase int

const (
	// ToastIdle means nothing is shown.
	ToastIdle ToastPhase = iota
	// ToastShowing means the toast is visible and counting down.
	ToastShowing
	// ToastFading means the exit animation is playing.
	ToastFading
)

func (p ToastPhase) String() string {
	switch p {
	case ToastShowing:
		return "showing"
	case ToastFading:
		return "fading"
	default:
		return "idle"
	}
}

// Toast is an immutable snapshot of the notification state.
type Toast struct {
	Message  string
	Kind     ToastKind
	Progress float64
	Active   bool
	Phase    ToastPhase
}
