// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package toast implements the transient notification shown after every
// user action.
//
// A [Machine] moves through idle → showing → fading → idle. While showing,
// the remaining-time progress shrinks on every tick and the toast hides
// once its display duration has elapsed. At most one scheduled task is ever
// armed: showing a new toast replaces the current one, and callbacks from
// cancelled tasks are dropped by a generation counter.
package toast
