// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-visible texts the client shows when the server
// did not supply one.
//
// Keeping them in one place ensures the controller and the TUI word the same
// situation the same way.
package app

const (
	// MsgEmptyVisitURL is shown when the visit form is submitted without a
	// URL. No request is sent.
	MsgEmptyVisitURL = "Please enter a valid URL."

	// MsgPageVisited is shown after the bot follow-up delay when the server
	// accepted the URL.
	MsgPageVisited = "Page visited successfully!"

	// MsgReportSent is shown when /api/visit succeeded without a message.
	MsgReportSent = "Report sent successfully!"

	// MsgGenericError is shown when a failure carries no server message
	// (network errors, non-JSON bodies).
	MsgGenericError = "An error occurred."

	// MsgNoteNotDeletable is shown for orphan file entries that have no ID.
	MsgNoteNotDeletable = "This entry has no ID and cannot be deleted."

	// MsgNoAttachment is shown when a download is requested for a plain note.
	MsgNoAttachment = "This note has no attachment."
)

const (
	// MsgFileUnreadable is shown when the file chosen for upload cannot be
	// opened.
	MsgFileUnreadable = "Could not read the selected file."

	// MsgDownloadSaved is the format of the toast shown after an attachment
	// was written to disk. The argument is the destination path.
	MsgDownloadSaved = "Saved %s"

	// MsgCopied is shown after a note was copied to the clipboard.
	MsgCopied = "Note copied to clipboard."
)
