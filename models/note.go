// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Note is a single entry of the user's note list as returned by
// GET /api/notes.
//
// Notes created from uploaded files carry Filename and DownloadLink. Files
// found in the user's directory that have no database row are reported with a
// nil ID and cannot be deleted through the API.
type Note struct {
	// ID is the server-side identifier. Nil for orphan file entries.
	ID *int64 `json:"id"`

	// Content is the note text, or a two-line preview for uploaded files.
	Content string `json:"content"`

	// Filename is the sanitized name of the uploaded file, if any.
	Filename string `json:"filename,omitempty"`

	// DownloadLink is the server path the attachment can be fetched from.
	DownloadLink string `json:"download_link,omitempty"`

	// Rendered is Content with an inline download control appended when the
	// note has an attachment. It is filled by the controller and never sent
	// over the wire.
	Rendered string `json:"-"`
}

// HasAttachment reports whether the note links to a downloadable file.
func (n Note) HasAttachment() bool {
	return n.DownloadLink != ""
}

// Deletable reports whether the note has a server ID that DELETE
// /api/notes/{id} accepts.
func (n Note) Deletable() bool {
	return n.ID != nil
}
