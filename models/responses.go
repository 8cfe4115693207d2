// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VisitStatusURLValid is reported by /api/visit when the URL passed
// validation and the bot was started.
const VisitStatusURLValid = "url_valid"

// StatusResponse is returned by GET /api/status.
type StatusResponse struct {
	LoggedIn bool   `json:"loggedIn"`
	Username string `json:"username"`
	Instance string `json:"instance"`
}

// MessageResponse is the common envelope of mutating endpoints. Error
// responses use the same shape with Success set to false.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NotesResponse is returned by GET /api/notes.
type NotesResponse struct {
	Success bool   `json:"success"`
	Notes   []Note `json:"notes"`
}

// VisitResponse is returned by POST /api/visit.
type VisitResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NoteRequest is the body of POST /api/notes.
type NoteRequest struct {
	Content string `json:"content"`
}

// VisitRequest is the body of POST /api/visit.
type VisitRequest struct {
	URL string `json:"url"`
}
