// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// notes API.
//
// [NotesAPI] decouples the controller from HTTP. The package ships an
// HTTP/JSON implementation built on resty ([NewHTTPNotesAdapter]) that keeps
// the server's cookies (the INSTANCE binding and the login session) in a jar
// persisted through a [CookieStore].
//
// Non-2xx responses become [*APIError] values wrapping the sentinels in
// errors.go, so callers can use errors.Is for the status class and
// [MessageOf] for the server's human-readable message.
package adapter

import (
	"context"
	"io"
	"net/http"

	"github.com/MKhiriev/go-notes-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notes_api_mock.go -package=mock

// NotesAPI is the set of server calls the view controller makes.
type NotesAPI interface {
	// Status reports whether the cookie jar holds a live session and which
	// server instance the client is bound to. GET /api/status.
	Status(ctx context.Context) (models.StatusResponse, error)

	// Register creates an account. POST /api/register.
	Register(ctx context.Context, creds models.Credentials) (models.MessageResponse, error)

	// Login opens a session; the session cookie lands in the jar.
	// POST /api/login.
	Login(ctx context.Context, creds models.Credentials) (models.MessageResponse, error)

	// Logout closes the session. POST /api/logout.
	Logout(ctx context.Context) (models.MessageResponse, error)

	// Notes lists the user's notes in server order. GET /api/notes.
	Notes(ctx context.Context) ([]models.Note, error)

	// AddNote stores a text note. POST /api/notes.
	AddNote(ctx context.Context, content string) (models.MessageResponse, error)

	// DeleteNote removes a note and its attachment. DELETE /api/notes/{id}.
	DeleteNote(ctx context.Context, id int64) (models.MessageResponse, error)

	// UploadFile sends r as the multipart field "file" named filename.
	// POST /api/notes/upload.
	UploadFile(ctx context.Context, filename string, r io.Reader) (models.MessageResponse, error)

	// Visit asks the server's bot to open url. POST /api/visit.
	Visit(ctx context.Context, url string) (models.VisitResponse, error)

	// Download streams the attachment at link into w.
	Download(ctx context.Context, link string, w io.Writer) error

	// Cookie returns the value of the named cookie the server set for the
	// API host, or "" when absent.
	Cookie(name string) string
}

// CookieStore persists the jar's cookies across runs, keyed by API host.
type CookieStore interface {
	// LoadCookies returns the stored, unexpired cookies for host.
	LoadCookies(ctx context.Context, host string) ([]*http.Cookie, error)

	// SaveCookies upserts cookies for host. Cookies that are expired or
	// carry a negative MaxAge are removed instead.
	SaveCookies(ctx context.Context, host string, cookies []*http.Cookie) error
}
