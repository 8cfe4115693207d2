package controller

import (
	"slices"

	"github.com/MKhiriev/go-notes-client/models"
)

// Drafts holds the text the user typed but has not submitted yet.
type Drafts struct {
	Username string
	Password string
	Note     string
	VisitURL string
}

// State is a snapshot of everything a front end renders.
type State struct {
	Session models.Session
	Notes   []models.Note
	Drafts  Drafts
	Toast   models.Toast
}

// Listener is notified with a fresh snapshot after every state change.
type Listener func(State)

func (s State) clone() State {
	s.Notes = slices.Clone(s.Notes)
	return s
}
