package controller

import (
	"fmt"
	"html"

	"github.com/MKhiriev/go-notes-client/models"
)

const downloadAnchor = `<a href="%s" class="download-button" target="_blank" title="Download %s"><i class="fas fa-download"></i></a>`

// renderNote fills Rendered. Notes with an attachment get an inline download
// control appended; the others render as their content.
func renderNote(n models.Note) models.Note {
	if !n.HasAttachment() {
		n.Rendered = n.Content
		return n
	}

	n.Rendered = n.Content + " " + fmt.Sprintf(downloadAnchor,
		html.EscapeString(n.DownloadLink),
		html.EscapeString(n.Filename),
	)
	return n
}

func renderNotes(notes []models.Note) []models.Note {
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, renderNote(n))
	}
	return out
}
