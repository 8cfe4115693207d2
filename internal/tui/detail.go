package tui

import (
	"fmt"

	"github.com/MKhiriev/go-notes-client/models"
)

type detailModel struct {
	note  models.Note
	width int
}

func (m detailModel) View() string {
	width := m.width - 8
	if width <= 0 {
		width = 70
	}

	id := "-"
	if m.note.ID != nil {
		id = fmt.Sprintf("%d", *m.note.ID)
	}

	out := fmt.Sprintf("ID: %s\n\n", id)
	out += renderMarkdown(m.note.Content, width) + "\n"

	hotKeys := "c: copy  esc: back"
	if m.note.Deletable() {
		hotKeys = "d: delete  " + hotKeys
	}
	if m.note.HasAttachment() {
		out += fmt.Sprintf("\nAttachment: %s\n", valueOrNA(m.note.Filename))
		if control, ok := downloadControl(m.note); ok {
			out += selectedStyle.Render(control) + "\n"
		} else {
			out += fmt.Sprintf("Link:       %s\n", m.note.DownloadLink)
		}
		hotKeys = "s: save file  " + hotKeys
	}

	return renderPage("NOTE", out, hotKeys)
}
