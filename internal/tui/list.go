package tui

import (
	"fmt"

	"github.com/MKhiriev/go-notes-client/models"
)

type listModel struct {
	idx   int
	width int
}

func (m listModel) current(notes []models.Note) (models.Note, bool) {
	if len(notes) == 0 || m.idx < 0 || m.idx >= len(notes) {
		return models.Note{}, false
	}
	return notes[m.idx], true
}

func (m listModel) clamp(n int) listModel {
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func noteIcon(n models.Note) string {
	switch {
	case n.HasAttachment() && !n.Deletable():
		return "[?]"
	case n.HasAttachment():
		return "[F]"
	default:
		return "[T]"
	}
}

func (m listModel) View(session models.Session, notes []models.Note) string {
	width := m.width - 16
	if width < 20 {
		width = 60
	}

	out := fmt.Sprintf("%s @ %s\n\n", session.Username, session.InstanceID)

	if len(notes) == 0 {
		out += "No notes yet\n"
	}
	for i, n := range notes {
		cursor := "  "
		line := fmt.Sprintf("%s %s", noteIcon(n), fitText(firstLine(n.Content), width))
		if i == m.idx {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		out += cursor + line + "\n"
	}

	return renderPage("NOTES",
		out,
		"n: new  u: upload  b: visit  r: refresh  enter: open  d: delete  s: save file  c: copy  x: dismiss  L: log out  q: quit")
}
