package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
)

func newNoteArea(draft string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Write a note"
	ta.SetWidth(60)
	ta.SetHeight(8)
	ta.SetValue(draft)
	ta.Focus()
	return ta
}

func newPromptInput(placeholder, value string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = 60
	in.SetValue(value)
	in.Focus()
	return in
}
