package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type authMode int

const (
	authLogin authMode = iota
	authRegister
)

// authFormModel is the username/password form shared by login and
// registration.
type authFormModel struct {
	mode       authMode
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newAuthFormModel(mode authMode, username string) authFormModel {
	user := textinput.New()
	user.Placeholder = "username"
	user.Width = 40
	user.SetValue(username)
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.Width = 40
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '*'

	return authFormModel{mode: mode, inputs: []textinput.Model{user, pass}}
}

func (m authFormModel) username() string { return m.inputs[0].Value() }
func (m authFormModel) password() string { return m.inputs[1].Value() }

func (m authFormModel) focusNext() authFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m authFormModel) focusPrev() authFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m authFormModel) update(msg tea.Msg) (authFormModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m authFormModel) View() string {
	title := "LOG IN"
	action := "enter: log in"
	if m.mode == authRegister {
		title = "REGISTER"
		action = "enter: register"
	}

	out := "Username: [" + m.inputs[0].View() + "]\n"
	out += "Password: [" + m.inputs[1].View() + "]\n"
	if m.submitting {
		out += "\nSending..."
	}
	return renderPage(title, out, "tab: next field  "+action+"  esc: back")
}
