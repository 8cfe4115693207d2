package tui

type welcomeItem int

const (
	welcomeLogin welcomeItem = iota
	welcomeRegister
	welcomeQuit
)

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Log in", "Register", "Quit"}}
}

func (m welcomeModel) selected() welcomeItem {
	return welcomeItem(m.idx)
}

func (m welcomeModel) View(instance string) string {
	out := "Instance: " + instance + "\n\nChoose an action:\n\n"
	for i, item := range m.items {
		cursor := "  "
		line := item
		if i == m.idx {
			cursor = "> "
			line = selectedStyle.Render(item)
		}
		out += cursor + line + "\n"
	}
	return renderPage("NOTES", out, "↑/↓: move  enter: select  v: about")
}
