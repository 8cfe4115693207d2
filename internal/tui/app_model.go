package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-client/internal/app"
	"github.com/MKhiriev/go-notes-client/internal/controller"
	"github.com/MKhiriev/go-notes-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenWelcome screen = iota
	screenAuth
	screenList
	screenDetail
	screenAddNote
	screenUpload
	screenVisit
)

// Controller is the part of the view controller the TUI drives.
type Controller interface {
	State() controller.State
	SetCredentials(username, password string)
	SetDraftNote(text string)
	SetVisitURL(url string)
	ShowNotification(message string, kind models.ToastKind)
	HideToast()
	CheckLoginStatus(ctx context.Context)
	Register(ctx context.Context)
	Login(ctx context.Context)
	Logout(ctx context.Context)
	FetchNotes(ctx context.Context)
	AddNote(ctx context.Context)
	DeleteNote(ctx context.Context, id int64)
	UploadFile(ctx context.Context, path string)
	StartBot(ctx context.Context)
	DownloadAttachment(ctx context.Context, note models.Note) (string, error)
}

type appModel struct {
	ctx    context.Context
	ctrl   Controller
	bridge *stateBridge

	buildInfo     models.AppBuildInfo
	serverAddress string

	state         controller.State
	currentScreen screen

	welcome   welcomeModel
	auth      authFormModel
	list      listModel
	detail    detailModel
	noteArea  textarea.Model
	prompt    textinput.Model
	toastBar  progress.Model
	width     int
	quitting  bool
	showInfo  bool
	confirm   confirmModel
	confirmOn bool
	pending   int64
}

func newAppModel(ctx context.Context, ctrl Controller, bridge *stateBridge, info models.AppBuildInfo, serverAddress string) appModel {
	return appModel{
		ctx:           ctx,
		ctrl:          ctrl,
		bridge:        bridge,
		buildInfo:     info,
		serverAddress: serverAddress,
		state:         ctrl.State(),
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		toastBar:      newToastProgress(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		m.bridge.wait(),
		m.run(m.ctrl.CheckLoginStatus),
	)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.showInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showInfo = false
			}
			return m, nil
		}
		if m.confirmOn {
			return m.updateConfirm(msg)
		}
	case stateMsg:
		m.applyState(msg.state)
		return m, m.bridge.wait()
	case opDoneMsg:
		m.auth.submitting = false
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.list.width = msg.Width
		m.detail.width = msg.Width
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenAuth:
		return m.updateAuth(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenAddNote:
		return m.updateAddNote(msg)
	case screenUpload, screenVisit:
		return m.updatePrompt(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch {
	case m.showInfo:
		body = renderBuildInfoWindow(m.buildInfo, m.serverAddress, m.state.Session.InstanceID)
	case m.currentScreen == screenWelcome:
		body = m.welcome.View(m.state.Session.InstanceID)
	case m.currentScreen == screenAuth:
		body = m.auth.View()
	case m.currentScreen == screenList:
		body = m.list.View(m.state.Session, m.state.Notes)
	case m.currentScreen == screenDetail:
		body = m.detail.View()
	case m.currentScreen == screenAddNote:
		body = renderPage("NEW NOTE", m.noteArea.View(), "ctrl+s: save  esc: cancel")
	case m.currentScreen == screenUpload:
		body = renderPage("UPLOAD FILE", "Path: "+m.prompt.View(), "enter: upload  esc: cancel")
	case m.currentScreen == screenVisit:
		body = renderPage("REPORT URL", "URL:  "+m.prompt.View(), "enter: send  esc: cancel")
	}

	if m.confirmOn {
		body += "\n\n" + m.confirm.View()
	}
	if t := renderToast(m.state.Toast, m.toastBar); t != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", t)
	}

	return appStyle.Render(body)
}

// applyState adopts a controller snapshot and follows session changes.
func (m *appModel) applyState(s controller.State) {
	wasLoggedIn := m.state.Session.LoggedIn
	m.state = s
	m.list = m.list.clamp(len(s.Notes))

	switch {
	case s.Session.LoggedIn && !wasLoggedIn:
		m.currentScreen = screenList
		m.auth.submitting = false
	case !s.Session.LoggedIn && wasLoggedIn:
		m.currentScreen = screenWelcome
		m.confirmOn = false
	}
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirmOn = false
		id := m.pending
		m.currentScreen = screenList
		return m, m.run(func(ctx context.Context) { m.ctrl.DeleteNote(ctx, id) })
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.confirmOn = false
	}
	return m, nil
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.info):
		m.showInfo = true
	case key.Matches(keyMsg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.enter):
		switch m.welcome.selected() {
		case welcomeLogin:
			m.auth = newAuthFormModel(authLogin, m.state.Drafts.Username)
			m.currentScreen = screenAuth
		case welcomeRegister:
			m.auth = newAuthFormModel(authRegister, m.state.Drafts.Username)
			m.currentScreen = screenAuth
		case welcomeQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m appModel) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.auth = m.auth.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.auth = m.auth.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.auth.submitting {
				return m, nil
			}
			m.auth.submitting = true
			m.ctrl.SetCredentials(strings.TrimSpace(m.auth.username()), m.auth.password())
			if m.auth.mode == authRegister {
				return m, m.run(m.ctrl.Register)
			}
			return m, m.run(m.ctrl.Login)
		}
	}

	var cmd tea.Cmd
	m.auth, cmd = m.auth.update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	notes := m.state.Notes
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(notes)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if note, ok := m.list.current(notes); ok {
			m.detail.note = note
			m.currentScreen = screenDetail
		}
	case key.Matches(keyMsg, keys.newItem):
		m.noteArea = newNoteArea(m.state.Drafts.Note)
		m.currentScreen = screenAddNote
		return m, textarea.Blink
	case key.Matches(keyMsg, keys.upload):
		m.prompt = newPromptInput("/path/to/file", "")
		m.currentScreen = screenUpload
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.visit):
		m.prompt = newPromptInput("http://localhost:1337/", m.state.Drafts.VisitURL)
		m.currentScreen = screenVisit
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.refresh):
		return m, m.run(m.ctrl.FetchNotes)
	case key.Matches(keyMsg, keys.dismiss):
		m.ctrl.HideToast()
	case key.Matches(keyMsg, keys.info):
		m.showInfo = true
	case key.Matches(keyMsg, keys.logout):
		return m, m.run(m.ctrl.Logout)
	case key.Matches(keyMsg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	default:
		if note, ok := m.list.current(notes); ok {
			return m.noteAction(keyMsg, note)
		}
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.dismiss):
		m.ctrl.HideToast()
		return m, nil
	}
	return m.noteAction(keyMsg, m.detail.note)
}

// noteAction handles the keys acting on a single note from the list or the
// detail screen.
func (m appModel) noteAction(msg tea.KeyMsg, note models.Note) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.delete):
		if !note.Deletable() {
			m.ctrl.ShowNotification(app.MsgNoteNotDeletable, models.ToastError)
			return m, nil
		}
		m.confirmOn = true
		m.confirm.message = fitText(firstLine(note.Content), 40)
		m.pending = *note.ID
	case key.Matches(msg, keys.save):
		return m, m.run(func(ctx context.Context) {
			_, _ = m.ctrl.DownloadAttachment(ctx, note)
		})
	case key.Matches(msg, keys.copy):
		return m, cmdCopyToClipboard(m.ctrl, note.Content)
	}
	return m, nil
}

func (m appModel) updateAddNote(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.ctrl.SetDraftNote(m.noteArea.Value())
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.submit):
			m.ctrl.SetDraftNote(m.noteArea.Value())
			m.currentScreen = screenList
			return m, m.run(m.ctrl.AddNote)
		}
	}

	var cmd tea.Cmd
	m.noteArea, cmd = m.noteArea.Update(msg)
	return m, cmd
}

func (m appModel) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.currentScreen == screenVisit {
				m.ctrl.SetVisitURL(m.prompt.Value())
			}
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			value := m.prompt.Value()
			current := m.currentScreen
			m.currentScreen = screenList
			if current == screenUpload {
				return m, m.run(func(ctx context.Context) { m.ctrl.UploadFile(ctx, value) })
			}
			m.ctrl.SetVisitURL(value)
			return m, m.run(m.ctrl.StartBot)
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// run executes a controller operation off the event loop. State changes
// arrive separately through the bridge.
func (m appModel) run(op func(ctx context.Context)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		op(ctx)
		return opDoneMsg{}
	}
}

func cmdCopyToClipboard(ctrl Controller, text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			ctrl.ShowNotification(fmt.Sprintf("copy to clipboard: %v", err), models.ToastError)
			return opDoneMsg{}
		}
		ctrl.ShowNotification(app.MsgCopied, models.ToastSuccess)
		return opDoneMsg{}
	}
}
