package controller

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-client/internal/adapter"
	"github.com/MKhiriev/go-notes-client/internal/app"
	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/internal/toast"
	"github.com/MKhiriev/go-notes-client/models"
)

// UnknownInstance is the instance ID used until the server names one.
const UnknownInstance = "unknown"

// Config holds controller settings.
type Config struct {
	// StartPath is the page the client was opened on. The login status is
	// only checked for "/" and "/index".
	StartPath string
	// InstanceCookie names the cookie seeding Session.InstanceID.
	InstanceCookie string
	// VisitFollowUp is the delay between the "URL accepted" warning and the
	// "page visited" success toast.
	VisitFollowUp time.Duration
	// DownloadDir is where attachments are saved.
	DownloadDir string
}

// Controller is the view controller. Create it with [New].
type Controller struct {
	api    adapter.NotesAPI
	toast  *toast.Machine
	sched  toast.Scheduler
	cfg    Config
	logger *logger.Logger

	mu       sync.Mutex
	session  models.Session
	notes    []models.Note
	drafts   Drafts
	listener Listener
	followUp toast.Task
	closed   bool
}

// New creates a Controller. The session starts logged out, bound to the
// instance named by the INSTANCE cookie in the API's jar, or
// [UnknownInstance] when the cookie is absent.
func New(api adapter.NotesAPI, machine *toast.Machine, sched toast.Scheduler, cfg Config, log *logger.Logger) *Controller {
	if sched == nil {
		sched = toast.RealScheduler()
	}
	if cfg.InstanceCookie == "" {
		cfg.InstanceCookie = "INSTANCE"
	}

	instance := api.Cookie(cfg.InstanceCookie)
	if instance == "" {
		instance = UnknownInstance
	}

	c := &Controller{
		api:     api,
		toast:   machine,
		sched:   sched,
		cfg:     cfg,
		logger:  log,
		session: models.Session{InstanceID: instance},
	}
	machine.OnChange(func(models.Toast) { c.notify() })

	return c
}

// SetListener registers fn as the change listener, replacing any previous
// one.
func (c *Controller) SetListener(fn Listener) {
	c.mu.Lock()
	c.listener = fn
	c.mu.Unlock()
}

// State returns a snapshot of the controller state.
func (c *Controller) State() State {
	c.mu.Lock()
	s := c.snapshotLocked()
	c.mu.Unlock()

	s.Toast = c.toast.State()
	return s
}

// SetCredentials stores the login form drafts.
func (c *Controller) SetCredentials(username, password string) {
	c.update(func() {
		c.drafts.Username = username
		c.drafts.Password = password
	})
}

// SetDraftNote stores the new-note text.
func (c *Controller) SetDraftNote(text string) {
	c.update(func() { c.drafts.Note = text })
}

// SetVisitURL stores the URL for the visit bot.
func (c *Controller) SetVisitURL(url string) {
	c.update(func() { c.drafts.VisitURL = url })
}

// ShowNotification displays a toast, replacing the current one.
func (c *Controller) ShowNotification(message string, kind models.ToastKind) {
	c.toast.Show(message, kind)
}

// HideToast hides the current toast.
func (c *Controller) HideToast() {
	c.toast.Hide()
}

// CheckLoginStatus asks the server whether the stored session is still
// valid and, if so, restores it and loads the notes. It does nothing unless
// the start path is the root or index page. Failures are only logged.
func (c *Controller) CheckLoginStatus(ctx context.Context) {
	if p := c.cfg.StartPath; p != "/" && p != "/index" {
		return
	}

	ctx, log := c.logger.WithOperation(ctx, "check_login_status")

	status, err := c.api.Status(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("error checking login status")
		return
	}
	if !status.LoggedIn {
		log.Debug().Msg("no active session")
		return
	}

	c.update(func() {
		c.session.LoggedIn = true
		c.session.Username = status.Username
		if status.Instance != "" {
			c.session.InstanceID = status.Instance
		}
	})
	log.Info().Str("username", status.Username).Msg("session restored")

	c.FetchNotes(ctx)
}

// Register creates an account from the credential drafts.
func (c *Controller) Register(ctx context.Context) {
	ctx, log := c.logger.WithOperation(ctx, "register")

	resp, err := c.api.Register(ctx, c.credentials())
	if err != nil {
		c.fail(log, err, app.MsgGenericError)
		return
	}

	c.toast.Show(resp.Message, models.ToastSuccess)
}

// Login opens a session with the credential drafts and loads the notes.
func (c *Controller) Login(ctx context.Context) {
	ctx, log := c.logger.WithOperation(ctx, "login")

	creds := c.credentials()
	resp, err := c.api.Login(ctx, creds)
	if err != nil {
		c.fail(log, err, app.MsgGenericError)
		return
	}

	c.update(func() {
		c.session.LoggedIn = true
		c.session.Username = creds.Username
		if id := c.api.Cookie(c.cfg.InstanceCookie); id != "" {
			c.session.InstanceID = id
		}
	})
	log.Info().Str("username", creds.Username).Msg("logged in")
	c.toast.Show(resp.Message, models.ToastSuccess)

	c.FetchNotes(ctx)
}

// Logout closes the session and forgets the user's data. When the server
// call fails the session is kept and the failure is logged.
func (c *Controller) Logout(ctx context.Context) {
	ctx, log := c.logger.WithOperation(ctx, "logout")

	resp, err := c.api.Logout(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("logout failed")
		return
	}

	c.update(func() {
		c.session.LoggedIn = false
		c.session.Username = ""
		c.drafts.Password = ""
		c.notes = nil
	})
	c.toast.Show(resp.Message, models.ToastSuccess)
}

// FetchNotes replaces the cached note list with the server's. On failure
// the list is left as it was.
func (c *Controller) FetchNotes(ctx context.Context) {
	ctx, log := c.logger.WithOperation(ctx, "fetch_notes")

	notes, err := c.api.Notes(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("error fetching notes")
		return
	}

	rendered := renderNotes(notes)
	c.update(func() { c.notes = rendered })
	log.Debug().Int("count", len(rendered)).Msg("notes fetched")
}

// AddNote stores the new-note draft, clears it and reloads the notes.
func (c *Controller) AddNote(ctx context.Context) {
	ctx, log := c.logger.WithOperation(ctx, "add_note")

	c.mu.Lock()
	content := c.drafts.Note
	c.mu.Unlock()

	resp, err := c.api.AddNote(ctx, content)
	if err != nil {
		c.fail(log, err, app.MsgGenericError)
		return
	}

	c.toast.Show(resp.Message, models.ToastSuccess)
	c.update(func() { c.drafts.Note = "" })

	c.FetchNotes(ctx)
}

// DeleteNote removes the note with id and reloads the notes.
func (c *Controller) DeleteNote(ctx context.Context, id int64) {
	ctx, log := c.logger.WithOperation(ctx, "delete_note")
	log.Debug().Int64("note_id", id).Msg("deleting note")

	resp, err := c.api.DeleteNote(ctx, id)
	if err != nil {
		c.fail(log, err, app.MsgGenericError)
		return
	}

	c.toast.Show(resp.Message, models.ToastSuccess)
	c.FetchNotes(ctx)
}

// UploadFile sends the file at filePath as a new note and reloads the
// notes. An empty path means no file was chosen and does nothing.
func (c *Controller) UploadFile(ctx context.Context, filePath string) {
	filePath = strings.TrimSpace(filePath)
	if filePath == "" {
		return
	}

	ctx, log := c.logger.WithOperation(ctx, "upload_file")

	f, err := os.Open(filePath)
	if err != nil {
		log.Warn().Err(err).Str("path", filePath).Msg("cannot open upload")
		c.toast.Show(app.MsgFileUnreadable, models.ToastError)
		return
	}
	defer f.Close()

	resp, err := c.api.UploadFile(ctx, filepath.Base(filePath), f)
	if err != nil {
		c.fail(log, err, app.MsgGenericError)
		return
	}

	c.toast.Show(resp.Message, models.ToastSuccess)
	c.FetchNotes(ctx)
}

// StartBot asks the server's bot to visit the URL draft. An empty URL is
// rejected without a request; anything else is sent as entered. When the server accepts the URL for a later
// visit, a warning toast is shown now and a success toast after
// Config.VisitFollowUp.
func (c *Controller) StartBot(ctx context.Context) {
	c.mu.Lock()
	target := c.drafts.VisitURL
	c.mu.Unlock()

	if target == "" {
		c.toast.Show(app.MsgEmptyVisitURL, models.ToastError)
		return
	}

	ctx, log := c.logger.WithOperation(ctx, "start_bot")

	resp, err := c.api.Visit(ctx, target)
	if err != nil {
		c.fail(log, err, app.MsgGenericError)
		return
	}

	if resp.Status == models.VisitStatusURLValid {
		c.toast.Show(resp.Message, models.ToastWarning)
		c.scheduleVisitFollowUp()
		return
	}

	msg := resp.Message
	if msg == "" {
		msg = app.MsgReportSent
	}
	c.toast.Show(msg, models.ToastSuccess)
}

// DownloadAttachment saves the note's attachment into Config.DownloadDir
// and returns the written path.
func (c *Controller) DownloadAttachment(ctx context.Context, note models.Note) (string, error) {
	if !note.HasAttachment() {
		c.toast.Show(app.MsgNoAttachment, models.ToastError)
		return "", adapter.ErrNoDownloadLink
	}

	ctx, log := c.logger.WithOperation(ctx, "download_attachment")

	dest := filepath.Join(c.cfg.DownloadDir, attachmentName(note))
	f, err := os.Create(dest)
	if err != nil {
		log.Warn().Err(err).Str("path", dest).Msg("cannot create download file")
		c.toast.Show(app.MsgGenericError, models.ToastError)
		return "", fmt.Errorf("create %s: %w", dest, err)
	}

	err = c.api.Download(ctx, note.DownloadLink, f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(dest)
		c.fail(log, err, app.MsgGenericError)
		return "", err
	}

	log.Info().Str("path", dest).Msg("attachment saved")
	c.toast.Show(fmt.Sprintf(app.MsgDownloadSaved, dest), models.ToastSuccess)
	return dest, nil
}

// Close stops pending timers. The controller must not be used afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	if c.followUp != nil {
		c.followUp.Stop()
		c.followUp = nil
	}
	c.mu.Unlock()

	c.toast.Close()
}

func (c *Controller) scheduleVisitFollowUp() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if c.followUp != nil {
		c.followUp.Stop()
	}

	var task toast.Task
	task = c.sched.AfterFunc(c.cfg.VisitFollowUp, func() {
		c.mu.Lock()
		current := c.followUp == task
		if current {
			c.followUp = nil
		}
		c.mu.Unlock()

		if current {
			c.toast.Show(app.MsgPageVisited, models.ToastSuccess)
		}
	})
	c.followUp = task
}

// fail reports err as an error toast, preferring the server's message.
func (c *Controller) fail(log *logger.Logger, err error, fallback string) {
	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		log.Warn().Err(err).Int("status", apiErr.StatusCode).Msg("request rejected")
	} else {
		log.Err(err).Msg("request failed")
	}

	c.toast.Show(adapter.MessageOf(err, fallback), models.ToastError)
}

func (c *Controller) credentials() models.Credentials {
	c.mu.Lock()
	defer c.mu.Unlock()
	return models.Credentials{Username: c.drafts.Username, Password: c.drafts.Password}
}

// update applies fn under the lock and notifies the listener.
func (c *Controller) update(fn func()) {
	c.mu.Lock()
	fn()
	c.mu.Unlock()

	c.notify()
}

func (c *Controller) notify() {
	c.mu.Lock()
	fn := c.listener
	s := c.snapshotLocked()
	c.mu.Unlock()

	if fn == nil {
		return
	}
	s.Toast = c.toast.State()
	fn(s)
}

func (c *Controller) snapshotLocked() State {
	return State{
		Session: c.session,
		Notes:   c.notes,
		Drafts:  c.drafts,
	}.clone()
}

// attachmentName picks a safe local file name for the note's attachment.
func attachmentName(n models.Note) string {
	name := filepath.Base(n.Filename)
	if name == "." || name == string(filepath.Separator) || n.Filename == "" {
		name = path.Base(n.DownloadLink)
	}
	if name == "." || name == "/" || name == "" {
		name = "attachment"
	}
	return name
}
