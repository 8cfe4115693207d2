package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-notes-client/internal/config"
	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/internal/utils"
	"github.com/MKhiriev/go-notes-client/models"
	"github.com/go-resty/resty/v2"
)

type httpNotesAdapter struct {
	client  *utils.HTTPClient
	baseURL *url.URL
	jar     *persistentJar

	logger *logger.Logger
}

// NewHTTPNotesAdapter constructs the HTTP/JSON implementation of [NotesAPI].
// It normalises cfg.HTTPAddress, restores the cookies saved in store (which
// may be nil for a memory-only jar) and configures the request timeout.
//
// Returns an error if the address is empty or unparsable, or the stored
// cookies cannot be loaded.
func NewHTTPNotesAdapter(ctx context.Context, cfg config.ClientAdapter, store CookieStore, log *logger.Logger) (NotesAPI, error) {
	rawBase, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	base, err := url.Parse(rawBase)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	jar, err := newPersistentJar(ctx, base, store, log)
	if err != nil {
		return nil, err
	}

	client := utils.NewHTTPClient(rawBase, cfg.RequestTimeout, jar)
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Str("trace_id", resp.Request.Header.Get(utils.TraceIDHeader)).
			Int("status", resp.StatusCode()).
			Dur("took", resp.Time()).
			Msg("api call")
		return nil
	})

	return &httpNotesAdapter{client: client, baseURL: base, jar: jar, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Status implements [NotesAPI].
func (h *httpNotesAdapter) Status(ctx context.Context) (models.StatusResponse, error) {
	var status models.StatusResponse

	resp, err := h.client.R().SetContext(ctx).Get("/api/status")
	if err != nil {
		return status, fmt.Errorf("status request: %w", err)
	}
	if err = decode(resp, &status); err != nil {
		return status, err
	}

	return status, nil
}

// Register implements [NotesAPI].
func (h *httpNotesAdapter) Register(ctx context.Context, creds models.Credentials) (models.MessageResponse, error) {
	return h.postMessage(ctx, "/api/register", creds, "register")
}

// Login implements [NotesAPI]. The session cookie set by the server is
// kept by the jar; nothing else is returned besides the message.
func (h *httpNotesAdapter) Login(ctx context.Context, creds models.Credentials) (models.MessageResponse, error) {
	return h.postMessage(ctx, "/api/login", creds, "login")
}

// Logout implements [NotesAPI].
func (h *httpNotesAdapter) Logout(ctx context.Context) (models.MessageResponse, error) {
	return h.postMessage(ctx, "/api/logout", nil, "logout")
}

// Notes implements [NotesAPI].
func (h *httpNotesAdapter) Notes(ctx context.Context) ([]models.Note, error) {
	var notes models.NotesResponse

	resp, err := h.client.R().SetContext(ctx).Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("notes request: %w", err)
	}
	if err = decode(resp, &notes); err != nil {
		return nil, err
	}

	return notes.Notes, nil
}

// AddNote implements [NotesAPI].
func (h *httpNotesAdapter) AddNote(ctx context.Context, content string) (models.MessageResponse, error) {
	return h.postMessage(ctx, "/api/notes", models.NoteRequest{Content: content}, "add note")
}

// DeleteNote implements [NotesAPI].
func (h *httpNotesAdapter) DeleteNote(ctx context.Context, id int64) (models.MessageResponse, error) {
	var msg models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/api/notes/" + strconv.FormatInt(id, 10))
	if err != nil {
		return msg, fmt.Errorf("delete note request: %w", err)
	}
	if err = decode(resp, &msg); err != nil {
		return msg, err
	}

	return msg, nil
}

// UploadFile implements [NotesAPI]. resty builds the multipart body and its
// boundary header.
func (h *httpNotesAdapter) UploadFile(ctx context.Context, filename string, r io.Reader) (models.MessageResponse, error) {
	var msg models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader("file", filename, r).
		Post("/api/notes/upload")
	if err != nil {
		return msg, fmt.Errorf("upload request: %w", err)
	}
	if err = decode(resp, &msg); err != nil {
		return msg, err
	}

	return msg, nil
}

// Visit implements [NotesAPI].
func (h *httpNotesAdapter) Visit(ctx context.Context, target string) (models.VisitResponse, error) {
	var visit models.VisitResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.VisitRequest{URL: target}).
		Post("/api/visit")
	if err != nil {
		return visit, fmt.Errorf("visit request: %w", err)
	}
	if err = decode(resp, &visit); err != nil {
		return visit, err
	}

	return visit, nil
}

// Download implements [NotesAPI]. link is resolved against the base URL, so
// both server paths and absolute URLs on the API host work.
func (h *httpNotesAdapter) Download(ctx context.Context, link string, w io.Writer) error {
	if strings.TrimSpace(link) == "" {
		return ErrNoDownloadLink
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(link)
	if err != nil {
		return fmt.Errorf("download request: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(body, 64<<10))
		return &APIError{StatusCode: resp.StatusCode(), Message: errorMessage(payload), kind: statusKind(resp.StatusCode())}
	}

	if _, err = io.Copy(w, body); err != nil {
		return fmt.Errorf("write download: %w", err)
	}

	return nil
}

// Cookie implements [NotesAPI].
func (h *httpNotesAdapter) Cookie(name string) string {
	for _, c := range h.jar.Cookies(h.baseURL) {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func (h *httpNotesAdapter) postMessage(ctx context.Context, path string, body any, op string) (models.MessageResponse, error) {
	var msg models.MessageResponse

	req := h.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return msg, fmt.Errorf("%s request: %w", op, err)
	}
	if err = decode(resp, &msg); err != nil {
		return msg, err
	}

	return msg, nil
}

// decode maps non-2xx responses to [*APIError] and unmarshals the body of
// successful ones into out.
func decode(resp *resty.Response, out any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	if len(resp.Body()) == 0 {
		return nil
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", resp.Request.URL, err)
	}

	return nil
}
