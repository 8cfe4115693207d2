package tui

import (
	"testing"

	"github.com/MKhiriev/go-notes-client/models"
	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "fits", in: "hello", max: 10, want: "hello"},
		{name: "truncated", in: "hello world", max: 8, want: "hello..."},
		{name: "tiny max", in: "hello", max: 2, want: "he"},
		{name: "multibyte", in: "привет мир", max: 6, want: "при..."},
		{name: "no limit", in: "hello", max: 0, want: "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "title", firstLine("\n  \n title \nbody"))
	assert.Equal(t, "", firstLine("  \n"))
}

func TestListModel_Clamp(t *testing.T) {
	assert.Equal(t, 2, listModel{idx: 5}.clamp(3).idx)
	assert.Equal(t, 0, listModel{idx: 5}.clamp(0).idx)
	assert.Equal(t, 1, listModel{idx: 1}.clamp(3).idx)
}

func TestListModel_ViewMarksNoteKinds(t *testing.T) {
	id := int64(1)
	notes := []models.Note{
		{ID: &id, Content: "plain"},
		{ID: &id, Content: "with file", DownloadLink: "/download/a/f.txt"},
		{Content: "orphan", DownloadLink: "/download/a/o.txt"},
	}

	out := listModel{}.View(models.Session{Username: "alice", InstanceID: "i-1"}, notes)

	assert.Contains(t, out, "alice @ i-1")
	assert.Contains(t, out, "[T] plain")
	assert.Contains(t, out, "[F] with file")
	assert.Contains(t, out, "[?] orphan")
}

func TestRenderToast(t *testing.T) {
	bar := newToastProgress()

	assert.Empty(t, renderToast(models.Toast{Message: "hidden"}, bar))

	out := renderToast(models.Toast{
		Message:  "Note added",
		Kind:     models.ToastSuccess,
		Progress: 50,
		Active:   true,
		Phase:    models.ToastShowing,
	}, bar)
	assert.Contains(t, out, "Note added")
}

func TestToastPresenter_Rendered(t *testing.T) {
	p := &toastPresenter{}
	assert.False(t, p.Rendered())
	p.running.Store(true)
	assert.True(t, p.Rendered())
}
