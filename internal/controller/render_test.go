package controller

import (
	"testing"

	"github.com/MKhiriev/go-notes-client/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderNote_AppendsDownloadAnchor(t *testing.T) {
	n := renderNote(models.Note{Content: "report", DownloadLink: "/d/1", Filename: "a.txt"})

	assert.Equal(t, "report", n.Content)
	assert.Contains(t, n.Rendered, `href="/d/1"`)
	assert.Contains(t, n.Rendered, `title="Download a.txt"`)
	assert.Contains(t, n.Rendered, `class="download-button"`)
	assert.True(t, len(n.Rendered) > len("report "))
	assert.Equal(t, "report <a", n.Rendered[:len("report <a")])
}

func TestRenderNote_PlainNoteUnmodified(t *testing.T) {
	id := int64(7)
	in := models.Note{ID: &id, Content: "<b>hi</b>"}

	n := renderNote(in)

	assert.Equal(t, in.Content, n.Rendered)
	n.Rendered = ""
	assert.Equal(t, in, n)
}

func TestRenderNote_EscapesAttributes(t *testing.T) {
	n := renderNote(models.Note{Content: "x", DownloadLink: `/d/1" onclick="x`, Filename: `a"><script>.txt`})

	assert.NotContains(t, n.Rendered, `onclick="x"`)
	assert.NotContains(t, n.Rendered, "<script>")
	assert.Contains(t, n.Rendered, "&#34;")
}
