package tui

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-notes-client/models"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const downloadButtonClass = "download-button"

// downloadControl draws the download anchor that the controller appended to
// the rendered note as a terminal line. ok is false when the note carries no
// such anchor.
func downloadControl(n models.Note) (line string, ok bool) {
	suffix := strings.TrimSpace(strings.TrimPrefix(n.Rendered, n.Content))
	if suffix == "" {
		return "", false
	}

	doc, err := html.Parse(strings.NewReader(suffix))
	if err != nil {
		return "", false
	}

	for node := range doc.Descendants() {
		if node.Type != html.ElementNode || node.DataAtom != atom.A {
			continue
		}
		if !slices.Contains(strings.Fields(attr(node, "class")), downloadButtonClass) {
			continue
		}

		href := attr(node, "href")
		if href == "" {
			return "", false
		}
		title := attr(node, "title")
		if title == "" {
			title = "Download"
		}
		return "⬇ " + title + "  " + href, true
	}

	return "", false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
