package tui

import (
	"github.com/MKhiriev/go-notes-client/models"
	"github.com/charmbracelet/bubbles/progress"
)

func newToastProgress() progress.Model {
	return progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)
}

// renderToast draws the toast box with its remaining-time bar, or nothing
// when the toast is inactive.
func renderToast(t models.Toast, bar progress.Model) string {
	if !t.Active {
		return ""
	}

	content := t.Kind.Icon() + " " + t.Message + "\n" + bar.ViewAs(t.Progress/100)
	box := toastStyle(t.Kind).Render(content)
	if t.Phase == models.ToastFading {
		return fadingStyle.Render(box)
	}
	return box
}
