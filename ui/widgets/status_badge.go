package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"tubetrans/models"
	appTheme "tubetrans/ui/theme"
)

// StatusBadge shows the request status as a colored dot and a short label.
type StatusBadge struct {
	widget.BaseWidget

	State models.ViewState
}

// NewStatusBadge creates a badge for state.
func NewStatusBadge(state models.ViewState) *StatusBadge {
	b := &StatusBadge{State: state}
	b.ExtendBaseWidget(b)
	return b
}

// SetState updates the badge.
func (b *StatusBadge) SetState(state models.ViewState) {
	b.State = state
	b.Refresh()
}

// BadgeText returns the label shown for state.
func BadgeText(state models.ViewState) string {
	switch state.Status {
	case models.StatusLoading:
		return "Generating"
	case models.StatusSuccess:
		if state.IsTranslating {
			return "Translating"
		}
		if state.Record != nil && state.Record.HasTranslation() {
			return "Translated"
		}
		return "Ready"
	case models.StatusError:
		return "Failed"
	default:
		return "Idle"
	}
}

// BadgeColorName returns the theme color used for state.
func BadgeColorName(state models.ViewState) fyne.ThemeColorName {
	if state.Status == models.StatusSuccess && state.IsTranslating {
		return appTheme.ColorNameStatusLoading
	}
	return appTheme.StatusColorName(state.Status)
}

func (b *StatusBadge) CreateRenderer() fyne.WidgetRenderer {
	dot := canvas.NewCircle(color.Transparent)
	label := canvas.NewText("", color.White)
	label.TextSize = 12

	r := &statusBadgeRenderer{dot: dot, label: label, widget: b}
	r.Refresh()
	return r
}

type statusBadgeRenderer struct {
	dot    *canvas.Circle
	label  *canvas.Text
	widget *StatusBadge
}

const badgeDot = float32(8)

func (r *statusBadgeRenderer) Destroy() {}

func (r *statusBadgeRenderer) Layout(size fyne.Size) {
	r.dot.Resize(fyne.NewSize(badgeDot, badgeDot))
	r.dot.Move(fyne.NewPos(4, (size.Height-badgeDot)/2))
	r.label.Move(fyne.NewPos(badgeDot+10, (size.Height-r.label.MinSize().Height)/2))
}

func (r *statusBadgeRenderer) MinSize() fyne.Size {
	ls := r.label.MinSize()
	return fyne.NewSize(badgeDot+10+ls.Width+4, fyne.Max(16, ls.Height))
}

func (r *statusBadgeRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.dot, r.label}
}

func (r *statusBadgeRenderer) Refresh() {
	th := fyne.CurrentApp().Settings().Theme()
	variant := fyne.CurrentApp().Settings().ThemeVariant()

	r.dot.FillColor = th.Color(BadgeColorName(r.widget.State), variant)
	r.dot.Refresh()

	r.label.Text = BadgeText(r.widget.State)
	r.label.Color = th.Color(theme.ColorNameForeground, variant)
	r.label.Refresh()
}
