package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	appTheme "tubetrans/ui/theme"
)

// SectionHeader renders a bold title over a muted subtitle, e.g. video title and channel.
type SectionHeader struct {
	widget.BaseWidget

	Title       string
	Subtitle    string
	ShowDivider bool
}

func NewSectionHeader(title, subtitle string) *SectionHeader {
	h := &SectionHeader{
		Title:       title,
		Subtitle:    subtitle,
		ShowDivider: true,
	}
	h.ExtendBaseWidget(h)
	return h
}

// SetText replaces title and subtitle.
func (h *SectionHeader) SetText(title, subtitle string) {
	h.Title = title
	h.Subtitle = subtitle
	h.Refresh()
}

func (h *SectionHeader) CreateRenderer() fyne.WidgetRenderer {
	title := canvas.NewText(h.Title, color.White)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = 18

	subtitle := canvas.NewText(h.Subtitle, color.Gray{Y: 150})
	subtitle.TextSize = 13

	divider := canvas.NewRectangle(color.Transparent)

	return &sectionHeaderRenderer{
		title:    title,
		subtitle: subtitle,
		divider:  divider,
		widget:   h,
	}
}

type sectionHeaderRenderer struct {
	title    *canvas.Text
	subtitle *canvas.Text
	divider  *canvas.Rectangle
	widget   *SectionHeader
}

const headerPadding = float32(8)

func (r *sectionHeaderRenderer) Destroy() {}

func (r *sectionHeaderRenderer) Layout(size fyne.Size) {
	y := headerPadding
	r.title.Move(fyne.NewPos(headerPadding, y))
	y += r.title.MinSize().Height

	if r.widget.Subtitle != "" {
		y += 2
		r.subtitle.Move(fyne.NewPos(headerPadding, y))
		y += r.subtitle.MinSize().Height
	}

	if r.widget.ShowDivider {
		y += headerPadding
		r.divider.Resize(fyne.NewSize(size.Width-headerPadding*2, 1))
		r.divider.Move(fyne.NewPos(headerPadding, y))
	}
}

func (r *sectionHeaderRenderer) MinSize() fyne.Size {
	h := headerPadding*2 + r.title.MinSize().Height
	if r.widget.Subtitle != "" {
		h += 2 + r.subtitle.MinSize().Height
	}
	if r.widget.ShowDivider {
		h += headerPadding + 1
	}
	// Long video titles are clipped by the window, not by the header.
	return fyne.NewSize(150, h)
}

func (r *sectionHeaderRenderer) Objects() []fyne.CanvasObject {
	objs := []fyne.CanvasObject{r.title}
	if r.widget.Subtitle != "" {
		objs = append(objs, r.subtitle)
	}
	if r.widget.ShowDivider {
		objs = append(objs, r.divider)
	}
	return objs
}

func (r *sectionHeaderRenderer) Refresh() {
	th := fyne.CurrentApp().Settings().Theme()
	variant := fyne.CurrentApp().Settings().ThemeVariant()

	r.title.Text = r.widget.Title
	r.title.Color = th.Color(theme.ColorNameForeground, variant)
	r.title.Refresh()

	r.subtitle.Text = r.widget.Subtitle
	r.subtitle.Color = th.Color(appTheme.ColorNameTextSecondary, variant)
	r.subtitle.Refresh()

	r.divider.FillColor = th.Color(theme.ColorNameSeparator, variant)
	r.divider.Refresh()
}
