package ui

import (
	"image/color"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"tubetrans/internal/text"
	"tubetrans/models"
	"tubetrans/services"
	appTheme "tubetrans/ui/theme"
	"tubetrans/ui/widgets"
)

// TranscriptCard shows one TranscriptRecord with its view tabs and the translate action.
type TranscriptCard struct {
	targetLang string
	defaultTab models.ViewTab

	header       *widgets.SectionHeader
	link         *widget.Hyperlink
	playerLink   *widget.Hyperlink
	translateBtn *widget.Button
	copyBtn      *widget.Button
	tabs         *container.AppTabs

	original     *widget.Label
	translated   *widget.Label
	sideOriginal *widget.Label
	sideTrans    *widget.Label

	root fyne.CanvasObject

	// videoID and generation of the record currently shown
	videoID    string
	generation uint64

	OnTranslate func()
	OnCopy      func(text string)
}

// NewTranscriptCard creates an empty, hidden card.
func NewTranscriptCard(targetLang string, defaultTab models.ViewTab) *TranscriptCard {
	return &TranscriptCard{
		targetLang: targetLang,
		defaultTab: defaultTab,
	}
}

func transcriptLabel() *widget.Label {
	l := widget.NewLabel("")
	l.Wrapping = fyne.TextWrapWord
	l.Selectable = true
	return l
}

// Build creates the card's widget tree.
func (c *TranscriptCard) Build() fyne.CanvasObject {
	c.header = widgets.NewSectionHeader("", "")
	c.link = widget.NewHyperlink("", nil)
	c.playerLink = widget.NewHyperlink("Open player", nil)

	c.translateBtn = widget.NewButtonWithIcon(c.translateLabel(), theme.ViewRefreshIcon(), func() {
		if c.OnTranslate != nil {
			c.OnTranslate()
		}
	})
	c.translateBtn.Importance = widget.HighImportance

	c.copyBtn = widget.NewButtonWithIcon("Copy", theme.ContentCopyIcon(), func() {
		if c.OnCopy != nil && c.videoID != "" {
			c.OnCopy(c.currentText())
		}
	})

	c.original = transcriptLabel()
	c.translated = transcriptLabel()
	c.sideOriginal = transcriptLabel()
	c.sideTrans = transcriptLabel()

	c.tabs = container.NewAppTabs(
		container.NewTabItem(models.TabOriginal.Label(c.targetLang), container.NewVScroll(c.original)),
		container.NewTabItem(models.TabTranslated.Label(c.targetLang), container.NewVScroll(c.translated)),
		container.NewTabItem(models.TabSideBySide.Label(c.targetLang), container.NewGridWithColumns(2,
			container.NewVScroll(c.sideOriginal),
			container.NewVScroll(c.sideTrans),
		)),
	)

	th := fyne.CurrentApp().Settings().Theme()
	variant := fyne.CurrentApp().Settings().ThemeVariant()
	bg := canvas.NewRectangle(th.Color(appTheme.ColorNameSurface, variant))
	bg.CornerRadius = th.Size(appTheme.SizeNameCardRadius)

	minHeight := canvas.NewRectangle(color.Transparent)
	minHeight.SetMinSize(fyne.NewSize(0, th.Size(appTheme.SizeNameTranscriptMin)))

	top := container.NewVBox(
		c.header,
		container.NewHBox(c.link, c.playerLink, layout.NewSpacer(), c.copyBtn, c.translateBtn),
	)
	body := container.NewBorder(top, nil, nil, nil, container.NewStack(minHeight, c.tabs))

	c.root = container.NewStack(bg, container.NewPadded(body))
	c.root.Hide()
	return c.root
}

func (c *TranscriptCard) translateLabel() string {
	return "Translate to " + text.GetLanguageName(c.targetLang)
}

// SetTargetLang relabels the translated tab and the translate button.
func (c *TranscriptCard) SetTargetLang(lang string, defaultTab models.ViewTab) {
	c.targetLang = lang
	c.defaultTab = defaultTab
	for i, tab := range models.AllTabs {
		c.tabs.Items[i].Text = tab.Label(lang)
	}
	c.tabs.Refresh()
	c.translateBtn.SetText(c.translateLabel())
}

// parseLink parses a generated YouTube link. A nil result leaves the hyperlink inert.
func parseLink(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		services.LogWarn("Bad link %q: %v", raw, err)
		return nil
	}
	return u
}

// SelectedTab returns the tab currently open.
func (c *TranscriptCard) SelectedTab() models.ViewTab {
	i := c.tabs.SelectedIndex()
	if i < 0 || i >= len(models.AllTabs) {
		return models.TabOriginal
	}
	return models.AllTabs[i]
}

func (c *TranscriptCard) currentText() string {
	if c.original == nil {
		return ""
	}
	switch c.SelectedTab() {
	case models.TabTranslated:
		return c.translated.Text
	case models.TabSideBySide:
		return c.sideOriginal.Text + "\n\n" + c.sideTrans.Text
	default:
		return c.original.Text
	}
}

// Update renders state. The card is hidden unless a record is present.
func (c *TranscriptCard) Update(state models.ViewState) {
	rec := state.Record
	if rec == nil {
		c.videoID = ""
		c.root.Hide()
		return
	}

	fresh := rec.VideoID != c.videoID || state.Generation != c.generation
	c.videoID = rec.VideoID
	c.generation = state.Generation

	c.header.SetText(rec.Title, rec.Author)
	c.link.SetText(rec.WatchURL())
	c.link.SetURL(parseLink(rec.WatchURL()))
	c.playerLink.SetURL(parseLink(rec.EmbedURL()))

	c.original.SetText(models.TabOriginal.Text(*rec))
	c.sideOriginal.SetText(rec.Transcript)
	if rec.HasTranslation() {
		c.translated.SetText(models.TabTranslated.Text(*rec))
		c.sideTrans.SetText(rec.Translation)
	} else {
		c.translated.SetText("")
		c.sideTrans.SetText("")
	}

	for i, tab := range models.AllTabs {
		if models.TabEnabled(tab, rec) {
			c.tabs.EnableIndex(i)
		} else {
			c.tabs.DisableIndex(i)
		}
	}
	want := c.SelectedTab()
	if fresh {
		want = c.defaultTab
	}
	c.tabs.SelectIndex(models.TabIndex(models.ResolveTab(want, rec)))

	switch {
	case state.IsTranslating:
		c.translateBtn.SetText("Translating...")
		c.translateBtn.Disable()
		c.translateBtn.Show()
	case models.CanRequestTranslation(state):
		c.translateBtn.SetText(c.translateLabel())
		c.translateBtn.Enable()
		c.translateBtn.Show()
	default:
		c.translateBtn.Hide()
	}

	c.root.Show()
}
