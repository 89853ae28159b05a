package ui

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"tubetrans/internal/clipboard"
	"tubetrans/internal/config"
	"tubetrans/internal/logger"
	"tubetrans/models"
	"tubetrans/services"
	"tubetrans/ui/dialogs"
	"tubetrans/ui/widgets"
)

const toastDuration = 4 * time.Second

// SessionFactory builds a session for the given settings.
type SessionFactory func(cfg *models.Config) *services.Session

// MainUI is the main application UI
type MainUI struct {
	window     fyne.Window
	config     *models.Config
	session    *services.Session
	newSession SessionFactory

	ctx    context.Context
	cancel context.CancelFunc

	// UI Components
	urlEntry    *widget.Entry
	generateBtn *widget.Button
	progress    *widget.ProgressBarInfinite
	errorLabel  *widget.Label
	badge       *widgets.StatusBadge
	toast       *widget.Label
	card        *TranscriptCard

	toastTimer *time.Timer
}

// NewMainUI creates the main application UI
func NewMainUI(w fyne.Window, cfg *models.Config, newSession SessionFactory) *MainUI {
	ctx, cancel := context.WithCancel(context.Background())
	ui := &MainUI{
		window:     w,
		config:     cfg,
		newSession: newSession,
		ctx:        ctx,
		cancel:     cancel,
	}
	w.SetOnClosed(cancel)
	return ui
}

// Build creates the complete UI layout
func (ui *MainUI) Build() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(config.AppTitle, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	title.SizeName = theme.SizeNameHeadingText
	subtitle := widget.NewLabel("AI transcripts and Bangla translations for YouTube videos")

	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), ui.showSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder("https://www.youtube.com/watch?v=...")
	ui.urlEntry.OnSubmitted = func(string) { ui.onGenerate() }

	ui.generateBtn = widget.NewButtonWithIcon("Generate", theme.MediaPlayIcon(), ui.onGenerate)
	ui.generateBtn.Importance = widget.HighImportance

	ui.progress = widget.NewProgressBarInfinite()
	ui.progress.Stop()
	ui.progress.Hide()

	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.Hide()

	ui.toast = widget.NewLabel("")
	ui.toast.Importance = widget.WarningImportance
	ui.toast.Hide()

	ui.badge = widgets.NewStatusBadge(models.NewViewState())

	ui.card = NewTranscriptCard(ui.config.TargetLang, ui.config.DefaultTab)
	ui.card.OnTranslate = ui.onTranslate
	ui.card.OnCopy = ui.onCopy

	header := container.NewBorder(nil, nil, nil, container.NewHBox(ui.badge, settingsBtn),
		container.NewVBox(title, subtitle))
	inputRow := container.NewBorder(nil, nil, nil, ui.generateBtn, ui.urlEntry)

	top := container.NewVBox(
		header,
		widget.NewSeparator(),
		inputRow,
		ui.progress,
		ui.errorLabel,
		ui.toast,
	)

	content := container.NewPadded(container.NewBorder(top, nil, nil, nil, ui.card.Build()))
	ui.attach(ui.newSession(ui.config))
	return content
}

// attach makes s the active session. Events from a replaced session are ignored.
func (ui *MainUI) attach(s *services.Session) {
	if ui.session != nil {
		ui.session.OnChange(nil)
		ui.session.OnNotify(nil)
	}
	ui.session = s

	s.OnChange(func(state models.ViewState) {
		fyne.Do(func() {
			if ui.session == s {
				ui.render(state)
			}
		})
	})
	s.OnNotify(func(n services.Notification) {
		fyne.Do(func() {
			if ui.session == s {
				ui.showToast(n)
			}
		})
	})
	ui.render(s.State())
}

func (ui *MainUI) onGenerate() {
	if !ui.session.Submit(ui.ctx, ui.urlEntry.Text) {
		ui.window.Canvas().Focus(ui.urlEntry)
	}
}

func (ui *MainUI) onTranslate() {
	ui.session.Translate(ui.ctx)
}

func (ui *MainUI) onCopy(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		services.LogWarn("Clipboard unavailable: %v", err)
		ui.window.Clipboard().SetContent(text)
	}
	ui.showToast(services.Notification{Level: services.NotifyInfo, Message: "Copied to clipboard"})
}

func (ui *MainUI) render(state models.ViewState) {
	loading := state.Status == models.StatusLoading

	if loading {
		ui.generateBtn.Disable()
		ui.generateBtn.SetText("Generating...")
		ui.progress.Show()
		ui.progress.Start()
	} else {
		ui.generateBtn.Enable()
		ui.generateBtn.SetText("Generate")
		ui.progress.Stop()
		ui.progress.Hide()
	}

	if state.Status == models.StatusError {
		ui.errorLabel.SetText(state.ErrorMessage)
		ui.errorLabel.Show()
	} else {
		ui.errorLabel.Hide()
	}

	ui.badge.SetState(state)
	ui.card.Update(state)
}

func (ui *MainUI) showToast(n services.Notification) {
	ui.toast.SetText(n.Message)
	ui.toast.Show()

	if n.Level == services.NotifyError {
		fyne.CurrentApp().SendNotification(fyne.NewNotification(config.AppTitle, n.Message))
	}

	if ui.toastTimer != nil {
		ui.toastTimer.Stop()
	}
	msg := n.Message
	ui.toastTimer = time.AfterFunc(toastDuration, func() {
		fyne.Do(func() {
			if ui.toast.Text == msg {
				ui.toast.Hide()
			}
		})
	})
}

// applyLogLevel makes a saved log level effective without a restart.
func applyLogLevel(cfg *models.Config) {
	logger.SetLevel(logger.ParseLevel(cfg.LogLevel))
}

func (ui *MainUI) showSettings() {
	settingsDialog := dialogs.NewSettingsDialog(ui.window, ui.config)
	settingsDialog.OnSave = func(cfg *models.Config) {
		ui.config = cfg
		applyLogLevel(cfg)
		ui.card.SetTargetLang(cfg.TargetLang, cfg.DefaultTab)
		ui.attach(ui.newSession(cfg))
	}
	settingsDialog.Show()
}
