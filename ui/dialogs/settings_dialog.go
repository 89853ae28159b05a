package dialogs

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"tubetrans/internal/config"
	"tubetrans/internal/text"
	"tubetrans/models"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// SettingsDialog edits the persisted settings. The API key is read-only here;
// it only ever comes from the environment.
type SettingsDialog struct {
	window fyne.Window
	config *models.Config

	modelEntry       *widget.Entry
	baseURLEntry     *widget.Entry
	targetLangSelect *widget.Select
	temperature      *widget.Slider
	temperatureLabel *widget.Label
	timeoutEntry     *widget.Entry
	defaultTabSelect *widget.Select
	logLevelSelect   *widget.Select

	OnSave func(config *models.Config)
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(window fyne.Window, config *models.Config) *SettingsDialog {
	return &SettingsDialog{
		window: window,
		config: config,
	}
}

// Show displays the settings dialog
func (d *SettingsDialog) Show() {
	content := container.NewVScroll(d.build())
	content.SetMinSize(fyne.NewSize(460, 420))

	dialog.ShowCustomConfirm("Settings", "Save", "Cancel", content, func(save bool) {
		if !save {
			return
		}
		cfg, err := d.collect()
		if err != nil {
			dialog.ShowError(err, d.window)
			return
		}
		if err := cfg.Save(); err != nil {
			dialog.ShowError(fmt.Errorf("save settings: %w", err), d.window)
			return
		}
		d.config = cfg
		if d.OnSave != nil {
			d.OnSave(cfg)
		}
	}, d.window)
}

func (d *SettingsDialog) build() fyne.CanvasObject {
	d.modelEntry = widget.NewEntry()
	d.modelEntry.SetText(d.config.Model)

	d.baseURLEntry = widget.NewEntry()
	d.baseURLEntry.SetPlaceHolder("default endpoint")
	d.baseURLEntry.SetText(d.config.BaseURL)

	d.targetLangSelect = widget.NewSelect(LanguageOptions(), nil)
	d.targetLangSelect.SetSelected(LanguageOption(d.config.TargetLang))

	d.temperatureLabel = widget.NewLabel("")
	d.temperature = widget.NewSlider(0, 2)
	d.temperature.Step = 0.1
	d.temperature.OnChanged = func(v float64) {
		d.temperatureLabel.SetText(fmt.Sprintf("%.1f", v))
	}
	d.temperature.SetValue(d.config.Temperature)

	d.timeoutEntry = widget.NewEntry()
	d.timeoutEntry.SetText(d.config.HTTPTimeout.String())

	d.defaultTabSelect = widget.NewSelect(tabOptions(d.config.TargetLang), nil)
	d.defaultTabSelect.SetSelectedIndex(models.TabIndex(d.config.DefaultTab))

	d.logLevelSelect = widget.NewSelect(logLevels, nil)
	d.logLevelSelect.SetSelected(d.config.LogLevel)

	keyStatus := widget.NewLabel(apiKeyStatus(d.config.APIKey))
	keyStatus.Wrapping = fyne.TextWrapWord

	return container.NewVBox(
		widget.NewLabel("Gemini"),
		widget.NewForm(
			widget.NewFormItem("Model", d.modelEntry),
			widget.NewFormItem("Base URL", d.baseURLEntry),
			widget.NewFormItem("Temperature", container.NewBorder(nil, nil, nil, d.temperatureLabel, d.temperature)),
			widget.NewFormItem("HTTP timeout", d.timeoutEntry),
		),
		keyStatus,
		widget.NewSeparator(),
		widget.NewLabel("Viewer"),
		widget.NewForm(
			widget.NewFormItem("Translate to", d.targetLangSelect),
			widget.NewFormItem("Default tab", d.defaultTabSelect),
			widget.NewFormItem("Log level", d.logLevelSelect),
		),
		widget.NewLabel("Saved to "+d.config.ConfigPath()),
	)
}

// collect returns a copy of the config with the dialog's values applied.
func (d *SettingsDialog) collect() (*models.Config, error) {
	cfg := *d.config

	cfg.Model = strings.TrimSpace(d.modelEntry.Text)
	cfg.BaseURL = strings.TrimSpace(d.baseURLEntry.Text)
	cfg.Temperature = d.temperature.Value
	cfg.TargetLang = LanguageCode(d.targetLangSelect.Selected)
	cfg.LogLevel = d.logLevelSelect.Selected

	if i := d.defaultTabSelect.SelectedIndex(); i >= 0 && i < len(models.AllTabs) {
		cfg.DefaultTab = models.AllTabs[i]
	}

	timeout, err := time.ParseDuration(strings.TrimSpace(d.timeoutEntry.Text))
	if err != nil {
		return nil, fmt.Errorf("HTTP timeout %q: %w", d.timeoutEntry.Text, err)
	}
	cfg.HTTPTimeout = timeout

	return &cfg, nil
}

func apiKeyStatus(key string) string {
	if key == "" {
		return fmt.Sprintf("API key: not set. Export %s (or %s) or add it to %s.",
			config.APIKeyEnv, config.APIKeyEnvFallback, config.DotEnvFile)
	}
	return "API key: loaded from environment"
}

func tabOptions(targetLang string) []string {
	opts := make([]string, len(models.AllTabs))
	for i, tab := range models.AllTabs {
		opts[i] = tab.Label(targetLang)
	}
	return opts
}

// LanguageOptions lists supported target languages as "Name (code)", sorted by name.
func LanguageOptions() []string {
	opts := make([]string, 0, len(text.LanguageNames))
	for code := range text.LanguageNames {
		opts = append(opts, LanguageOption(code))
	}
	sort.Strings(opts)
	return opts
}

// LanguageOption formats code for the language selector.
func LanguageOption(code string) string {
	return fmt.Sprintf("%s (%s)", text.GetLanguageName(code), code)
}

// LanguageCode extracts the code from a LanguageOption string.
// Unrecognised input yields the default target language.
func LanguageCode(option string) string {
	open := strings.LastIndex(option, "(")
	if open < 0 || !strings.HasSuffix(option, ")") {
		return config.DefaultTargetLang
	}
	code := option[open+1 : len(option)-1]
	if !text.IsSupportedLanguage(code) {
		return config.DefaultTargetLang
	}
	return code
}
