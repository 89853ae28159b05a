package models

import (
	"tubetrans/internal/config"
	"tubetrans/internal/text"
)

// ViewTab selects which text the transcript viewer shows.
type ViewTab string

const (
	TabOriginal   ViewTab = "original"
	TabTranslated ViewTab = "translated"
	TabSideBySide ViewTab = "side_by_side"
)

// AllTabs lists tabs in display order.
var AllTabs = []ViewTab{TabOriginal, TabTranslated, TabSideBySide}

// Label returns the tab caption; the translated tab uses the target language's own name.
func (t ViewTab) Label(targetLang string) string {
	switch t {
	case TabOriginal:
		return "English"
	case TabTranslated:
		return text.GetNativeName(targetLang)
	case TabSideBySide:
		return "Side by Side"
	default:
		return string(t)
	}
}

// AvailableTabs returns the tabs that can be opened for rec.
// Translated views stay disabled until a translation exists.
func AvailableTabs(rec *TranscriptRecord) []ViewTab {
	if rec == nil {
		return nil
	}
	if !rec.HasTranslation() {
		return []ViewTab{TabOriginal}
	}
	return AllTabs
}

// TabEnabled reports whether tab can be opened for rec.
func TabEnabled(tab ViewTab, rec *TranscriptRecord) bool {
	for _, t := range AvailableTabs(rec) {
		if t == tab {
			return true
		}
	}
	return false
}

// ResolveTab returns requested if it is enabled, otherwise TabOriginal.
func ResolveTab(requested ViewTab, rec *TranscriptRecord) ViewTab {
	if TabEnabled(requested, rec) {
		return requested
	}
	return TabOriginal
}

// CanRequestTranslation reports whether the viewer should offer the translate action.
func CanRequestTranslation(s ViewState) bool {
	return s.Status == StatusSuccess &&
		s.Record != nil &&
		s.Record.HasTranscript() &&
		!s.Record.HasTranslation() &&
		!s.IsTranslating
}

// Text returns what tab shows for rec. The translated views fall back to
// config.MsgTranslationFailed when rec carries no translation.
func (t ViewTab) Text(rec TranscriptRecord) string {
	translation := rec.Translation
	if !rec.HasTranslation() {
		translation = config.MsgTranslationFailed
	}
	switch t {
	case TabTranslated:
		return translation
	case TabSideBySide:
		return rec.Transcript + "\n\n" + translation
	default:
		return rec.Transcript
	}
}

// TabIndex returns the position of t in AllTabs, or 0 if unknown.
func TabIndex(t ViewTab) int {
	for i, tab := range AllTabs {
		if tab == t {
			return i
		}
	}
	return 0
}
