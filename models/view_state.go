package models

import (
	"errors"
	"fmt"

	"tubetrans/internal/config"
)

// Status is the request phase of a ViewState.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// ViewState is the session state a presentation layer renders.
//
// Transitions are pure: each method returns a new value and leaves the receiver untouched.
// Generation increases on every Submit; results tagged with an older generation are dropped,
// so a slow response can never overwrite the state of a newer submission.
type ViewState struct {
	Status        Status
	Record        *TranscriptRecord
	ErrorMessage  string
	IsTranslating bool
	Generation    uint64
}

// NewViewState returns the initial idle state.
func NewViewState() ViewState {
	return ViewState{Status: StatusIdle}
}

// Submit starts a new fetch. Any prior record, error or translation in flight is cleared.
func (s ViewState) Submit() ViewState {
	return ViewState{
		Status:     StatusLoading,
		Generation: s.Generation + 1,
	}
}

// FetchSucceeded applies a fetched record issued under gen.
func (s ViewState) FetchSucceeded(gen uint64, rec TranscriptRecord) (ViewState, bool) {
	if gen != s.Generation || s.Status != StatusLoading {
		return s, false
	}
	return ViewState{
		Status:     StatusSuccess,
		Record:     &rec,
		Generation: gen,
	}, true
}

// FetchFailed applies a fetch failure issued under gen.
func (s ViewState) FetchFailed(gen uint64, msg string) (ViewState, bool) {
	if gen != s.Generation || s.Status != StatusLoading {
		return s, false
	}
	if msg == "" {
		msg = config.MsgFetchFailed
	}
	return ViewState{
		Status:       StatusError,
		ErrorMessage: msg,
		Generation:   gen,
	}, true
}

// BeginTranslate marks a translation as in flight. It refuses when not in Success,
// when a translation is already running, or when there is no transcript text.
func (s ViewState) BeginTranslate() (ViewState, bool) {
	if s.Status != StatusSuccess || s.Record == nil || s.IsTranslating || !s.Record.HasTranscript() {
		return s, false
	}
	s.IsTranslating = true
	return s, true
}

// TranslateSucceeded swaps in the translated record issued under gen.
func (s ViewState) TranslateSucceeded(gen uint64, rec TranscriptRecord) (ViewState, bool) {
	if !s.translating(gen) {
		return s, false
	}
	s.Record = &rec
	s.IsTranslating = false
	return s, true
}

// TranslateFailed clears the in-flight flag and keeps the record as it was.
func (s ViewState) TranslateFailed(gen uint64) (ViewState, bool) {
	if !s.translating(gen) {
		return s, false
	}
	s.IsTranslating = false
	return s, true
}

func (s ViewState) translating(gen uint64) bool {
	return gen == s.Generation && s.Status == StatusSuccess && s.IsTranslating
}

// Validate checks the state invariants.
func (s ViewState) Validate() error {
	switch s.Status {
	case StatusIdle, StatusLoading:
		if s.Record != nil || s.ErrorMessage != "" || s.IsTranslating {
			return fmt.Errorf("%s state must not carry record, error or translation flag", s.Status)
		}
	case StatusSuccess:
		if s.Record == nil {
			return errors.New("success state requires a record")
		}
		if s.ErrorMessage != "" {
			return errors.New("success state must not carry an error message")
		}
	case StatusError:
		if s.ErrorMessage == "" {
			return errors.New("error state requires a message")
		}
		if s.Record != nil || s.IsTranslating {
			return errors.New("error state must not carry a record or translation flag")
		}
	default:
		return fmt.Errorf("unknown status %q", s.Status)
	}
	return nil
}

// StatusText returns a short human-readable description of the state.
func (s ViewState) StatusText() string {
	switch s.Status {
	case StatusIdle:
		return "Paste a YouTube link to begin"
	case StatusLoading:
		return "Generating transcript..."
	case StatusSuccess:
		if s.IsTranslating {
			return "Translating..."
		}
		return "Transcript ready"
	case StatusError:
		return "Failed: " + s.ErrorMessage
	default:
		return string(s.Status)
	}
}

// StatusIcon returns an emoji icon representing the state
func (s ViewState) StatusIcon() string {
	switch s.Status {
	case StatusIdle:
		return "⏳"
	case StatusLoading:
		return "🔄"
	case StatusSuccess:
		if s.IsTranslating {
			return "🔄"
		}
		return "✅"
	case StatusError:
		return "❌"
	default:
		return "📄"
	}
}
