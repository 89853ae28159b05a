package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tubetrans/internal/config"
	"tubetrans/internal/logger"
	"tubetrans/models"
)

// NotificationLevel tells observers how prominently to show a Notification.
type NotificationLevel string

const (
	NotifyInfo  NotificationLevel = "info"
	NotifyError NotificationLevel = "error"
)

// Notification is a transient, non-blocking message for the user.
type Notification struct {
	ID        uuid.UUID
	Level     NotificationLevel
	Message   string
	CreatedAt time.Time
}

// Session owns the ViewState of one viewer and drives it from user actions.
//
// Backend calls run on their own goroutines. Their results are applied only if no newer
// submission happened in the meantime. Observers are invoked one at a time, outside the
// state lock, with the state current at the moment of the call; they must not call back
// into the session synchronously.
type Session struct {
	ID uuid.UUID

	orch *TranscriptOrchestrator
	log  *logger.Logger

	mu       sync.Mutex
	state    models.ViewState
	onChange func(models.ViewState)
	onNotify func(Notification)

	emitMu sync.Mutex
	wg     sync.WaitGroup
}

// NewSession creates an idle session using orch for backend work.
func NewSession(orch *TranscriptOrchestrator) *Session {
	id := uuid.New()
	return &Session{
		ID:    id,
		orch:  orch,
		log:   logger.Default().With("session", id.String()[:8]),
		state: models.NewViewState(),
	}
}

// OnChange registers the state observer, replacing any previous one.
func (s *Session) OnChange(fn func(models.ViewState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// OnNotify registers the notification observer, replacing any previous one.
func (s *Session) OnNotify(fn func(Notification)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onNotify = fn
}

// State returns a snapshot of the current state.
func (s *Session) State() models.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit starts fetching a transcript for url. Blank input is ignored and reports false.
// The session enters Loading before Submit returns.
func (s *Session) Submit(ctx context.Context, url string) bool {
	url = strings.TrimSpace(url)
	if url == "" {
		return false
	}

	s.mu.Lock()
	s.state = s.state.Submit()
	gen := s.state.Generation
	s.mu.Unlock()

	s.log.Debug("submit gen=%d url=%q", gen, url)
	s.emit()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		rec, err := s.orch.FetchTranscript(ctx, url)

		s.mu.Lock()
		var (
			next    models.ViewState
			applied bool
		)
		if err != nil {
			next, applied = s.state.FetchFailed(gen, UserMessage(err))
		} else {
			next, applied = s.state.FetchSucceeded(gen, rec)
		}
		if applied {
			s.state = next
		}
		s.mu.Unlock()

		if !applied {
			s.log.Debug("discarding stale fetch result gen=%d", gen)
			return
		}
		s.emit()
	}()
	return true
}

// Translate requests a translation of the current record. It reports false, and does
// nothing, unless a record is shown and no translation is already running.
// A failed translation leaves the record untouched and raises a notification.
func (s *Session) Translate(ctx context.Context) bool {
	s.mu.Lock()
	next, ok := s.state.BeginTranslate()
	if !ok {
		s.mu.Unlock()
		return false
	}
	s.state = next
	gen := next.Generation
	rec := *next.Record
	s.mu.Unlock()

	s.log.Debug("translate gen=%d video=%s", gen, rec.VideoID)
	s.emit()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		out, err := s.orch.TranslateKeyed(ctx, translationKey(rec.VideoID, gen), rec)

		s.mu.Lock()
		var applied bool
		if err != nil {
			next, applied = s.state.TranslateFailed(gen)
		} else {
			next, applied = s.state.TranslateSucceeded(gen, out)
		}
		if applied {
			s.state = next
		}
		s.mu.Unlock()

		if !applied {
			s.log.Debug("discarding stale translation result gen=%d", gen)
			return
		}
		s.emit()
		if err != nil {
			s.notify(NotifyError, config.MsgTranslateFailed)
		}
	}()
	return true
}

// translationKey identifies the record fetched under gen.
func translationKey(videoID string, gen uint64) string {
	return fmt.Sprintf("%s#%d", videoID, gen)
}

// Wait blocks until every request started so far has been applied or discarded.
func (s *Session) Wait() {
	s.wg.Wait()
}

func (s *Session) emit() {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	fn, state := s.onChange, s.state
	s.mu.Unlock()

	if err := state.Validate(); err != nil {
		s.log.Error("invalid state: %v", err)
	}
	if fn != nil {
		fn(state)
	}
}

func (s *Session) notify(level NotificationLevel, msg string) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	fn := s.onNotify
	s.mu.Unlock()

	n := Notification{
		ID:        uuid.New(),
		Level:     level,
		Message:   msg,
		CreatedAt: time.Now(),
	}
	s.log.Info("notify %s: %s", n.Level, n.Message)
	if fn != nil {
		fn(n)
	}
}
