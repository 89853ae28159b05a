package services

import (
	"context"
	"sync"

	"tubetrans/internal/youtube"
	"tubetrans/models"
)

// TranscriptOrchestrator turns user input into transcript records.
// It validates links locally, calls the backend once per operation and
// refuses to start a second translation for a video that is already being translated.
type TranscriptOrchestrator struct {
	client AIClient

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewTranscriptOrchestrator creates an orchestrator backed by client.
func NewTranscriptOrchestrator(client AIClient) *TranscriptOrchestrator {
	return &TranscriptOrchestrator{
		client:   client,
		inFlight: make(map[string]struct{}),
	}
}

// FetchTranscript extracts the video id from url and asks the backend for a transcript.
// An unrecognised link fails with *youtube.InvalidURLError before any backend call.
// The returned record never carries a translation.
func (o *TranscriptOrchestrator) FetchTranscript(ctx context.Context, url string) (models.TranscriptRecord, error) {
	videoID, err := youtube.ExtractVideoID(url)
	if err != nil {
		LogWarn("Rejected link %q", url)
		return models.TranscriptRecord{}, err
	}

	LogInfo("Requesting transcript for %s", videoID)
	result, err := o.client.RequestTranscript(ctx, url)
	if err != nil {
		LogError("Transcript request for %s failed: %v", videoID, err)
		return models.TranscriptRecord{}, err
	}

	LogInfo("Transcript ready for %s: %q by %s (%d chars)", videoID, result.Title, result.Author, len(result.Transcript))
	return models.TranscriptRecord{
		Title:      result.Title,
		Author:     result.Author,
		VideoID:    videoID,
		Transcript: result.Transcript,
	}, nil
}

// Translate attaches a translation of record.Transcript.
// It returns record unchanged, without calling the backend, when the transcript is
// blank or a translation for the same video is already running.
// On failure record is returned unchanged together with the error.
func (o *TranscriptOrchestrator) Translate(ctx context.Context, record models.TranscriptRecord) (models.TranscriptRecord, error) {
	return o.TranslateKeyed(ctx, record.VideoID, record)
}

// TranslateKeyed is Translate with an explicit in-flight key. Callers that fetch the
// same video more than once key each fetched record separately, so a translation
// still running for an earlier fetch does not block the new one.
func (o *TranscriptOrchestrator) TranslateKeyed(ctx context.Context, key string, record models.TranscriptRecord) (models.TranscriptRecord, error) {
	if !record.HasTranscript() {
		LogDebug("Nothing to translate for %s", record.VideoID)
		return record, nil
	}
	if !o.acquire(key) {
		LogDebug("Translation for %s already in flight", key)
		return record, nil
	}
	defer o.release(key)

	LogInfo("Translating transcript for %s (%d chars)", record.VideoID, len(record.Transcript))
	translation, err := o.client.RequestTranslation(ctx, record.Transcript)
	if err != nil {
		LogError("Translation for %s failed: %v", record.VideoID, err)
		return record, err
	}

	LogInfo("Translation ready for %s (%d chars)", record.VideoID, len(translation))
	return record.WithTranslation(translation), nil
}

// InFlight reports whether a translation under key is running.
// Translate uses the video id as key.
func (o *TranscriptOrchestrator) InFlight(key string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.inFlight[key]
	return ok
}

func (o *TranscriptOrchestrator) acquire(key string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.inFlight[key]; ok {
		return false
	}
	o.inFlight[key] = struct{}{}
	return true
}

func (o *TranscriptOrchestrator) release(key string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.inFlight, key)
}
