package services

import (
	"context"
	"sync"
)

// fakeAI is an AIClient whose behaviour is set per test.
type fakeAI struct {
	mu               sync.Mutex
	transcriptCalls  int
	translationCalls int
	urls             []string

	transcriptFn  func(ctx context.Context, url string) (TranscriptResult, error)
	translationFn func(ctx context.Context, text string) (string, error)
}

func newFakeAI() *fakeAI {
	return &fakeAI{
		transcriptFn: func(ctx context.Context, url string) (TranscriptResult, error) {
			return TranscriptResult{Title: "Never Gonna Give You Up", Author: "Rick Astley", Transcript: "We're no strangers to love."}, nil
		},
		translationFn: func(ctx context.Context, text string) (string, error) {
			return "আমরা ভালোবাসার অপরিচিত নই।", nil
		},
	}
}

func (f *fakeAI) RequestTranscript(ctx context.Context, url string) (TranscriptResult, error) {
	f.mu.Lock()
	f.transcriptCalls++
	f.urls = append(f.urls, url)
	fn := f.transcriptFn
	f.mu.Unlock()
	return fn(ctx, url)
}

func (f *fakeAI) RequestTranslation(ctx context.Context, text string) (string, error) {
	f.mu.Lock()
	f.translationCalls++
	fn := f.translationFn
	f.mu.Unlock()
	return fn(ctx, text)
}

func (f *fakeAI) calls() (transcript, translation int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.transcriptCalls, f.translationCalls
}
