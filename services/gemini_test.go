package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type geminiStub struct {
	mu     sync.Mutex
	calls  int
	paths  []string
	bodies []string

	status int
	reply  string
}

func (g *geminiStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	g.mu.Lock()
	g.calls++
	g.paths = append(g.paths, r.URL.Path)
	g.bodies = append(g.bodies, string(body))
	g.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if g.status != 0 && g.status != http.StatusOK {
		w.WriteHeader(g.status)
		io.WriteString(w, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)
		return
	}
	io.WriteString(w, g.reply)
}

func (g *geminiStub) recorded() (calls int, paths, bodies []string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls, append([]string(nil), g.paths...), append([]string(nil), g.bodies...)
}

func candidateReply(text string) string {
	quoted := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(text)
	return `{"candidates":[{"content":{"role":"model","parts":[{"text":"` + quoted + `"}]},"finishReason":"STOP"}]}`
}

func newStubbedGemini(t *testing.T, stub *geminiStub) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	return NewGeminiClient(GeminiConfig{
		APIKey:      "test-key",
		Model:       "gemini-test",
		BaseURL:     srv.URL,
		Temperature: 0.7,
		TargetLang:  "bn",
		HTTPClient:  srv.Client(),
	})
}

func TestNewGeminiClient_Defaults(t *testing.T) {
	c := NewGeminiClient(GeminiConfig{APIKey: "k"})
	assert.Equal(t, "gemini-3-flash-preview", c.cfg.Model)
	assert.Equal(t, "bn", c.cfg.TargetLang)
}

func TestGeminiClient_RequestTranscript(t *testing.T) {
	stub := &geminiStub{reply: candidateReply(`{"title":"Never Gonna Give You Up","author":"Rick Astley","transcript":"We're no strangers to love."}`)}
	c := newStubbedGemini(t, stub)

	got, err := c.RequestTranscript(context.Background(), rickURL)
	require.NoError(t, err)

	assert.Equal(t, TranscriptResult{
		Title:      "Never Gonna Give You Up",
		Author:     "Rick Astley",
		Transcript: "We're no strangers to love.",
	}, got)

	calls, paths, bodies := stub.recorded()
	require.Equal(t, 1, calls)
	assert.Contains(t, paths[0], "gemini-test:generateContent")
	body := bodies[0]
	assert.Contains(t, body, "dQw4w9WgXcQ")
	assert.Contains(t, body, "googleSearch")
	assert.Contains(t, body, "responseSchema")
	assert.Contains(t, body, "application/json")
}

func TestGeminiClient_RequestTranscript_FencedReply(t *testing.T) {
	stub := &geminiStub{reply: candidateReply("```json\n{\"title\":\"T\",\"author\":\"A\",\"transcript\":\"body\"}\n```")}
	c := newStubbedGemini(t, stub)

	got, err := c.RequestTranscript(context.Background(), rickURL)
	require.NoError(t, err)
	assert.Equal(t, "body", got.Transcript)
}

func TestGeminiClient_RequestTranscript_BadPayload(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"not json", "sorry, I cannot watch videos"},
		{"missing field", `{"title":"T","author":"A"}`},
		{"wrong type", `{"title":"T","author":"A","transcript":42}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &geminiStub{reply: candidateReply(tt.reply)}
			c := newStubbedGemini(t, stub)

			_, err := c.RequestTranscript(context.Background(), rickURL)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrService)
			assert.Equal(t, KindBadPayload, ErrorKindOf(err))
		})
	}
}

func TestGeminiClient_RequestTranscript_EmptyReply(t *testing.T) {
	stub := &geminiStub{reply: candidateReply("  ")}
	c := newStubbedGemini(t, stub)

	_, err := c.RequestTranscript(context.Background(), rickURL)
	require.Error(t, err)
	assert.Equal(t, KindEmptyResponse, ErrorKindOf(err))
}

func TestGeminiClient_RequestTranscript_APIErrorNotRetried(t *testing.T) {
	stub := &geminiStub{status: http.StatusBadRequest}
	c := newStubbedGemini(t, stub)

	_, err := c.RequestTranscript(context.Background(), rickURL)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrService)
	assert.Equal(t, KindUnavailable, ErrorKindOf(err))
	calls, _, _ := stub.recorded()
	assert.Equal(t, 1, calls)
}

func TestGeminiClient_RequestTranslation(t *testing.T) {
	stub := &geminiStub{reply: candidateReply("  আমরা ভালোবাসার অপরিচিত নই।\n")}
	c := newStubbedGemini(t, stub)

	got, err := c.RequestTranslation(context.Background(), "We're no strangers to love.")
	require.NoError(t, err)
	assert.Equal(t, "আমরা ভালোবাসার অপরিচিত নই।", got)

	calls, _, bodies := stub.recorded()
	require.Equal(t, 1, calls)
	body := bodies[0]
	assert.Contains(t, body, "We're no strangers to love.")
	assert.Contains(t, body, "systemInstruction")
	assert.Contains(t, body, "expert translator")
	assert.Contains(t, body, "Bangla")
	assert.Contains(t, body, "temperature")
	assert.NotContains(t, body, "googleSearch")
}

func TestGeminiClient_RequestTranslation_EmptyReply(t *testing.T) {
	stub := &geminiStub{reply: candidateReply(" \n ")}
	c := newStubbedGemini(t, stub)

	got, err := c.RequestTranslation(context.Background(), "Hello")
	require.Error(t, err)
	assert.Empty(t, got)
	assert.Equal(t, KindEmptyResponse, ErrorKindOf(err))
}

func TestGeminiClient_RequestTranslation_APIError(t *testing.T) {
	stub := &geminiStub{status: http.StatusBadRequest}
	c := newStubbedGemini(t, stub)

	_, err := c.RequestTranslation(context.Background(), "Hello")
	require.Error(t, err)
	assert.Equal(t, KindUnavailable, ErrorKindOf(err))
	calls, _, _ := stub.recorded()
	assert.Equal(t, 1, calls)
}
