package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tubetrans/internal/config"
	"tubetrans/internal/youtube"
	"tubetrans/models"
	"tubetrans/services"
)

type stubAI struct {
	translation    string
	translationErr error
	transcriptErr  error
	transcriptURLs []string
}

func (s *stubAI) RequestTranscript(ctx context.Context, url string) (services.TranscriptResult, error) {
	s.transcriptURLs = append(s.transcriptURLs, url)
	if s.transcriptErr != nil {
		return services.TranscriptResult{}, s.transcriptErr
	}
	return services.TranscriptResult{Title: "Gangnam Style", Author: "officialpsy", Transcript: "Oppa gangnam style."}, nil
}

func (s *stubAI) RequestTranslation(ctx context.Context, text string) (string, error) {
	return s.translation, s.translationErr
}

func withStubAI(t *testing.T, ai *stubAI) {
	t.Helper()
	prev := newAIClient
	newAIClient = func(*models.Config) services.AIClient { return ai }
	t.Cleanup(func() { newAIClient = prev })
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	fetchTranslate, fetchCopy, fetchJSON, verbose = false, false, false, false
	t.Setenv(config.APIKeyEnv, "test-key")

	var stdout, stderr bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	RootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "config.yaml")))
	err := RootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVideoIDCommand(t *testing.T) {
	out, _, err := execute(t, "videoid", "https://youtu.be/9bZkp7q19f0")
	require.NoError(t, err)
	assert.Equal(t, "9bZkp7q19f0\n", out)
}

func TestVideoIDCommand_Invalid(t *testing.T) {
	_, _, err := execute(t, "videoid", "https://example.com/watch")
	require.Error(t, err)
	assert.ErrorIs(t, err, youtube.ErrInvalidURL)
}

func TestFetchCommand_Text(t *testing.T) {
	ai := &stubAI{}
	withStubAI(t, ai)

	out, _, err := execute(t, "fetch", "https://www.youtube.com/watch?v=9bZkp7q19f0")
	require.NoError(t, err)

	assert.Contains(t, out, "Gangnam Style\n")
	assert.Contains(t, out, "Channel: officialpsy")
	assert.Contains(t, out, "https://www.youtube.com/watch?v=9bZkp7q19f0")
	assert.Contains(t, out, "Oppa gangnam style.")
	assert.NotContains(t, out, "বাংলা")
}

func TestFetchCommand_JSONWithTranslation(t *testing.T) {
	ai := &stubAI{translation: "ওপ্পা গ্যাংনাম স্টাইল।"}
	withStubAI(t, ai)

	out, _, err := execute(t, "fetch", "--json", "--translate", "https://youtu.be/9bZkp7q19f0")
	require.NoError(t, err)

	var rec models.TranscriptRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "9bZkp7q19f0", rec.VideoID)
	assert.Equal(t, "ওপ্পা গ্যাংনাম স্টাইল।", rec.Translation)
	assert.Contains(t, out, `"videoId"`)
}

func TestFetchCommand_TranslationFailure(t *testing.T) {
	ai := &stubAI{translationErr: errors.New("quota")}
	withStubAI(t, ai)

	out, errOut, err := execute(t, "fetch", "--translate", "https://youtu.be/9bZkp7q19f0")
	require.NoError(t, err)

	assert.Contains(t, errOut, config.MsgTranslateFailed)
	assert.Contains(t, out, "Oppa gangnam style.")
	assert.Contains(t, out, "--- বাংলা ---")
	assert.Contains(t, out, config.MsgTranslationFailed)
}

func TestFetchCommand_InvalidURL(t *testing.T) {
	ai := &stubAI{}
	withStubAI(t, ai)

	_, _, err := execute(t, "fetch", "not a link")
	require.Error(t, err)
	assert.Equal(t, config.MsgInvalidURL, err.Error())
	assert.Empty(t, ai.transcriptURLs)
}

func TestFetchCommand_ServiceError(t *testing.T) {
	ai := &stubAI{transcriptErr: &services.ServiceError{Op: "request transcript", Kind: services.KindUnavailable}}
	withStubAI(t, ai)

	_, _, err := execute(t, "fetch", "https://youtu.be/9bZkp7q19f0")
	require.Error(t, err)
	assert.Equal(t, config.MsgFetchFailed, err.Error())
}

func TestWriteRecord(t *testing.T) {
	var buf bytes.Buffer
	rec := models.TranscriptRecord{Title: "T", Author: "A", VideoID: "9bZkp7q19f0", Transcript: " body \n", Translation: "অনুবাদ"}
	writeRecord(&buf, rec, "bn", true)

	want := "T\nChannel: A\nURL:     https://www.youtube.com/watch?v=9bZkp7q19f0\n\nbody\n\n--- বাংলা ---\nঅনুবাদ\n"
	assert.Equal(t, want, buf.String())
}
