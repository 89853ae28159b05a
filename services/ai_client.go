package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tubetrans/internal/config"
	"tubetrans/internal/text"
)

// TranscriptResult is the structured reply of a transcript request.
type TranscriptResult struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	Transcript string `json:"transcript"`
}

// AIClient is the generative backend. Each call makes exactly one outbound request;
// nothing is retried, cached or deduplicated.
type AIClient interface {
	// RequestTranscript asks the model to describe the video at url.
	RequestTranscript(ctx context.Context, url string) (TranscriptResult, error)

	// RequestTranslation translates text into the configured target language.
	RequestTranslation(ctx context.Context, text string) (string, error)
}

const transcriptPrompt = `Analyze this YouTube video URL: %s. Provide the video title, author, and a comprehensive transcript or detailed summary of its contents based on your knowledge or search. Respond in JSON format.`

const translationPrompt = `Translate the following YouTube video transcript summary into natural, fluent %[1]s. Maintain the original meaning and technical terms if appropriate, but ensure it reads well in %[1]s script.

Text: %[2]s`

const translatorPersona = `You are an expert translator specializing in %s to %s translation for technical and educational content.`

func buildTranscriptPrompt(url string) string {
	return fmt.Sprintf(transcriptPrompt, url)
}

func buildTranslationPrompt(targetLang, body string) string {
	return fmt.Sprintf(translationPrompt, text.GetLanguageName(targetLang), body)
}

func buildTranslatorPersona(targetLang string) string {
	return fmt.Sprintf(translatorPersona, text.GetLanguageName(config.DefaultSourceLang), text.GetLanguageName(targetLang))
}

// DecodeTranscriptResult strictly decodes a structured reply.
// All three fields must be present and be strings; a partial object is an error.
func DecodeTranscriptResult(raw string) (TranscriptResult, error) {
	var wire struct {
		Title      *string `json:"title"`
		Author     *string `json:"author"`
		Transcript *string `json:"transcript"`
	}
	body := text.StripCodeFences(raw)
	if body == "" {
		return TranscriptResult{}, errors.New("empty payload")
	}
	if err := json.Unmarshal([]byte(body), &wire); err != nil {
		return TranscriptResult{}, fmt.Errorf("decode payload: %w", err)
	}

	var missing []string
	if wire.Title == nil {
		missing = append(missing, "title")
	}
	if wire.Author == nil {
		missing = append(missing, "author")
	}
	if wire.Transcript == nil {
		missing = append(missing, "transcript")
	}
	if len(missing) > 0 {
		return TranscriptResult{}, fmt.Errorf("payload missing required fields %v", missing)
	}

	return TranscriptResult{
		Title:      *wire.Title,
		Author:     *wire.Author,
		Transcript: *wire.Transcript,
	}, nil
}
