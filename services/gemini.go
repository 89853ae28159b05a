package services

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"google.golang.org/genai"

	"tubetrans/internal/config"
	"tubetrans/internal/logger"
	"tubetrans/internal/text"
	"tubetrans/models"
)

// GeminiConfig configures the Gemini backend.
type GeminiConfig struct {
	// APIKey is sent with every request. It is not validated locally;
	// a missing key surfaces as a failed request.
	APIKey string

	// Model is the generateContent model name.
	Model string

	// BaseURL overrides the API endpoint. Empty uses the SDK default.
	BaseURL string

	// Temperature is the sampling temperature for translation requests.
	Temperature float64

	// TargetLang is the ISO 639-1 code translations are written in.
	TargetLang string

	// HTTPClient is used for all requests. If nil, the SDK default is used.
	HTTPClient *http.Client
}

// GeminiConfigFrom builds a GeminiConfig from user settings.
func GeminiConfigFrom(cfg *models.Config, httpClient *http.Client) GeminiConfig {
	return GeminiConfig{
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		BaseURL:     cfg.BaseURL,
		Temperature: cfg.Temperature,
		TargetLang:  cfg.TargetLang,
		HTTPClient:  httpClient,
	}
}

var transcriptSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":  {Type: genai.TypeString},
		"author": {Type: genai.TypeString},
		"transcript": {
			Type:        genai.TypeString,
			Description: "The full transcript text or a very detailed point-by-point summary.",
		},
	},
	Required: []string{"title", "author", "transcript"},
}

// GeminiClient implements AIClient on top of the Gemini generateContent API.
type GeminiClient struct {
	cfg GeminiConfig
	log *logger.Logger

	mu     sync.Mutex
	client *genai.Client
}

var _ AIClient = (*GeminiClient)(nil)

// NewGeminiClient creates a client. The underlying SDK client is built on first use.
func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	if cfg.Model == "" {
		cfg.Model = config.DefaultModel
	}
	if cfg.TargetLang == "" {
		cfg.TargetLang = config.DefaultTargetLang
	}
	return &GeminiClient{
		cfg: cfg,
		log: logger.Default().With("backend", "gemini"),
	}
}

func (c *GeminiClient) sdk(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}

	cc := &genai.ClientConfig{
		APIKey:     c.cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.cfg.HTTPClient,
	}
	if c.cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: c.cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	c.client = client
	return client, nil
}

// RequestTranscript asks the model for title, author and transcript of the video at url.
// The reply is constrained by a response schema and grounded with Google Search.
func (c *GeminiClient) RequestTranscript(ctx context.Context, url string) (TranscriptResult, error) {
	const op = "request transcript"

	client, err := c.sdk(ctx)
	if err != nil {
		return TranscriptResult{}, &ServiceError{Op: op, Kind: KindUnavailable, Err: err}
	}

	c.log.Debug("generateContent model=%s (structured, search grounding)", c.cfg.Model)
	resp, err := client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(buildTranscriptPrompt(url)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   transcriptSchema,
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	})
	if err != nil {
		return TranscriptResult{}, &ServiceError{Op: op, Kind: KindUnavailable, Err: err}
	}

	raw := responseText(resp)
	if text.IsBlank(raw) {
		return TranscriptResult{}, &ServiceError{Op: op, Kind: KindEmptyResponse}
	}

	result, err := DecodeTranscriptResult(raw)
	if err != nil {
		return TranscriptResult{}, &ServiceError{Op: op, Kind: KindBadPayload, Err: err}
	}
	return result, nil
}

// RequestTranslation translates body into the configured target language.
// An empty reply is a failure, never an empty translation.
func (c *GeminiClient) RequestTranslation(ctx context.Context, body string) (string, error) {
	const op = "request translation"

	client, err := c.sdk(ctx)
	if err != nil {
		return "", &ServiceError{Op: op, Kind: KindUnavailable, Err: err}
	}

	temperature := float32(c.cfg.Temperature)
	c.log.Debug("generateContent model=%s target=%s temperature=%.2f", c.cfg.Model, c.cfg.TargetLang, temperature)
	resp, err := client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(buildTranslationPrompt(c.cfg.TargetLang, body)), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(buildTranslatorPersona(c.cfg.TargetLang), genai.RoleUser),
		Temperature:       &temperature,
	})
	if err != nil {
		return "", &ServiceError{Op: op, Kind: KindUnavailable, Err: err}
	}

	out := text.Normalize(responseText(resp))
	if out == "" {
		return "", &ServiceError{Op: op, Kind: KindEmptyResponse, Err: errors.New("model returned no text")}
	}
	return out, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	return resp.Text()
}
