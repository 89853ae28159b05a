// Package config provides centralized configuration and constants for the tubetrans application.
package config

import "time"

// App identity
const (
	AppName  = "tubetrans"
	AppTitle = "TubeTrans"
	AppID    = "io.tubetrans.app"
)

// Environment variables. APIKeyEnv is checked first, then APIKeyEnvFallback.
const (
	APIKeyEnv         = "API_KEY"
	APIKeyEnvFallback = "GEMINI_API_KEY"
	ConfigPathEnv     = "TUBETRANS_CONFIG"
	DotEnvFile        = ".env"
)

// Gemini defaults
const (
	DefaultModel   = "gemini-3-flash-preview"
	DefaultBaseURL = "" // empty means the SDK default endpoint
)

// Temperature settings for LLM calls
const (
	TranslationTemperature = 0.7
)

// Default languages
const (
	DefaultSourceLang = "en"
	DefaultTargetLang = "bn"
)

// HTTP client settings
const (
	HTTPTimeout             = 2 * time.Minute
	HTTPMaxIdleConns        = 10
	HTTPMaxIdleConnsPerHost = 10
	HTTPIdleConnTimeout     = 90 * time.Second
)

// YouTube link templates
const (
	YouTubeWatchURL = "https://www.youtube.com/watch?v=%s"
	YouTubeEmbedURL = "https://www.youtube.com/embed/%s"
)

// User-facing messages
const (
	MsgInvalidURL        = "Invalid YouTube URL. Please paste a full link, e.g. https://www.youtube.com/watch?v=..."
	MsgFetchFailed       = "Failed to retrieve transcript. Please ensure it's a valid YouTube link."
	MsgTranslateFailed   = "Failed to translate. Please try again."
	MsgTranslationFailed = "Translation failed."
)
