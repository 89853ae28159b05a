package models

import (
	"tubetrans/internal/text"
	"tubetrans/internal/youtube"
)

// TranscriptRecord is the result of one successful transcript request.
// Records are treated as immutable; WithTranslation returns a modified copy.
type TranscriptRecord struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	VideoID     string `json:"videoId"`
	Transcript  string `json:"transcript"`
	Translation string `json:"translation,omitempty"` // empty means absent
}

// HasTranslation reports whether a translation has been attached.
func (r TranscriptRecord) HasTranslation() bool {
	return !text.IsBlank(r.Translation)
}

// HasTranscript reports whether there is transcript text to translate.
func (r TranscriptRecord) HasTranscript() bool {
	return !text.IsBlank(r.Transcript)
}

// WithTranslation returns a copy of r with Translation set.
func (r TranscriptRecord) WithTranslation(translation string) TranscriptRecord {
	r.Translation = translation
	return r
}

// WatchURL returns the YouTube watch link for the record's video.
func (r TranscriptRecord) WatchURL() string {
	return youtube.WatchURL(r.VideoID)
}

// EmbedURL returns the embeddable player link for the record's video.
func (r TranscriptRecord) EmbedURL() string {
	return youtube.EmbedURL(r.VideoID)
}
