// Package youtube recognises YouTube links and extracts their video identifiers.
package youtube

import (
	"errors"
	"fmt"
	"regexp"

	"tubetrans/internal/config"
)

// VideoIDLength is the fixed length of a YouTube video identifier.
const VideoIDLength = 11

// ErrInvalidURL is matched by every extraction failure.
var ErrInvalidURL = errors.New("invalid YouTube URL")

// InvalidURLError reports input that does not contain a recognisable video link.
type InvalidURLError struct {
	Input string
}

func (e *InvalidURLError) Error() string {
	return config.MsgInvalidURL
}

// Is lets errors.Is(err, ErrInvalidURL) match.
func (e *InvalidURLError) Is(target error) bool {
	return target == ErrInvalidURL
}

// Recognised shapes: watch?v=ID (query params may precede v=), youtu.be/ID, /embed/ID, /v/ID, /e/ID,
// and /<seg>/<...>/ID paths. Scheme and www. are optional.
var videoIDPattern = regexp.MustCompile(
	`(?:https?://)?(?:www\.)?(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`,
)

var idPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ExtractVideoID returns the 11-character video identifier found in url.
func ExtractVideoID(url string) (string, error) {
	m := videoIDPattern.FindStringSubmatch(url)
	if len(m) < 2 {
		return "", &InvalidURLError{Input: url}
	}
	return m[1], nil
}

// IsVideoID reports whether id has the shape of a video identifier.
func IsVideoID(id string) bool {
	return idPattern.MatchString(id)
}

// WatchURL returns the canonical watch link for id.
func WatchURL(id string) string {
	return fmt.Sprintf(config.YouTubeWatchURL, id)
}

// EmbedURL returns the embeddable player link for id.
func EmbedURL(id string) string {
	return fmt.Sprintf(config.YouTubeEmbedURL, id)
}
