package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"tubetrans/internal/config"
	"tubetrans/internal/youtube"
)

func TestServiceError(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("fetch: %w", &ServiceError{Op: "request transcript", Kind: KindUnavailable, Err: cause})

	assert.ErrorIs(t, err, ErrService)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindUnavailable, ErrorKindOf(err))
	assert.Equal(t, "fetch: request transcript: unavailable: connection refused", err.Error())
}

func TestServiceError_NoCause(t *testing.T) {
	err := &ServiceError{Op: "request translation", Kind: KindEmptyResponse}
	assert.Equal(t, "request translation: empty response", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestErrorKindOf_Foreign(t *testing.T) {
	assert.Equal(t, ErrorKind(""), ErrorKindOf(errors.New("x")))
	assert.Equal(t, ErrorKind(""), ErrorKindOf(nil))
}

func TestUserMessage(t *testing.T) {
	_, invalid := youtube.ExtractVideoID("not a link")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"invalid url", invalid, config.MsgInvalidURL},
		{"service", &ServiceError{Op: "x", Kind: KindBadPayload}, config.MsgFetchFailed},
		{"other", errors.New("boom"), config.MsgFetchFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
