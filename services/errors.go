package services

import (
	"errors"
	"fmt"

	"tubetrans/internal/config"
	"tubetrans/internal/youtube"
)

// ErrService is matched by every backend failure.
var ErrService = errors.New("service error")

// ErrorKind separates "the backend could not be reached or refused" from
// "the backend answered with something unusable".
type ErrorKind string

const (
	KindUnavailable   ErrorKind = "unavailable"
	KindBadPayload    ErrorKind = "bad payload"
	KindEmptyResponse ErrorKind = "empty response"
)

// ServiceError reports a failed backend call.
type ServiceError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrService) match.
func (e *ServiceError) Is(target error) bool {
	return target == ErrService
}

// ErrorKindOf returns the kind of a wrapped *ServiceError, or "" if err is not one.
func ErrorKindOf(err error) ErrorKind {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}

// UserMessage turns a fetch error into text suitable for the error banner.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var iu *youtube.InvalidURLError
	if errors.As(err, &iu) {
		return iu.Error()
	}
	return config.MsgFetchFailed
}
