package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorKind classifies provider failures for retrying.
type ErrorKind int

const (
	KindUnavailable   ErrorKind = iota // network failure or 5xx
	KindRateLimited                    // 429
	KindRejected                       // any other 4xx, e.g. a bad key or model
	KindInvalidOutput                  // content does not match the schema
	KindTruncated                      // stopped at MaxTokens
)

func (k ErrorKind) String() string {
	switch k {
	case KindRateLimited:
		return "rate limited"
	case KindRejected:
		return "rejected"
	case KindInvalidOutput:
		return "invalid output"
	case KindTruncated:
		return "truncated"
	default:
		return "unavailable"
	}
}

// Error is returned by every provider.
type Error struct {
	Kind   ErrorKind
	Status int // HTTP status, when there was one

	// RetryAfter is the wait the provider asked for on a rate limit.
	RetryAfter time.Duration

	// Content is the offending output for KindInvalidOutput and KindTruncated.
	Content json.RawMessage

	Err error
}

func (e *Error) Error() string {
	msg := "llm: " + e.Kind.String()
	if e.Status != 0 {
		msg += fmt.Sprintf(" (%d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of err if it wraps an *Error.
func KindOf(err error) (ErrorKind, bool) {
	if e := asError(err); e != nil {
		return e.Kind, true
	}
	return 0, false
}

// statusError classifies an API error by its HTTP status. A zero status
// means the request never got an answer.
func statusError(status int, err error) *Error {
	e := &Error{Status: status, Err: err}
	switch {
	case status == http.StatusTooManyRequests:
		e.Kind = KindRateLimited
	case status == 0 || status >= 500:
		e.Kind = KindUnavailable
	default:
		e.Kind = KindRejected
	}
	return e
}

func asError(err error) *Error {
	var e *Error
	errors.As(err, &e)
	return e
}
