package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrServer       = errors.New("server error")
	ErrUnauthorized = errors.New("unauthorized")
)

// ErrorKind classifies an APIError.
type ErrorKind int

const (
	// KindTransport: no response was received.
	KindTransport ErrorKind = iota + 1
	// KindServer: the server answered with a non-2xx status.
	KindServer
	// KindUnauthorized: the server answered 401.
	KindUnauthorized
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindServer:
		return "server"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// APIError is the error returned by every call in this package.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	// Payload is the server's JSON error body, if it sent one.
	Payload json.RawMessage
	Err     error
}

func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " %d", e.StatusCode)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *APIError) Unwrap() error { return e.Err }

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnavailable:
		return e.Kind == KindTransport
	case ErrServer:
		return e.Kind == KindServer
	case ErrUnauthorized:
		return e.Kind == KindUnauthorized
	}
	return false
}

// NewError builds a client-side failure with a fixed message, used when no
// server payload is available.
func NewError(kind ErrorKind, msg string, err error) *APIError {
	return &APIError{Kind: kind, Message: msg, Err: err}
}

// AsAPIError returns err as *APIError, wrapping foreign errors as transport
// failures.
func AsAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{Kind: KindTransport, Err: err}
}

func transportError(err error) *APIError {
	return &APIError{Kind: KindTransport, Err: err}
}

func statusError(status int, body []byte) *APIError {
	e := &APIError{Kind: KindServer, StatusCode: status}
	if status == http.StatusUnauthorized {
		e.Kind = KindUnauthorized
	}

	body = bytes.TrimSpace(body)
	if json.Valid(body) && len(body) > 0 {
		e.Payload = json.RawMessage(body)
		e.Message = payloadMessage(body)
	} else if len(body) > 0 && len(body) <= 256 {
		e.Message = string(body)
	}
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}

// payloadMessage extracts a human message from common error envelopes:
// {"message"}, {"error"}, {"detail"} or a bare JSON string.
func payloadMessage(body []byte) string {
	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		return s
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	for _, key := range []string{"message", "error", "detail"} {
		raw, ok := env[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}
