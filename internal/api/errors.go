package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/edulog/etugon/internal/common"
)

// NetworkMessage is shown when the backend could not be reached.
const NetworkMessage = "Network error. Please try again."

// APIError is a non-2xx response from the backend.
type APIError struct {
	Detail     string
	RequestID  string
	StatusCode int
	// RetryAfter is the wait requested by a Retry-After header, if any.
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// Is lets callers match APIError against the common sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case common.ErrBackend:
		return true
	case common.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case common.ErrRateLimit:
		return e.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// Temporary reports whether repeating the request could succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

func newAPIError(resp *http.Response, requestID string) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &APIError{
		StatusCode: resp.StatusCode,
		Detail:     parseDetail(body),
		RequestID:  requestID,
		RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), time.Now()),
	}
}

// parseRetryAfter reads a Retry-After value given in seconds or as an HTTP date.
func parseRetryAfter(v string, now time.Time) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return max(0, time.Duration(secs)*time.Second)
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(0, at.Sub(now))
	}
	return 0
}

// parseDetail extracts the error message from a {"detail": ...} body. The
// detail is either a string or a list of {"msg": ...} objects.
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}

// Describe returns the single line to show the user for a failed call: the
// server's detail if it sent one, a network message if the server could not be
// reached, and fallback otherwise.
func Describe(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		return fallback
	case errors.Is(err, common.ErrNetwork):
		return NetworkMessage
	case errors.Is(err, context.Canceled):
		return "Request cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		return "The server took too long to respond"
	default:
		return fallback
	}
}

// UserError wraps err in a common.UserError with the Describe message.
func UserError(err error, fallback string) error {
	return common.NewUserError(Describe(err, fallback), err)
}
