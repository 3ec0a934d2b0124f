package scheduler

import (
	"fmt"
	"io"
	"net/http"

	go_json "github.com/goccy/go-json"
)

// APIError is the single error shape every failure path converges to.
// Status is zero when no HTTP response was obtained (DNS failure,
// connection refused, aborted request); callers branch on that.
type APIError struct {
	Status  int
	Message string
	Payload any
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return "scheduler api: " + e.Message
	}
	return fmt.Sprintf("scheduler api: %d %s", e.Status, e.Message)
}

// Transport reports whether the failure happened before any response was
// obtained.
func (e *APIError) Transport() bool { return e.Status == 0 }

func transportError(err error) *APIError {
	return &APIError{Message: err.Error()}
}

func parseAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		Status:  resp.StatusCode,
		Message: resp.Status,
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var payload any
	if jsonErr := go_json.Unmarshal(body, &payload); jsonErr == nil {
		apiErr.Payload = payload
	} else {
		apiErr.Payload = string(body)
		apiErr.Message = string(body)
		return apiErr
	}

	// FastAPI puts the human-readable message under "detail".
	if obj, ok := payload.(map[string]any); ok {
		for _, key := range []string{"detail", "message", "error"} {
			if msg, ok := obj[key].(string); ok && msg != "" {
				apiErr.Message = msg
				break
			}
		}
	}

	return apiErr
}
