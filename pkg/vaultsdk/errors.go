package vaultsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error codes carried in ErrorResponse.Error.
const (
	ErrorCodeNotFound          = "not_found"
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeMethodNotAllowed  = "method_not_allowed"
	ErrorCodeConflict          = "conflict"
	ErrorCodeRateLimitExceeded = "rate_limit_exceeded"
	ErrorCodeServerError       = "server_error"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Code       string
	Detail     string
	Fields     []FieldError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Detail)
}

func IsNotFound(err error) bool       { return hasCode(err, ErrorCodeNotFound) }
func IsConflict(err error) bool       { return hasCode(err, ErrorCodeConflict) }
func IsInvalidRequest(err error) bool { return hasCode(err, ErrorCodeInvalidRequest) }
func IsRateLimited(err error) bool    { return hasCode(err, ErrorCodeRateLimitExceeded) }

func hasCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// parseErrorResponse turns an error body into an *APIError, falling back to
// the status text when the body is not the standard shape.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Error,
			Detail:     errResp.Detail,
			Fields:     errResp.Fields,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeServerError,
		Detail:     fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
