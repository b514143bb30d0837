package zoominfo

import (
	"fmt"
	"strings"
)

// AuthenticationError reports a non-success status from the authenticate
// endpoint. The originating call never reaches its target endpoint.
type AuthenticationError struct {
	StatusCode int
	Body       string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("zoominfo: authenticate returned status %d: %s", e.StatusCode, e.Body)
}

// MissingTokenError reports a success response from the authenticate endpoint
// whose JSON body lacks a jwt field.
type MissingTokenError struct{}

func (e *MissingTokenError) Error() string {
	return "zoominfo: jwt token not found in authentication response"
}

// HTTPError reports a non-success status on an authenticated call. It carries
// the status code and a body snippet for caller diagnosis.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("zoominfo: request returned status %d: %s", e.StatusCode, e.Body)
}

// bodySnippet trims a response body for inclusion in error messages.
func bodySnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}
