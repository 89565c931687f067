package vouchsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/vouch/pkg/httpx"
)

const (
	ErrorCodeInvalidRequest      = "invalid_request"
	ErrorCodeUnauthorized        = "unauthorized"
	ErrorCodeProfileRequired     = "profile_required"
	ErrorCodeNotFound            = "not_found"
	ErrorCodeInviteNotActive     = "invite_not_active"
	ErrorCodeProfileExists       = "profile_exists"
	ErrorCodeInviteRateLimited   = "invite_rate_limited"
	ErrorCodeRateLimitExceeded   = "rate_limit_exceeded"
	ErrorCodeGenerationExhausted = "generation_exhausted"
	ErrorCodeAlreadyBootstrapped = "already_bootstrapped"
	ErrorCodeAccessDenied        = "access_denied"
	ErrorCodeServerError         = "server_error"
)

// APIError is an error response. Handlers write it, the client returns it.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Is matches on status and code so callers can compare against the
// predefined errors regardless of the description.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode && e.Code == t.Code
}

// WriteError writes e as the response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteError(w, e.StatusCode, e.Code, e.Description)
}

// WithDescription returns a copy of e with a different description.
func (e *APIError) WithDescription(desc string) *APIError {
	c := *e
	c.Description = desc
	return &c
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required fields",
	}

	ErrUnauthorized = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeUnauthorized,
		Description: "Authentication required",
	}

	// ErrProfileRequired is returned to signed-in users that have not
	// completed onboarding yet.
	ErrProfileRequired = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeProfileRequired,
		Description: "Complete signup before managing invites.",
	}

	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "Not found.",
	}

	ErrInviteNotActive = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeInviteNotActive,
		Description: "This invite has already been used or revoked.",
	}

	ErrProfileExists = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeProfileExists,
		Description: "You have already completed signup.",
	}

	// ErrInviteRateLimited is the one-invite-per-day rule, distinct from
	// request throttling (ErrRateLimitExceeded).
	ErrInviteRateLimited = &APIError{
		StatusCode:  http.StatusTooManyRequests,
		Code:        ErrorCodeInviteRateLimited,
		Description: "You can only create one invite code every 24 hours.",
	}

	ErrRateLimitExceeded = &APIError{
		StatusCode:  http.StatusTooManyRequests,
		Code:        ErrorCodeRateLimitExceeded,
		Description: "Too many requests. Please try again later.",
	}

	ErrGenerationExhausted = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeGenerationExhausted,
		Description: "Failed to generate a unique invite code. Please try again.",
	}

	ErrAlreadyBootstrapped = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeAlreadyBootstrapped,
		Description: "The network already has members.",
	}

	ErrAccessDenied = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeAccessDenied,
		Description: "access denied",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "Something went wrong. Please try again.",
	}
)

// parseErrorResponse turns a non-2xx response body into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
