package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/vouch/internal/invites/service"
	"github.com/aussiebroadwan/vouch/pkg/httpx"
	"github.com/aussiebroadwan/vouch/pkg/slogx"
	"github.com/aussiebroadwan/vouch/pkg/vouchsdk"
)

// writeServiceError maps a service error onto the response. Anything
// unrecognised is logged and reported as a generic server error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		vouchsdk.ErrInvalidRequest.WithDescription(verr.Message).WriteError(w)
	case errors.Is(err, service.ErrInvalidInput):
		vouchsdk.ErrInvalidRequest.WriteError(w)
	case errors.Is(err, service.ErrRateLimited):
		vouchsdk.ErrInviteRateLimited.WriteError(w)
	case errors.Is(err, service.ErrInviteNotFound):
		vouchsdk.ErrNotFound.WithDescription("Invite not found.").WriteError(w)
	case errors.Is(err, service.ErrInviteNotActive):
		vouchsdk.ErrInviteNotActive.WriteError(w)
	case errors.Is(err, service.ErrProfileExists):
		vouchsdk.ErrProfileExists.WriteError(w)
	case errors.Is(err, service.ErrProfileNotFound):
		vouchsdk.ErrNotFound.WithDescription("Profile not found.").WriteError(w)
	case errors.Is(err, service.ErrGenerationExhausted):
		slogx.FromContext(r.Context()).Error("invite code generation exhausted", slog.Any("error", err))
		vouchsdk.ErrGenerationExhausted.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		vouchsdk.ErrServerError.WriteError(w)
	}
}

func writeBadBody(w http.ResponseWriter) {
	vouchsdk.ErrInvalidRequest.WithDescription("Request body must be valid JSON").WriteError(w)
}

// requireUser returns the caller's id, or writes a 401 when the request
// somehow reached the handler unauthenticated.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		vouchsdk.ErrUnauthorized.WriteError(w)
		return "", false
	}
	return userID, true
}
