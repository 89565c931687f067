package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/vouch/internal/invites/service"
	"github.com/aussiebroadwan/vouch/pkg/httpx"
	"github.com/aussiebroadwan/vouch/pkg/slogx"
	"github.com/aussiebroadwan/vouch/pkg/vouchsdk"
)

// BootstrapTokenHeader carries the pre-shared bootstrap token.
const BootstrapTokenHeader = "X-Bootstrap-Token"

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP handles the bootstrap endpoint for initial system setup.
//
//	@Summary		Bootstrap the network
//	@Description	Creates the founding member's profile for the authenticated caller, who then issues the first invites.
//	@Description	Only available when a bootstrap token is configured and only while no profile exists.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string						true	"Bootstrap token for authorization"
//	@Param			request				body		vouchsdk.BootstrapRequest	true	"Founding member"
//	@Success		201					{object}	vouchsdk.Profile			"The founding member's profile"
//	@Failure		400					{object}	vouchsdk.ErrorResponse		"Invalid request body"
//	@Failure		401					{object}	vouchsdk.ErrorResponse		"Missing or invalid token"
//	@Failure		404					{object}	vouchsdk.ErrorResponse		"Bootstrap not enabled"
//	@Failure		409					{object}	vouchsdk.ErrorResponse		"Network already has members"
//	@Failure		500					{object}	vouchsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	// 1. Check if enabled
	if h.BootstrapService.Token == "" {
		vouchsdk.ErrNotFound.WithDescription("Bootstrap endpoint is not enabled").WriteError(w)
		return
	}

	// 2. Require bootstrap token header
	token := r.Header.Get(BootstrapTokenHeader)
	if token == "" {
		vouchsdk.ErrUnauthorized.WithDescription("Bootstrap token is required in X-Bootstrap-Token header").WriteError(w)
		return
	}

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	// 3. Parse request body
	var req vouchsdk.BootstrapRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	// 4. Create the founding member
	profile, err := h.BootstrapService.Bootstrap(r.Context(), token, userID, req.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapDisabled):
			vouchsdk.ErrNotFound.WithDescription("Bootstrap endpoint is not enabled").WriteError(w)
		case errors.Is(err, service.ErrBootstrapUnauthorized):
			vouchsdk.ErrUnauthorized.WithDescription("Invalid bootstrap token").WriteError(w)
		case errors.Is(err, service.ErrBootstrapAlready):
			vouchsdk.ErrAlreadyBootstrapped.WriteError(w)
		default:
			writeServiceError(w, r, err)
		}
		return
	}

	l.Info("bootstrap complete", "profile_id", profile.ID)
	httpx.WriteJSON(w, http.StatusCreated, toProfileResponse(profile))
}
