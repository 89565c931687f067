package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/vouch/internal/invites/service"
	"github.com/aussiebroadwan/vouch/pkg/httpx"
	"github.com/aussiebroadwan/vouch/pkg/vouchsdk"
)

type InviteRevokeHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Revoke Invite
//	@Description	Revoke one of the caller's invites so it can no longer be redeemed.
//	@Description	Invites owned by someone else are reported as not found.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vouchsdk.RevokeInviteRequest	true	"Invite to revoke"
//	@Success		200		{object}	vouchsdk.Invite					"The revoked invite"
//	@Failure		400		{object}	vouchsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	vouchsdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	vouchsdk.ErrorResponse			"Signup not completed"
//	@Failure		404		{object}	vouchsdk.ErrorResponse			"Invite not found"
//	@Failure		409		{object}	vouchsdk.ErrorResponse			"Invite already used or revoked"
//	@Failure		500		{object}	vouchsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites/revoke [post].
func (h *InviteRevokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req vouchsdk.RevokeInviteRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}
	if strings.TrimSpace(req.InviteID) == "" {
		vouchsdk.ErrInvalidRequest.WithDescription("inviteId is required").WriteError(w)
		return
	}

	invite, err := h.InviteService.RevokeInvite(r.Context(), userID, req.InviteID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toInviteResponse(invite))
}
