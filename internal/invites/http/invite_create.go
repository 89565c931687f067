package http

import (
	"net/http"

	"github.com/aussiebroadwan/vouch/internal/invites/service"
	"github.com/aussiebroadwan/vouch/pkg/httpx"
	"github.com/aussiebroadwan/vouch/pkg/vouchsdk"
)

type InviteCreateHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Create Invite
//	@Description	Issue a new invite code for someone the caller vouches for.
//	@Description	A member may create one invite every 24 hours; revoked invites do not count.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vouchsdk.CreateInviteRequest	true	"Who the invite is for"
//	@Success		201		{object}	vouchsdk.Invite					"The new invite"
//	@Failure		400		{object}	vouchsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	vouchsdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	vouchsdk.ErrorResponse			"Signup not completed"
//	@Failure		429		{object}	vouchsdk.ErrorResponse			"One invite per 24 hours"
//	@Failure		500		{object}	vouchsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites [post].
func (h *InviteCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req vouchsdk.CreateInviteRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	invite, err := h.InviteService.CreateInvite(r.Context(), userID, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toInviteResponse(invite))
}
