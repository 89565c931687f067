package http

import (
	"net/http"

	"github.com/aussiebroadwan/vouch/internal/invites/service"
	"github.com/aussiebroadwan/vouch/pkg/httpx"
	"github.com/aussiebroadwan/vouch/pkg/vouchsdk"
)

type InviteValidateHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Validate Invite Code
//	@Description	Check whether an invite code can be redeemed before signing up.
//	@Description	Codes are case-insensitive. Valid codes return the name the inviter gave; invalid ones a reason.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vouchsdk.ValidateInviteRequest	true	"Code to check"
//	@Success		200		{object}	vouchsdk.ValidateInviteResponse	"valid, name or reason"
//	@Failure		400		{object}	vouchsdk.ErrorResponse			"Missing code"
//	@Failure		429		{object}	vouchsdk.ErrorResponse			"Too many attempts"
//	@Failure		500		{object}	vouchsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/invites/validate [post].
func (h *InviteValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req vouchsdk.ValidateInviteRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	v, err := h.InviteService.ValidateInviteCode(r.Context(), req.Code)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, vouchsdk.ValidateInviteResponse{
		Valid:  v.Valid,
		Name:   v.InviteeName,
		Reason: v.Reason,
		Error:  v.Message(),
	})
}
