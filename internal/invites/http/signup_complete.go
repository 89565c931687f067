package http

import (
	"net/http"

	"github.com/aussiebroadwan/vouch/internal/invites/domain"
	"github.com/aussiebroadwan/vouch/internal/invites/service"
	"github.com/aussiebroadwan/vouch/pkg/httpx"
	"github.com/aussiebroadwan/vouch/pkg/slogx"
	"github.com/aussiebroadwan/vouch/pkg/vouchsdk"
)

type SignupCompleteHandler struct {
	SignupService *service.SignupService
}

// ServeHTTP godoc
//
//	@Summary		Complete Signup
//	@Description	Redeem an invite code and create the caller's profile in one step.
//	@Description	An unknown, used or revoked code is reported with success=false rather than an error status.
//	@Tags			Signup
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vouchsdk.CompleteSignupRequest	true	"Invite code and profile"
//	@Success		200		{object}	vouchsdk.CompleteSignupResponse	"success, userId or reason"
//	@Failure		400		{object}	vouchsdk.ErrorResponse			"Invalid profile fields"
//	@Failure		401		{object}	vouchsdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	vouchsdk.ErrorResponse			"Signup already completed"
//	@Failure		500		{object}	vouchsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/signup/complete [post].
func (h *SignupCompleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req vouchsdk.CompleteSignupRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	result, err := h.SignupService.CompleteSignup(r.Context(), userID, service.SignupRequest{
		InviteCode:        req.InviteCode,
		DisplayName:       req.DisplayName,
		About:             req.About,
		ContactVisibility: domain.ContactVisibility(req.ContactVisibility),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if !result.Success {
		slogx.FromContext(r.Context()).Info("signup rejected", "reason", result.Reason)
		httpx.WriteJSON(w, http.StatusOK, vouchsdk.CompleteSignupResponse{
			Success: false,
			Reason:  result.Reason,
			Error:   result.Message(),
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, vouchsdk.CompleteSignupResponse{
		Success: true,
		UserID:  result.Profile.UserID,
	})
}
