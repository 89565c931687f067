package http

import (
	"net/http"

	"github.com/aussiebroadwan/vouch/internal/invites/service"
	"github.com/aussiebroadwan/vouch/pkg/httpx"
	"github.com/aussiebroadwan/vouch/pkg/vouchsdk"
)

type InviteListHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		List Invites
//	@Description	The caller's invites, split into active and past (used or revoked), newest first.
//	@Tags			Invites
//	@Produce		json
//	@Success		200	{object}	vouchsdk.InviteListResponse	"active, past"
//	@Failure		401	{object}	vouchsdk.ErrorResponse		"error, error_description"
//	@Failure		403	{object}	vouchsdk.ErrorResponse		"Signup not completed"
//	@Failure		500	{object}	vouchsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites [get].
func (h *InviteListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	list, err := h.InviteService.ListInvites(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, vouchsdk.InviteListResponse{
		Active: toInviteResponses(list.Active),
		Past:   toInviteResponses(list.Past),
	})
}
