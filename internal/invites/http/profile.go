package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/vouch/internal/invites/service"
	"github.com/aussiebroadwan/vouch/pkg/httpx"
	"github.com/aussiebroadwan/vouch/pkg/vouchsdk"
)

type ProfileHandler struct {
	ProfileService *service.ProfileService
}

// ServeHTTP godoc
//
//	@Summary		Current Profile
//	@Description	The caller's profile. 404 means signup has not been completed yet.
//	@Tags			Signup
//	@Produce		json
//	@Success		200	{object}	vouchsdk.Profile		"The caller's profile"
//	@Failure		401	{object}	vouchsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	vouchsdk.ErrorResponse	"No profile yet"
//	@Failure		500	{object}	vouchsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profile [get].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	profile, err := h.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(profile))
}

// RequireProfile rejects callers that have not completed signup. It must
// run after AuthnMiddleware.
func RequireProfile(ps *service.ProfileService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := requireUser(w, r)
			if !ok {
				return
			}

			_, err := ps.GetProfile(r.Context(), userID)
			switch {
			case err == nil:
				next.ServeHTTP(w, r)
			case errors.Is(err, service.ErrProfileNotFound):
				vouchsdk.ErrProfileRequired.WriteError(w)
			default:
				writeServiceError(w, r, err)
			}
		})
	}
}
