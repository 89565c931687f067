package vouchsdk

import (
	"context"
	"net/http"
)

// CompleteSignup redeems an invite code and creates the session user's
// profile. A rejected code is reported in the response, not as an error.
func (s *Session) CompleteSignup(ctx context.Context, req CompleteSignupRequest) (*CompleteSignupResponse, error) {
	resp, err := s.doRequest(ctx, http.MethodPost, "/v1/signup/complete", req)
	if err != nil {
		return nil, err
	}

	var result CompleteSignupResponse
	if err := decodeJSON(resp, &result, http.StatusOK); err != nil {
		return nil, err
	}

	return &result, nil
}

// GetProfile returns the session user's profile.
func (s *Session) GetProfile(ctx context.Context) (*Profile, error) {
	resp, err := s.doRequest(ctx, http.MethodGet, "/v1/profile", nil)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return nil, err
	}

	return &profile, nil
}

// Bootstrap creates the first member of an empty network using the
// server's bootstrap token.
func (s *Session) Bootstrap(ctx context.Context, token, displayName string) (*Profile, error) {
	resp, err := s.client.doRequest(ctx, http.MethodPost, "/v1/bootstrap", s.accessToken,
		BootstrapRequest{DisplayName: displayName},
		map[string]string{"X-Bootstrap-Token": token},
	)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := decodeJSON(resp, &profile, http.StatusCreated); err != nil {
		return nil, err
	}

	return &profile, nil
}
