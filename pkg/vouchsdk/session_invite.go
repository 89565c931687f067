package vouchsdk

import (
	"context"
	"net/http"
)

// CreateInvite issues a new invite code for the session's user.
func (s *Session) CreateInvite(ctx context.Context, name string) (*Invite, error) {
	resp, err := s.doRequest(ctx, http.MethodPost, "/v1/invites", CreateInviteRequest{Name: name})
	if err != nil {
		return nil, err
	}

	var invite Invite
	if err := decodeJSON(resp, &invite, http.StatusCreated); err != nil {
		return nil, err
	}

	return &invite, nil
}

// RevokeInvite revokes one of the session user's active invites.
func (s *Session) RevokeInvite(ctx context.Context, inviteID string) (*Invite, error) {
	resp, err := s.doRequest(ctx, http.MethodPost, "/v1/invites/revoke", RevokeInviteRequest{InviteID: inviteID})
	if err != nil {
		return nil, err
	}

	var invite Invite
	if err := decodeJSON(resp, &invite, http.StatusOK); err != nil {
		return nil, err
	}

	return &invite, nil
}

// ListInvites returns the session user's invites.
func (s *Session) ListInvites(ctx context.Context) (*InviteListResponse, error) {
	resp, err := s.doRequest(ctx, http.MethodGet, "/v1/invites", nil)
	if err != nil {
		return nil, err
	}

	var list InviteListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return &list, nil
}
