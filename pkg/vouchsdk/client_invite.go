package vouchsdk

import (
	"context"
	"net/http"
)

// ValidateInviteCode checks whether code can be redeemed. Unknown, used and
// revoked codes are not errors; they come back with Valid false and a Reason.
func (c *Client) ValidateInviteCode(ctx context.Context, code string) (*ValidateInviteResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/invites/validate", "", ValidateInviteRequest{Code: code}, nil)
	if err != nil {
		return nil, err
	}

	var result ValidateInviteResponse
	if err := decodeJSON(resp, &result, http.StatusOK); err != nil {
		return nil, err
	}

	return &result, nil
}
