package vouchsdk

import "time"

// ErrorResponse is the error envelope of every non-2xx response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Invites
// ============================================================================

// Invite is an invite as seen by its creator.
type Invite struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	InviterID string     `json:"inviterId"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
	UsedAt    *time.Time `json:"usedAt,omitempty"`
	UsedBy    *string    `json:"usedBy,omitempty"`
	RevokedAt *time.Time `json:"revokedAt,omitempty"`
}

// CreateInviteRequest is the body of POST /v1/invites.
type CreateInviteRequest struct {
	// Name is a label for who the invite is for, e.g. "Sam from the climbing gym".
	Name string `json:"name"`
}

// RevokeInviteRequest is the body of POST /v1/invites/revoke.
type RevokeInviteRequest struct {
	InviteID string `json:"inviteId"`
}

// InviteListResponse splits an inviter's invites into still-redeemable and
// used or revoked ones, newest first.
type InviteListResponse struct {
	Active []Invite `json:"active"`
	Past   []Invite `json:"past"`
}

// ValidateInviteRequest is the body of POST /v1/invites/validate.
type ValidateInviteRequest struct {
	Code string `json:"code"`
}

// ValidateInviteResponse answers whether a code can be redeemed. Name is
// only set for valid codes; Reason is one of "not found", "used" or
// "revoked" and Error a matching user-facing sentence.
type ValidateInviteResponse struct {
	Valid  bool   `json:"valid"`
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ============================================================================
// Signup and profiles
// ============================================================================

// CompleteSignupRequest is the body of POST /v1/signup/complete.
type CompleteSignupRequest struct {
	InviteCode        string `json:"inviteCode"`
	DisplayName       string `json:"displayName"`
	About             string `json:"about,omitempty"`
	ContactVisibility string `json:"contactVisibility,omitempty"`
}

// CompleteSignupResponse reports the outcome of redeeming a code. A code
// that cannot be redeemed is Success false with Reason and Error set, not
// an HTTP error.
type CompleteSignupResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Profile is a member's onboarding record.
type Profile struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	DisplayName       string    `json:"displayName"`
	About             string    `json:"about"`
	ContactVisibility string    `json:"contactVisibility"`
	InvitedBy         string    `json:"invitedBy,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// BootstrapRequest is the body of POST /v1/bootstrap. The bootstrap token
// travels in the X-Bootstrap-Token header.
type BootstrapRequest struct {
	DisplayName string `json:"displayName"`
}

// ============================================================================
// Health
// ============================================================================

type HealthChecks struct {
	Database string `json:"database"`
	Identity string `json:"identity,omitempty"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
