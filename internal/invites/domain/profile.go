package domain

import "time"

type ContactVisibility string

const (
	ContactHidden          ContactVisibility = "hidden"
	ContactConnectionsOnly ContactVisibility = "connections-only"
	ContactPublic          ContactVisibility = "public"
)

// Valid reports whether v is one of the known visibilities.
func (v ContactVisibility) Valid() bool {
	switch v {
	case ContactHidden, ContactConnectionsOnly, ContactPublic:
		return true
	}
	return false
}

// Profile is the member record created when a new account redeems an
// invite. UserID is the identity provider's subject.
type Profile struct {
	ID                string
	UserID            string
	DisplayName       string
	About             string
	ContactVisibility ContactVisibility
	InvitedBy         string
	CreatedAt         time.Time
}
