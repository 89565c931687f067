// Package vouchsdk is a Go client for the vouch invite service.
//
// Unauthenticated calls (code validation, health) hang off Client. Calls made
// on behalf of a signed-in user go through a Session carrying the identity
// provider's access token:
//
//	c := vouchsdk.NewClient("https://vouch.example.com")
//	v, err := c.ValidateInviteCode(ctx, "ABCD2345")
//
//	s := c.WithToken(accessToken)
//	inv, err := s.CreateInvite(ctx, "Sam from the climbing gym")
//
// Error responses come back as *APIError and match the predefined errors
// with errors.Is.
package vouchsdk
