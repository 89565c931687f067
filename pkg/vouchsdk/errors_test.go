package vouchsdk_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/vouch/pkg/vouchsdk"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorIs(t *testing.T) {
	err := vouchsdk.ErrNotFound.WithDescription("Invite not found.")
	require.ErrorIs(t, err, vouchsdk.ErrNotFound)
	require.NotErrorIs(t, err, vouchsdk.ErrInviteNotActive)
	require.Equal(t, "Not found.", vouchsdk.ErrNotFound.Description, "WithDescription must not mutate the shared error")

	// Same status, different code
	require.NotErrorIs(t, vouchsdk.ErrInviteRateLimited, vouchsdk.ErrRateLimitExceeded)
	require.False(t, errors.Is(vouchsdk.ErrProfileExists, errors.New("profile_exists")))
}

func TestWriteErrorRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vouchsdk.ErrInviteRateLimited.WriteError(w)
	}))
	defer srv.Close()

	_, err := vouchsdk.NewClient(srv.URL).WithToken("t").CreateInvite(t.Context(), "Sam")
	require.ErrorIs(t, err, vouchsdk.ErrInviteRateLimited)

	var apiErr *vouchsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	require.Equal(t, "You can only create one invite code every 24 hours.", apiErr.Description)
}

func TestNonEnvelopeErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := vouchsdk.NewClient(srv.URL).ValidateInviteCode(t.Context(), "ABCDEFGH")

	var apiErr *vouchsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, vouchsdk.ErrorCodeServerError, apiErr.Code)
	require.Contains(t, apiErr.Error(), "502")
}

func TestRequestShape(t *testing.T) {
	var gotAuth, gotBootstrap, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotBootstrap = r.Header.Get("X-Bootstrap-Token")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"p1","userId":"u1","displayName":"Founder","contactVisibility":"hidden"}`))
	}))
	defer srv.Close()

	p, err := vouchsdk.NewClient(srv.URL+"/").WithToken("tok").Bootstrap(t.Context(), "secret", "Founder")
	require.NoError(t, err)
	require.Equal(t, "Founder", p.DisplayName)
	require.Equal(t, "Bearer tok", gotAuth)
	require.Equal(t, "secret", gotBootstrap)
	require.Equal(t, "application/json", gotContentType)
}
