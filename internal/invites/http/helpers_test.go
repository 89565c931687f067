package http_test

import (
	"net/http/httptest"
	"testing"
	"time"

	vouchhttp "github.com/aussiebroadwan/vouch/internal/invites/http"
	"github.com/aussiebroadwan/vouch/internal/invites/service"
	"github.com/aussiebroadwan/vouch/internal/invites/store"
	"github.com/aussiebroadwan/vouch/internal/invites/store/drivers/sqlite"
	"github.com/aussiebroadwan/vouch/pkg/jwtx"
	"github.com/aussiebroadwan/vouch/pkg/slogx"
	"github.com/aussiebroadwan/vouch/pkg/vouchsdk"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

const (
	bootstrapToken = "test-bootstrap-token-12345"

	founderID  = "8d1f5a0e-7c41-4b6a-9a55-3c2b1e0f9d01"
	inviteeID  = "2e6a9c14-0f3b-4d8e-b7a1-5f4c3d2e1b02"
	strangerID = "c3b2a190-8e7d-4f6c-a5b4-9e8d7c6b5a03"
)

var jwtSecret = []byte("vouch-http-test-secret-0123456789")

type testServer struct {
	client   *vouchsdk.Client
	store    store.Store
	registry *prometheus.Registry
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	reg := prometheus.NewRegistry()
	metrics := service.NewMetrics("vouch", reg)
	verifier := jwtx.NewVerifierHS256(jwtSecret, jwtx.VerifyOptions{})

	r := vouchhttp.NewRouter(verifier, nil, "test", st, reg, slogx.Discard())
	r.InviteService = &service.InviteService{Store: st, Metrics: metrics}
	r.SignupService = &service.SignupService{Store: st, Metrics: metrics}
	r.ProfileService = &service.ProfileService{Store: st}
	r.BootstrapService = &service.BootstrapService{Store: st, Token: bootstrapToken}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testServer{
		client:   vouchsdk.NewClient(srv.URL),
		store:    st,
		registry: reg,
	}
}

// accessToken signs a token the way the identity provider would.
func accessToken(t *testing.T, userID string) string {
	t.Helper()
	c := jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Role: jwtx.RoleAuthenticated,
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(jwtSecret)
	require.NoError(t, err)
	return s
}

func (ts *testServer) session(t *testing.T, userID string) *vouchsdk.Session {
	t.Helper()
	return ts.client.WithToken(accessToken(t, userID))
}

// founder bootstraps the network and returns the founding member's session.
func (ts *testServer) founder(t *testing.T) *vouchsdk.Session {
	t.Helper()
	s := ts.session(t, founderID)
	_, err := s.Bootstrap(t.Context(), bootstrapToken, "Founder")
	require.NoError(t, err)
	return s
}

// member onboards userID through an invite from inviter.
func (ts *testServer) member(t *testing.T, inviter *vouchsdk.Session, userID, name string) *vouchsdk.Session {
	t.Helper()
	inv, err := inviter.CreateInvite(t.Context(), name)
	require.NoError(t, err)

	s := ts.session(t, userID)
	res, err := s.CompleteSignup(t.Context(), vouchsdk.CompleteSignupRequest{
		InviteCode:  inv.Code,
		DisplayName: name,
	})
	require.NoError(t, err)
	require.True(t, res.Success, "signup should succeed: %s", res.Error)
	return s
}
