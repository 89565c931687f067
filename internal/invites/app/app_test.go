package app

import (
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/vouch/pkg/jwtx"
	"github.com/aussiebroadwan/vouch/pkg/vouchsdk"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		Port:                8080,
		ShutdownGracePeriod: time.Second,
		DatabaseDriver:      "sqlite",
		DatabaseFile:        filepath.Join(t.TempDir(), "vouch.db"),
		JWTSecret:           "0123456789abcdef0123456789abcdef",
		JWTIssuer:           "https://id.example.com/auth/v1",
		InviteWindow:        24 * time.Hour,
		InviteMaxAttempts:   3,
		BootstrapToken:      "let-me-in",
		MetricsEnabled:      true,
	}
}

func signHS256(t *testing.T, cfg Config, userID string) string {
	t.Helper()
	c := jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.JWTIssuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: jwtx.RoleAuthenticated,
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	return s
}

func TestApplicationServesInviteFlow(t *testing.T) {
	cfg := testConfig(t)
	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	srv := httptest.NewServer(app.Handler())
	t.Cleanup(srv.Close)
	client := vouchsdk.NewClient(srv.URL)

	ready, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)

	founder := client.WithToken(signHS256(t, cfg, testUserID))
	_, err = founder.Bootstrap(t.Context(), cfg.BootstrapToken, "Founder")
	require.NoError(t, err)

	inv, err := founder.CreateInvite(t.Context(), "Sam")
	require.NoError(t, err)

	v, err := client.ValidateInviteCode(t.Context(), inv.Code)
	require.NoError(t, err)
	require.True(t, v.Valid)
	require.Equal(t, "Sam", v.Name)
}

func TestApplicationRejectsForeignIssuer(t *testing.T) {
	cfg := testConfig(t)
	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	srv := httptest.NewServer(app.Handler())
	t.Cleanup(srv.Close)

	other := cfg
	other.JWTIssuer = "https://elsewhere.example.com"
	s := vouchsdk.NewClient(srv.URL).WithToken(signHS256(t, other, testUserID))

	_, err = s.GetProfile(t.Context())
	require.ErrorIs(t, err, vouchsdk.ErrUnauthorized)
}

func TestNewFailsOnBadDatabase(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabaseFile = filepath.Join(t.TempDir(), "missing-dir", "vouch.db")

	_, err := New(cfg)
	require.Error(t, err)
}
