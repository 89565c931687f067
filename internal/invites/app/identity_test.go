package app

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/vouch/pkg/jwtx"
	"github.com/aussiebroadwan/vouch/pkg/slogx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testUserID = "0b6f6d3c-5a52-4c1f-9b3e-2f1d7c9a8e11"

func signEdDSA(t *testing.T, kid string, key ed25519.PrivateKey) string {
	t.Helper()
	c := jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   testUserID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: jwtx.RoleAuthenticated,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodEdDSA, c)
	tok.Header["kid"] = kid
	s, err := tok.SignedString(key)
	require.NoError(t, err)
	return s
}

// jwksServer serves whatever key set is currently stored in set.
func jwksServer(t *testing.T, set *atomic.Value) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(set.Load().(jwtx.JWKS))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestInitIdentitySharedSecret(t *testing.T) {
	v, keys, refresher := initIdentity(Config{JWTSecret: "0123456789abcdef0123456789abcdef"}, slogx.Discard())
	require.NotNil(t, v)
	require.Nil(t, keys)
	require.Nil(t, refresher)
}

func TestKeyRefresherPicksUpRotation(t *testing.T) {
	pub1, priv1, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	pub2, priv2, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	var set atomic.Value
	set.Store(jwtx.JWKS{Keys: []jwtx.JWK{jwtx.NewEd25519JWK("k1", pub1)}})
	srv := jwksServer(t, &set)

	v, keys, refresher := initIdentity(Config{JWKSURL: srv.URL}, slogx.Discard())
	require.NotNil(t, keys)
	require.NotNil(t, refresher)
	require.False(t, keys.IsReady())

	require.NoError(t, refresher.Refresh(t.Context()))
	require.True(t, keys.IsReady())

	claims, err := v.Verify(signEdDSA(t, "k1", priv1))
	require.NoError(t, err)
	uid, err := claims.UserID()
	require.NoError(t, err)
	require.Equal(t, testUserID, uid)

	_, err = v.Verify(signEdDSA(t, "k2", priv2))
	require.Error(t, err)

	// Provider rotates k1 out and k2 in
	set.Store(jwtx.JWKS{Keys: []jwtx.JWK{jwtx.NewEd25519JWK("k2", pub2)}})
	require.NoError(t, refresher.Refresh(t.Context()))

	_, err = v.Verify(signEdDSA(t, "k2", priv2))
	require.NoError(t, err)
	_, err = v.Verify(signEdDSA(t, "k1", priv1))
	require.Error(t, err)
}

func TestKeyRefresherStartStop(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	var set atomic.Value
	set.Store(jwtx.JWKS{Keys: []jwtx.JWK{jwtx.NewEd25519JWK("k1", pub)}})
	srv := jwksServer(t, &set)

	keys := jwtx.NewKeySet()
	r := NewKeyRefresher(keys, srv.URL, slogx.Discard(), time.Hour)
	r.Start()
	require.Eventually(t, keys.IsReady, 5*time.Second, 10*time.Millisecond)
	r.Stop()
}

func TestKeyRefresherFailureKeepsKeys(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	var set atomic.Value
	set.Store(jwtx.JWKS{Keys: []jwtx.JWK{jwtx.NewEd25519JWK("k1", pub)}})
	srv := jwksServer(t, &set)

	keys := jwtx.NewKeySet()
	r := NewKeyRefresher(keys, srv.URL, slogx.Discard(), 0)
	require.Equal(t, 10*time.Minute, r.Interval)
	require.NoError(t, r.Refresh(t.Context()))

	srv.Close()
	require.Error(t, r.Refresh(t.Context()))
	require.True(t, keys.IsReady())
}
