package jwtx

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// KeySetVerifier validates asymmetric tokens against a KeySet, selecting
// the key by the kid header.
type KeySetVerifier struct {
	keys *KeySet
	opts VerifyOptions
}

// NewKeySetVerifier returns a verifier backed by keys.
func NewKeySetVerifier(keys *KeySet, opts VerifyOptions) *KeySetVerifier {
	return &KeySetVerifier{keys: keys, opts: opts}
}

// Verify parses tokenStr, resolves its kid and checks the signature and the claims.
func (v *KeySetVerifier) Verify(tokenStr string) (Claims, error) {
	if v.keys == nil || !v.keys.IsReady() {
		return Claims{}, ErrNoVerifier
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{
			jwt.SigningMethodRS256.Alg(),
			jwt.SigningMethodES256.Alg(),
			jwt.SigningMethodEdDSA.Alg(),
		}),
		jwt.WithoutClaimsValidation(),
	)

	var claims Claims
	_, err := parser.ParseWithClaims(tokenStr, &claims, v.keyFunc)
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	if err := v.opts.validate(&claims); err != nil {
		return Claims{}, err
	}
	return claims, nil
}

func (v *KeySetVerifier) keyFunc(t *jwt.Token) (any, error) {
	kid, _ := t.Header["kid"].(string)
	if kid == "" {
		return nil, ErrUnknownKID
	}
	key, err := v.keys.Get(kid)
	if err != nil {
		return nil, ErrUnknownKID
	}

	// The key type must agree with the token's alg.
	switch t.Method.(type) {
	case *jwt.SigningMethodRSA:
		if _, ok := key.(*rsa.PublicKey); ok {
			return key, nil
		}
	case *jwt.SigningMethodECDSA:
		if _, ok := key.(*ecdsa.PublicKey); ok {
			return key, nil
		}
	case *jwt.SigningMethodEd25519:
		if _, ok := key.(ed25519.PublicKey); ok {
			return key, nil
		}
	}
	return nil, fmt.Errorf("%w: key %q does not match alg %s", ErrInvalidSig, kid, t.Method.Alg())
}
