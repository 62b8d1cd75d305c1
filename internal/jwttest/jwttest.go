// Package jwttest mints bearer tokens for tests.
package jwttest

import (
	"encoding/base64"
	"testing"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/require"
)

// Secret is the HS256 key used by Sign.
var Secret = []byte("secret")

// header is {"alg":"HS256","typ":"JWT"}.
const header = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9"

// Sign builds an HS256 token carrying claims using jwx.
// Registered claims must have the types RFC 7519 gives them.
func Sign(t testing.TB, claims map[string]any) string {
	t.Helper()

	token := jwt.New()
	for name, value := range claims {
		require.NoError(t, token.Set(name, value))
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, Secret))
	require.NoError(t, err, "could not sign token")

	return string(signed)
}

// Unsigned assembles a token around an arbitrary payload, which is encoded
// as unpadded Base64URL but otherwise left untouched.
func Unsigned(payload string) string {
	return Raw(base64.RawURLEncoding.EncodeToString([]byte(payload)))
}

// Raw assembles a token around an already encoded payload segment.
func Raw(segment string) string {
	return header + "." + segment + ".c2lnbmF0dXJl"
}

// Bearer prefixes token with the Bearer scheme.
func Bearer(token string) string {
	return "Bearer " + token
}
