package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testIssuer = "tidylist-test"

func newTestManager(t *testing.T) *KeyManager {
	t.Helper()

	km, err := NewEphemeralKeyManager(KeyManagerOptions{Issuer: testIssuer, NumKeys: 2})
	require.NoError(t, err)
	return km
}

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()
	km := newTestManager(t)

	claims := NewAccessClaims("user-1", "alice", testIssuer, time.Hour, time.Now())
	token, err := km.GetSigner().Sign(claims)
	require.NoError(t, err)
	require.Equal(t, 3, len(strings.Split(token, ".")), "JWT should have three segments")

	got, err := km.Verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, testIssuer, got.Issuer)
	require.NoError(t, got.ValidateExpiry())
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()
	km := newTestManager(t)

	claims := NewAccessClaims("user-1", "alice", testIssuer, time.Minute, time.Now().Add(-2*time.Minute))
	token, err := km.GetSigner().Sign(claims)
	require.NoError(t, err)

	_, err = km.Verifier.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()
	km := newTestManager(t)

	claims := NewAccessClaims("user-1", "alice", "someone-else", time.Hour, time.Now())
	token, err := km.GetSigner().Sign(claims)
	require.NoError(t, err)

	_, err = km.Verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	t.Parallel()
	km := newTestManager(t)
	other := newTestManager(t)

	claims := NewAccessClaims("user-1", "alice", testIssuer, time.Hour, time.Now())
	token, err := other.GetSigner().Sign(claims)
	require.NoError(t, err)

	// Signed by a key the verifier has never seen.
	_, err = km.Verifier.Verify(token)
	require.ErrorIs(t, err, ErrUnknownKID)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	t.Parallel()
	km := newTestManager(t)

	claims := NewAccessClaims("user-1", "alice", testIssuer, time.Hour, time.Now())
	token, err := km.GetSigner().Sign(claims)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	_, err = km.Verifier.Verify(tampered)
	require.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()
	km := newTestManager(t)

	_, err := km.Verifier.Verify("not-a-token")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestKeyManagerPublishesAllKeys(t *testing.T) {
	t.Parallel()

	km, err := NewEphemeralKeyManager(KeyManagerOptions{Issuer: testIssuer, NumKeys: 3})
	require.NoError(t, err)

	jwks := km.KeySet.PublicJWKS()
	require.Len(t, jwks.Keys, 3)
	for _, k := range jwks.Keys {
		require.Equal(t, "OKP", k.Kty)
		require.Equal(t, "Ed25519", k.Crv)
		require.NotEmpty(t, k.Kid)

		pub, err := k.PublicKey()
		require.NoError(t, err)
		require.NotNil(t, pub)
	}
}

func TestKeyManagerRequiresIssuer(t *testing.T) {
	t.Parallel()

	_, err := NewEphemeralKeyManager(KeyManagerOptions{})
	require.Error(t, err)
}
