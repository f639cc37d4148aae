package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestNewHS256RejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewHS256([]byte("too short"), "vendas")
	require.ErrorIs(t, err, ErrWeakSecret)
}

func TestHS256SignAndVerify(t *testing.T) {
	t.Parallel()

	h, err := NewHS256(testSecret, "vendas")
	require.NoError(t, err)

	claims := NewAccessClaims(42, "ana@example.com", time.Hour, "vendas", time.Now())
	token, err := h.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "42", got.Subject)
	require.Equal(t, "ana@example.com", got.Email)

	id, err := got.ClientID()
	require.NoError(t, err)
	require.Equal(t, int64(42), id)
}

func TestHS256VerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	h, err := NewHS256(testSecret, "vendas")
	require.NoError(t, err)

	claims := NewAccessClaims(1, "a@x.com", time.Minute, "vendas", time.Now().Add(-time.Hour))
	token, err := h.Sign(claims)
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestHS256VerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer, err := NewHS256(testSecret, "vendas")
	require.NoError(t, err)
	verifier, err := NewHS256([]byte("ffffffffffffffffffffffffffffffff"), "vendas")
	require.NoError(t, err)

	token, err := signer.Sign(NewAccessClaims(1, "a@x.com", time.Hour, "vendas", time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestHS256VerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer, err := NewHS256(testSecret, "someone-else")
	require.NoError(t, err)
	verifier, err := NewHS256(testSecret, "vendas")
	require.NoError(t, err)

	token, err := signer.Sign(NewAccessClaims(1, "a@x.com", time.Hour, "someone-else", time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestHS256VerifyRejectsMissingIdentity(t *testing.T) {
	t.Parallel()

	h, err := NewHS256(testSecret, "vendas")
	require.NoError(t, err)

	// Token carries a subject but no email claim.
	claims := NewAccessClaims(7, "", time.Hour, "vendas", time.Now())
	token, err := h.Sign(claims)
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrInvalidClaim)
}

func TestHS256VerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	h, err := NewHS256(testSecret, "vendas")
	require.NoError(t, err)

	_, err = h.Verify("not.a.token")
	require.ErrorIs(t, err, ErrMalformed)
}
