package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradewindmarket/vendas/pkg/jwtx"
)

const testIssuer = "vendas-test"

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	clients := &ClientService{Store: st}
	registered, err := clients.Create(ctx, "Ana", "ana@example.com", "hunter22")
	require.NoError(t, err)

	signer, err := jwtx.NewHS256([]byte("0123456789abcdef0123456789abcdef"), testIssuer)
	require.NoError(t, err)
	svc := &AuthService{Store: st, Signer: signer, Issuer: testIssuer, TTL: time.Minute}

	t.Run("issues a verifiable token", func(t *testing.T) {
		token, err := svc.Login(ctx, "ana@example.com", "hunter22")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := signer.Verify(token)
		require.NoError(t, err)

		id, err := claims.ClientID()
		require.NoError(t, err)
		assert.Equal(t, registered.ID, id)
		assert.Equal(t, "ana@example.com", claims.Email)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "ana@example.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "hunter22")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("authenticate scrubs the hash", func(t *testing.T) {
		client, err := svc.Authenticate(ctx, "ana@example.com", "hunter22")
		require.NoError(t, err)
		assert.Empty(t, client.PasswordHash)
	})
}

func TestAuthTokenExpiry(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	clients := &ClientService{Store: st}
	_, err := clients.Create(ctx, "Bia", "bia@example.com", "hunter22")
	require.NoError(t, err)

	signer, err := jwtx.NewHS256([]byte("0123456789abcdef0123456789abcdef"), testIssuer)
	require.NoError(t, err)
	svc := &AuthService{Store: st, Signer: signer, Issuer: testIssuer, TTL: -time.Minute}

	token, err := svc.Login(ctx, "bia@example.com", "hunter22")
	require.NoError(t, err)

	_, err = signer.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}
