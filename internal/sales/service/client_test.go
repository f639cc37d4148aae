package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradewindmarket/vendas/pkg/cryptox"
)

func TestClientCreate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ClientService{Store: st}

	t.Run("registers and scrubs the hash", func(t *testing.T) {
		client, err := svc.Create(ctx, "Ana", "ana@example.com", "s3cret-pw")
		require.NoError(t, err)

		assert.NotZero(t, client.ID)
		assert.Equal(t, "Ana", client.Name)
		assert.Empty(t, client.PasswordHash)

		// the stored row carries a verifiable argon2id hash
		raw, err := st.Clients().GetClientByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		require.NoError(t, cryptox.VerifyPassword("s3cret-pw", raw.PasswordHash))
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := svc.Create(ctx, "Other Ana", "ana@example.com", "different")
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := svc.Create(ctx, "", "bob@example.com", "s3cret-pw")
		require.ErrorIs(t, err, ErrValidation)

		_, err = svc.Create(ctx, "Bob", "not-an-email", "s3cret-pw")
		require.ErrorIs(t, err, ErrValidation)

		_, err = svc.Create(ctx, "Bob", "bob@example.com", "tiny")
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestClientGetAndList(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ClientService{Store: st}

	seeded := seedClient(t, st, "Bruno", "bruno@example.com")
	seedClient(t, st, "Carla", "carla@example.com")

	t.Run("get by id", func(t *testing.T) {
		client, err := svc.Get(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "Bruno", client.Name)
		assert.Empty(t, client.PasswordHash)
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := svc.Get(ctx, 777)
		require.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("list scrubs every hash", func(t *testing.T) {
		clients, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, clients, 2)
		for _, c := range clients {
			assert.Empty(t, c.PasswordHash)
		}
	})

	t.Run("get by email keeps the hash for login", func(t *testing.T) {
		client, err := svc.GetByEmail(ctx, "bruno@example.com")
		require.NoError(t, err)
		assert.NotEmpty(t, client.PasswordHash)
	})
}

func TestClientUpdate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ClientService{Store: st}

	ana := seedClient(t, st, "Ana", "ana@example.com")
	seedClient(t, st, "Bia", "bia@example.com")

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		name := "Ana Maria"
		updated, err := svc.Update(ctx, ana.ID, ClientPatch{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Ana Maria", updated.Name)
		assert.Equal(t, "ana@example.com", updated.Email)
	})

	t.Run("password change re-hashes", func(t *testing.T) {
		pw := "brand-new-pw"
		_, err := svc.Update(ctx, ana.ID, ClientPatch{Password: &pw})
		require.NoError(t, err)

		raw, err := st.Clients().GetClientByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		require.NoError(t, cryptox.VerifyPassword("brand-new-pw", raw.PasswordHash))
	})

	t.Run("rejects email collision", func(t *testing.T) {
		email := "bia@example.com"
		_, err := svc.Update(ctx, ana.ID, ClientPatch{Email: &email})
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("rejects unknown id", func(t *testing.T) {
		name := "Ghost"
		_, err := svc.Update(ctx, 31337, ClientPatch{Name: &name})
		require.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("rejects invalid patched email", func(t *testing.T) {
		email := "nope"
		_, err := svc.Update(ctx, ana.ID, ClientPatch{Email: &email})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestClientRemove(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ClientService{Store: st}

	client := seedClient(t, st, "Dora", "dora@example.com")

	require.NoError(t, svc.Remove(ctx, client.ID))
	_, err := svc.Get(ctx, client.ID)
	require.ErrorIs(t, err, ErrClientNotFound)

	require.ErrorIs(t, svc.Remove(ctx, client.ID), ErrClientNotFound)
}
