package service

import (
	"context"
	"errors"
	"time"

	"github.com/tradewindmarket/vendas/internal/sales/domain"
	"github.com/tradewindmarket/vendas/internal/sales/store"
	"github.com/tradewindmarket/vendas/pkg/cryptox"
	"github.com/tradewindmarket/vendas/pkg/jwtx"
	"github.com/tradewindmarket/vendas/pkg/slogx"
)

// AuthService authenticates clients and issues access tokens.
type AuthService struct {
	Store  store.Store
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
}

// Authenticate checks an email/password pair. An unknown email and a wrong
// password both come back as ErrInvalidCredentials so callers cannot probe
// which emails are registered.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	client, err := s.Store.Clients().GetClientByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a hash verification anyway to keep timing flat.
			_ = cryptox.VerifyPassword(password, dummyHash)
			return domain.Client{}, ErrInvalidCredentials
		}
		l.Error("failed to look up client for login", "error", err)
		return domain.Client{}, err
	}

	if err := cryptox.VerifyPassword(password, client.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return domain.Client{}, ErrInvalidCredentials
		}
		l.Error("failed to verify password", "error", err)
		return domain.Client{}, err
	}

	client.PasswordHash = ""
	return client, nil
}

// IssueToken signs an access token for an authenticated client.
func (s *AuthService) IssueToken(ctx context.Context, client domain.Client) (string, error) {
	ttl := s.TTL
	if ttl == 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(client.ID, client.Email, ttl, s.Issuer, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to sign access token", "error", err)
		return "", err
	}

	slogx.FromContext(ctx).Info("access token issued", "client_id", client.ID, "jti", claims.ID)
	return token, nil
}

// Login is Authenticate followed by IssueToken.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	client, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}
	return s.IssueToken(ctx, client)
}

// dummyHash is a throwaway argon2id hash of an unguessable value, verified
// against when the email is unknown so both failure paths cost the same.
const dummyHash = "$argon2id$v=19$m=19456,t=2,p=1$AAAAAAAAAAAAAAAAAAAAAA$t0kYFCCsC2Y5Dd2t8gWWpsr8TG1B3Ptu0nKJyiFnSHs"
