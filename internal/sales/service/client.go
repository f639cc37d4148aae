package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/tradewindmarket/vendas/internal/sales/domain"
	"github.com/tradewindmarket/vendas/internal/sales/store"
	"github.com/tradewindmarket/vendas/pkg/cryptox"
	"github.com/tradewindmarket/vendas/pkg/slogx"
)

const minPasswordLength = 6

// ClientService manages purchaser accounts. Every value it hands back has
// the password hash scrubbed; only GetByEmail keeps it, for login.
type ClientService struct {
	Store store.Store
}

// ClientPatch carries a partial update. Nil fields are left untouched.
type ClientPatch struct {
	Name     *string
	Email    *string
	Password *string
}

// Create registers a new client. Returns ErrEmailTaken when the email is
// already registered and ErrValidation on malformed input.
func (s *ClientService) Create(ctx context.Context, name, email, password string) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if err := validateClientFields(name, email, password); err != nil {
		return domain.Client{}, err
	}
	if password == "" {
		return domain.Client{}, validationf("password must not be empty")
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		l.Error("failed to hash password", "error", err)
		return domain.Client{}, err
	}

	id, err := s.Store.Clients().CreateClient(ctx, domain.Client{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Client{}, ErrEmailTaken
		}
		l.Error("failed to create client", "error", err)
		return domain.Client{}, err
	}

	client, err := s.Store.Clients().GetClientByID(ctx, id)
	if err != nil {
		return domain.Client{}, err
	}

	l.Info("client created", "client_id", id)
	return scrubClient(client), nil
}

// Get returns a single client by id.
func (s *ClientService) Get(ctx context.Context, id int64) (domain.Client, error) {
	client, err := s.Store.Clients().GetClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrClientNotFound
		}
		return domain.Client{}, err
	}
	return scrubClient(client), nil
}

// GetByEmail is for the login path only. The returned value keeps its
// password hash so the caller can verify credentials.
func (s *ClientService) GetByEmail(ctx context.Context, email string) (domain.Client, error) {
	client, err := s.Store.Clients().GetClientByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrClientNotFound
		}
		return domain.Client{}, err
	}
	return client, nil
}

// List returns all clients ordered by id.
func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.Store.Clients().ListClients(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		clients[i].PasswordHash = ""
	}
	return clients, nil
}

// Update applies a partial update. Returns ErrClientNotFound when the id is
// unknown and ErrEmailTaken when the new email collides.
func (s *ClientService) Update(ctx context.Context, id int64, patch ClientPatch) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	var updated domain.Client
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		client, err := tx.Clients().GetClientByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrClientNotFound
			}
			return err
		}

		if patch.Name != nil {
			client.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Email != nil {
			client.Email = strings.TrimSpace(*patch.Email)
		}
		if err := validateClientFields(client.Name, client.Email, ""); err != nil {
			return err
		}
		if patch.Password != nil {
			if len(*patch.Password) < minPasswordLength {
				return validationf("password must be at least %d characters", minPasswordLength)
			}
			hash, err := cryptox.HashPassword(*patch.Password)
			if err != nil {
				return err
			}
			client.PasswordHash = hash
		}

		if err := tx.Clients().UpdateClient(ctx, client); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailTaken
			}
			return err
		}

		updated, err = tx.Clients().GetClientByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.Client{}, err
	}

	l.Info("client updated", "client_id", id)
	return scrubClient(updated), nil
}

// Remove deletes a client. Returns ErrClientNotFound when the id is unknown.
func (s *ClientService) Remove(ctx context.Context, id int64) error {
	err := s.Store.Clients().DeleteClient(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("client deleted", "client_id", id)
	return nil
}

// validateClientFields checks name and email shape. Pass an empty password
// to skip the password length check (partial updates without a new password).
func validateClientFields(name, email, password string) error {
	if name == "" {
		return validationf("name must not be empty")
	}
	if email == "" {
		return validationf("email must not be empty")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return validationf("email %q is not a valid address", email)
	}
	if password != "" && len(password) < minPasswordLength {
		return validationf("password must be at least %d characters", minPasswordLength)
	}
	return nil
}

func scrubClient(c domain.Client) domain.Client {
	c.PasswordHash = ""
	return c
}
