package domain

import "time"

// Client is a purchaser account. PasswordHash holds the argon2id encoded
// credential and must never appear in any outward-facing representation.
type Client struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
