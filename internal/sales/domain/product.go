package domain

import "time"

type Product struct {
	ID          int64
	Name        string
	Description string // optional, empty when unset
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
