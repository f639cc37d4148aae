package store

import (
	"context"
	"errors"

	"github.com/tradewindmarket/vendas/internal/sales/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and a transaction scope for the multi-row sale writes.
type Store interface {
	Clients() Clients
	Products() Products
	Sales() Sales

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Clients interface {
	// CreateClient inserts a new client and returns its generated id.
	// Returns ErrAlreadyExists when the email is already taken.
	CreateClient(ctx context.Context, c domain.Client) (int64, error)

	// GetClientByID returns a client by id.
	GetClientByID(ctx context.Context, id int64) (domain.Client, error)

	// GetClientByEmail is used during login.
	GetClientByEmail(ctx context.Context, email string) (domain.Client, error)

	// ListClients returns all clients ordered by id.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// UpdateClient overwrites name, email and password_hash and bumps
	// updated_at. Returns ErrAlreadyExists when the new email collides.
	UpdateClient(ctx context.Context, c domain.Client) error

	// DeleteClient removes a client row.
	DeleteClient(ctx context.Context, id int64) error
}

// ProductFilter narrows ListProducts. Nil bounds mean unbounded.
type ProductFilter struct {
	MinPrice *float64
	MaxPrice *float64
}

type Products interface {
	// CreateProduct inserts a new product and returns its generated id.
	CreateProduct(ctx context.Context, p domain.Product) (int64, error)

	// GetProductByID returns a product by id.
	GetProductByID(ctx context.Context, id int64) (domain.Product, error)

	// GetProductsByIDs returns the subset of products that actually exist
	// for the given ids. Callers compare the returned cardinality against
	// the requested one to detect dangling references.
	GetProductsByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)

	// ListProducts returns products matching the filter, ordered by id.
	ListProducts(ctx context.Context, f ProductFilter) ([]domain.Product, error)

	// UpdateProduct overwrites name, description and price and bumps updated_at.
	UpdateProduct(ctx context.Context, p domain.Product) error

	// DeleteProduct removes a product row.
	DeleteProduct(ctx context.Context, id int64) error
}

type Sales interface {
	// CreateSale inserts the sale row and returns its generated id.
	// Association rows are written separately via ReplaceSaleProducts.
	CreateSale(ctx context.Context, clientID int64) (int64, error)

	// GetSaleByID returns the bare sale row (no relations).
	GetSaleByID(ctx context.Context, id int64) (domain.Sale, error)

	// ListSales returns all bare sale rows ordered by id.
	ListSales(ctx context.Context) ([]domain.Sale, error)

	// UpdateSaleClient repoints the sale at another client and bumps updated_at.
	UpdateSaleClient(ctx context.Context, saleID, clientID int64) error

	// TouchSale bumps updated_at without changing any column. Used when only
	// the product set of the sale changed.
	TouchSale(ctx context.Context, saleID int64) error

	// ReplaceSaleProducts removes every association row of the sale and
	// writes one row per given product id.
	ReplaceSaleProducts(ctx context.Context, saleID int64, productIDs []int64) error

	// GetSaleProductIDs returns the product ids associated with the sale.
	GetSaleProductIDs(ctx context.Context, saleID int64) ([]int64, error)

	// DeleteSale removes the sale row; association rows go with it.
	DeleteSale(ctx context.Context, id int64) error
}
