package salesdk

import "time"

// ============================================================================
// Auth
// ============================================================================

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// ============================================================================
// Clients
// ============================================================================

// Client is the outward representation of a purchaser account. It never
// carries the password hash.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateClientRequest is the body of POST /client (public signup).
type CreateClientRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateClientRequest is the body of PUT /client/{id}. Omitted fields are
// left untouched.
type UpdateClientRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// ============================================================================
// Products
// ============================================================================

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProductRequest is the body of POST /product.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// UpdateProductRequest is the body of PUT /product/{id}. Omitted fields are
// left untouched.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// ============================================================================
// Sales
// ============================================================================

// Sale is always returned hydrated: the client and the full product set
// are embedded.
type Sale struct {
	ID        int64     `json:"id"`
	Client    Client    `json:"client"`
	Products  []Product `json:"products"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateSaleRequest is the body of POST /sale.
type CreateSaleRequest struct {
	ClientID   int64   `json:"client_id"`
	ProductIDs []int64 `json:"product_ids"`
}

// UpdateSaleRequest is the body of PUT /sale/{id}. A nil ProductIDs leaves
// the product set untouched; an empty one is rejected. No omitempty on
// ProductIDs: an empty slice must reach the wire as [], not vanish, and a
// nil slice marshals to null which still decodes back to "untouched".
type UpdateSaleRequest struct {
	ClientID   *int64  `json:"client_id,omitempty"`
	ProductIDs []int64 `json:"product_ids"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}

// ErrorResponse is the error body every endpoint shares.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
