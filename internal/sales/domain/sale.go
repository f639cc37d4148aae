package domain

import "time"

// Sale ties one client to a set of products through the sale_products
// association table. Client and Products are only populated on hydrated
// reads; membership is what matters for Products, not order.
type Sale struct {
	ID        int64
	ClientID  int64
	Client    *Client
	Products  []Product
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductIDs returns the identifiers of the sale's resolved product set.
func (s Sale) ProductIDs() []int64 {
	ids := make([]int64, len(s.Products))
	for i, p := range s.Products {
		ids[i] = p.ID
	}
	return ids
}
