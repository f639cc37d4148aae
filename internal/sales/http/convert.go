package http

import (
	"net/http"
	"strconv"

	"github.com/tradewindmarket/vendas/internal/sales/domain"
	"github.com/tradewindmarket/vendas/pkg/httpx"
	"github.com/tradewindmarket/vendas/pkg/salesdk"
)

func toClientResponse(c domain.Client) salesdk.Client {
	return salesdk.Client{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toProductResponse(p domain.Product) salesdk.Product {
	return salesdk.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toSaleResponse(s domain.Sale) salesdk.Sale {
	out := salesdk.Sale{
		ID:        s.ID,
		Products:  make([]salesdk.Product, len(s.Products)),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.Client != nil {
		out.Client = toClientResponse(*s.Client)
	}
	for i, p := range s.Products {
		out.Products[i] = toProductResponse(p)
	}
	return out
}

// pathID parses the {id} segment of the matched route. Writes a 400 and
// returns false when the segment is not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.WriteError(w, http.StatusBadRequest, salesdk.ErrorCodeInvalidRequest, "id must be a positive integer")
		return 0, false
	}
	return id, true
}
