package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/tradewindmarket/vendas/internal/sales/service"
	"github.com/tradewindmarket/vendas/internal/sales/store"
	"github.com/tradewindmarket/vendas/pkg/httpx"
	"github.com/tradewindmarket/vendas/pkg/salesdk"
)

// ProductsHandler handles all catalogue endpoints.
type ProductsHandler struct {
	ProductService *service.ProductService
}

// HandleCreate handles POST /product
//
//	@Summary		Create Product
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		salesdk.CreateProductRequest	true	"Product"
//	@Success		201		{object}	salesdk.Product
//	@Failure		400		{object}	salesdk.ErrorResponse	"negative price or empty name"
//	@Failure		401		{object}	salesdk.ErrorResponse	"error, error_description"
//	@Router			/product [post].
func (h *ProductsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req salesdk.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	product, err := h.ProductService.Create(r.Context(), req.Name, req.Description, req.Price)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toProductResponse(product))
}

// HandleList handles GET /product
//
//	@Summary		List Products
//	@Description	Returns the catalogue, optionally narrowed to a price range.
//	@Tags			Products
//	@Produce		json
//	@Security		BearerAuth
//	@Param			min_price	query		number	false	"Lower price bound (inclusive)"
//	@Param			max_price	query		number	false	"Upper price bound (inclusive)"
//	@Success		200			{array}		salesdk.Product
//	@Failure		400			{object}	salesdk.ErrorResponse	"malformed or inverted bounds"
//	@Failure		401			{object}	salesdk.ErrorResponse	"error, error_description"
//	@Router			/product [get].
func (h *ProductsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var filter store.ProductFilter

	query := r.URL.Query()
	for _, bound := range []struct {
		key  string
		dest **float64
	}{
		{"min_price", &filter.MinPrice},
		{"max_price", &filter.MaxPrice},
	} {
		raw := query.Get(bound.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, salesdk.ErrorCodeInvalidRequest, bound.key+" must be a number")
			return
		}
		*bound.dest = &v
	}

	products, err := h.ProductService.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]salesdk.Product, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /product/{id}
//
//	@Summary		Get Product
//	@Tags			Products
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Product ID"
//	@Success		200	{object}	salesdk.Product
//	@Failure		401	{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	salesdk.ErrorResponse	"product not found"
//	@Router			/product/{id} [get].
func (h *ProductsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	product, err := h.ProductService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProductResponse(product))
}

// HandleUpdate handles PUT /product/{id}
//
//	@Summary		Update Product
//	@Description	Partially updates a product. Omitted fields are left untouched.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int								true	"Product ID"
//	@Param			request	body		salesdk.UpdateProductRequest	true	"Fields to change"
//	@Success		200		{object}	salesdk.Product
//	@Failure		400		{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	salesdk.ErrorResponse	"product not found"
//	@Router			/product/{id} [put].
func (h *ProductsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req salesdk.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	product, err := h.ProductService.Update(r.Context(), id, service.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProductResponse(product))
}

// HandleDelete handles DELETE /product/{id}
//
//	@Summary		Delete Product
//	@Tags			Products
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Product ID"
//	@Success		204	"deleted"
//	@Failure		401	{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	salesdk.ErrorResponse	"product not found"
//	@Router			/product/{id} [delete].
func (h *ProductsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.ProductService.Remove(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
