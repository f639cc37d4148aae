package http

import (
	"encoding/json"
	"net/http"

	"github.com/tradewindmarket/vendas/internal/sales/service"
	"github.com/tradewindmarket/vendas/pkg/httpx"
	"github.com/tradewindmarket/vendas/pkg/salesdk"
)

// SalesHandler handles the sale aggregate endpoints.
type SalesHandler struct {
	SaleService *service.SaleService
}

// HandleCreate handles POST /sale
//
//	@Summary		Record Sale
//	@Description	Records a sale for a client covering a set of products. Duplicate product ids collapse into the set; every referenced id must exist or nothing is written.
//	@Tags			Sales
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		salesdk.CreateSaleRequest	true	"Sale"
//	@Success		201		{object}	salesdk.Sale				"hydrated sale"
//	@Failure		400		{object}	salesdk.ErrorResponse		"empty or malformed product_ids"
//	@Failure		401		{object}	salesdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	salesdk.ErrorResponse		"client or product not found"
//	@Router			/sale [post].
func (h *SalesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req salesdk.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	sale, err := h.SaleService.Create(r.Context(), req.ClientID, req.ProductIDs)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toSaleResponse(sale))
}

// HandleList handles GET /sale
//
//	@Summary		List Sales
//	@Description	Returns every sale with its client and product set resolved.
//	@Tags			Sales
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		salesdk.Sale
//	@Failure		401	{object}	salesdk.ErrorResponse	"error, error_description"
//	@Router			/sale [get].
func (h *SalesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sales, err := h.SaleService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]salesdk.Sale, len(sales))
	for i, s := range sales {
		out[i] = toSaleResponse(s)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /sale/{id}
//
//	@Summary		Get Sale
//	@Tags			Sales
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Sale ID"
//	@Success		200	{object}	salesdk.Sale
//	@Failure		401	{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	salesdk.ErrorResponse	"sale not found"
//	@Router			/sale/{id} [get].
func (h *SalesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	sale, err := h.SaleService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSaleResponse(sale))
}

// HandleUpdate handles PUT /sale/{id}
//
//	@Summary		Update Sale
//	@Description	Partially updates a sale. An omitted client_id keeps the current client; omitted product_ids keep the current set, while a present set fully replaces it and must not be empty.
//	@Tags			Sales
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int							true	"Sale ID"
//	@Param			request	body		salesdk.UpdateSaleRequest	true	"Fields to change"
//	@Success		200		{object}	salesdk.Sale
//	@Failure		400		{object}	salesdk.ErrorResponse	"empty product_ids"
//	@Failure		401		{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	salesdk.ErrorResponse	"sale, client or product not found"
//	@Router			/sale/{id} [put].
func (h *SalesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req salesdk.UpdateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	sale, err := h.SaleService.Update(r.Context(), id, service.SalePatch{
		ClientID:   req.ClientID,
		ProductIDs: req.ProductIDs,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSaleResponse(sale))
}

// HandleDelete handles DELETE /sale/{id}
//
//	@Summary		Delete Sale
//	@Description	Deletes a sale together with its product associations. Clients and products survive.
//	@Tags			Sales
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Sale ID"
//	@Success		204	"deleted"
//	@Failure		401	{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	salesdk.ErrorResponse	"sale not found"
//	@Router			/sale/{id} [delete].
func (h *SalesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.SaleService.Remove(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
