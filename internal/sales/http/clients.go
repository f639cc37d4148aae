package http

import (
	"encoding/json"
	"net/http"

	"github.com/tradewindmarket/vendas/internal/sales/service"
	"github.com/tradewindmarket/vendas/pkg/httpx"
	"github.com/tradewindmarket/vendas/pkg/salesdk"
)

// ClientsHandler handles all client account endpoints.
type ClientsHandler struct {
	ClientService *service.ClientService
}

// HandleCreate handles POST /client
//
//	@Summary		Register Client
//	@Description	Creates a new client account. This endpoint is public; the password is stored as an argon2id hash and never returned.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			request	body		salesdk.CreateClientRequest	true	"Client registration"
//	@Success		201		{object}	salesdk.Client				"created client, sans credentials"
//	@Failure		400		{object}	salesdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	salesdk.ErrorResponse		"email already registered"
//	@Failure		500		{object}	salesdk.ErrorResponse		"error, error_description"
//	@Router			/client [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req salesdk.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	client, err := h.ClientService.Create(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toClientResponse(client))
}

// HandleList handles GET /client
//
//	@Summary		List Clients
//	@Description	Returns every client account.
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		salesdk.Client
//	@Failure		401	{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	salesdk.ErrorResponse	"error, error_description"
//	@Router			/client [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clients, err := h.ClientService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]salesdk.Client, len(clients))
	for i, c := range clients {
		out[i] = toClientResponse(c)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /client/{id}
//
//	@Summary		Get Client
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Client ID"
//	@Success		200	{object}	salesdk.Client
//	@Failure		401	{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	salesdk.ErrorResponse	"client not found"
//	@Router			/client/{id} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	client, err := h.ClientService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toClientResponse(client))
}

// HandleUpdate handles PUT /client/{id}
//
//	@Summary		Update Client
//	@Description	Partially updates a client account. Omitted fields are left untouched; a new password is re-hashed.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int							true	"Client ID"
//	@Param			request	body		salesdk.UpdateClientRequest	true	"Fields to change"
//	@Success		200		{object}	salesdk.Client
//	@Failure		400		{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	salesdk.ErrorResponse	"client not found"
//	@Failure		409		{object}	salesdk.ErrorResponse	"email already registered"
//	@Router			/client/{id} [put].
func (h *ClientsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req salesdk.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	client, err := h.ClientService.Update(r.Context(), id, service.ClientPatch{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toClientResponse(client))
}

// HandleDelete handles DELETE /client/{id}
//
//	@Summary		Delete Client
//	@Tags			Clients
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Client ID"
//	@Success		204	"deleted"
//	@Failure		401	{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	salesdk.ErrorResponse	"client not found"
//	@Router			/client/{id} [delete].
func (h *ClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.ClientService.Remove(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
