package http

import (
	"errors"
	"net/http"

	"github.com/tradewindmarket/vendas/internal/sales/service"
	"github.com/tradewindmarket/vendas/pkg/httpx"
	"github.com/tradewindmarket/vendas/pkg/salesdk"
	"github.com/tradewindmarket/vendas/pkg/slogx"
)

// writeServiceError maps service errors to their HTTP representation.
// Anything unrecognized is logged and hidden behind a generic 500 so
// internal detail never leaks outward.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		httpx.WriteError(w, http.StatusBadRequest, salesdk.ErrorCodeInvalidRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, salesdk.ErrorCodeUnauthorized, "invalid email or password")
	case errors.Is(err, service.ErrSaleNotFound),
		errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrProductNotFound):
		httpx.WriteError(w, http.StatusNotFound, salesdk.ErrorCodeNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteError(w, http.StatusConflict, salesdk.ErrorCodeConflict, err.Error())
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, salesdk.ErrorCodeServerError, "internal error")
	}
}

// writeInvalidBody is the shared response for undecodable request bodies.
func writeInvalidBody(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusBadRequest, salesdk.ErrorCodeInvalidRequest, "invalid JSON in request body")
}
