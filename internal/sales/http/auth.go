package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/tradewindmarket/vendas/internal/sales/service"
	"github.com/tradewindmarket/vendas/pkg/httpx"
	"github.com/tradewindmarket/vendas/pkg/jwtx"
	"github.com/tradewindmarket/vendas/pkg/salesdk"
)

// AuthHandler handles credential exchange.
type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleLogin handles POST /auth/login
//
//	@Summary		Login
//	@Description	Exchanges an email/password pair for a bearer access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		salesdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	salesdk.LoginResponse	"access_token, token_type, expires_in"
//	@Failure		400		{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	salesdk.ErrorResponse	"error, error_description"
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req salesdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, salesdk.ErrorCodeInvalidRequest, "email and password are required")
		return
	}

	token, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	ttl := h.AuthService.TTL
	if ttl == 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, salesdk.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(ttl / time.Second),
	})
}
