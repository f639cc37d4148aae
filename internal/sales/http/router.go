package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tradewindmarket/vendas/internal/sales/service"
	"github.com/tradewindmarket/vendas/internal/sales/store"
	"github.com/tradewindmarket/vendas/pkg/httpx"
	"github.com/tradewindmarket/vendas/pkg/jwtx"
	"github.com/tradewindmarket/vendas/pkg/slogx"

	_ "github.com/tradewindmarket/vendas/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AuthService    *service.AuthService
	ClientService  *service.ClientService
	ProductService *service.ProductService
	SaleService    *service.SaleService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerClients()
	r.registerProducts()
	r.registerSales()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Vendas Sales Management API
//	@version		0.1.0
//	@description	Sales management backend: client accounts, a product catalogue and sales tying the two together.
//	@description
//	@description				Mutating and read endpoints (except signup and login) require a bearer access token obtained from /auth/login.
//
//	@contact.name				Tradewind Market Team
//	@contact.url				https://github.com/tradewindmarket/vendas
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// POST /auth/login - strict rate limit by IP (authentication attempts)
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{ClientService: r.ClientService}

	// POST /client - public signup, strict rate limit by IP
	r.Mux.Handle("POST /client",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /client", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /client/{id}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /client/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /client/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerProducts() {
	h := &ProductsHandler{ProductService: r.ProductService}

	r.Mux.Handle("POST /product", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /product", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /product/{id}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /product/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /product/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerSales() {
	h := &SalesHandler{SaleService: r.SaleService}

	r.Mux.Handle("POST /sale", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /sale", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /sale/{id}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /sale/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /sale/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}

// secured wraps a handler with bearer authentication and a per-client rate limit.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByClient(limit),
	)
}
