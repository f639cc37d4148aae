package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradewindmarket/vendas/internal/sales/service"
	"github.com/tradewindmarket/vendas/internal/sales/store/drivers/sqlite"
	"github.com/tradewindmarket/vendas/pkg/cryptox"
	"github.com/tradewindmarket/vendas/pkg/jwtx"
	"github.com/tradewindmarket/vendas/pkg/salesdk"
	"github.com/tradewindmarket/vendas/pkg/slogx"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "sales-http-test-*")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// newTestServer wires a full router over an in-memory database.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewHS256([]byte("0123456789abcdef0123456789abcdef"), "vendas-test")
	require.NoError(t, err)

	logger := slogx.New(slogx.Config{Service: "sales-test", Level: "error", Format: "text"})

	router := NewRouter(signer, "test", st, logger)
	router.AuthService = &service.AuthService{Store: st, Signer: signer, Issuer: "vendas-test", TTL: time.Minute}
	router.ClientService = &service.ClientService{Store: st}
	router.ProductService = &service.ProductService{Store: st}
	router.SaleService = &service.SaleService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestRouterAuthAndErrorMapping(t *testing.T) {
	srv := newTestServer(t)
	sdk := salesdk.NewSDKClient(srv.URL)
	ctx := t.Context()

	account, err := sdk.Register(ctx, salesdk.CreateClientRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	session, err := sdk.Login(ctx, "ana@example.com", "hunter22")
	require.NoError(t, err)

	t.Run("signup and login are public, the rest is not", func(t *testing.T) {
		resp, err := srv.Client().Get(srv.URL + "/client")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")

		var body salesdk.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, salesdk.ErrorCodeUnauthorized, body.Error)
	})

	t.Run("validation maps to 400", func(t *testing.T) {
		_, err := session.CreateSale(ctx, salesdk.CreateSaleRequest{ClientID: account.ID})
		apiErr, ok := err.(*salesdk.APIError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, salesdk.ErrorCodeInvalidRequest, apiErr.Code)
	})

	t.Run("missing references map to 404", func(t *testing.T) {
		_, err := session.GetSale(ctx, 999)
		require.True(t, salesdk.IsNotFound(err))

		_, err = session.GetProduct(ctx, 999)
		require.True(t, salesdk.IsNotFound(err))

		_, err = session.GetClient(ctx, 999)
		require.True(t, salesdk.IsNotFound(err))
	})

	t.Run("duplicate email maps to 409", func(t *testing.T) {
		_, err := sdk.Register(ctx, salesdk.CreateClientRequest{
			Name:     "Clone",
			Email:    "ana@example.com",
			Password: "hunter22",
		})
		require.True(t, salesdk.IsConflict(err))
	})

	t.Run("malformed JSON body maps to 400", func(t *testing.T) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, srv.URL+"/product", strings.NewReader("{not json"))
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+session.AccessToken())
		req.Header.Set("Content-Type", "application/json")

		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("non-numeric path ids map to 400", func(t *testing.T) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/product/abc", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+session.AccessToken())

		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("full sale round trip through the wire", func(t *testing.T) {
		p, err := session.CreateProduct(ctx, salesdk.CreateProductRequest{Name: "keyboard", Price: 100})
		require.NoError(t, err)

		sale, err := session.CreateSale(ctx, salesdk.CreateSaleRequest{
			ClientID:   account.ID,
			ProductIDs: []int64{p.ID},
		})
		require.NoError(t, err)
		assert.Equal(t, account.ID, sale.Client.ID)
		require.Len(t, sale.Products, 1)
		assert.Equal(t, "keyboard", sale.Products[0].Name)

		require.NoError(t, session.DeleteSale(ctx, sale.ID))
		_, err = session.GetSale(ctx, sale.ID)
		require.True(t, salesdk.IsNotFound(err))
	})
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)
	sdk := salesdk.NewSDKClient(srv.URL)

	require.NoError(t, sdk.Livez(t.Context()))
	require.NoError(t, sdk.Readyz(t.Context()))
}
