package sales_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tradewindmarket/vendas/pkg/salesdk"
)

// TestProductCatalogue exercises the product CRUD surface end to end.
func TestProductCatalogue(t *testing.T) {
	baseURL, cleanup := setupSalesContainer(t)
	defer cleanup()

	sdk := salesdk.NewSDKClient(baseURL)
	session, _ := registerAndLogin(t, sdk, "Ana", "ana@example.com")

	products := seedCatalogue(t, session)

	t.Run("price range filter", func(t *testing.T) {
		f := func(v float64) *float64 { return &v }

		mid, err := session.ListProducts(t.Context(), f(50), f(500))
		require.NoError(t, err)
		require.Len(t, mid, 2) // keyboard and mouse

		all, err := session.ListProducts(t.Context(), nil, nil)
		require.NoError(t, err)
		require.Len(t, all, len(products))
	})

	t.Run("update and delete", func(t *testing.T) {
		price := 79.00
		updated, err := session.UpdateProduct(t.Context(), products[1].ID, salesdk.UpdateProductRequest{
			Price: &price,
		})
		require.NoError(t, err)
		require.Equal(t, 79.00, updated.Price)
		require.Equal(t, "mouse", updated.Name)

		require.NoError(t, session.DeleteProduct(t.Context(), products[1].ID))

		_, err = session.GetProduct(t.Context(), products[1].ID)
		require.True(t, salesdk.IsNotFound(err), "expected 404, got: %v", err)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		_, err := session.CreateProduct(t.Context(), salesdk.CreateProductRequest{
			Name:  "bogus",
			Price: -10,
		})
		require.Error(t, err)
	})
}

// TestSaleLifecycle walks a sale through creation, reads, a client swap,
// a product-set replacement and deletion.
func TestSaleLifecycle(t *testing.T) {
	baseURL, cleanup := setupSalesContainer(t)
	defer cleanup()

	sdk := salesdk.NewSDKClient(baseURL)
	session, ana := registerAndLogin(t, sdk, "Ana", "ana@example.com")
	_, bruno := registerAndLogin(t, sdk, "Bruno", "bruno@example.com")

	products := seedCatalogue(t, session)

	sale, err := session.CreateSale(t.Context(), salesdk.CreateSaleRequest{
		ClientID:   ana.ID,
		ProductIDs: []int64{products[0].ID, products[0].ID, products[1].ID},
	})
	require.NoError(t, err)
	require.Equal(t, ana.ID, sale.Client.ID)
	require.Len(t, sale.Products, 2, "duplicate ids collapse into the set")

	t.Run("get and list are hydrated", func(t *testing.T) {
		got, err := session.GetSale(t.Context(), sale.ID)
		require.NoError(t, err)
		require.Equal(t, "Ana", got.Client.Name)
		require.Len(t, got.Products, 2)

		sales, err := session.ListSales(t.Context())
		require.NoError(t, err)
		require.Len(t, sales, 1)
	})

	t.Run("repoint client and replace products", func(t *testing.T) {
		updated, err := session.UpdateSale(t.Context(), sale.ID, salesdk.UpdateSaleRequest{
			ClientID:   &bruno.ID,
			ProductIDs: []int64{products[2].ID},
		})
		require.NoError(t, err)
		require.Equal(t, bruno.ID, updated.Client.ID)
		require.Len(t, updated.Products, 1)
		require.Equal(t, "monitor", updated.Products[0].Name)
	})

	t.Run("dangling references are 404s", func(t *testing.T) {
		_, err := session.CreateSale(t.Context(), salesdk.CreateSaleRequest{
			ClientID:   99999,
			ProductIDs: []int64{products[0].ID},
		})
		require.True(t, salesdk.IsNotFound(err), "expected 404, got: %v", err)

		_, err = session.CreateSale(t.Context(), salesdk.CreateSaleRequest{
			ClientID:   ana.ID,
			ProductIDs: []int64{products[0].ID, 99999},
		})
		require.True(t, salesdk.IsNotFound(err), "expected 404, got: %v", err)
	})

	t.Run("empty product set on update is rejected", func(t *testing.T) {
		_, err := session.UpdateSale(t.Context(), sale.ID, salesdk.UpdateSaleRequest{
			ProductIDs: []int64{},
		})

		var apiErr *salesdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)

		unchanged, err := session.GetSale(t.Context(), sale.ID)
		require.NoError(t, err)
		require.NotEmpty(t, unchanged.Products)
	})

	t.Run("delete removes the sale but keeps the catalogue", func(t *testing.T) {
		require.NoError(t, session.DeleteSale(t.Context(), sale.ID))

		_, err := session.GetSale(t.Context(), sale.ID)
		require.True(t, salesdk.IsNotFound(err), "expected 404, got: %v", err)

		remaining, err := session.ListProducts(t.Context(), nil, nil)
		require.NoError(t, err)
		require.Len(t, remaining, len(products))
	})
}

// TestClientAccountManagement covers client reads, partial updates and
// deletion through the authenticated surface.
func TestClientAccountManagement(t *testing.T) {
	baseURL, cleanup := setupSalesContainer(t)
	defer cleanup()

	sdk := salesdk.NewSDKClient(baseURL)
	session, ana := registerAndLogin(t, sdk, "Ana", "ana@example.com")
	_, carla := registerAndLogin(t, sdk, "Carla", "carla@example.com")

	t.Run("partial update changes only what was sent", func(t *testing.T) {
		name := "Ana Maria"
		updated, err := session.UpdateClient(t.Context(), ana.ID, salesdk.UpdateClientRequest{
			Name: &name,
		})
		require.NoError(t, err)
		require.Equal(t, "Ana Maria", updated.Name)
		require.Equal(t, "ana@example.com", updated.Email)
	})

	t.Run("email collision is a conflict", func(t *testing.T) {
		email := "carla@example.com"
		_, err := session.UpdateClient(t.Context(), ana.ID, salesdk.UpdateClientRequest{
			Email: &email,
		})
		require.True(t, salesdk.IsConflict(err), "expected 409, got: %v", err)
	})

	t.Run("password change takes effect", func(t *testing.T) {
		pw := "another-secret!"
		_, err := session.UpdateClient(t.Context(), carla.ID, salesdk.UpdateClientRequest{
			Password: &pw,
		})
		require.NoError(t, err)

		_, err = sdk.Login(t.Context(), "carla@example.com", testPassword)
		require.True(t, salesdk.IsUnauthorized(err), "old password must stop working")

		_, err = sdk.Login(t.Context(), "carla@example.com", pw)
		require.NoError(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, session.DeleteClient(t.Context(), carla.ID))

		_, err := session.GetClient(t.Context(), carla.ID)
		require.True(t, salesdk.IsNotFound(err), "expected 404, got: %v", err)
	})
}
