package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradewindmarket/vendas/internal/sales/store"
)

func TestProductCreate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ProductService{Store: st}

	t.Run("creates with description", func(t *testing.T) {
		product, err := svc.Create(ctx, "keyboard", "65% mechanical", 349.90)
		require.NoError(t, err)
		assert.NotZero(t, product.ID)
		assert.Equal(t, "65% mechanical", product.Description)
		assert.Equal(t, 349.90, product.Price)
	})

	t.Run("description is optional", func(t *testing.T) {
		product, err := svc.Create(ctx, "mouse", "", 99.00)
		require.NoError(t, err)
		assert.Empty(t, product.Description)
	})

	t.Run("free products are allowed", func(t *testing.T) {
		_, err := svc.Create(ctx, "sticker", "", 0)
		require.NoError(t, err)
	})

	t.Run("rejects negative price and empty name", func(t *testing.T) {
		_, err := svc.Create(ctx, "broken", "", -1)
		require.ErrorIs(t, err, ErrValidation)

		_, err = svc.Create(ctx, "  ", "", 10)
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestProductListFilter(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ProductService{Store: st}

	seedProduct(t, st, "cheap", 5)
	seedProduct(t, st, "mid", 50)
	seedProduct(t, st, "dear", 500)

	names := func(min, max *float64) []string {
		products, err := svc.List(ctx, store.ProductFilter{MinPrice: min, MaxPrice: max})
		require.NoError(t, err)
		out := make([]string, len(products))
		for i, p := range products {
			out[i] = p.Name
		}
		return out
	}

	f := func(v float64) *float64 { return &v }

	assert.Equal(t, []string{"cheap", "mid", "dear"}, names(nil, nil))
	assert.Equal(t, []string{"mid", "dear"}, names(f(10), nil))
	assert.Equal(t, []string{"cheap", "mid"}, names(nil, f(100)))
	assert.Equal(t, []string{"mid"}, names(f(10), f(100)))

	t.Run("rejects inverted or negative bounds", func(t *testing.T) {
		_, err := svc.List(ctx, store.ProductFilter{MinPrice: f(100), MaxPrice: f(10)})
		require.ErrorIs(t, err, ErrValidation)

		_, err = svc.List(ctx, store.ProductFilter{MinPrice: f(-1)})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestProductUpdate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ProductService{Store: st}

	product := seedProduct(t, st, "webcam", 200)

	t.Run("partial update", func(t *testing.T) {
		price := 180.0
		updated, err := svc.Update(ctx, product.ID, ProductPatch{Price: &price})
		require.NoError(t, err)
		assert.Equal(t, 180.0, updated.Price)
		assert.Equal(t, "webcam", updated.Name)
	})

	t.Run("rejects negative patched price", func(t *testing.T) {
		price := -5.0
		_, err := svc.Update(ctx, product.ID, ProductPatch{Price: &price})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects unknown id", func(t *testing.T) {
		name := "ghost"
		_, err := svc.Update(ctx, 8181, ProductPatch{Name: &name})
		require.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestProductGetAndRemove(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ProductService{Store: st}

	product := seedProduct(t, st, "dock", 700)

	got, err := svc.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "dock", got.Name)

	require.NoError(t, svc.Remove(ctx, product.ID))

	_, err = svc.Get(ctx, product.ID)
	require.ErrorIs(t, err, ErrProductNotFound)
	require.ErrorIs(t, svc.Remove(ctx, product.ID), ErrProductNotFound)
}
