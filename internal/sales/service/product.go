package service

import (
	"context"
	"errors"
	"strings"

	"github.com/tradewindmarket/vendas/internal/sales/domain"
	"github.com/tradewindmarket/vendas/internal/sales/store"
	"github.com/tradewindmarket/vendas/pkg/slogx"
)

// ProductService manages the sellable catalogue.
type ProductService struct {
	Store store.Store
}

// ProductPatch carries a partial update. Nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
}

// Create adds a product to the catalogue.
func (s *ProductService) Create(ctx context.Context, name, description string, price float64) (domain.Product, error) {
	l := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	if err := validateProductFields(name, price); err != nil {
		return domain.Product{}, err
	}

	id, err := s.Store.Products().CreateProduct(ctx, domain.Product{
		Name:        name,
		Description: strings.TrimSpace(description),
		Price:       price,
	})
	if err != nil {
		l.Error("failed to create product", "error", err)
		return domain.Product{}, err
	}

	product, err := s.Store.Products().GetProductByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	l.Info("product created", "product_id", id)
	return product, nil
}

// Get returns a single product by id.
func (s *ProductService) Get(ctx context.Context, id int64) (domain.Product, error) {
	product, err := s.Store.Products().GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Product{}, ErrProductNotFound
		}
		return domain.Product{}, err
	}
	return product, nil
}

// List returns products, optionally narrowed by a price range.
func (s *ProductService) List(ctx context.Context, filter store.ProductFilter) ([]domain.Product, error) {
	if filter.MinPrice != nil && *filter.MinPrice < 0 {
		return nil, validationf("min_price must not be negative")
	}
	if filter.MaxPrice != nil && *filter.MaxPrice < 0 {
		return nil, validationf("max_price must not be negative")
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, validationf("min_price must not exceed max_price")
	}
	return s.Store.Products().ListProducts(ctx, filter)
}

// Update applies a partial update. Returns ErrProductNotFound when the id
// is unknown.
func (s *ProductService) Update(ctx context.Context, id int64, patch ProductPatch) (domain.Product, error) {
	l := slogx.FromContext(ctx)

	var updated domain.Product
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		product, err := tx.Products().GetProductByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		if patch.Name != nil {
			product.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Description != nil {
			product.Description = strings.TrimSpace(*patch.Description)
		}
		if patch.Price != nil {
			product.Price = *patch.Price
		}
		if err := validateProductFields(product.Name, product.Price); err != nil {
			return err
		}

		if err := tx.Products().UpdateProduct(ctx, product); err != nil {
			return err
		}

		updated, err = tx.Products().GetProductByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.Product{}, err
	}

	l.Info("product updated", "product_id", id)
	return updated, nil
}

// Remove deletes a product. Returns ErrProductNotFound when the id is unknown.
func (s *ProductService) Remove(ctx context.Context, id int64) error {
	err := s.Store.Products().DeleteProduct(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("product deleted", "product_id", id)
	return nil
}

func validateProductFields(name string, price float64) error {
	if name == "" {
		return validationf("name must not be empty")
	}
	if price < 0 {
		return validationf("price must not be negative")
	}
	return nil
}
