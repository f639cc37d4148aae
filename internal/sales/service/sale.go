package service

import (
	"context"
	"errors"

	"github.com/tradewindmarket/vendas/internal/sales/domain"
	"github.com/tradewindmarket/vendas/internal/sales/store"
	"github.com/tradewindmarket/vendas/pkg/slogx"
)

// SaleService owns the sale aggregate: the sale row, its client reference
// and its product set. All multi-row writes run inside one transaction so a
// failed reference check never leaves partial state behind.
type SaleService struct {
	Store store.Store
}

// SalePatch carries a partial update. A nil ClientID leaves the client
// untouched. A nil ProductIDs slice leaves the product set untouched; a
// non-nil empty slice is rejected, a sale cannot exist without products.
type SalePatch struct {
	ClientID   *int64
	ProductIDs []int64
}

// Create records a new sale for clientID covering productIDs. Duplicate ids
// collapse into the set. Every referenced product must exist, as must the
// client, otherwise nothing is written.
func (s *SaleService) Create(ctx context.Context, clientID int64, productIDs []int64) (domain.Sale, error) {
	l := slogx.FromContext(ctx)

	if clientID <= 0 {
		return domain.Sale{}, validationf("client_id must be a positive integer")
	}
	if len(productIDs) == 0 {
		return domain.Sale{}, validationf("product_ids must not be empty")
	}
	ids, err := normalizeProductIDs(productIDs)
	if err != nil {
		return domain.Sale{}, err
	}

	var sale domain.Sale
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		client, err := tx.Clients().GetClientByID(ctx, clientID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrClientNotFound
			}
			return err
		}

		products, err := resolveProducts(ctx, tx, ids)
		if err != nil {
			return err
		}

		saleID, err := tx.Sales().CreateSale(ctx, clientID)
		if err != nil {
			return err
		}
		if err := tx.Sales().ReplaceSaleProducts(ctx, saleID, ids); err != nil {
			return err
		}

		sale, err = tx.Sales().GetSaleByID(ctx, saleID)
		if err != nil {
			return err
		}
		client.PasswordHash = ""
		sale.Client = &client
		sale.Products = products
		return nil
	})
	if err != nil {
		return domain.Sale{}, err
	}

	l.Info("sale created", "sale_id", sale.ID, "client_id", clientID, "products", len(sale.Products))
	return sale, nil
}

// Get returns a sale with its client and product set resolved.
func (s *SaleService) Get(ctx context.Context, id int64) (domain.Sale, error) {
	sale, err := s.Store.Sales().GetSaleByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Sale{}, ErrSaleNotFound
		}
		return domain.Sale{}, err
	}
	if err := s.hydrate(ctx, s.Store, &sale); err != nil {
		return domain.Sale{}, err
	}
	return sale, nil
}

// List returns every sale, each with its client and product set resolved.
func (s *SaleService) List(ctx context.Context) ([]domain.Sale, error) {
	sales, err := s.Store.Sales().ListSales(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		if err := s.hydrate(ctx, s.Store, &sales[i]); err != nil {
			return nil, err
		}
	}
	return sales, nil
}

// Update applies a partial update to a sale. A provided client id must
// reference an existing client and provided product ids replace the whole
// product set. An empty patch leaves the sale unchanged.
func (s *SaleService) Update(ctx context.Context, id int64, patch SalePatch) (domain.Sale, error) {
	l := slogx.FromContext(ctx)

	if patch.ClientID != nil && *patch.ClientID <= 0 {
		return domain.Sale{}, validationf("client_id must be a positive integer")
	}

	var ids []int64
	if patch.ProductIDs != nil {
		if len(patch.ProductIDs) == 0 {
			return domain.Sale{}, validationf("product_ids must not be empty")
		}
		var err error
		ids, err = normalizeProductIDs(patch.ProductIDs)
		if err != nil {
			return domain.Sale{}, err
		}
	}

	var sale domain.Sale
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		sale, err := tx.Sales().GetSaleByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrSaleNotFound
			}
			return err
		}

		touched := false
		if patch.ClientID != nil && *patch.ClientID != sale.ClientID {
			if _, err := tx.Clients().GetClientByID(ctx, *patch.ClientID); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return ErrClientNotFound
				}
				return err
			}
			if err := tx.Sales().UpdateSaleClient(ctx, id, *patch.ClientID); err != nil {
				return err
			}
			touched = true
		}

		if ids != nil {
			if _, err := resolveProducts(ctx, tx, ids); err != nil {
				return err
			}
			if err := tx.Sales().ReplaceSaleProducts(ctx, id, ids); err != nil {
				return err
			}
			if !touched {
				if err := tx.Sales().TouchSale(ctx, id); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return domain.Sale{}, err
	}

	sale, err = s.Store.Sales().GetSaleByID(ctx, id)
	if err != nil {
		return domain.Sale{}, err
	}
	if err := s.hydrate(ctx, s.Store, &sale); err != nil {
		return domain.Sale{}, err
	}

	l.Info("sale updated", "sale_id", id)
	return sale, nil
}

// Remove deletes a sale together with its association rows.
func (s *SaleService) Remove(ctx context.Context, id int64) error {
	err := s.Store.Sales().DeleteSale(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSaleNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("sale deleted", "sale_id", id)
	return nil
}

// hydrate resolves the sale's client and product set in place.
func (s *SaleService) hydrate(ctx context.Context, st store.Store, sale *domain.Sale) error {
	client, err := st.Clients().GetClientByID(ctx, sale.ClientID)
	if err != nil {
		return err
	}
	client.PasswordHash = ""
	sale.Client = &client

	ids, err := st.Sales().GetSaleProductIDs(ctx, sale.ID)
	if err != nil {
		return err
	}
	products, err := st.Products().GetProductsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	sale.Products = products
	return nil
}

// resolveProducts loads every product in ids and fails with
// ErrProductNotFound when any id is dangling.
func resolveProducts(ctx context.Context, st store.Store, ids []int64) ([]domain.Product, error) {
	products, err := st.Products().GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(products) != len(ids) {
		return nil, ErrProductNotFound
	}
	return products, nil
}

// normalizeProductIDs rejects non-positive ids and collapses duplicates
// while keeping first-seen order.
func normalizeProductIDs(ids []int64) ([]int64, error) {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, validationf("product_ids must be positive integers")
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
