package sqlite

import (
	"context"
	"database/sql"

	"github.com/tradewindmarket/vendas/internal/sales/domain"
	"github.com/tradewindmarket/vendas/internal/sales/store"
)

type productsRepo struct {
	db dbtx
}

const productColumns = `id, name, description, price, created_at, updated_at`

func (r *productsRepo) CreateProduct(ctx context.Context, p domain.Product) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO product (name, description, price) VALUES (?, ?, ?)`,
		p.Name, mapStringNull(p.Description), p.Price,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *productsRepo) GetProductByID(ctx context.Context, id int64) (domain.Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM product WHERE id = ?`, id)
	return scanProduct(row)
}

func (r *productsRepo) GetProductsByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM product WHERE id IN (`+placeholders(len(ids))+`) ORDER BY id`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *productsRepo) ListProducts(ctx context.Context, f store.ProductFilter) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM product`
	var (
		where []string
		args  []any
	)
	if f.MinPrice != nil {
		where = append(where, `price >= ?`)
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		where = append(where, `price <= ?`)
		args = append(args, *f.MaxPrice)
	}
	for i, cond := range where {
		if i == 0 {
			query += ` WHERE ` + cond
		} else {
			query += ` AND ` + cond
		}
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *productsRepo) UpdateProduct(ctx context.Context, p domain.Product) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE product
		    SET name = ?, description = ?, price = ?, updated_at = CURRENT_TIMESTAMP
		  WHERE id = ?`,
		p.Name, mapStringNull(p.Description), p.Price, p.ID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *productsRepo) DeleteProduct(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM product WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func collectProducts(rows *sql.Rows) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func scanProduct(s scanner) (domain.Product, error) {
	var (
		p    domain.Product
		desc sql.NullString
	)
	err := s.Scan(&p.ID, &p.Name, &desc, &p.Price, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Product{}, mapNotFound(err)
	}
	p.Description = mapNullString(desc)
	return p, nil
}
