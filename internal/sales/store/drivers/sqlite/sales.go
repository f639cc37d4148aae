package sqlite

import (
	"context"

	"github.com/tradewindmarket/vendas/internal/sales/domain"
)

type salesRepo struct {
	db dbtx
}

const saleColumns = `id, client_id, created_at, updated_at`

func (r *salesRepo) CreateSale(ctx context.Context, clientID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO sale (client_id) VALUES (?)`, clientID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *salesRepo) GetSaleByID(ctx context.Context, id int64) (domain.Sale, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+saleColumns+` FROM sale WHERE id = ?`, id)

	var s domain.Sale
	if err := row.Scan(&s.ID, &s.ClientID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return domain.Sale{}, mapNotFound(err)
	}
	return s, nil
}

func (r *salesRepo) ListSales(ctx context.Context) ([]domain.Sale, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+saleColumns+` FROM sale ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var s domain.Sale
		if err := rows.Scan(&s.ID, &s.ClientID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *salesRepo) UpdateSaleClient(ctx context.Context, saleID, clientID int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sale SET client_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		clientID, saleID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *salesRepo) TouchSale(ctx context.Context, saleID int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sale SET updated_at = CURRENT_TIMESTAMP WHERE id = ?`, saleID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *salesRepo) ReplaceSaleProducts(ctx context.Context, saleID int64, productIDs []int64) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM sale_products WHERE sale_id = ?`, saleID); err != nil {
		return err
	}

	for _, productID := range productIDs {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO sale_products (sale_id, product_id) VALUES (?, ?)`,
			saleID, productID,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *salesRepo) GetSaleProductIDs(ctx context.Context, saleID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id FROM sale_products WHERE sale_id = ? ORDER BY product_id`, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *salesRepo) DeleteSale(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sale WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
