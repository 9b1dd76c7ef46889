package sales

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, sale *Sale) error {
	items, err := json.Marshal(sale.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO sales
		  (id, items, total_amount, items_count, seller_id, hidden, sale_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		sale.ID, items, sale.TotalAmount, sale.ItemsCount, sale.SellerID,
		sale.Hidden, sale.SaleDate)
	return err
}

type rowScanner interface{ Scan(dest ...interface{}) error }

func scanSale(row rowScanner) (*Sale, error) {
	s := &Sale{}
	var items []byte
	var sellerID sql.NullString
	err := row.Scan(&s.ID, &items, &s.TotalAmount, &s.ItemsCount,
		&sellerID, &s.Hidden, &s.SaleDate, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &s.Items); err != nil {
			return nil, fmt.Errorf("decode items: %w", err)
		}
	}
	if sellerID.Valid {
		uid, err := uuid.Parse(sellerID.String)
		if err == nil {
			s.SellerID = &uid
		}
	}
	return s, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Sale, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return scanSale(r.db.QueryRowContext(ctx, `
		SELECT id,items,total_amount,items_count,seller_id,hidden,sale_date,created_at
		FROM sales WHERE id=$1`, uid))
}

func (r *postgresRepo) List(ctx context.Context, includeHidden bool) ([]*Sale, error) {
	query := `SELECT id,items,total_amount,items_count,seller_id,hidden,sale_date,created_at
	          FROM sales`
	if !includeHidden {
		query += ` WHERE hidden=false`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *postgresRepo) SetHidden(ctx context.Context, id string, hidden bool) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `UPDATE sales SET hidden=$1 WHERE id=$2`, hidden, uid)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `DELETE FROM sales WHERE id=$1`, uid)
	return err
}
