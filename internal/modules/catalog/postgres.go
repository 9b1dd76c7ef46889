package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	quantities, err := json.Marshal(p.Quantities)
	if err != nil {
		return fmt.Errorf("encode quantities: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO products
		  (id, name, description, category, price, image_url, is_active, quantities)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		p.ID, p.Name, p.Description, p.Category, p.Price, p.ImageURL, p.IsActive, quantities)
	return err
}

func scanProduct(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	var quantities []byte
	err := scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price,
		&p.ImageURL, &p.IsActive, &quantities, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Quantities = map[string]int{}
	if len(quantities) > 0 {
		if err := json.Unmarshal(quantities, &p.Quantities); err != nil {
			return nil, fmt.Errorf("decode quantities: %w", err)
		}
	}
	return p, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT id,name,description,category,price,image_url,is_active,quantities,created_at,updated_at
		FROM products WHERE id=$1`, uid)
	return scanProduct(row.Scan)
}

func (r *postgresRepo) List(ctx context.Context, activeOnly bool) ([]*Product, error) {
	query := `SELECT id,name,description,category,price,image_url,is_active,quantities,created_at,updated_at
	          FROM products`
	if activeOnly {
		query += ` WHERE is_active=true`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	quantities, err := json.Marshal(p.Quantities)
	if err != nil {
		return fmt.Errorf("encode quantities: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE products
		SET name=$1, description=$2, category=$3, price=$4, image_url=$5,
		    is_active=$6, quantities=$7, updated_at=NOW()
		WHERE id=$8`,
		p.Name, p.Description, p.Category, p.Price, p.ImageURL,
		p.IsActive, quantities, p.ID)
	return err
}

func (r *postgresRepo) UpdateQuantities(ctx context.Context, id string, qtys map[string]int) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(qtys)
	if err != nil {
		return fmt.Errorf("encode quantities: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`UPDATE products SET quantities=$1, updated_at=NOW() WHERE id=$2`,
		encoded, uid)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, uid)
	return err
}
