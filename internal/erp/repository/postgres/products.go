package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/domain"
	"github.com/jackc/pgx/v5"
)

type ProductRepository struct {
	db DB
}

const productColumns = `id, name, sku, description, price, cost, stock_quantity, warehouse_id, created_at`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.SKU, &p.Description, &p.Price, &p.Cost,
		&p.StockQuantity, &p.WarehouseID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Description, &p.Price, &p.Cost,
			&p.StockQuantity, &p.WarehouseID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return scanProduct(r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO products (id, name, sku, description, price, cost, stock_quantity, warehouse_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, product.ID, product.Name, product.SKU, product.Description, product.Price,
		product.Cost, product.StockQuantity, product.WarehouseID, product.CreatedAt)
	return err
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	_, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = $2, sku = $3, description = $4, price = $5, cost = $6, stock_quantity = $7, warehouse_id = $8
		WHERE id = $1
	`, product.ID, product.Name, product.SKU, product.Description, product.Price,
		product.Cost, product.StockQuantity, product.WarehouseID)
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}
