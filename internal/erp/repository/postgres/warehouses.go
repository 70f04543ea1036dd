package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/domain"
	"github.com/jackc/pgx/v5"
)

type WarehouseRepository struct {
	db DB
}

func (r *WarehouseRepository) List(ctx context.Context) ([]domain.Warehouse, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, location, created_at FROM warehouses ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list warehouses: %w", err)
	}
	defer rows.Close()

	var warehouses []domain.Warehouse
	for rows.Next() {
		var w domain.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Location, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan warehouse: %w", err)
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, rows.Err()
}

func (r *WarehouseRepository) GetByID(ctx context.Context, id string) (*domain.Warehouse, error) {
	var w domain.Warehouse
	err := r.db.QueryRow(ctx, `
		SELECT id, name, location, created_at FROM warehouses WHERE id = $1
	`, id).Scan(&w.ID, &w.Name, &w.Location, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get warehouse: %w", err)
	}
	return &w, nil
}

func (r *WarehouseRepository) Create(ctx context.Context, warehouse *domain.Warehouse) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO warehouses (id, name, location, created_at)
		VALUES ($1, $2, $3, $4)
	`, warehouse.ID, warehouse.Name, warehouse.Location, warehouse.CreatedAt)
	return err
}

func (r *WarehouseRepository) Update(ctx context.Context, warehouse *domain.Warehouse) error {
	_, err := r.db.Exec(ctx, `
		UPDATE warehouses SET name = $2, location = $3 WHERE id = $1
	`, warehouse.ID, warehouse.Name, warehouse.Location)
	return err
}

func (r *WarehouseRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM warehouses WHERE id = $1`, id)
	return err
}
