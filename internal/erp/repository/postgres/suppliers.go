package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/domain"
	"github.com/jackc/pgx/v5"
)

type SupplierRepository struct {
	db DB
}

func (r *SupplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, contact_person, email, phone, address, created_at
		FROM suppliers ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	for rows.Next() {
		var s domain.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Address, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (r *SupplierRepository) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	var s domain.Supplier
	err := r.db.QueryRow(ctx, `
		SELECT id, name, contact_person, email, phone, address, created_at
		FROM suppliers WHERE id = $1
	`, id).Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Address, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	return &s, nil
}

func (r *SupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO suppliers (id, name, contact_person, email, phone, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, supplier.ID, supplier.Name, supplier.ContactPerson, supplier.Email,
		supplier.Phone, supplier.Address, supplier.CreatedAt)
	return err
}

func (r *SupplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	_, err := r.db.Exec(ctx, `
		UPDATE suppliers SET name = $2, contact_person = $3, email = $4, phone = $5, address = $6
		WHERE id = $1
	`, supplier.ID, supplier.Name, supplier.ContactPerson, supplier.Email,
		supplier.Phone, supplier.Address)
	return err
}

func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	return err
}
