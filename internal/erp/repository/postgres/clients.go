package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/domain"
	"github.com/jackc/pgx/v5"
)

type ClientRepository struct {
	db DB
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, phone, address, created_at FROM clients ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	var c domain.Client
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, phone, address, created_at FROM clients WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &c, nil
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO clients (id, name, email, phone, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, client.ID, client.Name, client.Email, client.Phone, client.Address, client.CreatedAt)
	return err
}

func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	_, err := r.db.Exec(ctx, `
		UPDATE clients SET name = $2, email = $3, phone = $4, address = $5 WHERE id = $1
	`, client.ID, client.Name, client.Email, client.Phone, client.Address)
	return err
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	return err
}
