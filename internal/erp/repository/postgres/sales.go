package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/domain"
	erperror "github.com/Mustafa1998-tech/ERPCompanySystem/internal/errors"
	"github.com/jackc/pgx/v5"
)

type SaleRepository struct {
	db DB
}

const saleColumns = `id, client_id, product_id, quantity, unit_price, total, sold_by, sale_date, created_at`

func (r *SaleRepository) List(ctx context.Context) ([]domain.Sale, error) {
	rows, err := r.db.Query(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY sale_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var s domain.Sale
		if err := rows.Scan(&s.ID, &s.ClientID, &s.ProductID, &s.Quantity, &s.UnitPrice,
			&s.Total, &s.SoldBy, &s.SaleDate, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *SaleRepository) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	var s domain.Sale
	err := r.db.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id).
		Scan(&s.ID, &s.ClientID, &s.ProductID, &s.Quantity, &s.UnitPrice,
			&s.Total, &s.SoldBy, &s.SaleDate, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}
	return &s, nil
}

// Create decrements stock and inserts the sale atomically. The decrement is
// conditional on sufficient stock, so concurrent sales of the last units
// cannot drive the quantity negative.
func (r *SaleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin sale transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE products SET stock_quantity = stock_quantity - $2
		WHERE id = $1 AND stock_quantity >= $2
	`, sale.ProductID, sale.Quantity)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return erperror.ErrInsufficientStock
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO sales (id, client_id, product_id, quantity, unit_price, total, sold_by, sale_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, sale.ID, sale.ClientID, sale.ProductID, sale.Quantity, sale.UnitPrice,
		sale.Total, sale.SoldBy, sale.SaleDate, sale.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert sale: %w", err)
	}

	err = recordMovement(ctx, tx, &domain.StockMovement{
		ProductID:       sale.ProductID,
		MovementDate:    sale.SaleDate,
		MovementType:    domain.MovementTypeOut,
		Quantity:        -sale.Quantity,
		ReferenceNumber: sale.ID,
		CreatedBy:       sale.SoldBy,
	})
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes the sale and returns the sold quantity to stock.
func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin sale transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var productID string
	var quantity int
	err = tx.QueryRow(ctx, `
		DELETE FROM sales WHERE id = $1 RETURNING product_id, quantity
	`, id).Scan(&productID, &quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return erperror.ErrNotFound
		}
		return fmt.Errorf("failed to delete sale: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE products SET stock_quantity = stock_quantity + $2 WHERE id = $1
	`, productID, quantity)
	if err != nil {
		return fmt.Errorf("failed to restore stock: %w", err)
	}

	err = recordMovement(ctx, tx, &domain.StockMovement{
		ProductID:       productID,
		MovementDate:    time.Now().UTC(),
		MovementType:    domain.MovementTypeAdjustment,
		Quantity:        quantity,
		ReferenceNumber: id,
		Description:     "sale cancelled",
	})
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}
