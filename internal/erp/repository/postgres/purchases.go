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

type PurchaseRepository struct {
	db DB
}

const purchaseColumns = `id, supplier_id, product_id, quantity, unit_cost, total, purchase_date, created_at`

func (r *PurchaseRepository) List(ctx context.Context) ([]domain.Purchase, error) {
	rows, err := r.db.Query(ctx, `SELECT `+purchaseColumns+` FROM purchases ORDER BY purchase_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var p domain.Purchase
		if err := rows.Scan(&p.ID, &p.SupplierID, &p.ProductID, &p.Quantity, &p.UnitCost,
			&p.Total, &p.PurchaseDate, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}

func (r *PurchaseRepository) GetByID(ctx context.Context, id string) (*domain.Purchase, error) {
	var p domain.Purchase
	err := r.db.QueryRow(ctx, `SELECT `+purchaseColumns+` FROM purchases WHERE id = $1`, id).
		Scan(&p.ID, &p.SupplierID, &p.ProductID, &p.Quantity, &p.UnitCost,
			&p.Total, &p.PurchaseDate, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}
	return &p, nil
}

// Create inserts the purchase and adds the received quantity to stock in one
// transaction.
func (r *PurchaseRepository) Create(ctx context.Context, purchase *domain.Purchase) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin purchase transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE products SET stock_quantity = stock_quantity + $2 WHERE id = $1
	`, purchase.ProductID, purchase.Quantity)
	if err != nil {
		return fmt.Errorf("failed to increment stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return erperror.ErrNotFound
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO purchases (id, supplier_id, product_id, quantity, unit_cost, total, purchase_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, purchase.ID, purchase.SupplierID, purchase.ProductID, purchase.Quantity,
		purchase.UnitCost, purchase.Total, purchase.PurchaseDate, purchase.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert purchase: %w", err)
	}

	err = recordMovement(ctx, tx, &domain.StockMovement{
		ProductID:       purchase.ProductID,
		MovementDate:    purchase.PurchaseDate,
		MovementType:    domain.MovementTypeIn,
		Quantity:        purchase.Quantity,
		ReferenceNumber: purchase.ID,
	})
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes the purchase and takes its quantity back out of stock. The
// decrement is conditional so undoing a purchase cannot leave stock negative.
func (r *PurchaseRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin purchase transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var productID string
	var quantity int
	err = tx.QueryRow(ctx, `
		DELETE FROM purchases WHERE id = $1 RETURNING product_id, quantity
	`, id).Scan(&productID, &quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return erperror.ErrNotFound
		}
		return fmt.Errorf("failed to delete purchase: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE products SET stock_quantity = stock_quantity - $2
		WHERE id = $1 AND stock_quantity >= $2
	`, productID, quantity)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return erperror.ErrInsufficientStock
	}

	err = recordMovement(ctx, tx, &domain.StockMovement{
		ProductID:       productID,
		MovementDate:    time.Now().UTC(),
		MovementType:    domain.MovementTypeAdjustment,
		Quantity:        -quantity,
		ReferenceNumber: id,
		Description:     "purchase cancelled",
	})
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}
