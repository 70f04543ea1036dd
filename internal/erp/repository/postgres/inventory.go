package postgres

import (
	"context"
	"fmt"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/domain"
	erperror "github.com/Mustafa1998-tech/ERPCompanySystem/internal/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type InventoryRepository struct {
	db DB
}

const movementColumns = `id, product_id, movement_date, movement_type, quantity, reference_number, description, created_by`

func (r *InventoryRepository) ListMovements(ctx context.Context) ([]domain.StockMovement, error) {
	rows, err := r.db.Query(ctx, `SELECT `+movementColumns+` FROM stock_movements ORDER BY movement_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}
	defer rows.Close()

	var movements []domain.StockMovement
	for rows.Next() {
		var m domain.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.MovementDate, &m.MovementType,
			&m.Quantity, &m.ReferenceNumber, &m.Description, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan stock movement: %w", err)
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

// AdjustStock applies the signed quantity and writes the ledger entry in one
// transaction. The update is conditional so a negative correction cannot take
// stock below zero.
func (r *InventoryRepository) AdjustStock(ctx context.Context, movement *domain.StockMovement) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin adjustment transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE products SET stock_quantity = stock_quantity + $2
		WHERE id = $1 AND stock_quantity + $2 >= 0
	`, movement.ProductID, movement.Quantity)
	if err != nil {
		return fmt.Errorf("failed to adjust stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`,
			movement.ProductID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check product: %w", err)
		}
		if !exists {
			return erperror.ErrNotFound
		}
		return erperror.ErrInsufficientStock
	}

	if err := recordMovement(ctx, tx, movement); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// recordMovement appends one ledger row. Sales and purchases call it inside
// their own transactions so the ledger and the stock level move together.
func recordMovement(ctx context.Context, db execer, m *domain.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	_, err := db.Exec(ctx, `
		INSERT INTO stock_movements (id, product_id, movement_date, movement_type, quantity, reference_number, description, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, m.ID, m.ProductID, m.MovementDate, m.MovementType, m.Quantity,
		m.ReferenceNumber, m.Description, m.CreatedBy)
	if err != nil {
		return fmt.Errorf("failed to record stock movement: %w", err)
	}
	return nil
}
