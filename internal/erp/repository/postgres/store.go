package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the slice of pgxpool.Pool the store uses. Begin is needed because
// sales and purchases move stock and insert a row atomically. pgxmock
// satisfies this interface in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store bundles the per-entity repositories over one connection pool.
type Store struct {
	Clients    *ClientRepository
	Suppliers  *SupplierRepository
	Warehouses *WarehouseRepository
	Products   *ProductRepository
	Sales      *SaleRepository
	Purchases  *PurchaseRepository
	Inventory  *InventoryRepository
	Reports    *ReportRepository
}

func NewStore(db DB) *Store {
	return &Store{
		Clients:    &ClientRepository{db: db},
		Suppliers:  &SupplierRepository{db: db},
		Warehouses: &WarehouseRepository{db: db},
		Products:   &ProductRepository{db: db},
		Sales:      &SaleRepository{db: db},
		Purchases:  &PurchaseRepository{db: db},
		Inventory:  &InventoryRepository{db: db},
		Reports:    &ReportRepository{db: db},
	}
}
