package domain

import (
	"context"
	"time"
)

type ClientRepository interface {
	List(ctx context.Context) ([]Client, error)
	GetByID(ctx context.Context, id string) (*Client, error)
	Create(ctx context.Context, client *Client) error
	Update(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id string) error
}

type SupplierRepository interface {
	List(ctx context.Context) ([]Supplier, error)
	GetByID(ctx context.Context, id string) (*Supplier, error)
	Create(ctx context.Context, supplier *Supplier) error
	Update(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id string) error
}

type WarehouseRepository interface {
	List(ctx context.Context) ([]Warehouse, error)
	GetByID(ctx context.Context, id string) (*Warehouse, error)
	Create(ctx context.Context, warehouse *Warehouse) error
	Update(ctx context.Context, warehouse *Warehouse) error
	Delete(ctx context.Context, id string) error
}

type ProductRepository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id string) error
}

type SaleRepository interface {
	List(ctx context.Context) ([]Sale, error)
	GetByID(ctx context.Context, id string) (*Sale, error)
	// Create decrements product stock and inserts the sale in one
	// transaction. It fails with ErrInsufficientStock when the product is
	// missing or understocked; stock can never go negative.
	Create(ctx context.Context, sale *Sale) error
	// Delete removes the sale and restores the sold quantity to stock.
	Delete(ctx context.Context, id string) error
}

type PurchaseRepository interface {
	List(ctx context.Context) ([]Purchase, error)
	GetByID(ctx context.Context, id string) (*Purchase, error)
	// Create inserts the purchase and increments product stock in one
	// transaction.
	Create(ctx context.Context, purchase *Purchase) error
	Delete(ctx context.Context, id string) error
}

type InventoryRepository interface {
	// ListMovements returns the full stock ledger, newest first.
	ListMovements(ctx context.Context) ([]StockMovement, error)
	// AdjustStock applies a signed manual correction to product stock and
	// records it in the ledger. Stock can never go negative.
	AdjustStock(ctx context.Context, movement *StockMovement) error
}

type ReportRepository interface {
	SalesSummary(ctx context.Context, from, to time.Time) (*SalesReport, error)
	LowStock(ctx context.Context, threshold int) ([]Product, error)
}
