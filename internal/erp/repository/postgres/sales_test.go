package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/domain"
	repo "github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/repository/postgres"
	erperror "github.com/Mustafa1998-tech/ERPCompanySystem/internal/errors"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSale() *domain.Sale {
	return &domain.Sale{
		ID:        "sale-1",
		ClientID:  "client-1",
		ProductID: "product-1",
		Quantity:  3,
		UnitPrice: 10,
		Total:     30,
		SoldBy:    "alice",
		SaleDate:  time.Now().UTC(),
		CreatedAt: time.Now().UTC(),
	}
}

func TestCreateSale_DecrementsStockAndCommits(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := repo.NewStore(mock)
	sale := testSale()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE products SET stock_quantity = stock_quantity -").
		WithArgs(sale.ProductID, sale.Quantity).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO sales").
		WithArgs(sale.ID, sale.ClientID, sale.ProductID, sale.Quantity,
			sale.UnitPrice, sale.Total, sale.SoldBy, sale.SaleDate, sale.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO stock_movements").
		WithArgs(pgxmock.AnyArg(), sale.ProductID, sale.SaleDate, domain.MovementTypeOut,
			-sale.Quantity, sale.ID, "", sale.SoldBy).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	require.NoError(t, store.Sales.Create(context.Background(), sale))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// When the conditional decrement matches no row the sale must roll back and
// stock stays untouched.
func TestCreateSale_InsufficientStockRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := repo.NewStore(mock)
	sale := testSale()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE products SET stock_quantity = stock_quantity -").
		WithArgs(sale.ProductID, sale.Quantity).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err = store.Sales.Create(context.Background(), sale)
	assert.ErrorIs(t, err, erperror.ErrInsufficientStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSale_InsertFailureRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := repo.NewStore(mock)
	sale := testSale()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE products SET stock_quantity = stock_quantity -").
		WithArgs(sale.ProductID, sale.Quantity).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO sales").
		WithArgs(sale.ID, sale.ClientID, sale.ProductID, sale.Quantity,
			sale.UnitPrice, sale.Total, sale.SoldBy, sale.SaleDate, sale.CreatedAt).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = store.Sales.Create(context.Background(), sale)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSale_RestoresStock(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := repo.NewStore(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("DELETE FROM sales").
		WithArgs("sale-1").
		WillReturnRows(pgxmock.NewRows([]string{"product_id", "quantity"}).
			AddRow("product-1", 3))
	mock.ExpectExec(`UPDATE products SET stock_quantity = stock_quantity \+`).
		WithArgs("product-1", 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO stock_movements").
		WithArgs(pgxmock.AnyArg(), "product-1", pgxmock.AnyArg(), domain.MovementTypeAdjustment,
			3, "sale-1", "sale cancelled", "").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	require.NoError(t, store.Sales.Delete(context.Background(), "sale-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePurchase_IncrementsStock(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := repo.NewStore(mock)
	purchase := &domain.Purchase{
		ID:           "purchase-1",
		SupplierID:   "supplier-1",
		ProductID:    "product-1",
		Quantity:     10,
		UnitCost:     4,
		Total:        40,
		PurchaseDate: time.Now().UTC(),
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE products SET stock_quantity = stock_quantity \+`).
		WithArgs(purchase.ProductID, purchase.Quantity).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO purchases").
		WithArgs(purchase.ID, purchase.SupplierID, purchase.ProductID, purchase.Quantity,
			purchase.UnitCost, purchase.Total, purchase.PurchaseDate, purchase.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO stock_movements").
		WithArgs(pgxmock.AnyArg(), purchase.ProductID, purchase.PurchaseDate, domain.MovementTypeIn,
			purchase.Quantity, purchase.ID, "", "").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	require.NoError(t, store.Purchases.Create(context.Background(), purchase))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesSummary(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := repo.NewStore(mock)
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(from, to).
		WillReturnRows(pgxmock.NewRows([]string{"count", "sum", "sum"}).
			AddRow(12, 340.5, 57))
	mock.ExpectQuery(`SELECT s.product_id, p.name`).
		WithArgs(from, to).
		WillReturnRows(pgxmock.NewRows([]string{"product_id", "name", "sum", "sum"}).
			AddRow("product-1", "Widget", 40, 280.5).
			AddRow("product-2", "Gadget", 17, 60.0))

	report, err := store.Reports.SalesSummary(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, 12, report.OrderCount)
	assert.Equal(t, 340.5, report.TotalSales)
	assert.Equal(t, 57, report.UnitsSold)
	require.Len(t, report.Products, 2)
	assert.Equal(t, "Widget", report.Products[0].ProductName)
	assert.Equal(t, 40, report.Products[0].UnitsSold)
}

func TestLowStock(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := repo.NewStore(mock)
	columns := []string{"id", "name", "sku", "description", "price", "cost",
		"stock_quantity", "warehouse_id", "created_at"}

	mock.ExpectQuery("SELECT id, name, sku").
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("product-1", "Widget", "W-1", "", 10.0, 4.0, 2, "wh-1", time.Now()))

	products, err := store.Reports.LowStock(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 2, products[0].StockQuantity)
}
