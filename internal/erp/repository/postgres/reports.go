package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/domain"
)

type ReportRepository struct {
	db DB
}

func (r *ReportRepository) SalesSummary(ctx context.Context, from, to time.Time) (*domain.SalesReport, error) {
	report := domain.SalesReport{From: from, To: to}
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total), 0), COALESCE(SUM(quantity), 0)
		FROM sales
		WHERE sale_date >= $1 AND sale_date < $2
	`, from, to).Scan(&report.OrderCount, &report.TotalSales, &report.UnitsSold)
	if err != nil {
		return nil, fmt.Errorf("failed to build sales summary: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT s.product_id, p.name, COALESCE(SUM(s.quantity), 0), COALESCE(SUM(s.total), 0)
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.sale_date >= $1 AND s.sale_date < $2
		GROUP BY s.product_id, p.name
		ORDER BY SUM(s.total) DESC
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to build per-product breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.ProductSales
		if err := rows.Scan(&line.ProductID, &line.ProductName, &line.UnitsSold, &line.Total); err != nil {
			return nil, fmt.Errorf("failed to scan product sales line: %w", err)
		}
		report.Products = append(report.Products, line)
	}
	return &report, rows.Err()
}

func (r *ReportRepository) LowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE stock_quantity <= $1
		ORDER BY stock_quantity ASC
	`, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
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
