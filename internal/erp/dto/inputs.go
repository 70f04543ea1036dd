package dto

import "time"

type ClientInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type SupplierInput struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

type WarehouseInput struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type ProductInput struct {
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Cost          float64 `json:"cost"`
	StockQuantity int     `json:"stockQuantity"`
	WarehouseID   string  `json:"warehouseId"`
}

type SaleInput struct {
	ClientID  string     `json:"clientId"`
	ProductID string     `json:"productId"`
	Quantity  int        `json:"quantity"`
	UnitPrice float64    `json:"unitPrice"`
	SaleDate  *time.Time `json:"saleDate"`
}

// StockAdjustmentInput corrects product stock by a signed quantity, with an
// optional document reference for the audit trail.
type StockAdjustmentInput struct {
	ProductID       string `json:"productId"`
	Quantity        int    `json:"quantity"`
	ReferenceNumber string `json:"referenceNumber"`
	Description     string `json:"description"`
}

type PurchaseInput struct {
	SupplierID   string     `json:"supplierId"`
	ProductID    string     `json:"productId"`
	Quantity     int        `json:"quantity"`
	UnitCost     float64    `json:"unitCost"`
	PurchaseDate *time.Time `json:"purchaseDate"`
}
