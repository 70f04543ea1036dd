package domain

import "time"

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

type Supplier struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contactPerson"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Warehouse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
}

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	SKU           string    `json:"sku"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Cost          float64   `json:"cost"`
	StockQuantity int       `json:"stockQuantity"`
	WarehouseID   string    `json:"warehouseId"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Sale struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
	Total     float64   `json:"total"`
	SoldBy    string    `json:"soldBy"`
	SaleDate  time.Time `json:"saleDate"`
	CreatedAt time.Time `json:"createdAt"`
}

type Purchase struct {
	ID           string    `json:"id"`
	SupplierID   string    `json:"supplierId"`
	ProductID    string    `json:"productId"`
	Quantity     int       `json:"quantity"`
	UnitCost     float64   `json:"unitCost"`
	Total        float64   `json:"total"`
	PurchaseDate time.Time `json:"purchaseDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

const (
	MovementTypeIn         = "IN"
	MovementTypeOut        = "OUT"
	MovementTypeAdjustment = "ADJUSTMENT"
)

// StockMovement is one ledger entry per stock change. Quantity is the signed
// delta applied to the product's stock, so the ledger sums to the current
// level.
type StockMovement struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"productId"`
	MovementDate    time.Time `json:"movementDate"`
	MovementType    string    `json:"movementType"`
	Quantity        int       `json:"quantity"`
	ReferenceNumber string    `json:"referenceNumber"`
	Description     string    `json:"description"`
	CreatedBy       string    `json:"createdBy"`
}

type ProductSales struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	UnitsSold   int     `json:"unitsSold"`
	Total       float64 `json:"total"`
}

type SalesReport struct {
	From       time.Time      `json:"from"`
	To         time.Time      `json:"to"`
	OrderCount int            `json:"orderCount"`
	TotalSales float64        `json:"totalSales"`
	UnitsSold  int            `json:"unitsSold"`
	Products   []ProductSales `json:"products"`
}
