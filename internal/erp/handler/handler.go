package handler

import (
	"log/slog"
	"time"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/domain"
	erperror "github.com/Mustafa1998-tech/ERPCompanySystem/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handler serves the ERP CRUD surface. Authentication and authorization are
// applied at route registration, not here.
type Handler struct {
	clients           domain.ClientRepository
	suppliers         domain.SupplierRepository
	warehouses        domain.WarehouseRepository
	products          domain.ProductRepository
	sales             domain.SaleRepository
	purchases         domain.PurchaseRepository
	inventory         domain.InventoryRepository
	reports           domain.ReportRepository
	lowStockThreshold int
}

type Config struct {
	Clients           domain.ClientRepository
	Suppliers         domain.SupplierRepository
	Warehouses        domain.WarehouseRepository
	Products          domain.ProductRepository
	Sales             domain.SaleRepository
	Purchases         domain.PurchaseRepository
	Inventory         domain.InventoryRepository
	Reports           domain.ReportRepository
	LowStockThreshold int
}

func New(cfg Config) *Handler {
	return &Handler{
		clients:           cfg.Clients,
		suppliers:         cfg.Suppliers,
		warehouses:        cfg.Warehouses,
		products:          cfg.Products,
		sales:             cfg.Sales,
		purchases:         cfg.Purchases,
		inventory:         cfg.Inventory,
		reports:           cfg.Reports,
		lowStockThreshold: cfg.LowStockThreshold,
	}
}

func respondError(c *fiber.Ctx, err error) error {
	status := erperror.StatusCode(err)
	if status == fiber.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"requestId", c.Locals("requestid"),
			"error", err,
		)
	}
	return c.Status(status).JSON(fiber.Map{"message": erperror.PublicMessage(err)})
}

func respondBadRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
}

func notFoundIfNil[T any](c *fiber.Ctx, v *T, err error) error {
	if err != nil {
		return respondError(c, err)
	}
	if v == nil {
		return respondError(c, erperror.ErrNotFound)
	}
	return c.Status(fiber.StatusOK).JSON(v)
}

func newID() string { return uuid.NewString() }

func orNow(t *time.Time) time.Time {
	if t != nil {
		return *t
	}
	return time.Now().UTC()
}
