package handler

import (
	"time"

	authhandler "github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/handler"
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/domain"
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/dto"
	"github.com/gofiber/fiber/v2"
)

// ListStock returns current product stock levels.
func (h *Handler) ListStock(c *fiber.Ctx) error {
	products, err := h.products.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

func (h *Handler) ListStockMovements(c *fiber.Ctx) error {
	movements, err := h.inventory.ListMovements(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(movements)
}

// AdjustStock applies a signed manual correction and returns the recorded
// ledger entry.
func (h *Handler) AdjustStock(c *fiber.Ctx) error {
	var input dto.StockAdjustmentInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "invalid input")
	}
	if input.ProductID == "" {
		return respondBadRequest(c, "productId is required")
	}
	if input.Quantity == 0 {
		return respondBadRequest(c, "quantity must be non-zero")
	}

	identity := authhandler.IdentityFromContext(c)

	movement := &domain.StockMovement{
		ID:              newID(),
		ProductID:       input.ProductID,
		MovementDate:    time.Now().UTC(),
		MovementType:    domain.MovementTypeAdjustment,
		Quantity:        input.Quantity,
		ReferenceNumber: input.ReferenceNumber,
		Description:     input.Description,
		CreatedBy:       identity.Username,
	}
	if err := h.inventory.AdjustStock(c.Context(), movement); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(movement)
}
