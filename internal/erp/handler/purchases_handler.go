package handler

import (
	"time"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/domain"
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/dto"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListPurchases(c *fiber.Ctx) error {
	purchases, err := h.purchases.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(purchases)
}

func (h *Handler) GetPurchase(c *fiber.Ctx) error {
	purchase, err := h.purchases.GetByID(c.Context(), c.Params("id"))
	return notFoundIfNil(c, purchase, err)
}

func (h *Handler) CreatePurchase(c *fiber.Ctx) error {
	var input dto.PurchaseInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "invalid input")
	}
	if input.SupplierID == "" || input.ProductID == "" {
		return respondBadRequest(c, "supplierId and productId are required")
	}
	if input.Quantity <= 0 {
		return respondBadRequest(c, "quantity must be positive")
	}

	purchase := &domain.Purchase{
		ID:           newID(),
		SupplierID:   input.SupplierID,
		ProductID:    input.ProductID,
		Quantity:     input.Quantity,
		UnitCost:     input.UnitCost,
		Total:        input.UnitCost * float64(input.Quantity),
		PurchaseDate: orNow(input.PurchaseDate),
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.purchases.Create(c.Context(), purchase); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(purchase)
}

func (h *Handler) DeletePurchase(c *fiber.Ctx) error {
	if err := h.purchases.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "purchase deleted"})
}
