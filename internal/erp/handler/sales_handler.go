package handler

import (
	"time"

	authhandler "github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/handler"
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/domain"
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/dto"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListSales(c *fiber.Ctx) error {
	sales, err := h.sales.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(sales)
}

func (h *Handler) GetSale(c *fiber.Ctx) error {
	sale, err := h.sales.GetByID(c.Context(), c.Params("id"))
	return notFoundIfNil(c, sale, err)
}

func (h *Handler) CreateSale(c *fiber.Ctx) error {
	var input dto.SaleInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "invalid input")
	}
	if input.ClientID == "" || input.ProductID == "" {
		return respondBadRequest(c, "clientId and productId are required")
	}
	if input.Quantity <= 0 {
		return respondBadRequest(c, "quantity must be positive")
	}

	identity := authhandler.IdentityFromContext(c)

	sale := &domain.Sale{
		ID:        newID(),
		ClientID:  input.ClientID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		UnitPrice: input.UnitPrice,
		Total:     input.UnitPrice * float64(input.Quantity),
		SoldBy:    identity.Username,
		SaleDate:  orNow(input.SaleDate),
		CreatedAt: time.Now().UTC(),
	}
	if err := h.sales.Create(c.Context(), sale); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

func (h *Handler) DeleteSale(c *fiber.Ctx) error {
	if err := h.sales.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "sale deleted"})
}
