package handler

import (
	"time"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/domain"
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/dto"
	erperror "github.com/Mustafa1998-tech/ERPCompanySystem/internal/errors"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListProducts(c *fiber.Ctx) error {
	products, err := h.products.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

func (h *Handler) GetProduct(c *fiber.Ctx) error {
	product, err := h.products.GetByID(c.Context(), c.Params("id"))
	return notFoundIfNil(c, product, err)
}

func (h *Handler) CreateProduct(c *fiber.Ctx) error {
	var input dto.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "invalid input")
	}
	if input.Name == "" {
		return respondBadRequest(c, "name is required")
	}
	if input.StockQuantity < 0 {
		return respondBadRequest(c, "stockQuantity cannot be negative")
	}

	product := &domain.Product{
		ID:            newID(),
		Name:          input.Name,
		SKU:           input.SKU,
		Description:   input.Description,
		Price:         input.Price,
		Cost:          input.Cost,
		StockQuantity: input.StockQuantity,
		WarehouseID:   input.WarehouseID,
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.products.Create(c.Context(), product); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *Handler) UpdateProduct(c *fiber.Ctx) error {
	var input dto.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "invalid input")
	}
	if input.StockQuantity < 0 {
		return respondBadRequest(c, "stockQuantity cannot be negative")
	}

	product, err := h.products.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if product == nil {
		return respondError(c, erperror.ErrNotFound)
	}

	product.Name = input.Name
	product.SKU = input.SKU
	product.Description = input.Description
	product.Price = input.Price
	product.Cost = input.Cost
	product.StockQuantity = input.StockQuantity
	product.WarehouseID = input.WarehouseID

	if err := h.products.Update(c.Context(), product); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(product)
}

func (h *Handler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.products.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "product deleted"})
}
