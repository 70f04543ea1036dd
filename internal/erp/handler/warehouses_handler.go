package handler

import (
	"time"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/domain"
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/dto"
	erperror "github.com/Mustafa1998-tech/ERPCompanySystem/internal/errors"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListWarehouses(c *fiber.Ctx) error {
	warehouses, err := h.warehouses.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(warehouses)
}

func (h *Handler) GetWarehouse(c *fiber.Ctx) error {
	warehouse, err := h.warehouses.GetByID(c.Context(), c.Params("id"))
	return notFoundIfNil(c, warehouse, err)
}

func (h *Handler) CreateWarehouse(c *fiber.Ctx) error {
	var input dto.WarehouseInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "invalid input")
	}
	if input.Name == "" {
		return respondBadRequest(c, "name is required")
	}

	warehouse := &domain.Warehouse{
		ID:        newID(),
		Name:      input.Name,
		Location:  input.Location,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.warehouses.Create(c.Context(), warehouse); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(warehouse)
}

func (h *Handler) UpdateWarehouse(c *fiber.Ctx) error {
	var input dto.WarehouseInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "invalid input")
	}

	warehouse, err := h.warehouses.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if warehouse == nil {
		return respondError(c, erperror.ErrNotFound)
	}

	warehouse.Name = input.Name
	warehouse.Location = input.Location

	if err := h.warehouses.Update(c.Context(), warehouse); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(warehouse)
}

func (h *Handler) DeleteWarehouse(c *fiber.Ctx) error {
	if err := h.warehouses.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "warehouse deleted"})
}
