package handler

import (
	"time"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/domain"
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/dto"
	erperror "github.com/Mustafa1998-tech/ERPCompanySystem/internal/errors"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.suppliers.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(suppliers)
}

func (h *Handler) GetSupplier(c *fiber.Ctx) error {
	supplier, err := h.suppliers.GetByID(c.Context(), c.Params("id"))
	return notFoundIfNil(c, supplier, err)
}

func (h *Handler) CreateSupplier(c *fiber.Ctx) error {
	var input dto.SupplierInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "invalid input")
	}
	if input.Name == "" {
		return respondBadRequest(c, "name is required")
	}

	supplier := &domain.Supplier{
		ID:            newID(),
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.suppliers.Create(c.Context(), supplier); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

func (h *Handler) UpdateSupplier(c *fiber.Ctx) error {
	var input dto.SupplierInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "invalid input")
	}

	supplier, err := h.suppliers.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if supplier == nil {
		return respondError(c, erperror.ErrNotFound)
	}

	supplier.Name = input.Name
	supplier.ContactPerson = input.ContactPerson
	supplier.Email = input.Email
	supplier.Phone = input.Phone
	supplier.Address = input.Address

	if err := h.suppliers.Update(c.Context(), supplier); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(supplier)
}

func (h *Handler) DeleteSupplier(c *fiber.Ctx) error {
	if err := h.suppliers.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "supplier deleted"})
}
