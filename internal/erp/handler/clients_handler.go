package handler

import (
	"time"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/domain"
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/dto"
	erperror "github.com/Mustafa1998-tech/ERPCompanySystem/internal/errors"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListClients(c *fiber.Ctx) error {
	clients, err := h.clients.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(clients)
}

func (h *Handler) GetClient(c *fiber.Ctx) error {
	client, err := h.clients.GetByID(c.Context(), c.Params("id"))
	return notFoundIfNil(c, client, err)
}

func (h *Handler) CreateClient(c *fiber.Ctx) error {
	var input dto.ClientInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "invalid input")
	}
	if input.Name == "" {
		return respondBadRequest(c, "name is required")
	}

	client := &domain.Client{
		ID:        newID(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.clients.Create(c.Context(), client); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

func (h *Handler) UpdateClient(c *fiber.Ctx) error {
	var input dto.ClientInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "invalid input")
	}

	client, err := h.clients.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if client == nil {
		return respondError(c, erperror.ErrNotFound)
	}

	client.Name = input.Name
	client.Email = input.Email
	client.Phone = input.Phone
	client.Address = input.Address

	if err := h.clients.Update(c.Context(), client); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(client)
}

func (h *Handler) DeleteClient(c *fiber.Ctx) error {
	if err := h.clients.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "client deleted"})
}
