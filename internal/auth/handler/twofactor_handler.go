package handler

import (
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/dto"
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/service"
	"github.com/gofiber/fiber/v2"
)

type TwoFactorHandler struct {
	twoFactorService *service.TwoFactorService
}

func NewTwoFactorHandler(twoFactorService *service.TwoFactorService) *TwoFactorHandler {
	return &TwoFactorHandler{twoFactorService: twoFactorService}
}

func (h *TwoFactorHandler) Setup(c *fiber.Ctx) error {
	identity := IdentityFromContext(c)

	out, err := h.twoFactorService.Setup(c.Context(), identity.UserID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *TwoFactorHandler) Verify(c *fiber.Ctx) error {
	var input dto.TwoFactorCodeInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "invalid input")
	}
	if input.Code == "" {
		return respondBadRequest(c, "code is required")
	}

	identity := IdentityFromContext(c)
	if err := h.twoFactorService.Verify(c.Context(), identity.UserID, input.Code); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "code verified"})
}

func (h *TwoFactorHandler) Enable(c *fiber.Ctx) error {
	var input dto.TwoFactorCodeInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "invalid input")
	}
	if input.Code == "" {
		return respondBadRequest(c, "code is required")
	}

	identity := IdentityFromContext(c)
	if err := h.twoFactorService.Enable(c.Context(), identity.UserID, input.Code); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "two-factor authentication enabled"})
}

func (h *TwoFactorHandler) Disable(c *fiber.Ctx) error {
	identity := IdentityFromContext(c)

	if err := h.twoFactorService.Disable(c.Context(), identity.UserID); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "two-factor authentication disabled"})
}
