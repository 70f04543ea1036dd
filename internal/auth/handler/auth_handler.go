package handler

import (
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/dto"
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/service"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "invalid input")
	}
	if input.Username == "" || input.Password == "" {
		return respondBadRequest(c, "username and password are required")
	}

	input.IPAddress = c.IP()

	tokens, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "invalid input")
	}
	if input.RefreshToken == "" {
		return respondBadRequest(c, "refreshToken is required")
	}

	tokens, err := h.userService.Refresh(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	identity := IdentityFromContext(c)

	if err := h.userService.Logout(c.Context(), identity.UserID); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "logged out"})
}
