package handler

import (
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/dto"
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/service"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "invalid input")
	}
	if input.Username == "" || input.Password == "" {
		return respondBadRequest(c, "username and password are required")
	}

	user, err := h.userService.CreateUser(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.userService.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "invalid input")
	}

	user, err := h.userService.UpdateUser(c.Context(), c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.userService.DeleteUser(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "user deleted"})
}

// ChangePassword operates on the authenticated caller, not an arbitrary id.
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadRequest(c, "invalid input")
	}
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return respondBadRequest(c, "currentPassword and newPassword are required")
	}

	identity := IdentityFromContext(c)
	if err := h.userService.ChangePassword(c.Context(), identity.UserID, input); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "password changed"})
}
