package handler

import (
	"log/slog"

	autherror "github.com/Mustafa1998-tech/ERPCompanySystem/internal/errors"
	"github.com/gofiber/fiber/v2"
)

// respondError maps a service error onto the wire. Bodies always carry a
// single "message" key; internals are logged with the request id and never
// echoed to the caller.
func respondError(c *fiber.Ctx, err error) error {
	status := autherror.StatusCode(err)
	if status == fiber.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"requestId", c.Locals("requestid"),
			"error", err,
		)
	}
	return c.Status(status).JSON(fiber.Map{
		"message": autherror.PublicMessage(err),
	})
}

func respondBadRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
}
