package handler

import (
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/authz"
	"github.com/Mustafa1998-tech/ERPCompanySystem/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, auth *AuthHandler, users *UserHandler, twoFactor *TwoFactorHandler) {
	api := app.Group("/api")

	api.Post("/auth/login", auth.Login)
	api.Post("/auth/refresh", auth.Refresh)
	api.Post("/auth/logout", Authorize(authz.RequireJWT()), auth.Logout)

	tfa := api.Group("/twofactor", Authorize(authz.RequireJWT()))
	tfa.Get("/setup", twoFactor.Setup)
	tfa.Post("/verify", twoFactor.Verify)
	tfa.Post("/enable", twoFactor.Enable)
	tfa.Post("/disable", Authorize(authz.RequireMFA()), twoFactor.Disable)

	api.Put("/users/me/password", Authorize(authz.RequireJWT()), users.ChangePassword)

	// User administration is admin-only.
	admin := api.Group("/users", Authorize(authz.RequireRoles(constant.RoleAdmin)))
	admin.Post("/", users.Create)
	admin.Get("/", users.List)
	admin.Get("/:id", users.Get)
	admin.Put("/:id", users.Update)
	admin.Delete("/:id", users.Delete)
}
