package handler

import (
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/authz"
	"github.com/Mustafa1998-tech/ERPCompanySystem/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires the ERP CRUD surface. authorize builds the middleware
// that enforces a requirement; the auth package owns token parsing.
func RegisterRoutes(app *fiber.App, h *Handler, authorize func(authz.Requirement) fiber.Handler) {
	read := authorize(authz.RequireRoles(constant.RoleAdmin, constant.RoleManager, constant.RoleUser))
	salesRead := authorize(authz.RequireRoles(constant.RoleAdmin, constant.RoleManager, constant.RoleSales, constant.RoleUser))
	write := authorize(authz.RequireRoles(constant.RoleAdmin, constant.RoleManager))
	salesWrite := authorize(authz.RequireRoles(constant.RoleAdmin, constant.RoleManager, constant.RoleSales))
	remove := authorize(authz.RequireRoles(constant.RoleAdmin))
	reports := authorize(authz.RequireRoles(constant.RoleAdmin, constant.RoleManager))

	api := app.Group("/api")

	clients := api.Group("/clients")
	clients.Get("/", read, h.ListClients)
	clients.Get("/:id", read, h.GetClient)
	clients.Post("/", write, h.CreateClient)
	clients.Put("/:id", write, h.UpdateClient)
	clients.Delete("/:id", remove, h.DeleteClient)

	suppliers := api.Group("/suppliers")
	suppliers.Get("/", read, h.ListSuppliers)
	suppliers.Get("/:id", read, h.GetSupplier)
	suppliers.Post("/", write, h.CreateSupplier)
	suppliers.Put("/:id", write, h.UpdateSupplier)
	suppliers.Delete("/:id", remove, h.DeleteSupplier)

	warehouses := api.Group("/warehouses")
	warehouses.Get("/", read, h.ListWarehouses)
	warehouses.Get("/:id", read, h.GetWarehouse)
	warehouses.Post("/", write, h.CreateWarehouse)
	warehouses.Put("/:id", write, h.UpdateWarehouse)
	warehouses.Delete("/:id", remove, h.DeleteWarehouse)

	products := api.Group("/products")
	products.Get("/", salesRead, h.ListProducts)
	products.Get("/:id", salesRead, h.GetProduct)
	products.Post("/", write, h.CreateProduct)
	products.Put("/:id", write, h.UpdateProduct)
	products.Delete("/:id", remove, h.DeleteProduct)

	sales := api.Group("/sales")
	sales.Get("/", salesRead, h.ListSales)
	sales.Get("/:id", salesRead, h.GetSale)
	sales.Post("/", salesWrite, h.CreateSale)
	sales.Delete("/:id", remove, h.DeleteSale)

	purchases := api.Group("/purchases")
	purchases.Get("/", read, h.ListPurchases)
	purchases.Get("/:id", read, h.GetPurchase)
	purchases.Post("/", write, h.CreatePurchase)
	purchases.Delete("/:id", remove, h.DeletePurchase)

	inventory := api.Group("/inventory")
	inventory.Get("/stock", write, h.ListStock)
	inventory.Get("/movements", write, h.ListStockMovements)
	inventory.Post("/adjust", write, h.AdjustStock)

	reportGroup := api.Group("/reports", reports)
	reportGroup.Get("/sales/daily", h.DailySalesReport)
	reportGroup.Get("/sales/monthly", h.MonthlySalesReport)
	reportGroup.Get("/stock/low", h.LowStockReport)
}
