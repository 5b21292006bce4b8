package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Tokens        TokenVerifier
	Auth          *AuthHandler
	Operations    *OperationsHandler
	Expenses      *ExpenseHandler
	Catalog       *CatalogHandler
	Ledger        *LedgerHandler
	Dashboard     *DashboardHandler
	Notifications *NotificationHandler
}

// Roles agrupados por permiso.
var (
	writers  = []string{entity.RoleAdmin, entity.RoleOperator}
	admins   = []string{entity.RoleAdmin}
	auditors = []string{entity.RoleAdmin, entity.RolePartner}
)

// Router registra las rutas de la API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", deps.Auth.Login)
	authGroup.Post("/refresh-token", deps.Auth.Refresh)
	authGroup.Post("/reset-password", deps.Auth.RequestReset)
	authGroup.Post("/reset-password/verify", deps.Auth.VerifyReset)

	// Rutas protegidas (requieren Bearer Token). Los GET de listados están abiertos a cualquier rol.
	authn := AuthMiddleware(deps.Tokens)
	authGroup.Post("/register", authn, RequireRole(admins...), deps.Auth.Register)

	protected := api.Group("/", authn)

	protected.Get("/dashboard", deps.Dashboard.GetSummary)

	production := protected.Group("/production")
	production.Get("/", deps.Operations.ListProduction)
	production.Post("/", RequireRole(writers...), deps.Operations.CreateProduction)

	dispatch := protected.Group("/dispatch")
	dispatch.Get("/", deps.Operations.ListDispatches)
	dispatch.Post("/", RequireRole(writers...), deps.Operations.CreateDispatch)

	sales := protected.Group("/sales")
	sales.Get("/", deps.Operations.ListSales)
	sales.Get("/:id", deps.Operations.GetSale)
	sales.Post("/", RequireRole(writers...), deps.Operations.CreateSale)

	protected.Get("/stock", deps.Operations.ListStock)

	expenses := protected.Group("/expenses")
	expenses.Get("/", deps.Expenses.ListExpenses)
	expenses.Post("/", RequireRole(writers...), deps.Expenses.CreateExpense)

	maintenance := protected.Group("/maintenance")
	maintenance.Get("/", deps.Expenses.ListMaintenance)
	maintenance.Post("/", RequireRole(writers...), deps.Expenses.CreateMaintenance)

	materials := protected.Group("/materials")
	materials.Get("/", deps.Catalog.ListMaterials)
	materials.Post("/", RequireRole(admins...), deps.Catalog.CreateMaterial)

	trucks := protected.Group("/trucks")
	trucks.Get("/", deps.Catalog.ListTrucks)
	trucks.Post("/", RequireRole(admins...), deps.Catalog.CreateTruck)

	vendors := protected.Group("/vendors")
	vendors.Get("/", deps.Catalog.ListVendors)
	vendors.Post("/", RequireRole(admins...), deps.Catalog.CreateVendor)

	rates := protected.Group("/rates")
	rates.Get("/", deps.Catalog.ListRates)
	rates.Post("/", RequireRole(admins...), deps.Catalog.UpdateRate)

	ledger := protected.Group("/vendor-ledger")
	ledger.Get("/", deps.Ledger.List)
	ledger.Post("/pay", RequireRole(writers...), deps.Ledger.Pay)

	reports := protected.Group("/reports", RequireRole(auditors...))
	reports.Get("/", deps.Dashboard.GetReport)
	reports.Get("/export", deps.Dashboard.ExportReport)

	logs := protected.Group("/logs")
	logs.Get("/", deps.Dashboard.GetLogs)
	logs.Get("/export", RequireRole(auditors...), deps.Dashboard.ExportLogs)

	protected.Get("/audit-logs", RequireRole(auditors...), deps.Notifications.AuditLogs)

	notifications := protected.Group("/notifications")
	notifications.Get("/", deps.Notifications.List)
	notifications.Post("/toggle", RequireRole(admins...), deps.Notifications.Toggle)
}
