package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/abaya-api/internal/application/analytics"
	"github.com/jhoicas/abaya-api/internal/application/auth"
	"github.com/jhoicas/abaya-api/internal/application/usecase"
	"github.com/jhoicas/abaya-api/internal/domain/access"
	"github.com/jhoicas/abaya-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	OrderUC          *usecase.OrderUseCase
	DesignUC         *usecase.DesignUseCase
	CustomerUC       *usecase.CustomerUseCase
	DashboardUC      *analytics.DashboardUseCase
	SalesUC          *analytics.SalesUseCase
	JWTSecret        string
	OpenRegistration bool
	Logger           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	authMW := AuthMiddleware(deps.JWTSecret, deps.AuthUC)
	api := app.Group("/api")

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, log)
	if deps.OpenRegistration {
		// Abierto para cuentas user; crear un admin exige token admin (lo valida el caso de uso).
		api.Post("/register", OptionalAuth(deps.JWTSecret, deps.AuthUC), authHandler.Register)
	} else {
		api.Post("/register", authMW, RequirePermission(access.OpRegisterUser), authHandler.Register)
	}
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authMW, authHandler.Logout)

	// Orders
	orderHandler := NewOrderHandler(deps.OrderUC, log)
	orders := api.Group("/orders", authMW)
	orders.Get("/", RequirePermission(access.OpListOrders), orderHandler.List)
	orders.Get("/:id", RequirePermission(access.OpListOrders), orderHandler.GetByID)
	orders.Post("/", RequirePermission(access.OpCreateOrder), orderHandler.Create)
	orders.Put("/:id", RequirePermission(access.OpUpdateOrder), orderHandler.Update)
	orders.Delete("/:id", RequirePermission(access.OpDeleteOrder), orderHandler.Delete)

	// Designs
	designHandler := NewDesignHandler(deps.DesignUC, log)
	designs := api.Group("/designs", authMW)
	designs.Get("/", RequirePermission(access.OpListDesigns), designHandler.List)
	designs.Get("/:id", RequirePermission(access.OpListDesigns), designHandler.GetByID)
	designs.Post("/", RequirePermission(access.OpCreateDesign), designHandler.Create)
	designs.Put("/:id", RequirePermission(access.OpUpdateDesign), designHandler.Update)
	designs.Delete("/:id", RequirePermission(access.OpDeleteDesign), designHandler.Delete)

	// Vistas derivadas
	reports := NewReportHandler(deps.CustomerUC, deps.DashboardUC, deps.SalesUC, log)
	api.Get("/customers", authMW, RequirePermission(access.OpListCustomers), reports.Customers)
	api.Get("/dashboard/summary", authMW, RequirePermission(access.OpViewDashboard), reports.Dashboard)
	api.Get("/sales/summary", authMW, RequirePermission(access.OpViewSales), reports.SalesSummary)
	api.Get("/sales/report.pdf", authMW, RequirePermission(access.OpViewSales), reports.SalesPDF)
}
