package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/belofte2025/belofte-sub001/internal/application/auth"
	"github.com/belofte2025/belofte-sub001/internal/application/importer"
	"github.com/belofte2025/belofte-sub001/internal/application/statement"
	"github.com/belofte2025/belofte-sub001/internal/application/usecase"
	"github.com/belofte2025/belofte-sub001/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	CompanyUC        *usecase.CompanyUseCase
	CustomerUC       *usecase.CustomerUseCase
	SupplierUC       *usecase.SupplierUseCase
	PaymentUC        *usecase.PaymentUseCase
	StatementUC      *statement.UseCase
	CustomerImportUC *importer.CustomerImportUseCase
	SupplierImportUC *importer.SupplierImportUseCase
	Logger           *logger.Logger
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público: alta inicial del tenant)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	statementHandler := NewStatementHandler(deps.StatementUC)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Get("/:id/statement", statementHandler.GetStatement)
	customers.Get("/:id/payments", paymentHandler.ListByCustomer)

	// Payments (protegido)
	payments := protected.Group("/payments")
	payments.Post("/", paymentHandler.Record)
	payments.Delete("/:id", paymentHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id/items", supplierHandler.ListItems)

	// Imports (protegido)
	imports := protected.Group("/import")
	importHandler := NewImportHandler(deps.CustomerImportUC, deps.SupplierImportUC, deps.Logger)
	templateHandler := NewTemplateHandler()
	imports.Post("/customers", importHandler.ImportCustomers)
	imports.Post("/suppliers", importHandler.ImportSuppliers)
	imports.Get("/templates/customers", templateHandler.CustomerTemplate)
	imports.Get("/templates/suppliers", templateHandler.SupplierTemplate)
}
