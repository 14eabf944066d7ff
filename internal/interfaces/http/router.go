package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/studio-pro/internal/application/auth"
	"github.com/tu-usuario/studio-pro/internal/application/crm"
	"github.com/tu-usuario/studio-pro/internal/application/ledger"
	"github.com/tu-usuario/studio-pro/internal/application/scheduling"
	"github.com/tu-usuario/studio-pro/internal/application/staff"
	"github.com/tu-usuario/studio-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CustomerUC    *crm.CustomerUseCase
	EmployeeUC    *staff.EmployeeUseCase
	ShootUC       *scheduling.ShootUseCase
	ReceiptUC     *scheduling.ReceiptUseCase
	TaskUC        *scheduling.TaskUseCase
	TransactionUC *ledger.TransactionUseCase
	StatsUC       *ledger.StatsUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Clientes, personal, sesiones y finanzas
// son solo ADMIN; tareas y dashboard los ve cualquier rol autenticado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Customers (solo ADMIN)
	customers := protected.Group("/customers", adminOnly)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Employees (solo ADMIN)
	employees := protected.Group("/employees", adminOnly)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Patch("/:id/role", employeeHandler.ChangeRole)
	employees.Delete("/:id", employeeHandler.Delete)

	// Shoots (solo ADMIN)
	shoots := protected.Group("/shoots", adminOnly)
	shootHandler := NewShootHandler(deps.ShootUC, deps.ReceiptUC)
	shoots.Post("/", shootHandler.Create)
	shoots.Get("/", shootHandler.List)
	shoots.Get("/:id", shootHandler.GetByID)
	shoots.Put("/:id", shootHandler.Update)
	shoots.Delete("/:id", shootHandler.Delete)
	shoots.Post("/:id/payments", shootHandler.RecordPayment)
	shoots.Patch("/:id/price", shootHandler.UpdatePrice)
	shoots.Get("/:id/receipt", shootHandler.Receipt)

	// Tasks (cualquier rol autenticado)
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/", taskHandler.List)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)

	// Finance (solo ADMIN)
	finance := protected.Group("/finance", adminOnly)
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	financeHandler := NewFinanceHandler(deps.StatsUC)
	finance.Post("/transactions", transactionHandler.Create)
	finance.Get("/transactions", transactionHandler.List)
	finance.Get("/transactions/:id", transactionHandler.GetByID)
	finance.Put("/transactions/:id", transactionHandler.Update)
	finance.Delete("/transactions/:id", transactionHandler.Delete)
	finance.Get("/stats", financeHandler.Stats)

	// Dashboard (cualquier rol autenticado; contenido según rol)
	protected.Get("/dashboard", financeHandler.Dashboard)
}
