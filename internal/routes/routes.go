package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendalivre/platform-api/internal/audit"
	"github.com/agendalivre/platform-api/internal/cache"
	"github.com/agendalivre/platform-api/internal/config"
	"github.com/agendalivre/platform-api/internal/handlers"
	infraRepo "github.com/agendalivre/platform-api/internal/infra/repository"
	"github.com/agendalivre/platform-api/internal/middleware"
	ucAppointment "github.com/agendalivre/platform-api/internal/usecase/appointment"
	ucLedger "github.com/agendalivre/platform-api/internal/usecase/ledger"
	ucOrder "github.com/agendalivre/platform-api/internal/usecase/order"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, summaryCache *cache.SummaryCache) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	orderRepo := infraRepo.NewOrderGormRepository(db)
	ledgerRepo := infraRepo.NewLedgerGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES: LEDGER
	// ======================================================
	deriveFromAppointmentUC := ucLedger.NewCreateTransactionFromAppointment(
		ledgerRepo,
		appointmentRepo,
		summaryCache,
		auditDispatcher,
	)

	deriveFromOrderUC := ucLedger.NewCreateTransactionFromOrder(
		ledgerRepo,
		orderRepo,
		summaryCache,
		auditDispatcher,
	)

	voidTransactionUC := ucLedger.NewVoidTransactionBySource(
		ledgerRepo,
		summaryCache,
		auditDispatcher,
	)

	createManualUC := ucLedger.NewCreateManualTransaction(
		ledgerRepo,
		summaryCache,
		auditDispatcher,
	)

	registerPaymentUC := ucLedger.NewRegisterAppointmentPayment(
		appointmentRepo,
		deriveFromAppointmentUC,
		auditDispatcher,
	)

	summaryUC := ucLedger.NewGetFinancialSummary(ledgerRepo, summaryCache)
	listTransactionsUC := ucLedger.NewListTransactions(ledgerRepo)

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	findOrphansUC := ucAppointment.NewFindOrphanAppointments(appointmentRepo)

	fixOrphansUC := ucAppointment.NewFixOrphanAppointments(
		appointmentRepo,
		auditDispatcher,
	)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)

	// ======================================================
	// USE CASES: ORDERS
	// ======================================================
	createOrderUC := ucOrder.NewCreateOrder(
		orderRepo,
		deriveFromOrderUC,
		auditDispatcher,
	)

	cancelOrderUC := ucOrder.NewCancelOrder(
		orderRepo,
		voidTransactionUC,
		auditDispatcher,
	)

	updateOrderStatusUC := ucOrder.NewUpdateOrderStatus(
		orderRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	clientHandler := handlers.NewClientHandler(db)
	catalogHandler := handlers.NewCatalogHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		findOrphansUC,
		fixOrphansUC,
		registerPaymentUC,
		listByDateUC,
	)

	orderHandler := handlers.NewOrderHandler(
		createOrderUC,
		cancelOrderUC,
		updateOrderStatusUC,
		orderRepo,
	)

	financeHandler := handlers.NewFinanceHandler(
		db,
		createManualUC,
		summaryUC,
		listTransactionsUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)

			secured.GET("/me/services", catalogHandler.ListServices)
			secured.POST("/me/services", catalogHandler.CreateService)
			secured.PATCH("/me/services/:id", catalogHandler.UpdateService)

			secured.GET("/me/products", catalogHandler.ListProducts)
			secured.POST("/me/products", catalogHandler.CreateProduct)
			secured.PATCH("/me/products/:id", catalogHandler.UpdateProduct)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.POST("/me/appointments/:id/payment", appointmentHandler.RegisterPayment)
			secured.GET("/me/appointments/orphans", appointmentHandler.ListOrphans)
			secured.POST("/me/appointments/orphans/fix", appointmentHandler.FixOrphans)

			// ------------------------------
			// ORDERS
			// ------------------------------
			secured.POST("/me/orders", orderHandler.Create)
			secured.GET("/me/orders", orderHandler.List)
			secured.PATCH("/me/orders/:id/status", orderHandler.UpdateStatus)
			secured.PATCH("/me/orders/:id/cancel", orderHandler.Cancel)

			// ------------------------------
			// FINANCE
			// ------------------------------
			secured.POST("/me/finance/income", financeHandler.CreateIncome)
			secured.POST("/me/finance/expense", financeHandler.CreateExpense)
			secured.GET("/me/finance/summary", financeHandler.Summary)
			secured.GET("/me/finance/transactions", financeHandler.ListTransactions)
			secured.GET("/me/finance/categories", financeHandler.ListCategories)
			secured.POST("/me/finance/categories", financeHandler.CreateCategory)
		}
	}
}
