package routes

import (
	"github.com/SuperEjay/pos-sub000/configs"
	"github.com/SuperEjay/pos-sub000/controllers"
	"github.com/SuperEjay/pos-sub000/middlewares"
	"github.com/SuperEjay/pos-sub000/repository"
	"github.com/SuperEjay/pos-sub000/services"
	"github.com/SuperEjay/pos-sub000/storage"
	"github.com/SuperEjay/pos-sub000/ws"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub, store *storage.ObjectStore, log *zap.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	eventRepo := repository.NewEventRepository(db)
	portionRepo := repository.NewPortionRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	productSvc := services.NewProductService(productRepo, log)
	orderSvc := services.NewOrderService(orderRepo, hub, log)
	expenseSvc := services.NewExpenseService(expenseRepo, log)
	eventSvc := services.NewEventService(eventRepo)
	portionSvc := services.NewPortionService(portionRepo, productRepo, log)
	reportSvc := services.NewReportService(reportRepo, expenseRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(productSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	expenseCtrl := controllers.NewExpenseController(expenseSvc)
	eventCtrl := controllers.NewEventController(eventSvc)
	portionCtrl := controllers.NewPortionController(portionSvc)
	reportCtrl := controllers.NewReportController(reportSvc)
	uploadCtrl := controllers.NewUploadController(store)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Public portfolio
	r.GET("/portfolio/events", eventCtrl.List)
	r.GET("/portfolio/events/:slug", eventCtrl.BySlug)

	// Staff (any authenticated role)
	s := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		s.GET("/products", productCtrl.List)
		s.GET("/products/:id", productCtrl.Detail)
		s.POST("/products", productCtrl.Create)
		s.PUT("/products/:id", productCtrl.Update)
		s.PATCH("/products/:id/active", productCtrl.SetActive)
		s.DELETE("/products/:id", productCtrl.Delete)
		s.GET("/categories", productCtrl.Categories)

		s.GET("/orders", orderCtrl.List)
		s.GET("/orders/:id", orderCtrl.Detail)
		s.POST("/orders", orderCtrl.Create)
		s.POST("/orders/preview", orderCtrl.Preview)
		s.PUT("/orders/:id", orderCtrl.Update)
		s.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		s.DELETE("/orders/:id", orderCtrl.Delete)
		s.GET("/queue", orderCtrl.Queue)

		s.GET("/expenses", expenseCtrl.List)
		s.GET("/expenses/:id", expenseCtrl.Detail)
		s.POST("/expenses", expenseCtrl.Create)
		s.PUT("/expenses/:id", expenseCtrl.Update)
		s.DELETE("/expenses/:id", expenseCtrl.Delete)

		s.GET("/events", eventCtrl.List)
		s.GET("/events/:id", eventCtrl.Detail)
		s.POST("/events", eventCtrl.Create)
		s.PUT("/events/:id", eventCtrl.Update)
		s.DELETE("/events/:id", eventCtrl.Delete)

		s.GET("/portions", portionCtrl.List)
		s.GET("/portions/:id", portionCtrl.Detail)
		s.POST("/portions", portionCtrl.Create)
		s.PUT("/portions/:id", portionCtrl.Update)
		s.DELETE("/portions/:id", portionCtrl.Delete)

		s.GET("/reports/sales", reportCtrl.Sales)
		s.GET("/reports/summary", reportCtrl.Summary)

		s.POST("/uploads/:entity", uploadCtrl.Upload)

		s.GET("/ws/orders", hub.HandleWebSocket)
	}

	// Admin only
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/staff", authCtrl.ListStaff)
		admin.POST("/staff", authCtrl.CreateStaff)
	}
}
