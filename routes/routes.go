package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"car-dealership-api/config"
	"car-dealership-api/handlers"
	"car-dealership-api/middleware"
	"car-dealership-api/models"
	"car-dealership-api/services"
)

// Setup wires services, handlers and middleware onto the router. Everything
// is constructed here once and injected; there are no package-level
// singletons.
func Setup(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	protect := middleware.Protect(db, cfg.JWTSecret)

	authHandler := handlers.NewAuthHandler(services.NewAuthService(db), cfg)
	categoryHandler := handlers.NewCategoryHandler(services.NewCategoryService(db))
	carHandler := handlers.NewCarHandler(services.NewCarService(db))
	customerHandler := handlers.NewCustomerHandler(services.NewCustomerService(db))
	managerHandler := handlers.NewManagerHandler(services.NewManagerService(db))
	orderHandler := handlers.NewOrderHandler(services.NewOrderService(db))

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	cars := api.Group("/cars")
	cars.Use(protect)
	{
		cars.GET("", carHandler.List)
		cars.GET("/:id", carHandler.Get)
		cars.POST("", middleware.RoleRequired(models.RoleAdmin, models.RoleManager), carHandler.Create)
		cars.PUT("/:id", middleware.RoleRequired(models.RoleAdmin, models.RoleManager), carHandler.Update)
		cars.DELETE("/:id", middleware.RoleRequired(models.RoleAdmin, models.RoleManager), carHandler.Delete)
	}

	categories := api.Group("/categories")
	categories.Use(protect)
	{
		categories.GET("", categoryHandler.List)
		categories.GET("/:id", categoryHandler.Get)
		categories.POST("", middleware.RoleRequired(models.RoleManager), categoryHandler.Create)
		categories.PUT("/:id", middleware.RoleRequired(models.RoleAdmin, models.RoleManager), categoryHandler.Update)
		categories.DELETE("/:id", middleware.RoleRequired(models.RoleAdmin, models.RoleManager), categoryHandler.Delete)
	}

	// The profile routes below /me mirror the source's route table, where
	// the by-id customer routes are not behind the auth gate.
	customers := api.Group("/customers")
	{
		customers.GET("/me", protect, customerHandler.Me)
		customers.POST("", protect, customerHandler.Create)
		customers.GET("", customerHandler.List)
		customers.GET("/:id", customerHandler.Get)
		customers.PUT("/:id", customerHandler.Update)
		customers.DELETE("/:id", customerHandler.Delete)
	}

	managers := api.Group("/managers")
	managers.Use(protect)
	{
		managers.GET("", managerHandler.List)
		managers.POST("", middleware.RoleRequired(models.RoleAdmin), managerHandler.Create)
		managers.GET("/me", middleware.RoleRequired(models.RoleAdmin, models.RoleManager), managerHandler.Me)
		managers.GET("/:id", middleware.RoleRequired(models.RoleAdmin, models.RoleManager), managerHandler.Get)
		managers.PUT("/:id", middleware.RoleRequired(models.RoleAdmin), managerHandler.Update)
		managers.DELETE("/:id", middleware.RoleRequired(models.RoleAdmin), managerHandler.Delete)
	}

	orders := api.Group("/orders")
	orders.Use(protect)
	{
		orders.POST("", middleware.RoleRequired(models.RoleCustomer), orderHandler.Create)
		orders.GET("", middleware.RoleRequired(models.RoleCustomer), orderHandler.List)
		orders.GET("/:id", orderHandler.Get)
		orders.PUT("/:id", middleware.RoleRequired(models.RoleManager, models.RoleAdmin), orderHandler.Update)
		orders.DELETE("/:id", middleware.RoleRequired(models.RoleManager), orderHandler.Delete)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "🚗 Car Dealership API is running")
	})

	// Machine-readable route index, served where the API docs live.
	r.GET("/api-doc", apiDoc)
}

func apiDoc(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Car Dealership API",
		"version": "v1",
		"routes": gin.H{
			"auth":       []string{"POST /api/v1/auth/register", "POST /api/v1/auth/login"},
			"cars":       []string{"GET /api/v1/cars", "POST /api/v1/cars", "GET /api/v1/cars/:id", "PUT /api/v1/cars/:id", "DELETE /api/v1/cars/:id"},
			"categories": []string{"GET /api/v1/categories", "POST /api/v1/categories", "GET /api/v1/categories/:id", "PUT /api/v1/categories/:id", "DELETE /api/v1/categories/:id"},
			"customers":  []string{"GET /api/v1/customers", "POST /api/v1/customers", "GET /api/v1/customers/me", "GET /api/v1/customers/:id", "PUT /api/v1/customers/:id", "DELETE /api/v1/customers/:id"},
			"managers":   []string{"GET /api/v1/managers", "POST /api/v1/managers", "GET /api/v1/managers/me", "GET /api/v1/managers/:id", "PUT /api/v1/managers/:id", "DELETE /api/v1/managers/:id"},
			"orders":     []string{"GET /api/v1/orders", "POST /api/v1/orders", "GET /api/v1/orders/:id", "PUT /api/v1/orders/:id", "DELETE /api/v1/orders/:id"},
		},
	})
}
