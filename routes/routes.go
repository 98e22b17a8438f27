package routes

import (
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/configs"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/controllers"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/entity"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/middlewares"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/repository"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/services"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	containerRepo := repository.NewContainerRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Order feed (websocket)
	feed := ws.NewOrderFeed()
	go feed.Run()

	// Services
	orderSvc := services.NewOrderService(db, orderRepo, containerRepo, menuRepo, employeeRepo)
	orderSvc.Publisher = feed

	// Controllers
	menuCtrl := controllers.NewMenuController(services.NewMenuService(menuRepo))
	containerCtrl := controllers.NewContainerController(services.NewContainerService(containerRepo))
	inventoryCtrl := controllers.NewInventoryController(services.NewInventoryService(inventoryRepo))
	recipeCtrl := controllers.NewRecipeController(services.NewRecipeService(recipeRepo, menuRepo, inventoryRepo))
	employeeCtrl := controllers.NewEmployeeController(services.NewEmployeeService(employeeRepo))
	orderCtrl := controllers.NewOrderController(orderSvc)
	analyticsCtrl := controllers.NewAnalyticsController(services.NewAnalyticsService(analyticsRepo))
	authCtrl := controllers.NewAuthController(services.NewAuthService(cfg, employeeRepo))

	api := r.Group("/api")

	// Auth (public)
	api.POST("/login", authCtrl.Login)
	api.POST("/verify-role", authCtrl.VerifyRole)

	// Kiosk contract (public): catalog reads and the submission pipeline POSTs
	api.GET("/menu", menuCtrl.List)
	api.GET("/containers", containerCtrl.List)
	api.POST("/orders", orderCtrl.Create)
	api.POST("/order-items", orderCtrl.CreateOrderItem)
	api.POST("/menu-items", orderCtrl.CreateMenuItem)

	// Cashier or manager
	staff := api.Group("", middlewares.AuthMiddleware(cfg, entity.RoleCashier, entity.RoleManager))
	{
		staff.GET("/orders", orderCtrl.List)
		staff.GET("/orders/:id/items", orderCtrl.ListItems)
	}

	// Manager back-office
	manager := api.Group("", middlewares.AuthMiddleware(cfg, entity.RoleManager))
	{
		manager.POST("/menu", menuCtrl.Create)
		manager.PUT("/menu/:id", menuCtrl.Update)
		manager.DELETE("/menu/:id", menuCtrl.Delete)

		manager.POST("/containers", containerCtrl.Create)
		manager.PUT("/containers/:id", containerCtrl.Update)
		manager.DELETE("/containers/:id", containerCtrl.Delete)

		manager.GET("/inventory", inventoryCtrl.List)
		manager.POST("/inventory", inventoryCtrl.Create)
		manager.PUT("/inventory/:id", inventoryCtrl.Update)
		manager.DELETE("/inventory/:id", inventoryCtrl.Delete)

		manager.GET("/recipes", recipeCtrl.List)
		manager.POST("/recipes", recipeCtrl.Create)
		manager.DELETE("/recipes/:id", recipeCtrl.Delete)

		manager.GET("/employees", employeeCtrl.List)
		manager.POST("/employees", employeeCtrl.Create)
		manager.PUT("/employees/:id", employeeCtrl.Update)
		manager.DELETE("/employees/:id", employeeCtrl.Delete)

		manager.PUT("/orders/:id", orderCtrl.Update)
		manager.DELETE("/orders/:id", orderCtrl.Delete)

		manager.GET("/analytics/low-stock", analyticsCtrl.LowStock)
		manager.GET("/analytics/high-sales-employees", analyticsCtrl.HighSalesEmployees)
		manager.GET("/analytics/item-sales", analyticsCtrl.ItemSales)
		manager.GET("/analytics/hourly-sales", analyticsCtrl.HourlySales)
	}

	// Live order feed for kitchen/cashier displays
	r.GET("/ws/orders", feed.Handle)
}
