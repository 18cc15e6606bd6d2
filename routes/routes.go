package routes

import (
	"context"
	"fmt"
	"log"

	"eatery/configs"
	"eatery/controllers"
	"eatery/middlewares"
	"eatery/presenter"
	"eatery/repository"
	"eatery/services"
	"eatery/storage"
	"eatery/ws"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and handlers onto r. The
// order-status hub runs until ctx is cancelled.
func RegisterRoutes(ctx context.Context, r *gin.Engine, db *gorm.DB, cfg *configs.Config, images storage.ImageStore) error {
	policy, err := services.ParseTransitionPolicy(cfg.OrderStatusPolicy)
	if err != nil {
		return err
	}
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return fmt.Errorf("invalid LOCALE %q: %w", cfg.Locale, err)
	}
	formatter := presenter.NewFormatter(cfg.Location(), tag, cfg.CurrencySymbol)

	// Repositories
	restRepo := repository.NewRestaurantRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	restSvc := services.NewRestaurantService(restRepo)
	subSvc := services.NewRestaurantSubmissionService(restRepo, images)
	orderSvc := services.NewOrderService(orderRepo, restRepo)
	statusSvc := services.NewOrderStatusService(orderRepo, restRepo, policy)
	userSvc := services.NewUserService(userRepo)

	hub := ws.NewOrderHub(orderSvc)
	go hub.Run(ctx)

	// Controllers
	myRestCtrl := &controllers.MyRestaurantController{
		Restaurants:   restSvc,
		Submissions:   subSvc,
		Orders:        orderSvc,
		Statuses:      statusSvc,
		Formatter:     formatter,
		Publisher:     hub,
		MaxImageBytes: cfg.MaxImageBytes,
	}
	myUserCtrl := &controllers.MyUserController{Users: userSvc}
	orderCtrl := &controllers.OrderController{Orders: orderSvc, Formatter: formatter}

	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api")
	api.GET("/order-statuses", orderCtrl.Statuses)

	// Profile (any logged-in user)
	my := api.Group("/my", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		my.GET("/user", myUserCtrl.Get)
		my.PUT("/user", myUserCtrl.Update)
	}

	// Restaurant owner
	myRest := api.Group("/my/restaurant", middlewares.AuthMiddleware(cfg.JWTSecret, "owner"))
	{
		myRest.GET("", myRestCtrl.Get)
		myRest.POST("", myRestCtrl.Create)
		myRest.PUT("", myRestCtrl.Update)
		myRest.GET("/orders", myRestCtrl.ListOrders)
		myRest.PATCH("/order/:orderId/status", myRestCtrl.UpdateOrderStatus)
	}

	// Orders (customer)
	order := api.Group("/order", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		order.GET("/my-orders", orderCtrl.ListForMe)
	}

	// Live status feed
	r.GET("/ws/orders/:orderId", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	if cfg.ImageStore == "local" {
		r.Static("/uploads", cfg.UploadDir)
	}

	log.Printf("order status policy: %s, locale: %s", policy, tag)
	return nil
}
