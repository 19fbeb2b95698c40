package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/aniket-sharma10/e-commerce-store/controllers/order"
	paymentControllers "github.com/aniket-sharma10/e-commerce-store/controllers/payment"
	"github.com/aniket-sharma10/e-commerce-store/events"
	"github.com/aniket-sharma10/e-commerce-store/middleware"
	"github.com/aniket-sharma10/e-commerce-store/payment"
)

// SetupOrderRoutes registers all "/api/order/*" endpoints, including the
// payment-gateway checkout flow (session required).
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB, gateway payment.Gateway, pub *events.Publisher) {
	orderGroup := api.Group("/order")
	orderGroup.Use(middleware.ValidateToken)
	{
		orderGroup.POST("/razorpay", paymentControllers.CreateOrder(db, gateway, pub))
		orderGroup.POST("/razorpay/verify", paymentControllers.VerifySignature(db, gateway, pub))
		orderGroup.GET("", orderControllers.GetOrders(db))
		orderGroup.GET("/ws", orderControllers.OrderWebSocketHandler)
		orderGroup.PUT("/:orderId", orderControllers.UpdateDeliveryStatus(db, pub))
	}
}
