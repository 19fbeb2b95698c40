package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/aniket-sharma10/e-commerce-store/controllers/cart"
	"github.com/aniket-sharma10/e-commerce-store/middleware"
)

// SetupCartRoutes registers all "/api/cart" endpoints (session required).
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cartGroup := api.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("", cartControllers.AddToCart(db))
		cartGroup.PUT("", cartControllers.UpdateCart(db))
		cartGroup.DELETE("", cartControllers.RemoveFromCart(db))
	}
}
