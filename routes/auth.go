package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/aniket-sharma10/e-commerce-store/controllers/auth"
)

// SetupAuthRoutes registers all "/api/auth/*" endpoints (public).
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", authControllers.Signup(db))
		authGroup.POST("/signin", authControllers.Signin(db))
		authGroup.POST("/google", authControllers.Google(db))
	}
}
