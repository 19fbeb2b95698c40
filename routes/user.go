package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/aniket-sharma10/e-commerce-store/controllers/user"
	"github.com/aniket-sharma10/e-commerce-store/middleware"
)

// SetupUserRoutes registers all "/api/user/*" endpoints.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB) {
	userGroup := api.Group("/user")
	{
		userGroup.POST("/signout", userControllers.Signout())
		userGroup.GET("/getAllUsers", middleware.ValidateToken, userControllers.GetAllUsers(db))
		userGroup.GET("/:userId", userControllers.GetUser(db))
		userGroup.PUT("/update/:userId", middleware.ValidateToken, userControllers.UpdateUser(db))
		userGroup.DELETE("/delete/:userId", middleware.ValidateToken, userControllers.DeleteUser(db))
	}
}
