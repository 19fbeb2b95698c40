package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	categoryControllers "github.com/aniket-sharma10/e-commerce-store/controllers/category"
	"github.com/aniket-sharma10/e-commerce-store/middleware"
)

// SetupCategoryRoutes registers all "/api/category/*" endpoints. Listing only
// needs a session; mutations are admin-gated in the controllers.
func SetupCategoryRoutes(api *gin.RouterGroup, db *gorm.DB) {
	categoryGroup := api.Group("/category")
	categoryGroup.Use(middleware.ValidateToken)
	{
		categoryGroup.POST("/add", categoryControllers.AddCategory(db))
		categoryGroup.GET("/getCategories", categoryControllers.GetAllCategories(db))
		categoryGroup.PUT("/update/:catId", categoryControllers.UpdateCategory(db))
		categoryGroup.DELETE("/delete/:catId", categoryControllers.DeleteCategory(db))
	}
}
