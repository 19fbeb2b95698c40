package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/aniket-sharma10/e-commerce-store/controllers/product"
	"github.com/aniket-sharma10/e-commerce-store/middleware"
)

// SetupProductRoutes registers all "/api/product/*" endpoints. Search and
// single-product reads are public; everything else is admin territory.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	productGroup := api.Group("/product")
	{
		productGroup.POST("/add", middleware.ValidateToken, productControllers.CreateProduct(db))
		productGroup.GET("/search", productControllers.SearchProducts(db))
		productGroup.GET("/export", middleware.ValidateToken, productControllers.ExportProductsToExcel(db))
		productGroup.GET("/:prodId", productControllers.GetSingleProduct(db))
		productGroup.PUT("/update/:prodId", middleware.ValidateToken, productControllers.UpdateProduct(db))
		productGroup.DELETE("/delete/:prodId", middleware.ValidateToken, productControllers.DeleteProduct(db))
	}
}
