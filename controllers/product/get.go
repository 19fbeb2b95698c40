package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aniket-sharma10/e-commerce-store/apierrors"
	"github.com/aniket-sharma10/e-commerce-store/models"
)

// GET /api/product/:prodId
func GetSingleProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("prodId")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.Error(apierrors.NewNotFound("Product not found"))
				return
			}
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
