package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aniket-sharma10/e-commerce-store/apierrors"
	"github.com/aniket-sharma10/e-commerce-store/models"
)

// DELETE /api/product/delete/:prodId
// Historical order line items keep their product id; they are not touched.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.Error(apierrors.NewUnauthenticated("Only admins can delete product"))
			return
		}

		result := db.Delete(&models.Product{}, "id = ?", c.Param("prodId"))
		if result.Error != nil {
			c.Error(result.Error)
			return
		}
		if result.RowsAffected == 0 {
			c.Error(apierrors.NewNotFound("Product not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Product deleted successfully"})
	}
}
