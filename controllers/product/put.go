package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aniket-sharma10/e-commerce-store/apierrors"
	"github.com/aniket-sharma10/e-commerce-store/models"
)

type UpdateProductInput struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Quantity    *int      `json:"quantity"`
	Categories  *[]string `json:"categories"`
	Brand       *string   `json:"brand"`
	Images      *[]string `json:"images"`
}

// PUT /api/product/update/:prodId
// Partial update: only fields present in the body are replaced; an empty
// payload is rejected.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.Error(apierrors.NewUnauthenticated("Only admins can update product details"))
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.Error(apierrors.NewBadRequest("Invalid request body"))
			return
		}

		if input.Name == nil && input.Description == nil && input.Price == nil &&
			input.Quantity == nil && input.Categories == nil && input.Brand == nil && input.Images == nil {
			c.Error(apierrors.NewBadRequest("Please provide atleast one field to update"))
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("prodId")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.Error(apierrors.NewNotFound("Product not found"))
				return
			}
			c.Error(err)
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Quantity != nil {
			product.Quantity = *input.Quantity
		}
		if input.Categories != nil {
			product.Categories = models.StringList(*input.Categories)
		}
		if input.Brand != nil {
			product.Brand = *input.Brand
		}
		if input.Images != nil {
			product.Images = models.StringList(*input.Images)
		}

		if err := db.Save(&product).Error; err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
