package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aniket-sharma10/e-commerce-store/apierrors"
	"github.com/aniket-sharma10/e-commerce-store/models"
)

type CreateProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	Categories  []string `json:"categories"`
	Brand       string   `json:"brand"`
	Images      []string `json:"images"`
}

// POST /api/product/add
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.Error(apierrors.NewUnauthenticated("Only admins can add new product"))
			return
		}

		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.Error(apierrors.NewBadRequest("Please provide all fields"))
			return
		}
		if input.Name == "" || input.Description == "" || input.Price == 0 || input.Quantity == 0 || input.Brand == "" {
			c.Error(apierrors.NewBadRequest("Please provide all fields"))
			return
		}
		if len(input.Categories) == 0 {
			c.Error(apierrors.NewBadRequest("Please provide at least one category"))
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Quantity:    input.Quantity,
			Categories:  input.Categories,
			Brand:       input.Brand,
			Images:      input.Images,
		}
		if err := db.Create(&product).Error; err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
