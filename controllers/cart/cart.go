package cartControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aniket-sharma10/e-commerce-store/apierrors"
	"github.com/aniket-sharma10/e-commerce-store/models"
)

type CartItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type RemoveItemInput struct {
	ProductID string `json:"productId"`
}

// CartItemResponse is a cart line with the referenced product's details
// merged in for display.
type CartItemResponse struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Prod      *models.Product `json:"prod"`
}

type CartResponse struct {
	ID        uint               `json:"id"`
	UserID    string             `json:"userId"`
	Items     []CartItemResponse `json:"items"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// POST /api/cart
// Adding an existing line accumulates its quantity; the cumulative quantity is
// still capped by current stock. The stock check and the cart write are not
// transactional.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == "" || input.Quantity < 1 {
			c.Error(apierrors.NewBadRequest("Please provide productId and quantity"))
			return
		}

		product, err := findProduct(db, input.ProductID)
		if err != nil {
			c.Error(err)
			return
		}
		if input.Quantity > product.Quantity {
			c.Error(apierrors.NewBadRequest(fmt.Sprintf("Only %d left in stock!", product.Quantity)))
			return
		}

		var cart models.Cart
		err = db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cart = models.Cart{
				UserID: userID,
				Items:  []models.CartItem{{ProductID: input.ProductID, Quantity: input.Quantity}},
			}
			if err := db.Create(&cart).Error; err != nil {
				c.Error(err)
				return
			}
			c.JSON(http.StatusOK, cart)
			return
		}
		if err != nil {
			c.Error(err)
			return
		}

		found := false
		for i := range cart.Items {
			if cart.Items[i].ProductID == input.ProductID {
				newQuantity := cart.Items[i].Quantity + input.Quantity
				if newQuantity > product.Quantity {
					c.Error(apierrors.NewBadRequest(fmt.Sprintf("Only %d left in stock!", product.Quantity)))
					return
				}
				cart.Items[i].Quantity = newQuantity
				if err := db.Save(&cart.Items[i]).Error; err != nil {
					c.Error(err)
					return
				}
				found = true
				break
			}
		}
		if !found {
			item := models.CartItem{CartID: cart.ID, ProductID: input.ProductID, Quantity: input.Quantity}
			if err := db.Create(&item).Error; err != nil {
				c.Error(err)
				return
			}
			cart.Items = append(cart.Items, item)
		}

		c.JSON(http.StatusOK, cart)
	}
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.Error(apierrors.NewNotFound("Cart is empty!"))
				return
			}
			c.Error(err)
			return
		}

		resp := CartResponse{
			ID:        cart.ID,
			UserID:    cart.UserID,
			Items:     make([]CartItemResponse, 0, len(cart.Items)),
			CreatedAt: cart.CreatedAt,
			UpdatedAt: cart.UpdatedAt,
		}
		for _, item := range cart.Items {
			line := CartItemResponse{ProductID: item.ProductID, Quantity: item.Quantity}
			var product models.Product
			if err := db.First(&product, "id = ?", item.ProductID).Error; err == nil {
				line.Prod = &product
			}
			resp.Items = append(resp.Items, line)
		}

		c.JSON(http.StatusOK, resp)
	}
}

// PUT /api/cart
// Overwrites the line's quantity, no additive merge.
func UpdateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == "" || input.Quantity < 1 {
			c.Error(apierrors.NewBadRequest("Please provide productId and quantity"))
			return
		}

		product, err := findProduct(db, input.ProductID)
		if err != nil {
			c.Error(err)
			return
		}
		if input.Quantity > product.Quantity {
			c.Error(apierrors.NewBadRequest(fmt.Sprintf("Only %d left in stock!", product.Quantity)))
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.Error(apierrors.NewNotFound("Cart not found"))
				return
			}
			c.Error(err)
			return
		}

		var item models.CartItem
		if err := db.Where("cart_id = ? AND product_id = ?", cart.ID, input.ProductID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.Error(apierrors.NewNotFound("Product not found in cart"))
				return
			}
			c.Error(err)
			return
		}

		item.Quantity = input.Quantity
		if err := db.Save(&item).Error; err != nil {
			c.Error(err)
			return
		}

		if err := db.Preload("Items").First(&cart, cart.ID).Error; err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /api/cart
// Removing a product not in the cart leaves the cart unchanged.
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input RemoveItemInput
		if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == "" {
			c.Error(apierrors.NewBadRequest("Please provide productId"))
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.Error(apierrors.NewNotFound("Cart not found"))
				return
			}
			c.Error(err)
			return
		}

		if err := db.Where("cart_id = ? AND product_id = ?", cart.ID, input.ProductID).
			Delete(&models.CartItem{}).Error; err != nil {
			c.Error(err)
			return
		}

		if err := db.Preload("Items").First(&cart, cart.ID).Error; err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func findProduct(db *gorm.DB, productID string) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NewNotFound("Product not found")
		}
		return nil, err
	}
	return &product, nil
}
