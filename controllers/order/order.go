package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aniket-sharma10/e-commerce-store/apierrors"
	"github.com/aniket-sharma10/e-commerce-store/events"
	"github.com/aniket-sharma10/e-commerce-store/models"
)

type UpdateDeliveryStatusInput struct {
	DeliveryStatus string `json:"deliveryStatus"`
}

// OrderItemResponse is an order line with the referenced product resolved for
// display. Prod is nil when the product has since been deleted.
type OrderItemResponse struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Prod      *models.Product `json:"prod"`
}

type OrderResponse struct {
	ID             string                `json:"id"`
	GatewayOrderID string                `json:"order_id"`
	UserID         string                `json:"userId"`
	User           *models.User          `json:"user,omitempty"`
	Address        models.Address        `json:"address"`
	Products       []OrderItemResponse   `json:"products"`
	TotalAmount    float64               `json:"total_amount"`
	Currency       string                `json:"currency"`
	Status         string                `json:"status"`
	DeliveryStatus models.DeliveryStatus `json:"deliveryStatus"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// GET /api/order
// Admins see every order, filterable by gateway-order-id substring and
// delivery status; everyone else sees only their own.
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin := c.GetBool("is_admin")

		query := db.Model(&models.Order{}).Preload("Products")
		if isAdmin {
			if q := c.Query("q"); q != "" {
				query = query.Where("LOWER(gateway_order_id) LIKE ?", "%"+strings.ToLower(q)+"%")
			}
			if dStatus := c.Query("dStatus"); dStatus != "" {
				query = query.Where("delivery_status = ?", dStatus)
			}
		} else {
			query = query.Where("user_id = ?", c.GetString("user_id"))
		}

		start, _ := strconv.Atoi(c.DefaultQuery("start", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "8"))
		order := "updated_at desc"
		if c.Query("sort") == "asc" {
			order = "updated_at asc"
		}

		page := query.Order(order).Offset(start)
		if limit > 0 {
			page = page.Limit(limit)
		}

		var orders []models.Order
		if err := page.Find(&orders).Error; err != nil {
			c.Error(err)
			return
		}

		resp := make([]OrderResponse, 0, len(orders))
		for _, o := range orders {
			resp = append(resp, resolveOrder(db, o, isAdmin))
		}
		c.JSON(http.StatusOK, resp)
	}
}

// PUT /api/order/:orderId
func UpdateDeliveryStatus(db *gorm.DB, pub *events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.Error(apierrors.NewUnauthenticated("Only admins can change delivery status"))
			return
		}

		var input UpdateDeliveryStatusInput
		if err := c.ShouldBindJSON(&input); err != nil || !models.ValidDeliveryStatus(input.DeliveryStatus) {
			c.Error(apierrors.NewBadRequest("Invalid delivery status"))
			return
		}

		var order models.Order
		if err := db.Preload("Products").First(&order, "id = ?", c.Param("orderId")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.Error(apierrors.NewNotFound("Order not found"))
				return
			}
			c.Error(err)
			return
		}

		order.DeliveryStatus = models.DeliveryStatus(input.DeliveryStatus)
		if err := db.Save(&order).Error; err != nil {
			c.Error(err)
			return
		}

		pub.Publish(events.OrderUpdated, order)
		BroadcastOrder(order)
		c.JSON(http.StatusOK, resolveOrder(db, order, true))
	}
}

// resolveOrder merges referenced product (and, for admins, user) documents
// into the order for display.
func resolveOrder(db *gorm.DB, o models.Order, withUser bool) OrderResponse {
	resp := OrderResponse{
		ID:             o.ID,
		GatewayOrderID: o.GatewayOrderID,
		UserID:         o.UserID,
		Address:        o.Address,
		Products:       make([]OrderItemResponse, 0, len(o.Products)),
		TotalAmount:    o.TotalAmount,
		Currency:       o.Currency,
		Status:         o.Status,
		DeliveryStatus: o.DeliveryStatus,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}

	for _, item := range o.Products {
		line := OrderItemResponse{ProductID: item.ProductID, Quantity: item.Quantity}
		var product models.Product
		if err := db.First(&product, "id = ?", item.ProductID).Error; err == nil {
			line.Prod = &product
		}
		resp.Products = append(resp.Products, line)
	}

	if withUser {
		var user models.User
		if err := db.First(&user, "id = ?", o.UserID).Error; err == nil {
			resp.User = &user
		}
	}
	return resp
}
