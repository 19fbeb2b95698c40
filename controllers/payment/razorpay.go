package paymentControllers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aniket-sharma10/e-commerce-store/apierrors"
	orderControllers "github.com/aniket-sharma10/e-commerce-store/controllers/order"
	"github.com/aniket-sharma10/e-commerce-store/events"
	"github.com/aniket-sharma10/e-commerce-store/models"
	"github.com/aniket-sharma10/e-commerce-store/payment"
)

type checkoutItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CheckoutInput struct {
	UserID      string         `json:"userId"`
	Address     models.Address `json:"address"`
	Products    []checkoutItem `json:"products"`
	TotalAmount float64        `json:"total_amount"`
	Currency    string         `json:"currency"`
}

type VerifyInput struct {
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// POST /api/order/razorpay
// Creates the remote gateway order (amount in minor units) and persists the
// local order in payment state "created" / delivery state "ordered", keeping
// the gateway's id, currency and status verbatim.
func CreateOrder(db *gorm.DB, gateway payment.Gateway, pub *events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.Error(apierrors.NewBadRequest("Invalid request body"))
			return
		}
		if len(input.Products) == 0 || input.TotalAmount <= 0 || input.Currency == "" {
			c.Error(apierrors.NewBadRequest("Please provide products, total amount and currency"))
			return
		}
		if input.Address.Pincode != 0 && (input.Address.Pincode < 100000 || input.Address.Pincode > 999999) {
			c.Error(apierrors.NewBadRequest("Please provide a valid pincode"))
			return
		}

		userID := input.UserID
		if userID == "" {
			userID = c.GetString("user_id")
		}

		receipt := "receipt_" + uuid.NewString()
		amountMinor := int64(math.Round(input.TotalAmount * 100))
		gatewayOrder, err := gateway.CreateOrder(c.Request.Context(), amountMinor, input.Currency, receipt)
		if err != nil {
			c.Error(err)
			return
		}

		items := make([]models.OrderItem, 0, len(input.Products))
		for _, p := range input.Products {
			items = append(items, models.OrderItem{ProductID: p.ProductID, Quantity: p.Quantity})
		}

		order := models.Order{
			GatewayOrderID: gatewayOrder.ID,
			UserID:         userID,
			Address:        input.Address,
			Products:       items,
			TotalAmount:    input.TotalAmount,
			Currency:       gatewayOrder.Currency,
			Status:         gatewayOrder.Status,
			DeliveryStatus: models.DeliveryOrdered,
		}
		if err := db.Create(&order).Error; err != nil {
			c.Error(err)
			return
		}

		pub.Publish(events.OrderCreated, order)
		c.JSON(http.StatusOK, gin.H{
			"orderId":  gatewayOrder.ID,
			"currency": gatewayOrder.Currency,
			"amount":   gatewayOrder.Amount,
		})
	}
}

// POST /api/order/razorpay/verify
// A forged signature never mutates order state. A valid signature resolves the
// live payment: "captured" marks the payment successful, anything else stores
// the gateway status and fails delivery.
func VerifySignature(db *gorm.DB, gateway payment.Gateway, pub *events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VerifyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.Error(apierrors.NewBadRequest("Invalid request body"))
			return
		}

		secret := os.Getenv("RAZORPAY_KEY_SECRET")
		if !payment.VerifySignature(input.RazorpayOrderID, input.RazorpayPaymentID, input.RazorpaySignature, secret) {
			c.Error(apierrors.NewBadRequest("Payment not verified, invalid signature"))
			return
		}

		var order models.Order
		if err := db.Preload("Products").Where("gateway_order_id = ?", input.RazorpayOrderID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.Error(apierrors.NewNotFound("Order not found!"))
				return
			}
			c.Error(err)
			return
		}

		livePayment, err := gateway.FetchPayment(c.Request.Context(), input.RazorpayPaymentID)
		if err != nil {
			c.Error(err)
			return
		}

		if livePayment.Status == "captured" {
			order.Status = models.PaymentSuccessful
			if err := db.Save(&order).Error; err != nil {
				c.Error(err)
				return
			}
			pub.Publish(events.OrderUpdated, order)
			orderControllers.BroadcastOrder(order)
			c.JSON(http.StatusOK, gin.H{"msg": "Payment verified and captured successfully"})
			return
		}

		order.Status = livePayment.Status
		order.DeliveryStatus = models.DeliveryFailed
		if err := db.Save(&order).Error; err != nil {
			c.Error(err)
			return
		}
		pub.Publish(events.OrderUpdated, order)
		orderControllers.BroadcastOrder(order)
		c.Error(apierrors.NewBadRequest(fmt.Sprintf("Payment not captured, current status: %s", livePayment.Status)))
	}
}
