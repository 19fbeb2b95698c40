package paymentControllers_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aniket-sharma10/e-commerce-store/middleware"
	"github.com/aniket-sharma10/e-commerce-store/models"
	"github.com/aniket-sharma10/e-commerce-store/payment"
	"github.com/aniket-sharma10/e-commerce-store/routes"
)

const testSecret = "gateway-secret"

// fakeGateway stands in for the Razorpay client.
type fakeGateway struct {
	orderID       string
	paymentStatus string
	createErr     error
}

func (f *fakeGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*payment.GatewayOrder, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &payment.GatewayOrder{
		ID:       f.orderID,
		Amount:   amountMinor,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

func (f *fakeGateway) FetchPayment(ctx context.Context, paymentID string) (*payment.GatewayPayment, error) {
	return &payment.GatewayPayment{ID: paymentID, OrderID: f.orderID, Status: f.paymentStatus}, nil
}

func setupTest(t *testing.T, gateway payment.Gateway) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("RAZORPAY_KEY_SECRET", testSecret)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Category{},
		&models.Cart{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{},
	))

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	routes.SetupRoutes(r, db, gateway, nil)
	return r, db
}

func authCookie(t *testing.T, userID string, isAdmin bool) *http.Cookie {
	claims := jwt.MapClaims{
		"userId":  userID,
		"isAdmin": isAdmin,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return &http.Cookie{Name: "access_token", Value: token}
}

func doRequest(r http.Handler, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signCallback(orderID, paymentID string) string {
	h := hmac.New(sha256.New, []byte(testSecret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

func seedOrder(t *testing.T, db *gorm.DB, gatewayOrderID string) models.Order {
	order := models.Order{
		GatewayOrderID: gatewayOrderID,
		UserID:         "user-1",
		Products:       []models.OrderItem{{ProductID: "prod-1", Quantity: 1}},
		TotalAmount:    100,
		Currency:       "INR",
		Status:         models.PaymentCreated,
		DeliveryStatus: models.DeliveryOrdered,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func TestCreateOrder_PersistsLocalOrder(t *testing.T) {
	r, db := setupTest(t, &fakeGateway{orderID: "order_ext1"})
	ck := authCookie(t, "user-1", false)

	w := doRequest(r, http.MethodPost, "/api/order/razorpay", gin.H{
		"address":      gin.H{"addressLine1": "1 Main St", "pincode": 110001},
		"products":     []gin.H{{"productId": "prod-1", "quantity": 2}},
		"total_amount": 499.0,
		"currency":     "INR",
	}, ck)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OrderID  string `json:"orderId"`
		Currency string `json:"currency"`
		Amount   int64  `json:"amount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "order_ext1", resp.OrderID)
	assert.Equal(t, "INR", resp.Currency)
	assert.EqualValues(t, 49900, resp.Amount, "amount is forwarded in minor units")

	var order models.Order
	require.NoError(t, db.Preload("Products").First(&order, "gateway_order_id = ?", "order_ext1").Error)
	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, models.PaymentCreated, order.Status)
	assert.Equal(t, models.DeliveryOrdered, order.DeliveryStatus)
	assert.Equal(t, 499.0, order.TotalAmount)
	require.Len(t, order.Products, 1)
	assert.Equal(t, 2, order.Products[0].Quantity)
}

func TestCreateOrder_FractionalAmount(t *testing.T) {
	r, _ := setupTest(t, &fakeGateway{orderID: "order_ext2"})
	ck := authCookie(t, "user-1", false)

	w := doRequest(r, http.MethodPost, "/api/order/razorpay", gin.H{
		"address":      gin.H{"addressLine1": "1 Main St", "pincode": 110001},
		"products":     []gin.H{{"productId": "prod-1", "quantity": 1}},
		"total_amount": 19.99,
		"currency":     "INR",
	}, ck)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Amount int64 `json:"amount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 1999, resp.Amount, "19.99 is 1999 minor units, not a truncated 1998")
}

func TestVerify_ForgedSignature(t *testing.T) {
	r, db := setupTest(t, &fakeGateway{orderID: "order_ext1", paymentStatus: "captured"})
	order := seedOrder(t, db, "order_ext1")
	ck := authCookie(t, "user-1", false)

	w := doRequest(r, http.MethodPost, "/api/order/razorpay/verify", gin.H{
		"razorpay_payment_id": "pay_1",
		"razorpay_order_id":   "order_ext1",
		"razorpay_signature":  "forged",
	}, ck)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Payment not verified, invalid signature")

	var got models.Order
	require.NoError(t, db.First(&got, "id = ?", order.ID).Error)
	assert.Equal(t, models.PaymentCreated, got.Status, "forged signature must not mutate order state")
	assert.Equal(t, models.DeliveryOrdered, got.DeliveryStatus)
}

func TestVerify_CapturedPayment(t *testing.T) {
	r, db := setupTest(t, &fakeGateway{orderID: "order_ext1", paymentStatus: "captured"})
	order := seedOrder(t, db, "order_ext1")
	ck := authCookie(t, "user-1", false)

	w := doRequest(r, http.MethodPost, "/api/order/razorpay/verify", gin.H{
		"razorpay_payment_id": "pay_1",
		"razorpay_order_id":   "order_ext1",
		"razorpay_signature":  signCallback("order_ext1", "pay_1"),
	}, ck)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Payment verified and captured successfully")

	var got models.Order
	require.NoError(t, db.First(&got, "id = ?", order.ID).Error)
	assert.Equal(t, models.PaymentSuccessful, got.Status)
	assert.Equal(t, models.DeliveryOrdered, got.DeliveryStatus)
}

func TestVerify_UncapturedPayment(t *testing.T) {
	r, db := setupTest(t, &fakeGateway{orderID: "order_ext1", paymentStatus: "failed"})
	order := seedOrder(t, db, "order_ext1")
	ck := authCookie(t, "user-1", false)

	w := doRequest(r, http.MethodPost, "/api/order/razorpay/verify", gin.H{
		"razorpay_payment_id": "pay_1",
		"razorpay_order_id":   "order_ext1",
		"razorpay_signature":  signCallback("order_ext1", "pay_1"),
	}, ck)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Payment not captured, current status: failed")

	var got models.Order
	require.NoError(t, db.First(&got, "id = ?", order.ID).Error)
	assert.Equal(t, "failed", got.Status, "gateway status is stored verbatim")
	assert.Equal(t, models.DeliveryFailed, got.DeliveryStatus)
}

func TestVerify_UnknownOrder(t *testing.T) {
	r, _ := setupTest(t, &fakeGateway{orderID: "order_ext1", paymentStatus: "captured"})
	ck := authCookie(t, "user-1", false)

	w := doRequest(r, http.MethodPost, "/api/order/razorpay/verify", gin.H{
		"razorpay_payment_id": "pay_1",
		"razorpay_order_id":   "order_ext1",
		"razorpay_signature":  signCallback("order_ext1", "pay_1"),
	}, ck)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Order not found!")
}
