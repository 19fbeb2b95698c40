package payment

import "context"

// GatewayOrder is the remote order created before the hosted checkout runs.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// GatewayPayment is the live payment state as reported by the gateway.
type GatewayPayment struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Status  string `json:"status"` // "captured" on success
}

// Gateway is the payment-gateway surface the order flow depends on. The
// production implementation is the Razorpay REST client; tests inject a fake.
type Gateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*GatewayOrder, error)
	FetchPayment(ctx context.Context, paymentID string) (*GatewayPayment, error)
}
