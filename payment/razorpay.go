package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultAPIURL = "https://api.razorpay.com/v1"

// Client talks to the Razorpay REST API with basic auth.
type Client struct {
	keyID      string
	keySecret  string
	apiURL     string
	httpClient *http.Client
}

// NewClientFromEnv builds a client from RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET
// (and an optional RAZORPAY_API_URL override for sandboxing).
func NewClientFromEnv() (*Client, error) {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if keyID == "" || keySecret == "" {
		return nil, fmt.Errorf("razorpay configuration missing")
	}

	apiURL := os.Getenv("RAZORPAY_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	return &Client{
		keyID:      keyID,
		keySecret:  keySecret,
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (c *Client) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*GatewayOrder, error) {
	payload := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}

	var order GatewayOrder
	if err := c.do(ctx, http.MethodPost, "/orders", payload, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) FetchPayment(ctx context.Context, paymentID string) (*GatewayPayment, error) {
	var p GatewayPayment
	if err := c.do(ctx, http.MethodGet, "/payments/"+paymentID, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, body)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach payment gateway: %v", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("payment gateway error (%d): %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse gateway response: %v", err)
	}
	return nil
}
