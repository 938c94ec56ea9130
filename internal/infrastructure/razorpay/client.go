package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gogreen/tree-donation-service/internal/config"
	"github.com/gogreen/tree-donation-service/internal/domain"
)

// Client talks to the Razorpay REST API with key-id/key-secret basic auth.
// Payment records are always fetched server-to-server so client-asserted
// amounts and statuses never enter the lifecycle.
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
}

func NewClient(cfg config.Razorpay) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

func (c *Client) Configured() bool {
	return c.keyID != "" && c.keySecret != ""
}

func (c *Client) KeyID() string { return c.keyID }

// KeySecret is the HMAC secret for callback signature verification.
func (c *Client) KeySecret() string { return c.keySecret }

type createOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type paymentResponse struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
	Status  string `json:"status"`
}

type errorResponse struct {
	Error struct {
		Description string `json:"description"`
		Reason      string `json:"reason"`
	} `json:"error"`
}

func (c *Client) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string, notes map[string]string) (*domain.GatewayOrder, error) {
	requestBodyBytes, err := json.Marshal(createOrderRequest{
		Amount:   amountPaise,
		Currency: currency,
		Receipt:  receipt,
		Notes:    notes,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.Wrap(domain.KindUpstream, "unable to start payment", err)
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, domain.Wrap(domain.KindUpstream, "unable to start payment", err)
	}

	if response.StatusCode >= 400 {
		// Gateway rejections carry a reason and are the caller's problem,
		// not an availability issue.
		var errResp errorResponse
		message := "unable to start payment"
		if err := json.Unmarshal(responseBodyBytes, &errResp); err == nil {
			if errResp.Error.Description != "" {
				message = errResp.Error.Description
			} else if errResp.Error.Reason != "" {
				message = errResp.Error.Reason
			}
		}
		if response.StatusCode >= 500 {
			return nil, domain.E(domain.KindUpstream, message)
		}
		return nil, domain.E(domain.KindValidation, message)
	}

	var orderResp orderResponse
	if err := json.Unmarshal(responseBodyBytes, &orderResp); err != nil || orderResp.ID == "" {
		return nil, domain.E(domain.KindUpstream, "invalid order response from payment gateway")
	}

	return &domain.GatewayOrder{
		ID:       orderResp.ID,
		Amount:   orderResp.Amount,
		Currency: orderResp.Currency,
		Receipt:  orderResp.Receipt,
	}, nil
}

func (c *Client) GetPayment(ctx context.Context, paymentID string) (*domain.GatewayPayment, error) {
	url := fmt.Sprintf("%s/v1/payments/%s", c.baseURL, paymentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)

	response, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.Wrap(domain.KindUpstream, "unable to validate payment status", err)
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, domain.Wrap(domain.KindUpstream, "unable to validate payment status", err)
	}

	if response.StatusCode >= 400 {
		return nil, domain.E(domain.KindValidation, "payment validation failed")
	}

	var paymentResp paymentResponse
	if err := json.Unmarshal(responseBodyBytes, &paymentResp); err != nil {
		return nil, domain.E(domain.KindUpstream, "invalid payment response from payment gateway")
	}

	return &domain.GatewayPayment{
		ID:      paymentResp.ID,
		OrderID: paymentResp.OrderID,
		Amount:  paymentResp.Amount,
		Status:  paymentResp.Status,
	}, nil
}
