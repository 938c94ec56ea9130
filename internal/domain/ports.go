package domain

import "context"

// GatewayOrder is the remote order created before any local row exists.
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}

// GatewayPayment is the authoritative payment record fetched
// server-to-server; client-asserted amounts and statuses are never trusted.
type GatewayPayment struct {
	ID      string
	OrderID string
	Amount  int64
	Status  string
}

type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string, notes map[string]string) (*GatewayOrder, error)
	GetPayment(ctx context.Context, paymentID string) (*GatewayPayment, error)
}

type GeocodeResult struct {
	PlaceName string
	Latitude  float64
	Longitude float64
}

type Geocoder interface {
	Search(ctx context.Context, query, country string) ([]GeocodeResult, error)
}

type Mailer interface {
	Send(recipient, subject, body string) error
}

// MapLinker builds third-party map URLs for serializations and emails.
// Implementations return "" when coordinates or credentials are missing.
type MapLinker interface {
	LiveMapURL(latitude, longitude *float64) string
	SearchURL(latitude, longitude *float64, locationText string) string
	StaticMapURL(latitude, longitude *float64) string
}
