package notification

const (
	TypeOTP             = "otp"
	TypePaymentReceived = "payment_received"
	TypeOrderApproved   = "order_approved"
)

// Event is a fully rendered email queued for asynchronous delivery.
// Rendering happens at publish time so the worker stays a dumb sender.
type Event struct {
	Type       string `json:"type"`
	Recipient  string `json:"recipient"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	DonationID uint   `json:"donation_id,omitempty"`
	Attempt    int    `json:"attempt"`
}
