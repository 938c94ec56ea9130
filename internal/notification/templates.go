package notification

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogreen/tree-donation-service/internal/domain"
)

// Builder renders the plain-text notification emails. All links are
// computed here so handlers and workers never touch tokens or map URLs.
type Builder struct {
	FrontendURL         string
	CarbonOffsetPerTree float64
	Maps                domain.MapLinker
}

func NewBuilder(frontendURL string, carbonOffsetPerTree float64, maps domain.MapLinker) *Builder {
	return &Builder{
		FrontendURL:         strings.TrimRight(frontendURL, "/"),
		CarbonOffsetPerTree: carbonOffsetPerTree,
		Maps:                maps,
	}
}

func (b *Builder) TrackingURL(token string) string {
	return fmt.Sprintf("%s/track/%s", b.FrontendURL, token)
}

func (b *Builder) CertificateURL(token string) string {
	return fmt.Sprintf("%s/certificate/%s", b.FrontendURL, token)
}

func (b *Builder) CarbonOffsetKgPerYear(trees int64) float64 {
	return math.Round(float64(trees)*b.CarbonOffsetPerTree*100) / 100
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func dashFloat(f *float64) string {
	if f == nil {
		return "-"
	}
	return fmt.Sprintf("%v", *f)
}

// OTPEmail matches the registration mail: subject and a one-line body.
func (b *Builder) OTPEmail(recipient, otp string) Event {
	return Event{
		Type:      TypeOTP,
		Recipient: recipient,
		Subject:   "Your OTP Code",
		Body:      fmt.Sprintf("Your OTP is %s", otp),
	}
}

// PaymentReceivedEmail is the operator-facing mail sent when a donation
// reaches paid.
func (b *Builder) PaymentReceivedEmail(recipient string, d *domain.TreeDonation) Event {
	mapLink := dash(b.Maps.SearchURL(d.Latitude, d.Longitude, d.PlantingLocation))
	mapImage := dash(b.Maps.StaticMapURL(d.Latitude, d.Longitude))
	carbonOffset := b.CarbonOffsetKgPerYear(d.TreesCounted())

	paidAt := "-"
	if d.PaidAt != nil {
		paidAt = d.PaidAt.Format("2006-01-02 15:04:05 MST")
	}

	lines := []string{
		"A new tree donation has been paid successfully.",
		"",
		fmt.Sprintf("Donation ID: %d", d.ID),
		fmt.Sprintf("User Name: %s", d.FullName),
		fmt.Sprintf("User Email: %s", d.Email),
		fmt.Sprintf("User Phone: %s", d.Phone),
		fmt.Sprintf("Trees Ordered: %d", d.NumberOfTrees),
		fmt.Sprintf("Tree Species: %s", dash(d.TreeSpecies)),
		fmt.Sprintf("Objective: %s", d.Objective),
		fmt.Sprintf("Planting Location: %s", d.PlantingLocation),
		fmt.Sprintf("Latitude: %s", dashFloat(d.Latitude)),
		fmt.Sprintf("Longitude: %s", dashFloat(d.Longitude)),
		fmt.Sprintf("Map Link: %s", mapLink),
		fmt.Sprintf("Map Static Preview: %s", mapImage),
		fmt.Sprintf("Dedication: %s", dash(d.DedicationName)),
		fmt.Sprintf("Notes: %s", dash(d.Notes)),
		fmt.Sprintf("Amount: %.2f %s", float64(d.AmountPaise)/100, d.Currency),
		fmt.Sprintf("Gateway Order ID: %s", d.GatewayOrderID),
		fmt.Sprintf("Gateway Payment ID: %s", dash(d.GatewayPaymentID)),
		fmt.Sprintf("Paid At: %s", paidAt),
		fmt.Sprintf("Estimated Carbon Offset: %v kg/year", carbonOffset),
		fmt.Sprintf("Tracking URL: %s", b.TrackingURL(d.TrackingToken)),
		fmt.Sprintf("Certificate URL: %s", b.CertificateURL(d.TrackingToken)),
	}

	return Event{
		Type:       TypePaymentReceived,
		Recipient:  recipient,
		Subject:    fmt.Sprintf("New Tree Donation Paid (#%d)", d.ID),
		Body:       strings.Join(lines, "\n"),
		DonationID: d.ID,
	}
}

// ApprovalEmail is the donor-facing mail sent on first approval.
func (b *Builder) ApprovalEmail(d *domain.TreeDonation) Event {
	treesCounted := d.TreesCounted()
	carbonOffset := b.CarbonOffsetKgPerYear(treesCounted)

	plantedLocation := d.Proof.PlantedLocation
	if plantedLocation == "" {
		plantedLocation = d.PlantingLocation
	}
	plantationDate := "-"
	if d.Proof.PlantationDate != nil {
		plantationDate = d.Proof.PlantationDate.Format("2006-01-02")
	}

	plantedMap := dash(b.Maps.SearchURL(d.Proof.PlantedLatitude, d.Proof.PlantedLongitude, plantedLocation))
	plantedMapLive := dash(b.Maps.LiveMapURL(d.Proof.PlantedLatitude, d.Proof.PlantedLongitude))
	plantedMapPreview := dash(b.Maps.StaticMapURL(d.Proof.PlantedLatitude, d.Proof.PlantedLongitude))

	thankYou := d.Proof.ThankYouNote
	if thankYou == "" {
		thankYou = "Thank you for supporting a greener future."
	}

	lines := []string{
		fmt.Sprintf("Hi %s,", d.FullName),
		"",
		"Your tree plantation order has been approved.",
		fmt.Sprintf("Order ID: %d", d.ID),
		fmt.Sprintf("Approval Status: %s", strings.ToUpper(string(d.ApprovalStatus))),
		fmt.Sprintf("Trees Ordered: %d", d.NumberOfTrees),
		fmt.Sprintf("Trees Planted Count: %d", treesCounted),
		fmt.Sprintf("Planting Location: %s", plantedLocation),
		fmt.Sprintf("Plantation Date: %s", plantationDate),
		fmt.Sprintf("Coordinates: %s, %s", dashFloat(d.Proof.PlantedLatitude), dashFloat(d.Proof.PlantedLongitude)),
		fmt.Sprintf("Map Location: %s", plantedMap),
		fmt.Sprintf("Live Map: %s", plantedMapLive),
		fmt.Sprintf("Map Preview: %s", plantedMapPreview),
		fmt.Sprintf("Estimated Carbon Offset: %v kg/year", carbonOffset),
		"",
		"Plantation Update:",
		dash(d.Proof.PlantationUpdate),
		"",
		"Proof Image 1:",
		dash(d.Proof.ProofImage1URL),
		"Proof Image 2:",
		dash(d.Proof.ProofImage2URL),
		"",
		"Thank You Note:",
		thankYou,
		"",
		"Track Your Plantation:",
		b.TrackingURL(d.TrackingToken),
		"Download/View Certificate:",
		b.CertificateURL(d.TrackingToken),
		"",
		"Regards,",
		"Green Campus Tracker Team",
	}

	return Event{
		Type:       TypeOrderApproved,
		Recipient:  d.Email,
		Subject:    fmt.Sprintf("Your Tree Order #%d Has Been Approved", d.ID),
		Body:       strings.Join(lines, "\n"),
		DonationID: d.ID,
	}
}

// SupportEmail is sent synchronously, not queued: the caller wants to know
// whether the request reached the team.
func (b *Builder) SupportEmail(fullName, email, phone, subject, message string) (string, string) {
	body := strings.Join([]string{
		"New support request from dashboard:",
		"",
		fmt.Sprintf("Name: %s", dash(fullName)),
		fmt.Sprintf("Email: %s", email),
		fmt.Sprintf("Phone: %s", dash(phone)),
		fmt.Sprintf("Subject: %s", subject),
		"",
		"Message:",
		message,
	}, "\n")

	return fmt.Sprintf("[GoGreen Support] %s", subject), body
}
