package domain

import "time"

type PaymentStatus string

const (
	PaymentCreated PaymentStatus = "created"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// TreeDonation is one purchase of N trees by one verified user.
// Payment and approval are independent axes: approval only becomes
// meaningful once the donation is paid.
type TreeDonation struct {
	ID            uint
	UserID        uint
	TrackingToken string

	FullName string
	Email    string
	Phone    string

	NumberOfTrees    int64
	TreeSpecies      string
	PlantingLocation string
	Latitude         *float64
	Longitude        *float64
	Objective        string
	DedicationName   string
	Notes            string

	AmountPaise int64
	Currency    string

	PaymentStatus  PaymentStatus
	ApprovalStatus ApprovalStatus

	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string

	Proof PlantationProof

	IsUserDeleted bool
	CreatedAt     time.Time
	PaidAt        *time.Time
	ApprovedAt    *time.Time
	UserDeletedAt *time.Time
}

// PlantationProof is filled by the operator on approval and cleared as a
// unit whenever a paid donation is edited by its owner.
type PlantationProof struct {
	PlantedLocation   string
	PlantedLatitude   *float64
	PlantedLongitude  *float64
	PlantationDate    *time.Time
	TreesPlantedCount *int64
	PlantationUpdate  string
	ProofImage1URL    string
	ProofImage2URL    string
	ThankYouNote      string
}

// TreesCounted is the planted count when the operator recorded one,
// otherwise the ordered count.
func (d *TreeDonation) TreesCounted() int64 {
	if d.Proof.TreesPlantedCount != nil && *d.Proof.TreesPlantedCount > 0 {
		return *d.Proof.TreesPlantedCount
	}
	return d.NumberOfTrees
}

// ClearProof resets the approval axis back to pending review.
func (d *TreeDonation) ClearProof() {
	d.ApprovalStatus = ApprovalPending
	d.ApprovedAt = nil
	d.Proof = PlantationProof{}
}
