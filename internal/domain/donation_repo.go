package domain

import "time"

// GrowthRow is the projection the impact histogram is bucketed from.
type GrowthRow struct {
	PlantationDate    *time.Time
	PaidAt            *time.Time
	ApprovedAt        *time.Time
	CreatedAt         time.Time
	TreesPlantedCount *int64
	NumberOfTrees     int64
}

// ImpactTotals are the SQL-aggregated figures over paid donations.
type ImpactTotals struct {
	TreesTotal         int64
	ApprovedTreesTotal int64
	PaidCount          int64
	ApprovedCount      int64
	DistinctDonors     int64
	AmountPaiseTotal   int64
}

type DonationRepository interface {
	CreateDonation(donation *TreeDonation) error
	GetDonationByID(id uint) (*TreeDonation, error)
	GetDonationByOrderID(gatewayOrderID string) (*TreeDonation, error)
	GetDonationByTrackingToken(token string) (*TreeDonation, error)
	GetDonationsByUserID(userID uint) ([]*TreeDonation, error)
	UpdateDonation(donation *TreeDonation) error

	// MarkPaymentFailed flips a not-yet-paid donation to failed.
	MarkPaymentFailed(gatewayOrderID string) error

	// CommitPaid records payment facts with a conditional update scoped to
	// payment_status <> 'paid'. Returns false when another verification call
	// already won the race.
	CommitPaid(gatewayOrderID, paymentID, signature string, paidAt time.Time) (bool, error)

	SoftDeleteDonation(id uint, at time.Time) error
	RestoreDonations(ids []uint) (int64, error)

	AggregateImpact() (*ImpactTotals, error)
	ListPaidGrowthRows() ([]GrowthRow, error)
}
