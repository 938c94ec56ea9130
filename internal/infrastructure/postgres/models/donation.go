package models

import (
	"time"

	"github.com/gogreen/tree-donation-service/internal/domain"
)

type TreeDonationModel struct {
	ID            uint   `gorm:"primaryKey"`
	UserID        uint   `gorm:"index"`
	TrackingToken string `gorm:"size:40;uniqueIndex"`

	FullName string `gorm:"size:150"`
	Email    string `gorm:"size:254;index"`
	Phone    string `gorm:"size:20"`

	NumberOfTrees    int64
	TreeSpecies      string `gorm:"size:100"`
	PlantingLocation string `gorm:"size:255"`
	Latitude         *float64
	Longitude        *float64
	Objective        string `gorm:"size:255"`
	DedicationName   string `gorm:"size:255"`
	Notes            string `gorm:"type:text"`

	AmountPaise int64
	Currency    string `gorm:"size:10"`

	PaymentStatus  domain.PaymentStatus  `gorm:"size:20;index"`
	ApprovalStatus domain.ApprovalStatus `gorm:"size:20;index"`

	GatewayOrderID   string `gorm:"size:100;uniqueIndex"`
	GatewayPaymentID string `gorm:"size:100"`
	GatewaySignature string `gorm:"size:255"`

	PlantedLocation   string `gorm:"size:255"`
	PlantedLatitude   *float64
	PlantedLongitude  *float64
	PlantationDate    *time.Time
	TreesPlantedCount *int64
	PlantationUpdate  string `gorm:"type:text"`
	ProofImage1URL    string `gorm:"size:500"`
	ProofImage2URL    string `gorm:"size:500"`
	ThankYouNote      string `gorm:"type:text"`

	IsUserDeleted bool `gorm:"index"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
	PaidAt        *time.Time
	ApprovedAt    *time.Time
	UserDeletedAt *time.Time
}

func (TreeDonationModel) TableName() string { return "tree_donations" }
