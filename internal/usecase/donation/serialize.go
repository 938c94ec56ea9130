package usecase

import (
	"github.com/gogreen/tree-donation-service/internal/domain"
	donationdto "github.com/gogreen/tree-donation-service/internal/usecase/dto/donation"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

func createdAtString(d *domain.TreeDonation) string {
	return d.CreatedAt.UTC().Format(timeLayout)
}

// toOrderOutput builds the full projection. withPII=false is the public
// tracking variant: email and phone are stripped everywhere.
func (uc *DefaultDonationUsecase) toOrderOutput(d *domain.TreeDonation, withPII bool) *donationdto.OrderOutput {
	out := &donationdto.OrderOutput{
		ID:               d.ID,
		FullName:         d.FullName,
		NumberOfTrees:    d.NumberOfTrees,
		TreeSpecies:      d.TreeSpecies,
		PlantingLocation: d.PlantingLocation,
		Latitude:         d.Latitude,
		Longitude:        d.Longitude,
		Objective:        d.Objective,
		DedicationName:   d.DedicationName,
		Notes:            d.Notes,
		AmountPaise:      d.AmountPaise,
		Currency:         d.Currency,
		PaymentStatus:    string(d.PaymentStatus),
		ApprovalStatus:   string(d.ApprovalStatus),
		GatewayOrderID:   d.GatewayOrderID,
		GatewayPaymentID: d.GatewayPaymentID,
		CreatedAt:        createdAtString(d),
		TrackingToken:    d.TrackingToken,
		TrackingURL:      uc.Builder.TrackingURL(d.TrackingToken),
		CertificateURL:   uc.Builder.CertificateURL(d.TrackingToken),
	}

	if withPII {
		out.Email = d.Email
		out.Phone = d.Phone
	}
	if d.PaidAt != nil {
		out.PaidAt = d.PaidAt.UTC().Format(timeLayout)
	}
	if d.ApprovedAt != nil {
		out.ApprovedAt = d.ApprovedAt.UTC().Format(timeLayout)
	}

	out.Impact = donationdto.ImpactBlock{
		CarbonOffsetKgPerYear: uc.Builder.CarbonOffsetKgPerYear(d.TreesCounted()),
		TreesCounted:          d.TreesCounted(),
		Unit:                  "kg CO2/year",
	}

	maps := uc.Builder.Maps
	out.UserOrderDetails = donationdto.OrderDetails{
		FullName:             d.FullName,
		NumberOfTrees:        d.NumberOfTrees,
		TreeSpecies:          d.TreeSpecies,
		PlantingLocation:     d.PlantingLocation,
		Latitude:             d.Latitude,
		Longitude:            d.Longitude,
		RequestedMapURL:      maps.SearchURL(d.Latitude, d.Longitude, d.PlantingLocation),
		RequestedMapLiveURL:  maps.LiveMapURL(d.Latitude, d.Longitude),
		RequestedMapImageURL: maps.StaticMapURL(d.Latitude, d.Longitude),
		Objective:            d.Objective,
		DedicationName:       d.DedicationName,
		Notes:                d.Notes,
		CreatedAt:            createdAtString(d),
		AmountPaise:          d.AmountPaise,
		Currency:             d.Currency,
	}
	if withPII {
		out.UserOrderDetails.Email = d.Email
		out.UserOrderDetails.Phone = d.Phone
	}

	plantedLocation := d.Proof.PlantedLocation
	if plantedLocation == "" {
		plantedLocation = d.PlantingLocation
	}
	out.ApprovalDetails = donationdto.ApprovalDetails{
		ApprovalStatus:     string(d.ApprovalStatus),
		PlantedLocation:    d.Proof.PlantedLocation,
		PlantedLatitude:    d.Proof.PlantedLatitude,
		PlantedLongitude:   d.Proof.PlantedLongitude,
		PlantedMapURL:      maps.SearchURL(d.Proof.PlantedLatitude, d.Proof.PlantedLongitude, plantedLocation),
		PlantedMapLiveURL:  maps.LiveMapURL(d.Proof.PlantedLatitude, d.Proof.PlantedLongitude),
		PlantedMapImageURL: maps.StaticMapURL(d.Proof.PlantedLatitude, d.Proof.PlantedLongitude),
		TreesPlantedCount:  d.Proof.TreesPlantedCount,
		PlantationUpdate:   d.Proof.PlantationUpdate,
		ThankYouNote:       d.Proof.ThankYouNote,
		ProofImage1URL:     d.Proof.ProofImage1URL,
		ProofImage2URL:     d.Proof.ProofImage2URL,
	}
	if d.ApprovedAt != nil {
		out.ApprovalDetails.ApprovedAt = d.ApprovedAt.UTC().Format(timeLayout)
	}
	if d.Proof.PlantationDate != nil {
		out.ApprovalDetails.PlantationDate = d.Proof.PlantationDate.UTC().Format("2006-01-02")
	}

	return out
}
