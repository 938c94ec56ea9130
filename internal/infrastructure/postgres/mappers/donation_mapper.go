package mappers

import (
	"github.com/gogreen/tree-donation-service/internal/domain"
	"github.com/gogreen/tree-donation-service/internal/infrastructure/postgres/models"
)

func ToDomainDonation(model *models.TreeDonationModel) *domain.TreeDonation {
	return &domain.TreeDonation{
		ID:            model.ID,
		UserID:        model.UserID,
		TrackingToken: model.TrackingToken,

		FullName: model.FullName,
		Email:    model.Email,
		Phone:    model.Phone,

		NumberOfTrees:    model.NumberOfTrees,
		TreeSpecies:      model.TreeSpecies,
		PlantingLocation: model.PlantingLocation,
		Latitude:         model.Latitude,
		Longitude:        model.Longitude,
		Objective:        model.Objective,
		DedicationName:   model.DedicationName,
		Notes:            model.Notes,

		AmountPaise: model.AmountPaise,
		Currency:    model.Currency,

		PaymentStatus:  model.PaymentStatus,
		ApprovalStatus: model.ApprovalStatus,

		GatewayOrderID:   model.GatewayOrderID,
		GatewayPaymentID: model.GatewayPaymentID,
		GatewaySignature: model.GatewaySignature,

		Proof: domain.PlantationProof{
			PlantedLocation:   model.PlantedLocation,
			PlantedLatitude:   model.PlantedLatitude,
			PlantedLongitude:  model.PlantedLongitude,
			PlantationDate:    model.PlantationDate,
			TreesPlantedCount: model.TreesPlantedCount,
			PlantationUpdate:  model.PlantationUpdate,
			ProofImage1URL:    model.ProofImage1URL,
			ProofImage2URL:    model.ProofImage2URL,
			ThankYouNote:      model.ThankYouNote,
		},

		IsUserDeleted: model.IsUserDeleted,
		CreatedAt:     model.CreatedAt,
		PaidAt:        model.PaidAt,
		ApprovedAt:    model.ApprovedAt,
		UserDeletedAt: model.UserDeletedAt,
	}
}

func ToGORMDonation(donation *domain.TreeDonation) *models.TreeDonationModel {
	return &models.TreeDonationModel{
		ID:            donation.ID,
		UserID:        donation.UserID,
		TrackingToken: donation.TrackingToken,

		FullName: donation.FullName,
		Email:    donation.Email,
		Phone:    donation.Phone,

		NumberOfTrees:    donation.NumberOfTrees,
		TreeSpecies:      donation.TreeSpecies,
		PlantingLocation: donation.PlantingLocation,
		Latitude:         donation.Latitude,
		Longitude:        donation.Longitude,
		Objective:        donation.Objective,
		DedicationName:   donation.DedicationName,
		Notes:            donation.Notes,

		AmountPaise: donation.AmountPaise,
		Currency:    donation.Currency,

		PaymentStatus:  donation.PaymentStatus,
		ApprovalStatus: donation.ApprovalStatus,

		GatewayOrderID:   donation.GatewayOrderID,
		GatewayPaymentID: donation.GatewayPaymentID,
		GatewaySignature: donation.GatewaySignature,

		PlantedLocation:   donation.Proof.PlantedLocation,
		PlantedLatitude:   donation.Proof.PlantedLatitude,
		PlantedLongitude:  donation.Proof.PlantedLongitude,
		PlantationDate:    donation.Proof.PlantationDate,
		TreesPlantedCount: donation.Proof.TreesPlantedCount,
		PlantationUpdate:  donation.Proof.PlantationUpdate,
		ProofImage1URL:    donation.Proof.ProofImage1URL,
		ProofImage2URL:    donation.Proof.ProofImage2URL,
		ThankYouNote:      donation.Proof.ThankYouNote,

		IsUserDeleted: donation.IsUserDeleted,
		CreatedAt:     donation.CreatedAt,
		PaidAt:        donation.PaidAt,
		ApprovedAt:    donation.ApprovedAt,
		UserDeletedAt: donation.UserDeletedAt,
	}
}
