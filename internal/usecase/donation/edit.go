package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/gogreen/tree-donation-service/internal/domain"
	donationdto "github.com/gogreen/tree-donation-service/internal/usecase/dto/donation"
)

func (uc *DefaultDonationUsecase) ownedDonation(userID, donationID uint) (*domain.TreeDonation, error) {
	donation, err := uc.DonationRepo.GetDonationByID(donationID)
	if err != nil {
		return nil, err
	}
	// Ownership failures read as not-found so order ids are not probeable.
	if donation.UserID != userID || donation.IsUserDeleted {
		return nil, domain.ErrDonationNotFound
	}
	return donation, nil
}

// UpdateUserOrder lets the owner correct order fields. Editing a paid order
// invalidates any plantation evidence already attached: the approval axis
// resets to pending and the proof is cleared.
func (uc *DefaultDonationUsecase) UpdateUserOrder(userID, donationID uint, input *donationdto.UpdateOrderInput) (*donationdto.OrderOutput, error) {
	donation, err := uc.ownedDonation(userID, donationID)
	if err != nil {
		return nil, err
	}

	updated := false

	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
			updated = true
		}
	}

	setString(&donation.FullName, input.FullName)
	setString(&donation.Phone, input.Phone)
	setString(&donation.TreeSpecies, input.TreeSpecies)
	setString(&donation.PlantingLocation, input.PlantingLocation)
	setString(&donation.Objective, input.Objective)
	setString(&donation.DedicationName, input.DedicationName)
	setString(&donation.Notes, input.Notes)

	if input.Latitude != nil {
		donation.Latitude = input.Latitude
		updated = true
	}
	if input.Longitude != nil {
		donation.Longitude = input.Longitude
		updated = true
	}

	if input.NumberOfTrees != nil {
		trees := *input.NumberOfTrees
		if trees < 1 || trees > maxTreesPerOrder {
			return nil, domain.E(domain.KindValidation,
				fmt.Sprintf("number_of_trees must be between 1 and %d", maxTreesPerOrder))
		}
		donation.NumberOfTrees = trees
		// The amount is settled money once paid; only unpaid orders reprice.
		if donation.PaymentStatus != domain.PaymentPaid {
			donation.AmountPaise = trees * uc.treePriceINR * 100
		}
		updated = true
	}

	if donation.FullName == "" || donation.Phone == "" || donation.Objective == "" || donation.PlantingLocation == "" {
		return nil, domain.E(domain.KindValidation, "full_name, phone, objective and planting_location cannot be emptied")
	}
	if !updated {
		return nil, domain.ErrNothingToUpdate
	}

	if donation.PaymentStatus == domain.PaymentPaid {
		donation.ClearProof()
	}

	if err := uc.DonationRepo.UpdateDonation(donation); err != nil {
		return nil, err
	}
	return uc.toOrderOutput(donation, true), nil
}

// DeleteUserOrder hides the order from the owner's dashboard. The row stays
// for operators, who can restore it.
func (uc *DefaultDonationUsecase) DeleteUserOrder(userID, donationID uint) error {
	if _, err := uc.ownedDonation(userID, donationID); err != nil {
		return err
	}
	return uc.DonationRepo.SoftDeleteDonation(donationID, time.Now().UTC())
}

func (uc *DefaultDonationUsecase) RestoreOrders(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.E(domain.KindValidation, "order ids are required")
	}
	return uc.DonationRepo.RestoreDonations(ids)
}
