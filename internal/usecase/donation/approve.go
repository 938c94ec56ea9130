package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gogreen/tree-donation-service/internal/domain"
	donationdto "github.com/gogreen/tree-donation-service/internal/usecase/dto/donation"
)

func applyProof(d *domain.TreeDonation, proof *donationdto.ProofInput) {
	if proof == nil {
		return
	}
	if v := strings.TrimSpace(proof.PlantedLocation); v != "" {
		d.Proof.PlantedLocation = v
	}
	if proof.PlantedLatitude != nil {
		d.Proof.PlantedLatitude = proof.PlantedLatitude
	}
	if proof.PlantedLongitude != nil {
		d.Proof.PlantedLongitude = proof.PlantedLongitude
	}
	if proof.PlantationDate != nil {
		d.Proof.PlantationDate = proof.PlantationDate
	}
	if proof.TreesPlantedCount != nil && *proof.TreesPlantedCount > 0 {
		d.Proof.TreesPlantedCount = proof.TreesPlantedCount
	}
	if v := strings.TrimSpace(proof.PlantationUpdate); v != "" {
		d.Proof.PlantationUpdate = v
	}
	if v := strings.TrimSpace(proof.ProofImage1URL); v != "" {
		d.Proof.ProofImage1URL = v
	}
	if v := strings.TrimSpace(proof.ProofImage2URL); v != "" {
		d.Proof.ProofImage2URL = v
	}
	if v := strings.TrimSpace(proof.ThankYouNote); v != "" {
		d.Proof.ThankYouNote = v
	}
}

// fillProofDefaults copies the donor's requested details into any proof
// field the operator left unset, so approval emails and tracking pages are
// never half empty.
func fillProofDefaults(d *domain.TreeDonation) {
	if d.Proof.TreesPlantedCount == nil || *d.Proof.TreesPlantedCount <= 0 {
		trees := d.NumberOfTrees
		d.Proof.TreesPlantedCount = &trees
	}
	if d.Proof.PlantedLocation == "" {
		d.Proof.PlantedLocation = d.PlantingLocation
	}
	if d.Proof.PlantedLatitude == nil && d.Latitude != nil {
		d.Proof.PlantedLatitude = d.Latitude
	}
	if d.Proof.PlantedLongitude == nil && d.Longitude != nil {
		d.Proof.PlantedLongitude = d.Longitude
	}
}

// ApproveOrders applies the shared proof payload to every listed order and
// approves each independently: one bad record or bounced email never blocks
// the rest of the batch. The donor email goes out only on the first
// transition into approved.
func (uc *DefaultDonationUsecase) ApproveOrders(ctx context.Context, input *donationdto.ApproveOrdersInput) (*donationdto.BatchApprovalOutput, error) {
	if len(input.IDs) == 0 {
		return nil, domain.E(domain.KindValidation, "order ids are required")
	}

	out := &donationdto.BatchApprovalOutput{}
	now := time.Now().UTC()

	for _, id := range input.IDs {
		donation, err := uc.DonationRepo.GetDonationByID(id)
		if err != nil {
			slog.Warn("skipping approval of missing order", "donation_id", id, "error", err)
			continue
		}

		wasApproved := donation.ApprovalStatus == domain.ApprovalApproved

		applyProof(donation, input.Proof)
		fillProofDefaults(donation)
		donation.ApprovalStatus = domain.ApprovalApproved
		if donation.ApprovedAt == nil {
			at := now
			donation.ApprovedAt = &at
		}

		if err := uc.DonationRepo.UpdateDonation(donation); err != nil {
			slog.Error("failed to persist approval", "donation_id", id, "error", err)
			continue
		}

		out.Approved++
		uc.Metrics.ApprovalsTotal.WithLabelValues("approved").Inc()

		if wasApproved {
			continue
		}
		if err := uc.Dispatcher.Dispatch(ctx, uc.Builder.ApprovalEmail(donation)); err != nil {
			slog.Error("failed to enqueue approval email", "donation_id", id, "error", err)
			out.FailedEmail++
			continue
		}
		out.Emailed++
	}

	return out, nil
}

// RejectOrders flips orders to rejected and clears the approval timestamp.
// Attached proof stays; re-approving restores it. No email is sent.
func (uc *DefaultDonationUsecase) RejectOrders(ids []uint) (int, error) {
	if len(ids) == 0 {
		return 0, domain.E(domain.KindValidation, "order ids are required")
	}

	rejected := 0
	for _, id := range ids {
		donation, err := uc.DonationRepo.GetDonationByID(id)
		if err != nil {
			slog.Warn("skipping rejection of missing order", "donation_id", id, "error", err)
			continue
		}

		donation.ApprovalStatus = domain.ApprovalRejected
		donation.ApprovedAt = nil

		if err := uc.DonationRepo.UpdateDonation(donation); err != nil {
			slog.Error("failed to persist rejection", "donation_id", id, "error", err)
			continue
		}
		rejected++
		uc.Metrics.ApprovalsTotal.WithLabelValues("rejected").Inc()
	}

	return rejected, nil
}
