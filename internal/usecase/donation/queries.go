package usecase

import (
	"github.com/gogreen/tree-donation-service/internal/domain"
	donationdto "github.com/gogreen/tree-donation-service/internal/usecase/dto/donation"
)

func (uc *DefaultDonationUsecase) ListUserOrders(userID uint) (*donationdto.ListOrdersOutput, error) {
	donations, err := uc.DonationRepo.GetDonationsByUserID(userID)
	if err != nil {
		return nil, err
	}

	out := &donationdto.ListOrdersOutput{
		Orders: make([]*donationdto.OrderOutput, 0, len(donations)),
	}
	for _, d := range donations {
		out.Orders = append(out.Orders, uc.toOrderOutput(d, true))

		out.Summary.TotalOrders++
		// Rejection counts on its own axis: an order is rejected whether
		// or not it was ever paid.
		if d.PaymentStatus != domain.PaymentPaid {
			out.Summary.UnpaidOrders++
		}
		switch {
		case d.ApprovalStatus == domain.ApprovalRejected:
			out.Summary.RejectedOrders++
		case d.PaymentStatus == domain.PaymentPaid && d.ApprovalStatus == domain.ApprovalApproved:
			out.Summary.CompletedOrders++
		case d.PaymentStatus == domain.PaymentPaid:
			out.Summary.PendingOrders++
		}
	}
	return out, nil
}

func (uc *DefaultDonationUsecase) GetUserOrder(userID, donationID uint) (*donationdto.OrderOutput, error) {
	donation, err := uc.ownedDonation(userID, donationID)
	if err != nil {
		return nil, err
	}
	return uc.toOrderOutput(donation, true), nil
}

// TrackOrder resolves the shareable tracking token. The projection carries
// no email or phone; anyone holding the link may view it.
func (uc *DefaultDonationUsecase) TrackOrder(trackingToken string) (*donationdto.OrderOutput, error) {
	if trackingToken == "" {
		return nil, domain.ErrTrackingNotFound
	}
	donation, err := uc.DonationRepo.GetDonationByTrackingToken(trackingToken)
	if err != nil {
		return nil, err
	}
	return uc.toOrderOutput(donation, false), nil
}
