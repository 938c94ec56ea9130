package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gogreen/tree-donation-service/internal/domain"
	donationdto "github.com/gogreen/tree-donation-service/internal/usecase/dto/donation"
	"github.com/google/uuid"
)

const maxTreesPerOrder = 10000

// CreateOrder opens a gateway order first and persists the donation row only
// after the gateway accepted it, so no local row ever points at a
// nonexistent order.
func (uc *DefaultDonationUsecase) CreateOrder(ctx context.Context, input *donationdto.CreateOrderInput) (*donationdto.CreateOrderOutput, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	phone := strings.TrimSpace(input.Phone)
	objective := strings.TrimSpace(input.Objective)
	location := strings.TrimSpace(input.PlantingLocation)

	if fullName == "" || email == "" || phone == "" || objective == "" || location == "" {
		return nil, domain.E(domain.KindValidation, "full_name, email, phone, objective and planting_location are required")
	}
	if input.NumberOfTrees < 1 || input.NumberOfTrees > maxTreesPerOrder {
		return nil, domain.E(domain.KindValidation,
			fmt.Sprintf("number_of_trees must be between 1 and %d", maxTreesPerOrder))
	}

	user, err := uc.UserRepo.FindVerifiedUserByEmail(email)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, domain.E(domain.KindForbidden, "please verify your account before donating")
		}
		return nil, err
	}
	if input.UserID != 0 && user.ID != input.UserID {
		return nil, domain.E(domain.KindForbidden, "donor email does not belong to the logged-in account")
	}

	amountPaise := input.NumberOfTrees * uc.treePriceINR * 100
	receipt := fmt.Sprintf("tree_%s_%s", time.Now().UTC().Format("20060102150405"), uc.receiptSuffix())

	order, err := uc.Gateway.CreateOrder(ctx, amountPaise, uc.currency, receipt, map[string]string{
		"email": email,
		"trees": strconv.FormatInt(input.NumberOfTrees, 10),
	})
	if err != nil {
		uc.Metrics.GatewayErrorsTotal.WithLabelValues("create_order").Inc()
		return nil, err
	}

	donation := &domain.TreeDonation{
		UserID:        user.ID,
		TrackingToken: uuid.New().String(),

		FullName: fullName,
		Email:    email,
		Phone:    phone,

		NumberOfTrees:    input.NumberOfTrees,
		TreeSpecies:      strings.TrimSpace(input.TreeSpecies),
		PlantingLocation: location,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		Objective:        objective,
		DedicationName:   strings.TrimSpace(input.DedicationName),
		Notes:            strings.TrimSpace(input.Notes),

		AmountPaise: amountPaise,
		Currency:    uc.currency,

		PaymentStatus:  domain.PaymentCreated,
		ApprovalStatus: domain.ApprovalPending,
		GatewayOrderID: order.ID,
	}

	if err := uc.DonationRepo.CreateDonation(donation); err != nil {
		return nil, err
	}

	uc.Metrics.OrdersCreatedTotal.WithLabelValues(uc.currency).Inc()
	uc.Metrics.OrdersCreatedAmountTotal.WithLabelValues(uc.currency).Add(float64(amountPaise))

	return &donationdto.CreateOrderOutput{
		Message:      "order created",
		OrderID:      order.ID,
		AmountPaise:  amountPaise,
		Currency:     uc.currency,
		GatewayKeyID: uc.gatewayKeyID,
		DonationID:   donation.ID,
		TreePriceINR: uc.treePriceINR,
	}, nil
}
