package usecase

import (
	"context"

	"github.com/gogreen/tree-donation-service/internal/config"
	"github.com/gogreen/tree-donation-service/internal/domain"
	"github.com/gogreen/tree-donation-service/internal/infrastructure/metrics"
	"github.com/gogreen/tree-donation-service/internal/notification"
	donationdto "github.com/gogreen/tree-donation-service/internal/usecase/dto/donation"
	"github.com/jaevor/go-nanoid"
)

type DonationUsecase interface {
	CreateOrder(ctx context.Context, input *donationdto.CreateOrderInput) (*donationdto.CreateOrderOutput, error)
	VerifyPayment(ctx context.Context, input *donationdto.VerifyPaymentInput) (*donationdto.VerifyPaymentOutput, error)

	ListUserOrders(userID uint) (*donationdto.ListOrdersOutput, error)
	GetUserOrder(userID, donationID uint) (*donationdto.OrderOutput, error)
	UpdateUserOrder(userID, donationID uint, input *donationdto.UpdateOrderInput) (*donationdto.OrderOutput, error)
	DeleteUserOrder(userID, donationID uint) error
	TrackOrder(trackingToken string) (*donationdto.OrderOutput, error)

	ApproveOrders(ctx context.Context, input *donationdto.ApproveOrdersInput) (*donationdto.BatchApprovalOutput, error)
	RejectOrders(ids []uint) (int, error)
	RestoreOrders(ids []uint) (int64, error)

	Impact() (*donationdto.ImpactOutput, error)
}

type DefaultDonationUsecase struct {
	DonationRepo domain.DonationRepository
	UserRepo     domain.UserRepository
	Gateway      domain.PaymentGateway
	Dispatcher   *notification.Dispatcher
	Builder      *notification.Builder
	Metrics      *metrics.DonationMetrics

	gatewayKeyID  string
	gatewaySecret string
	adminEmail    string
	treePriceINR  int64
	currency      string
	receiptSuffix func() string
}

func NewDefaultDonationUsecase(
	donationRepo domain.DonationRepository,
	userRepo domain.UserRepository,
	gateway domain.PaymentGateway,
	dispatcher *notification.Dispatcher,
	builder *notification.Builder,
	donationMetrics *metrics.DonationMetrics,
	cfg *config.DonationConfig,
) *DefaultDonationUsecase {

	receiptSuffix, err := nanoid.CustomASCII("0123456789abcdef", 6)
	if err != nil {
		panic(err)
	}

	return &DefaultDonationUsecase{
		DonationRepo: donationRepo,
		UserRepo:     userRepo,
		Gateway:      gateway,
		Dispatcher:   dispatcher,
		Builder:      builder,
		Metrics:      donationMetrics,

		gatewayKeyID:  cfg.Razorpay.KeyID,
		gatewaySecret: cfg.Razorpay.KeySecret,
		adminEmail:    cfg.Notifications.AdminEmail,
		treePriceINR:  cfg.Pricing.TreePriceINR,
		currency:      cfg.Pricing.Currency,
		receiptSuffix: receiptSuffix,
	}
}
