package usecase

import (
	"context"
	"time"

	"github.com/gogreen/tree-donation-service/internal/config"
	"github.com/gogreen/tree-donation-service/internal/domain"
	"github.com/gogreen/tree-donation-service/internal/notification"
	userdto "github.com/gogreen/tree-donation-service/internal/usecase/dto/user"
)

type UserUsecase interface {
	Register(ctx context.Context, input *userdto.RegisterInput) (string, error)
	VerifyOTP(input *userdto.VerifyOTPInput) (string, error)
	ResendOTP(ctx context.Context, email string) (string, error)
	Login(input *userdto.LoginInput) (*userdto.LoginOutput, error)
	Logout(token string) error
	Authenticate(token string) (*domain.User, error)

	Profile(userID uint) (*userdto.UserOutput, error)
	UpdateProfile(userID uint, input *userdto.UpdateProfileInput) (*userdto.UserOutput, error)

	SubmitReview(userID uint, input *userdto.SubmitReviewInput) (*userdto.ReviewOutput, bool, error)
	ListReviews(currentEmail string) (*userdto.ListReviewsOutput, error)

	SupportContact() *userdto.SupportContactOutput
	SendSupportRequest(input *userdto.SupportRequestInput) error
}

type DefaultUserUsecase struct {
	UserRepo    domain.UserRepository
	ReviewRepo  domain.ReviewRepository
	SessionRepo domain.SessionRepository
	Dispatcher  *notification.Dispatcher
	Builder     *notification.Builder
	Mailer      domain.Mailer

	sessionTTL      time.Duration
	supportEmail    string
	supportWhatsApp string
}

func NewDefaultUserUsecase(
	userRepo domain.UserRepository,
	reviewRepo domain.ReviewRepository,
	sessionRepo domain.SessionRepository,
	dispatcher *notification.Dispatcher,
	builder *notification.Builder,
	mailer domain.Mailer,
	cfg *config.DonationConfig,
) *DefaultUserUsecase {
	return &DefaultUserUsecase{
		UserRepo:    userRepo,
		ReviewRepo:  reviewRepo,
		SessionRepo: sessionRepo,
		Dispatcher:  dispatcher,
		Builder:     builder,
		Mailer:      mailer,

		sessionTTL:      time.Duration(cfg.Pricing.SessionTTLHours) * time.Hour,
		supportEmail:    cfg.Notifications.SupportEmail,
		supportWhatsApp: cfg.Notifications.SupportWhatsApp,
	}
}

func toUserOutput(u *domain.User) *userdto.UserOutput {
	return &userdto.UserOutput{
		ID:         u.ID,
		FullName:   u.FullName,
		Email:      u.Email,
		Phone:      u.Phone,
		Avatar:     u.AvatarURL,
		IsVerified: u.IsVerified,
	}
}
