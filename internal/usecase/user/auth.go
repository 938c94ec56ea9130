package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"net/mail"
	"strings"
	"time"

	"github.com/gogreen/tree-donation-service/internal/domain"
	userdto "github.com/gogreen/tree-donation-service/internal/usecase/dto/user"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an unverified account and emails a one-time code.
// Re-registering an unverified email overwrites the stale attempt; a
// verified email is taken for good.
func (uc *DefaultUserUsecase) Register(ctx context.Context, input *userdto.RegisterInput) (string, error) {
	email := normalizeEmail(input.Email)
	fullName := strings.TrimSpace(input.FullName)
	phone := strings.TrimSpace(input.Phone)

	if fullName == "" || email == "" || phone == "" || input.Password == "" {
		return "", domain.E(domain.KindValidation, "full_name, email, phone and password are required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", domain.E(domain.KindValidation, "invalid email address")
	}
	if len(input.Password) < minPasswordLength {
		return "", domain.E(domain.KindValidation,
			fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	existing, err := uc.UserRepo.FindUserByEmail(email)
	if err != nil && domain.KindOf(err) != domain.KindNotFound {
		return "", err
	}
	if existing != nil && existing.IsVerified {
		return "", domain.E(domain.KindValidation, "an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	otp, err := generateOTP()
	if err != nil {
		return "", err
	}

	user := &domain.User{
		FullName:     fullName,
		Email:        email,
		Phone:        strings.TrimSpace(input.Phone),
		AvatarURL:    strings.TrimSpace(input.AvatarURL),
		PasswordHash: string(hash),
		OTP:          otp,
	}

	if existing != nil {
		user.ID = existing.ID
		user.CreatedAt = existing.CreatedAt
		err = uc.UserRepo.UpdateUser(user)
	} else {
		err = uc.UserRepo.CreateUser(user)
	}
	if err != nil {
		return "", err
	}

	if err := uc.Dispatcher.Dispatch(ctx, uc.Builder.OTPEmail(email, otp)); err != nil {
		slog.Error("failed to enqueue otp email", "email", email, "error", err)
	}
	return "registered, check your email for the OTP", nil
}

// VerifyOTP is idempotent: verifying an already verified account succeeds.
func (uc *DefaultUserUsecase) VerifyOTP(input *userdto.VerifyOTPInput) (string, error) {
	email := normalizeEmail(input.Email)
	otp := strings.TrimSpace(input.OTP)

	if email == "" || otp == "" {
		return "", domain.E(domain.KindValidation, "email and otp are required")
	}

	user, err := uc.UserRepo.FindUserByEmail(email)
	if err != nil {
		return "", err
	}
	if user.IsVerified {
		return "account already verified", nil
	}
	if user.OTP == "" || user.OTP != otp {
		return "", domain.E(domain.KindValidation, "invalid OTP")
	}

	user.IsVerified = true
	user.OTP = ""
	if err := uc.UserRepo.UpdateUser(user); err != nil {
		return "", err
	}
	return "email verified successfully", nil
}

func (uc *DefaultUserUsecase) ResendOTP(ctx context.Context, email string) (string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return "", domain.E(domain.KindValidation, "email is required")
	}

	user, err := uc.UserRepo.FindUserByEmail(email)
	if err != nil {
		return "", err
	}
	if user.IsVerified {
		return "", domain.E(domain.KindValidation, "account already verified")
	}

	otp, err := generateOTP()
	if err != nil {
		return "", err
	}
	user.OTP = otp
	if err := uc.UserRepo.UpdateUser(user); err != nil {
		return "", err
	}

	if err := uc.Dispatcher.Dispatch(ctx, uc.Builder.OTPEmail(email, otp)); err != nil {
		slog.Error("failed to enqueue otp email", "email", email, "error", err)
	}
	return "a new OTP has been sent", nil
}

// Login exchanges credentials for an opaque bearer token. Unknown emails and
// wrong passwords produce the same error.
func (uc *DefaultUserUsecase) Login(input *userdto.LoginInput) (*userdto.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domain.E(domain.KindValidation, "email and password are required")
	}

	user, err := uc.UserRepo.FindUserByEmail(email)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, domain.E(domain.KindUnauthorized, "invalid email or password")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, domain.E(domain.KindUnauthorized, "invalid email or password")
	}
	if !user.IsVerified {
		return nil, domain.E(domain.KindForbidden, "please verify your email before logging in")
	}

	session := &domain.Session{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(uc.sessionTTL),
	}
	if err := uc.SessionRepo.CreateSession(session); err != nil {
		return nil, err
	}

	return &userdto.LoginOutput{
		Message: "login successful",
		Token:   session.Token,
		User:    *toUserOutput(user),
	}, nil
}

func (uc *DefaultUserUsecase) Logout(token string) error {
	if token == "" {
		return domain.ErrInvalidSession
	}
	return uc.SessionRepo.DeleteSession(token)
}

// Authenticate resolves a bearer token to its user; the auth middleware is
// the only caller.
func (uc *DefaultUserUsecase) Authenticate(token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrInvalidSession
	}
	session, err := uc.SessionRepo.FindActiveSession(token, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	user, err := uc.UserRepo.GetUserByID(session.UserID)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, domain.ErrInvalidSession
		}
		return nil, err
	}
	return user, nil
}
