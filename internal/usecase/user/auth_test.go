package usecase

import (
	"context"
	"testing"

	"github.com/gogreen/tree-donation-service/internal/domain"
	"github.com/gogreen/tree-donation-service/internal/notification"
	userdto "github.com/gogreen/tree-donation-service/internal/usecase/dto/user"
)

func registerInput() *userdto.RegisterInput {
	return &userdto.RegisterInput{
		FullName: "Asha Verma",
		Email:    "Asha@Example.com",
		Phone:    "9876543210",
		Password: "hunter22",
	}
}

func registerAndVerify(t *testing.T, env *testEnv) *domain.User {
	t.Helper()
	if _, err := env.uc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	user := env.users.users["asha@example.com"]
	if _, err := env.uc.VerifyOTP(&userdto.VerifyOTPInput{Email: "asha@example.com", OTP: user.OTP}); err != nil {
		t.Fatalf("VerifyOTP failed: %v", err)
	}
	return user
}

func TestRegisterSendsOTP(t *testing.T) {
	env := newTestEnv()

	if _, err := env.uc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, ok := env.users.users["asha@example.com"]
	if !ok {
		t.Fatal("user not stored under normalized email")
	}
	if user.IsVerified {
		t.Error("new account must start unverified")
	}
	if len(user.OTP) != 6 {
		t.Errorf("otp = %q, want 6 digits", user.OTP)
	}
	if user.PasswordHash == "hunter22" {
		t.Error("password stored in plain text")
	}

	events := env.publisher.events()
	if len(events) != 1 || events[0].Type != notification.TypeOTP {
		t.Fatalf("events = %+v, want one otp email", events)
	}
	if events[0].Recipient != "asha@example.com" {
		t.Errorf("otp recipient = %q", events[0].Recipient)
	}
}

func TestRegisterOverwritesUnverifiedAttempt(t *testing.T) {
	env := newTestEnv()

	if _, err := env.uc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	firstOTP := env.users.users["asha@example.com"].OTP

	input := registerInput()
	input.FullName = "Asha V"
	if _, err := env.uc.Register(context.Background(), input); err != nil {
		t.Fatalf("re-register failed: %v", err)
	}

	user := env.users.users["asha@example.com"]
	if user.FullName != "Asha V" {
		t.Errorf("full name = %q, want overwritten", user.FullName)
	}
	if user.OTP == firstOTP {
		t.Error("otp not rotated on re-register")
	}
}

func TestRegisterRejectsVerifiedDuplicate(t *testing.T) {
	env := newTestEnv()
	registerAndVerify(t, env)

	_, err := env.uc.Register(context.Background(), registerInput())
	if domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("error kind = %v, want validation", domain.KindOf(err))
	}
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv()

	cases := []struct {
		name   string
		mutate func(*userdto.RegisterInput)
	}{
		{"missing name", func(in *userdto.RegisterInput) { in.FullName = "" }},
		{"missing phone", func(in *userdto.RegisterInput) { in.Phone = "  " }},
		{"bad email", func(in *userdto.RegisterInput) { in.Email = "not-an-email" }},
		{"short password", func(in *userdto.RegisterInput) { in.Password = "abc" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := registerInput()
			tc.mutate(input)

			_, err := env.uc.Register(context.Background(), input)
			if domain.KindOf(err) != domain.KindValidation {
				t.Errorf("error kind = %v, want validation (err: %v)", domain.KindOf(err), err)
			}
		})
	}
}

func TestVerifyOTP(t *testing.T) {
	env := newTestEnv()
	if _, err := env.uc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	otp := env.users.users["asha@example.com"].OTP

	if _, err := env.uc.VerifyOTP(&userdto.VerifyOTPInput{Email: "asha@example.com", OTP: "000000"}); domain.KindOf(err) != domain.KindValidation {
		t.Errorf("wrong otp: error kind = %v, want validation", domain.KindOf(err))
	}

	if _, err := env.uc.VerifyOTP(&userdto.VerifyOTPInput{Email: "asha@example.com", OTP: otp}); err != nil {
		t.Fatalf("VerifyOTP failed: %v", err)
	}

	user := env.users.users["asha@example.com"]
	if !user.IsVerified {
		t.Error("user not verified")
	}
	if user.OTP != "" {
		t.Error("otp not cleared after verification")
	}

	// Verifying again is a no-op, not an error.
	message, err := env.uc.VerifyOTP(&userdto.VerifyOTPInput{Email: "asha@example.com", OTP: "whatever"})
	if err != nil {
		t.Fatalf("repeat verification failed: %v", err)
	}
	if message != "account already verified" {
		t.Errorf("message = %q", message)
	}
}

func TestResendOTPRotatesCode(t *testing.T) {
	env := newTestEnv()
	if _, err := env.uc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	firstOTP := env.users.users["asha@example.com"].OTP

	if _, err := env.uc.ResendOTP(context.Background(), "asha@example.com"); err != nil {
		t.Fatalf("ResendOTP failed: %v", err)
	}
	if env.users.users["asha@example.com"].OTP == firstOTP {
		t.Error("otp not rotated")
	}
	if len(env.publisher.events()) != 2 {
		t.Errorf("events = %d, want 2", len(env.publisher.events()))
	}
}

func TestLoginIssuesSession(t *testing.T) {
	env := newTestEnv()
	registerAndVerify(t, env)

	out, err := env.uc.Login(&userdto.LoginInput{Email: "asha@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if out.Token == "" {
		t.Fatal("no session token issued")
	}
	if out.User.Email != "asha@example.com" {
		t.Errorf("user email = %q", out.User.Email)
	}

	user, err := env.uc.Authenticate(out.Token)
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.Email != "asha@example.com" {
		t.Errorf("authenticated as %q", user.Email)
	}

	if err := env.uc.Logout(out.Token); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := env.uc.Authenticate(out.Token); domain.KindOf(err) != domain.KindUnauthorized {
		t.Errorf("token still valid after logout")
	}
}

func TestLoginFailures(t *testing.T) {
	env := newTestEnv()
	registerAndVerify(t, env)

	// Unknown email and wrong password are indistinguishable.
	_, err := env.uc.Login(&userdto.LoginInput{Email: "nobody@example.com", Password: "hunter22"})
	if domain.KindOf(err) != domain.KindUnauthorized {
		t.Errorf("unknown email: error kind = %v, want unauthorized", domain.KindOf(err))
	}
	_, err = env.uc.Login(&userdto.LoginInput{Email: "asha@example.com", Password: "wrong"})
	if domain.KindOf(err) != domain.KindUnauthorized {
		t.Errorf("wrong password: error kind = %v, want unauthorized", domain.KindOf(err))
	}
}

func TestLoginRequiresVerifiedAccount(t *testing.T) {
	env := newTestEnv()
	if _, err := env.uc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := env.uc.Login(&userdto.LoginInput{Email: "asha@example.com", Password: "hunter22"})
	if domain.KindOf(err) != domain.KindForbidden {
		t.Fatalf("error kind = %v, want forbidden", domain.KindOf(err))
	}
}
