package domain

import "time"

type User struct {
	ID           uint
	FullName     string
	Email        string
	Phone        string
	AvatarURL    string
	PasswordHash string
	OTP          string
	IsVerified   bool
	CreatedAt    time.Time
}

type UserReview struct {
	ID         uint
	UserID     uint
	FullName   string
	Email      string
	Rating     int
	ReviewText string
	IsPublic   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ReviewSummary aggregates public reviews for the landing page.
type ReviewSummary struct {
	AverageRating float64
	TotalReviews  int64
	Breakdown     map[int]int64
}

// Session is an opaque bearer token bound to a verified user.
type Session struct {
	Token     string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

type UserRepository interface {
	CreateUser(user *User) error
	UpdateUser(user *User) error
	FindUserByEmail(email string) (*User, error)
	FindVerifiedUserByEmail(email string) (*User, error)
	GetUserByID(id uint) (*User, error)
}

type ReviewRepository interface {
	UpsertReviewByEmail(review *UserReview) (created bool, err error)
	FindReviewByEmail(email string) (*UserReview, error)
	ListPublicReviews() ([]*UserReview, error)
	SummarizeReviews() (*ReviewSummary, error)
}

type SessionRepository interface {
	CreateSession(session *Session) error
	FindActiveSession(token string, now time.Time) (*Session, error)
	DeleteSession(token string) error
}
