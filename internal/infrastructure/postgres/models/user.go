package models

import "time"

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	FullName     string `gorm:"size:150"`
	Email        string `gorm:"size:254;uniqueIndex"`
	Phone        string `gorm:"size:15"`
	AvatarURL    string `gorm:"size:500"`
	PasswordHash string `gorm:"size:100"`
	OTP          string `gorm:"size:6"`
	IsVerified   bool   `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string { return "users" }

type UserReviewModel struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"index"`
	FullName   string `gorm:"size:150"`
	Email      string `gorm:"size:254;uniqueIndex"`
	Rating     int
	ReviewText string `gorm:"size:1200"`
	IsPublic   bool   `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time `gorm:"index"`
}

func (UserReviewModel) TableName() string { return "user_reviews" }

type SessionModel struct {
	Token     string `gorm:"primaryKey;size:40"`
	UserID    uint   `gorm:"index"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}

func (SessionModel) TableName() string { return "user_sessions" }
