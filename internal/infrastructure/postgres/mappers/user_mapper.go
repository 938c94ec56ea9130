package mappers

import (
	"github.com/gogreen/tree-donation-service/internal/domain"
	"github.com/gogreen/tree-donation-service/internal/infrastructure/postgres/models"
)

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:           model.ID,
		FullName:     model.FullName,
		Email:        model.Email,
		Phone:        model.Phone,
		AvatarURL:    model.AvatarURL,
		PasswordHash: model.PasswordHash,
		OTP:          model.OTP,
		IsVerified:   model.IsVerified,
		CreatedAt:    model.CreatedAt,
	}
}

func ToGORMUser(user *domain.User) *models.UserModel {
	return &models.UserModel{
		ID:           user.ID,
		FullName:     user.FullName,
		Email:        user.Email,
		Phone:        user.Phone,
		AvatarURL:    user.AvatarURL,
		PasswordHash: user.PasswordHash,
		OTP:          user.OTP,
		IsVerified:   user.IsVerified,
		CreatedAt:    user.CreatedAt,
	}
}

func ToDomainReview(model *models.UserReviewModel) *domain.UserReview {
	return &domain.UserReview{
		ID:         model.ID,
		UserID:     model.UserID,
		FullName:   model.FullName,
		Email:      model.Email,
		Rating:     model.Rating,
		ReviewText: model.ReviewText,
		IsPublic:   model.IsPublic,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func ToGORMReview(review *domain.UserReview) *models.UserReviewModel {
	return &models.UserReviewModel{
		ID:         review.ID,
		UserID:     review.UserID,
		FullName:   review.FullName,
		Email:      review.Email,
		Rating:     review.Rating,
		ReviewText: review.ReviewText,
		IsPublic:   review.IsPublic,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}

func ToDomainSession(model *models.SessionModel) *domain.Session {
	return &domain.Session{
		Token:     model.Token,
		UserID:    model.UserID,
		ExpiresAt: model.ExpiresAt,
		CreatedAt: model.CreatedAt,
	}
}
