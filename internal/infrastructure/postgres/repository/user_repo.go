package repository

import (
	"errors"
	"time"

	"github.com/gogreen/tree-donation-service/internal/domain"
	"github.com/gogreen/tree-donation-service/internal/infrastructure/postgres/mappers"
	"github.com/gogreen/tree-donation-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) CreateUser(user *domain.User) error {
	model := mappers.ToGORMUser(user)
	if err := r.DB.Create(model).Error; err != nil {
		return err
	}
	user.ID = model.ID
	user.CreatedAt = model.CreatedAt
	return nil
}

func (r *DefaultUserRepository) UpdateUser(user *domain.User) error {
	model := mappers.ToGORMUser(user)
	// Save writes all columns so a cleared OTP reaches the database.
	return r.DB.Save(model).Error
}

func (r *DefaultUserRepository) FindUserByEmail(email string) (*domain.User, error) {
	var model models.UserModel
	if err := r.DB.First(&model, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUser(&model), nil
}

func (r *DefaultUserRepository) FindVerifiedUserByEmail(email string) (*domain.User, error) {
	var model models.UserModel
	if err := r.DB.First(&model, "email = ? AND is_verified = ?", email, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVerifiedUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUser(&model), nil
}

func (r *DefaultUserRepository) GetUserByID(id uint) (*domain.User, error) {
	var model models.UserModel
	if err := r.DB.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUser(&model), nil
}

type DefaultSessionRepository struct {
	DB *gorm.DB
}

func NewDefaultSessionRepository(db *gorm.DB) *DefaultSessionRepository {
	return &DefaultSessionRepository{DB: db}
}

func (r *DefaultSessionRepository) CreateSession(session *domain.Session) error {
	return r.DB.Create(&models.SessionModel{
		Token:     session.Token,
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}).Error
}

func (r *DefaultSessionRepository) FindActiveSession(token string, now time.Time) (*domain.Session, error) {
	var model models.SessionModel
	err := r.DB.First(&model, "token = ? AND expires_at > ?", token, now).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidSession
		}
		return nil, err
	}
	return mappers.ToDomainSession(&model), nil
}

func (r *DefaultSessionRepository) DeleteSession(token string) error {
	return r.DB.Delete(&models.SessionModel{}, "token = ?", token).Error
}
