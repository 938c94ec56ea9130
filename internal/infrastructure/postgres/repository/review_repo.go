package repository

import (
	"errors"

	"github.com/gogreen/tree-donation-service/internal/domain"
	"github.com/gogreen/tree-donation-service/internal/infrastructure/postgres/mappers"
	"github.com/gogreen/tree-donation-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultReviewRepository struct {
	DB *gorm.DB
}

func NewDefaultReviewRepository(db *gorm.DB) *DefaultReviewRepository {
	return &DefaultReviewRepository{DB: db}
}

// UpsertReviewByEmail keeps one review per email: an existing row is
// overwritten, otherwise a new one is created.
func (r *DefaultReviewRepository) UpsertReviewByEmail(review *domain.UserReview) (bool, error) {
	var existing models.UserReviewModel
	err := r.DB.First(&existing, "email = ?", review.Email).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		model := mappers.ToGORMReview(review)
		if err := r.DB.Create(model).Error; err != nil {
			if isSchemaNotReady(err) {
				return false, domain.Wrap(domain.KindNotReady, "reviews schema not migrated", err)
			}
			return false, err
		}
		review.ID = model.ID
		return true, nil
	case err != nil:
		if isSchemaNotReady(err) {
			return false, domain.Wrap(domain.KindNotReady, "reviews schema not migrated", err)
		}
		return false, err
	}

	existing.UserID = review.UserID
	existing.FullName = review.FullName
	existing.Rating = review.Rating
	existing.ReviewText = review.ReviewText
	existing.IsPublic = review.IsPublic
	if err := r.DB.Save(&existing).Error; err != nil {
		return false, err
	}
	review.ID = existing.ID
	return false, nil
}

func (r *DefaultReviewRepository) FindReviewByEmail(email string) (*domain.UserReview, error) {
	var model models.UserReviewModel
	if err := r.DB.First(&model, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainReview(&model), nil
}

func (r *DefaultReviewRepository) ListPublicReviews() ([]*domain.UserReview, error) {
	var reviewModels []models.UserReviewModel
	err := r.DB.
		Where("is_public = ?", true).
		Order("updated_at DESC").
		Find(&reviewModels).Error
	if err != nil {
		if isSchemaNotReady(err) {
			return nil, domain.Wrap(domain.KindNotReady, "reviews schema not migrated", err)
		}
		return nil, err
	}

	reviews := make([]*domain.UserReview, len(reviewModels))
	for i, model := range reviewModels {
		reviews[i] = mappers.ToDomainReview(&model)
	}
	return reviews, nil
}

func (r *DefaultReviewRepository) SummarizeReviews() (*domain.ReviewSummary, error) {
	summary := &domain.ReviewSummary{Breakdown: make(map[int]int64, 5)}

	public := func() *gorm.DB {
		return r.DB.Model(&models.UserReviewModel{}).Where("is_public = ?", true)
	}

	if err := public().Count(&summary.TotalReviews).Error; err != nil {
		if isSchemaNotReady(err) {
			return nil, domain.Wrap(domain.KindNotReady, "reviews schema not migrated", err)
		}
		return nil, err
	}

	if summary.TotalReviews > 0 {
		if err := public().Select("AVG(rating)").Scan(&summary.AverageRating).Error; err != nil {
			return nil, err
		}
	}

	for rating := 1; rating <= 5; rating++ {
		var count int64
		if err := public().Where("rating = ?", rating).Count(&count).Error; err != nil {
			return nil, err
		}
		summary.Breakdown[rating] = count
	}

	return summary, nil
}
