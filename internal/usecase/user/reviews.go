package usecase

import (
	"strconv"
	"strings"

	"github.com/gogreen/tree-donation-service/internal/domain"
	userdto "github.com/gogreen/tree-donation-service/internal/usecase/dto/user"
)

const reviewTimeLayout = "2006-01-02T15:04:05Z07:00"

func toReviewOutput(r *domain.UserReview) *userdto.ReviewOutput {
	return &userdto.ReviewOutput{
		ID:         r.ID,
		UserID:     r.UserID,
		FullName:   r.FullName,
		Email:      r.Email,
		Rating:     r.Rating,
		ReviewText: r.ReviewText,
		IsPublic:   r.IsPublic,
		CreatedAt:  r.CreatedAt.UTC().Format(reviewTimeLayout),
		UpdatedAt:  r.UpdatedAt.UTC().Format(reviewTimeLayout),
	}
}

// SubmitReview upserts the caller's single review, keyed by email. Returns
// whether a new review was created or an existing one updated.
func (uc *DefaultUserUsecase) SubmitReview(userID uint, input *userdto.SubmitReviewInput) (*userdto.ReviewOutput, bool, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, false, domain.E(domain.KindValidation, "email is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, false, domain.E(domain.KindValidation, "rating must be between 1 and 5")
	}

	review := &domain.UserReview{
		UserID:     userID,
		FullName:   strings.TrimSpace(input.FullName),
		Email:      email,
		Rating:     input.Rating,
		ReviewText: strings.TrimSpace(input.ReviewText),
		IsPublic:   true,
	}

	created, err := uc.ReviewRepo.UpsertReviewByEmail(review)
	if err != nil {
		return nil, false, err
	}
	return toReviewOutput(review), created, nil
}

// ListReviews returns the public feed with aggregate figures, plus the
// caller's own review when currentEmail is set.
func (uc *DefaultUserUsecase) ListReviews(currentEmail string) (*userdto.ListReviewsOutput, error) {
	summary, err := uc.ReviewRepo.SummarizeReviews()
	if err != nil {
		return nil, err
	}
	reviews, err := uc.ReviewRepo.ListPublicReviews()
	if err != nil {
		return nil, err
	}

	breakdown := make(map[string]int64, 5)
	for rating := 1; rating <= 5; rating++ {
		breakdown[strconv.Itoa(rating)] = summary.Breakdown[rating]
	}

	out := &userdto.ListReviewsOutput{
		Summary: userdto.ReviewSummaryOutput{
			AverageRating:   summary.AverageRating,
			TotalReviews:    summary.TotalReviews,
			RatingBreakdown: breakdown,
		},
		Reviews: make([]*userdto.ReviewOutput, 0, len(reviews)),
	}
	for _, r := range reviews {
		out.Reviews = append(out.Reviews, toReviewOutput(r))
	}

	if email := normalizeEmail(currentEmail); email != "" {
		own, err := uc.ReviewRepo.FindReviewByEmail(email)
		if err != nil {
			return nil, err
		}
		if own != nil {
			out.CurrentUserReview = toReviewOutput(own)
		}
	}
	return out, nil
}
