package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/gogreen/tree-donation-service/internal/domain"
	"github.com/gogreen/tree-donation-service/internal/infrastructure/postgres/mappers"
	"github.com/gogreen/tree-donation-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultDonationRepository struct {
	DB *gorm.DB
}

func NewDefaultDonationRepository(db *gorm.DB) *DefaultDonationRepository {
	return &DefaultDonationRepository{DB: db}
}

// isSchemaNotReady reports whether the error is a missing-table failure,
// which the impact endpoint degrades on instead of erroring.
func isSchemaNotReady(err error) bool {
	return err != nil && strings.Contains(err.Error(), "42P01")
}

func (r *DefaultDonationRepository) CreateDonation(donation *domain.TreeDonation) error {
	model := mappers.ToGORMDonation(donation)
	if err := r.DB.Create(model).Error; err != nil {
		return err
	}
	donation.ID = model.ID
	donation.CreatedAt = model.CreatedAt
	return nil
}

func (r *DefaultDonationRepository) getBy(query string, args ...interface{}) (*domain.TreeDonation, error) {
	var model models.TreeDonationModel
	if err := r.DB.First(&model, append([]interface{}{query}, args...)...).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	return mappers.ToDomainDonation(&model), nil
}

func (r *DefaultDonationRepository) GetDonationByID(id uint) (*domain.TreeDonation, error) {
	return r.getBy("id = ?", id)
}

func (r *DefaultDonationRepository) GetDonationByOrderID(gatewayOrderID string) (*domain.TreeDonation, error) {
	return r.getBy("gateway_order_id = ?", gatewayOrderID)
}

func (r *DefaultDonationRepository) GetDonationByTrackingToken(token string) (*domain.TreeDonation, error) {
	donation, err := r.getBy("tracking_token = ?", token)
	if errors.Is(err, domain.ErrDonationNotFound) {
		return nil, domain.ErrTrackingNotFound
	}
	return donation, err
}

func (r *DefaultDonationRepository) GetDonationsByUserID(userID uint) ([]*domain.TreeDonation, error) {
	var donationModels []models.TreeDonationModel
	err := r.DB.
		Where("user_id = ? AND is_user_deleted = ?", userID, false).
		Order("created_at DESC").
		Find(&donationModels).Error
	if err != nil {
		return nil, err
	}

	donations := make([]*domain.TreeDonation, len(donationModels))
	for i, model := range donationModels {
		donations[i] = mappers.ToDomainDonation(&model)
	}
	return donations, nil
}

func (r *DefaultDonationRepository) UpdateDonation(donation *domain.TreeDonation) error {
	model := mappers.ToGORMDonation(donation)
	// Save writes all columns so cleared proof fields actually reach NULL.
	return r.DB.Save(model).Error
}

func (r *DefaultDonationRepository) MarkPaymentFailed(gatewayOrderID string) error {
	return r.DB.Model(&models.TreeDonationModel{}).
		Where("gateway_order_id = ? AND payment_status <> ?", gatewayOrderID, domain.PaymentPaid).
		Update("payment_status", domain.PaymentFailed).Error
}

func (r *DefaultDonationRepository) CommitPaid(gatewayOrderID, paymentID, signature string, paidAt time.Time) (bool, error) {
	result := r.DB.Model(&models.TreeDonationModel{}).
		Where("gateway_order_id = ? AND payment_status <> ?", gatewayOrderID, domain.PaymentPaid).
		Updates(map[string]interface{}{
			"gateway_payment_id": paymentID,
			"gateway_signature":  signature,
			"payment_status":     domain.PaymentPaid,
			"paid_at":            paidAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *DefaultDonationRepository) SoftDeleteDonation(id uint, at time.Time) error {
	return r.DB.Model(&models.TreeDonationModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_user_deleted": true,
			"user_deleted_at": at,
		}).Error
}

func (r *DefaultDonationRepository) RestoreDonations(ids []uint) (int64, error) {
	result := r.DB.Model(&models.TreeDonationModel{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"is_user_deleted": false,
			"user_deleted_at": nil,
		})
	return result.RowsAffected, result.Error
}

func (r *DefaultDonationRepository) AggregateImpact() (*domain.ImpactTotals, error) {
	var totals domain.ImpactTotals

	paid := func() *gorm.DB {
		return r.DB.Model(&models.TreeDonationModel{}).
			Where("payment_status = ?", domain.PaymentPaid)
	}

	err := paid().
		Select("COALESCE(SUM(COALESCE(trees_planted_count, number_of_trees)), 0)").
		Scan(&totals.TreesTotal).Error
	if err != nil {
		if isSchemaNotReady(err) {
			return nil, domain.Wrap(domain.KindNotReady, "donation schema not migrated", err)
		}
		return nil, err
	}

	if err := paid().
		Where("approval_status = ?", domain.ApprovalApproved).
		Select("COALESCE(SUM(COALESCE(trees_planted_count, number_of_trees)), 0)").
		Scan(&totals.ApprovedTreesTotal).Error; err != nil {
		return nil, err
	}

	if err := paid().Count(&totals.PaidCount).Error; err != nil {
		return nil, err
	}
	if err := paid().
		Where("approval_status = ?", domain.ApprovalApproved).
		Count(&totals.ApprovedCount).Error; err != nil {
		return nil, err
	}
	if err := paid().
		Distinct("email").
		Count(&totals.DistinctDonors).Error; err != nil {
		return nil, err
	}
	if err := paid().
		Select("COALESCE(SUM(amount_paise), 0)").
		Scan(&totals.AmountPaiseTotal).Error; err != nil {
		return nil, err
	}

	return &totals, nil
}

func (r *DefaultDonationRepository) ListPaidGrowthRows() ([]domain.GrowthRow, error) {
	var rows []domain.GrowthRow
	err := r.DB.Model(&models.TreeDonationModel{}).
		Where("payment_status = ?", domain.PaymentPaid).
		Select("plantation_date", "paid_at", "approved_at", "created_at", "trees_planted_count", "number_of_trees").
		Find(&rows).Error
	if err != nil {
		if isSchemaNotReady(err) {
			return nil, domain.Wrap(domain.KindNotReady, "donation schema not migrated", err)
		}
		return nil, err
	}
	return rows, nil
}
