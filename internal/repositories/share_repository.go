package repositories

import (
	"careconnect_backend/internal/models"
	"careconnect_backend/internal/pagination"

	"gorm.io/gorm"
)

type ShareRepository interface {
	Create(share *models.Share) error
	ListByUser(userID uint, p pagination.Params) ([]models.Share, int64, error)
	// CountByTarget returns the total share count for an entity plus a
	// per-platform breakdown.
	CountByTarget(shareableType models.ShareableType, shareableID uint) (int64, map[models.SharingPlatform]int64, error)
}

type ShareRepositoryImpl struct {
	db *gorm.DB
}

func NewShareRepository(db *gorm.DB) ShareRepository {
	return &ShareRepositoryImpl{db: db}
}

func (r *ShareRepositoryImpl) Create(share *models.Share) error {
	return r.db.Create(share).Error
}

func (r *ShareRepositoryImpl) ListByUser(userID uint, p pagination.Params) ([]models.Share, int64, error) {
	query := r.db.Model(&models.Share{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var shares []models.Share
	err := query.
		Order("created_at DESC, id DESC").
		Scopes(pagination.Window(p)).
		Find(&shares).Error
	if err != nil {
		return nil, 0, err
	}
	return shares, total, nil
}

func (r *ShareRepositoryImpl) CountByTarget(shareableType models.ShareableType, shareableID uint) (int64, map[models.SharingPlatform]int64, error) {
	type platformCount struct {
		Platform models.SharingPlatform
		Count    int64
	}

	var rows []platformCount
	err := r.db.Model(&models.Share{}).
		Select("platform, COUNT(*) as count").
		Where("shareable_type = ? AND shareable_id = ?", shareableType, shareableID).
		Group("platform").
		Scan(&rows).Error
	if err != nil {
		return 0, nil, err
	}

	var total int64
	stats := make(map[models.SharingPlatform]int64, len(rows))
	for _, row := range rows {
		stats[row.Platform] = row.Count
		total += row.Count
	}
	return total, stats, nil
}
