package repositories

import (
	"errors"

	"careconnect_backend/internal/models"
	"careconnect_backend/internal/pagination"

	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrPreferenceNotFound   = errors.New("notification preference not found")
)

type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	FindByIDAndUser(id, userID uint) (*models.Notification, error)
	ListByUser(userID uint, unreadOnly bool, p pagination.Params) ([]models.Notification, int64, error)
	MarkAsRead(notification *models.Notification) error
	MarkAllAsRead(userID uint) error
	CountUnread(userID uint) (int64, error)

	// Preference operations
	FindPreference(userID uint) (*models.NotificationPreference, error)
	CreatePreference(pref *models.NotificationPreference) error
	UpdatePreference(pref *models.NotificationPreference) error
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) CreateNotification(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindByIDAndUser(id, userID uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) ListByUser(userID uint, unreadOnly bool, p pagination.Params) ([]models.Notification, int64, error) {
	query := r.db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	err := query.
		Order("created_at DESC, id DESC").
		Scopes(pagination.Window(p)).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *NotificationRepositoryImpl) MarkAsRead(notification *models.Notification) error {
	notification.IsRead = true
	return r.db.Save(notification).Error
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(userID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

func (r *NotificationRepositoryImpl) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// Preference operations

func (r *NotificationRepositoryImpl) FindPreference(userID uint) (*models.NotificationPreference, error) {
	var pref models.NotificationPreference
	err := r.db.First(&pref, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPreferenceNotFound
		}
		return nil, err
	}
	return &pref, nil
}

func (r *NotificationRepositoryImpl) CreatePreference(pref *models.NotificationPreference) error {
	return r.db.Create(pref).Error
}

func (r *NotificationRepositoryImpl) UpdatePreference(pref *models.NotificationPreference) error {
	return r.db.Save(pref).Error
}
