package services

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"

	"careconnect_backend/internal/email"
	"careconnect_backend/internal/logger"
	"careconnect_backend/internal/models"
	"careconnect_backend/internal/pagination"
	"careconnect_backend/internal/repositories"
	"careconnect_backend/internal/services/dto"
	"careconnect_backend/pkg/apperrors"
)

type NotificationService interface {
	// Notify dispatches a notification over the channels the recipient has
	// enabled. It never fails the caller: delivery problems are logged and
	// swallowed so business operations do not roll back over a side channel.
	Notify(userID uint, notifType models.NotificationType, title, message, link string)

	ListNotifications(userID uint, criteria dto.NotificationCriteria) (pagination.Page[models.Notification], error)
	MarkAsRead(userID, notificationID uint) (*models.Notification, error)
	MarkAllAsRead(userID uint) error
	UnreadCount(userID uint) (int64, error)

	GetPreferences(userID uint) (*models.NotificationPreference, error)
	UpdatePreferences(userID uint, req *dto.UpdateNotificationPreferenceRequest) (*models.NotificationPreference, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	sender           email.Sender
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	sender email.Sender,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		sender:           sender,
	}
}

func (s *notificationService) Notify(userID uint, notifType models.NotificationType, title, message, link string) {
	pref, err := s.preferencesFor(userID)
	if err != nil {
		logger.WithError(err).Warn("failed to load notification preferences", "user_id", userID)
		return
	}

	if !typeEnabled(pref, notifType) {
		return
	}

	if pref.InAppNotifications {
		n := &models.Notification{
			UserID:  userID,
			Type:    notifType,
			Title:   title,
			Message: message,
			Link:    link,
		}
		if err := s.notificationRepo.CreateNotification(n); err != nil {
			logger.WithError(err).Error("failed to store notification", "user_id", userID, "type", notifType)
		}
	}

	if pref.EmailNotifications {
		go s.sendEmail(userID, title, message)
	}
}

func (s *notificationService) sendEmail(userID uint, subject, body string) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		logger.WithError(err).Warn("skipping email notification, recipient lookup failed", "user_id", userID)
		return
	}
	if err := s.sender.Send(user.Email, subject, body); err != nil {
		logger.WithError(err).Error("failed to send notification email", "user_id", userID)
	}
}

func (s *notificationService) ListNotifications(userID uint, criteria dto.NotificationCriteria) (pagination.Page[models.Notification], error) {
	p := pagination.Params{Skip: criteria.Skip, Limit: criteria.Limit}.Normalize()
	items, total, err := s.notificationRepo.ListByUser(userID, criteria.UnreadOnly, p)
	if err != nil {
		return pagination.Page[models.Notification]{}, apperrors.InternalError(err)
	}
	return pagination.NewPage(items, total, p.Skip, p.Limit), nil
}

func (s *notificationService) MarkAsRead(userID, notificationID uint) (*models.Notification, error) {
	n, err := s.notificationRepo.FindByIDAndUser(notificationID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return nil, apperrors.NotFound("Notification")
		}
		return nil, apperrors.InternalError(err)
	}
	if n.IsRead {
		return n, nil
	}
	if err := s.notificationRepo.MarkAsRead(n); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return n, nil
}

func (s *notificationService) MarkAllAsRead(userID uint) error {
	if err := s.notificationRepo.MarkAllAsRead(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) UnreadCount(userID uint) (int64, error) {
	count, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *notificationService) GetPreferences(userID uint) (*models.NotificationPreference, error) {
	pref, err := s.preferencesFor(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pref, nil
}

func (s *notificationService) UpdatePreferences(userID uint, req *dto.UpdateNotificationPreferenceRequest) (*models.NotificationPreference, error) {
	pref, err := s.preferencesFor(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if req.EmailEnabled != nil {
		pref.EmailNotifications = *req.EmailEnabled
	}
	if req.PushEnabled != nil {
		pref.PushNotifications = *req.PushEnabled
	}
	if req.InAppEnabled != nil {
		pref.InAppNotifications = *req.InAppEnabled
	}
	if req.NotificationTypes != nil {
		raw, err := json.Marshal(req.NotificationTypes)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		pref.NotificationTypes = datatypes.JSON(raw)
	}

	if err := s.notificationRepo.UpdatePreference(pref); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pref, nil
}

// preferencesFor returns the user's stored preferences, creating the default
// row on first access.
func (s *notificationService) preferencesFor(userID uint) (*models.NotificationPreference, error) {
	pref, err := s.notificationRepo.FindPreference(userID)
	if err == nil {
		return pref, nil
	}
	if !errors.Is(err, repositories.ErrPreferenceNotFound) {
		return nil, err
	}

	pref = defaultPreference(userID)
	if err := s.notificationRepo.CreatePreference(pref); err != nil {
		return nil, err
	}
	return pref, nil
}

func defaultPreference(userID uint) *models.NotificationPreference {
	raw, _ := json.Marshal(models.AllNotificationTypes())
	return &models.NotificationPreference{
		UserID:             userID,
		EmailNotifications: true,
		PushNotifications:  true,
		InAppNotifications: true,
		NotificationTypes:  datatypes.JSON(raw),
	}
}

func typeEnabled(pref *models.NotificationPreference, notifType models.NotificationType) bool {
	if len(pref.NotificationTypes) == 0 {
		return true
	}
	var enabled []string
	if err := json.Unmarshal(pref.NotificationTypes, &enabled); err != nil {
		return true
	}
	for _, t := range enabled {
		if t == string(notifType) {
			return true
		}
	}
	return false
}
