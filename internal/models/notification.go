package models

import (
	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  uint             `gorm:"not null;index" json:"user_id"`
	Type    NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	Title   string           `gorm:"size:255;not null" json:"title"`
	Message string           `gorm:"type:text;not null" json:"message"`
	Link    string           `gorm:"size:255" json:"link,omitempty"`
	IsRead  bool             `gorm:"default:false" json:"is_read"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// NotificationPreference holds per-user channel toggles and the set of
// notification type names the user wants to receive.
type NotificationPreference struct {
	BaseModel
	UserID             uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	EmailNotifications bool           `gorm:"default:true" json:"email_notifications"`
	PushNotifications  bool           `gorm:"default:true" json:"push_notifications"`
	InAppNotifications bool           `gorm:"default:true" json:"in_app_notifications"`
	NotificationTypes  datatypes.JSON `gorm:"not null" json:"notification_types"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
