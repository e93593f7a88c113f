package dto

type NotificationCriteria struct {
	UnreadOnly bool `form:"unread_only"`
	Skip       int  `form:"skip" validate:"omitempty,min=0"`
	Limit      int  `form:"limit" validate:"omitempty,min=0,max=100"`
}

type UpdateNotificationPreferenceRequest struct {
	EmailEnabled      *bool    `json:"email_enabled,omitempty"`
	PushEnabled       *bool    `json:"push_enabled,omitempty"`
	InAppEnabled      *bool    `json:"in_app_enabled,omitempty"`
	NotificationTypes []string `json:"notification_types,omitempty"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
