package dto

import "careconnect_backend/internal/models"

type CreateShareRequest struct {
	ShareableType models.ShareableType   `json:"shareable_type" validate:"required,oneof=blood_request device_listing device_request caregiver_listing"`
	ShareableID   uint                   `json:"shareable_id" validate:"required"`
	Platform      models.SharingPlatform `json:"platform" validate:"required,oneof=facebook twitter whatsapp linkedin email"`
}

type ShareStatsResponse struct {
	ShareableType models.ShareableType             `json:"shareable_type"`
	ShareableID   uint                             `json:"shareable_id"`
	TotalShares   int64                            `json:"total_shares"`
	PlatformStats map[models.SharingPlatform]int64 `json:"platform_stats"`
}
