package dto

import "time"

type CreateDeviceListingRequest struct {
	DeviceName  string `json:"device_name" validate:"required,max=120"`
	DeviceType  string `json:"device_type" validate:"required,max=80"`
	Condition   string `json:"condition" validate:"required,max=80"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Location    string `json:"location" validate:"required,max=200"`
	ContactInfo string `json:"contact_info" validate:"required,max=200"`
}

type UpdateDeviceListingRequest struct {
	DeviceName  *string `json:"device_name,omitempty" validate:"omitempty,max=120"`
	DeviceType  *string `json:"device_type,omitempty" validate:"omitempty,max=80"`
	Condition   *string `json:"condition,omitempty" validate:"omitempty,max=80"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=200"`
	ContactInfo *string `json:"contact_info,omitempty" validate:"omitempty,max=200"`
}

type CreateDeviceRequestRequest struct {
	ListingID uint   `json:"listing_id" validate:"required"`
	Message   string `json:"message" validate:"omitempty,max=2000"`
}

type CreateDeviceResponseRequest struct {
	RequestID uint   `json:"request_id" validate:"required"`
	Message   string `json:"message" validate:"omitempty,max=2000"`
}

type CreateDeviceReviewRequest struct {
	ListingID uint    `json:"listing_id" validate:"required"`
	Rating    float64 `json:"rating" validate:"required,min=1,max=5"`
	Comment   string  `json:"comment" validate:"omitempty,max=2000"`
}

type DeviceListingCriteria struct {
	DeviceType string `form:"device_type"`
	Condition  string `form:"condition"`
	Location   string `form:"location"`
	Status     string `form:"status"`
	Mine       bool   `form:"mine"`
	Skip       int    `form:"skip" validate:"omitempty,min=0"`
	Limit      int    `form:"limit" validate:"omitempty,min=0,max=100"`
}

type DeviceListingResponse struct {
	ID          uint     `json:"id"`
	DonorID     uint     `json:"donor_id"`
	DeviceName  string   `json:"device_name"`
	DeviceType  string   `json:"device_type"`
	Condition   string   `json:"condition"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	ContactInfo string   `json:"contact_info"`
	Status      string   `json:"status"`
	Rating      *float64 `json:"rating"`
	ReviewCount int64    `json:"review_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
