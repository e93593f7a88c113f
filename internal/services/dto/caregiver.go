package dto

import "time"

type CreateCaregiverListingRequest struct {
	ServiceType     string  `json:"service_type" validate:"required,max=120"`
	ExperienceLevel string  `json:"experience_level" validate:"required,max=80"`
	Description     string  `json:"description" validate:"omitempty,max=2000"`
	Location        string  `json:"location" validate:"required,max=200"`
	ContactInfo     string  `json:"contact_info" validate:"required,max=200"`
	HourlyRate      float64 `json:"hourly_rate" validate:"required,gt=0"`
}

type UpdateCaregiverListingRequest struct {
	ServiceType     *string  `json:"service_type,omitempty" validate:"omitempty,max=120"`
	ExperienceLevel *string  `json:"experience_level,omitempty" validate:"omitempty,max=80"`
	Description     *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Location        *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	ContactInfo     *string  `json:"contact_info,omitempty" validate:"omitempty,max=200"`
	HourlyRate      *float64 `json:"hourly_rate,omitempty" validate:"omitempty,gt=0"`
}

type CreateCaregiverRequestRequest struct {
	ListingID   uint   `json:"listing_id" validate:"required"`
	ServiceType string `json:"service_type" validate:"required,max=120"`
	Location    string `json:"location" validate:"required,max=200"`
	ContactInfo string `json:"contact_info" validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

type CreateCaregiverResponseRequest struct {
	RequestID uint   `json:"request_id" validate:"required"`
	Message   string `json:"message" validate:"omitempty,max=2000"`
}

type CreateCaregiverReviewRequest struct {
	ListingID uint    `json:"listing_id" validate:"required"`
	Rating    float64 `json:"rating" validate:"required,min=1,max=5"`
	Comment   string  `json:"comment" validate:"omitempty,max=2000"`
}

type CaregiverListingCriteria struct {
	ServiceType     string   `form:"service_type"`
	ExperienceLevel string   `form:"experience_level"`
	Location        string   `form:"location"`
	Availability    string   `form:"availability"`
	MinHourlyRate   *float64 `form:"min_hourly_rate" validate:"omitempty,gte=0"`
	MaxHourlyRate   *float64 `form:"max_hourly_rate" validate:"omitempty,gte=0"`
	Mine            bool     `form:"mine"`
	Skip            int      `form:"skip" validate:"omitempty,min=0"`
	Limit           int      `form:"limit" validate:"omitempty,min=0,max=100"`
}

type CaregiverListingResponse struct {
	ID              uint     `json:"id"`
	CaregiverID     uint     `json:"caregiver_id"`
	ServiceType     string   `json:"service_type"`
	ExperienceLevel string   `json:"experience_level"`
	Description     string   `json:"description"`
	Location        string   `json:"location"`
	ContactInfo     string   `json:"contact_info"`
	HourlyRate      float64  `json:"hourly_rate"`
	Availability    string   `json:"availability"`
	Rating          *float64 `json:"rating"`
	ReviewCount     int64    `json:"review_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
