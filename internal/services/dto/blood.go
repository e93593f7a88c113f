package dto

type CreateBloodRequestRequest struct {
	BloodType     string `json:"blood_type" validate:"required,blood-type"`
	Location      string `json:"location" validate:"required,max=200"`
	Urgency       string `json:"urgency" validate:"required,urgency"`
	ContactNumber string `json:"contact_number" validate:"required,max=32"`
	Notes         string `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateBloodRequestRequest struct {
	BloodType     *string `json:"blood_type,omitempty" validate:"omitempty,blood-type"`
	Location      *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Urgency       *string `json:"urgency,omitempty" validate:"omitempty,urgency"`
	ContactNumber *string `json:"contact_number,omitempty" validate:"omitempty,max=32"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreateBloodResponseRequest struct {
	RequestID uint   `json:"request_id" validate:"required"`
	Message   string `json:"message" validate:"omitempty,max=2000"`
}

type BloodRequestCriteria struct {
	BloodType string `form:"blood_type" validate:"omitempty,blood-type"`
	Location  string `form:"location"`
	Urgency   string `form:"urgency" validate:"omitempty,urgency"`
	Mine      bool   `form:"mine"`
	Skip      int    `form:"skip" validate:"omitempty,min=0"`
	Limit     int    `form:"limit" validate:"omitempty,min=0,max=100"`
}
