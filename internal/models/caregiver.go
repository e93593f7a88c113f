package models

type CaregiverListing struct {
	BaseModel
	CaregiverID     uint               `gorm:"not null;index" json:"caregiver_id"`
	ServiceType     string             `gorm:"size:100;not null" json:"service_type"`
	ExperienceLevel string             `gorm:"size:100;not null" json:"experience_level"`
	Description     string             `gorm:"type:text;not null" json:"description"`
	Location        string             `gorm:"size:255;not null" json:"location"`
	ContactInfo     string             `gorm:"size:255;not null" json:"contact_info"`
	HourlyRate      float64            `gorm:"not null" json:"hourly_rate"`
	Availability    AvailabilityStatus `gorm:"type:varchar(30);not null;default:'available'" json:"availability_status"`

	// Relations
	Caregiver User               `gorm:"foreignKey:CaregiverID" json:"-"`
	Requests  []CaregiverRequest `gorm:"foreignKey:ListingID" json:"-"`
	Reviews   []CaregiverReview  `gorm:"foreignKey:ListingID" json:"-"`
}

type CaregiverRequest struct {
	BaseModel
	ReceiverID  uint          `gorm:"not null;index" json:"receiver_id"`
	ListingID   uint          `gorm:"not null;index" json:"listing_id"`
	ServiceType string        `gorm:"size:100;not null" json:"service_type"`
	Location    string        `gorm:"size:255;not null" json:"location"`
	ContactInfo string        `gorm:"size:255;not null" json:"contact_info"`
	Description string        `gorm:"type:text;not null" json:"description"`
	Status      RequestStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	// Relations
	Receiver User             `gorm:"foreignKey:ReceiverID" json:"-"`
	Listing  CaregiverListing `gorm:"foreignKey:ListingID" json:"-"`
}

type CaregiverResponse struct {
	BaseModel
	CaregiverID uint           `gorm:"not null;index" json:"caregiver_id"`
	ReceiverID  uint           `gorm:"not null" json:"receiver_id"` // copied from the request's receiver
	RequestID   uint           `gorm:"not null;index" json:"request_id"`
	Message     string         `gorm:"type:text" json:"message,omitempty"`
	Status      ResponseStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	// Relations
	Caregiver User             `gorm:"foreignKey:CaregiverID" json:"-"`
	Receiver  User             `gorm:"foreignKey:ReceiverID" json:"-"`
	Request   CaregiverRequest `gorm:"foreignKey:RequestID" json:"-"`
}

type CaregiverReview struct {
	BaseModel
	ListingID  uint    `gorm:"not null;index" json:"listing_id"`
	ReviewerID uint    `gorm:"not null;index" json:"reviewer_id"`
	Rating     float64 `gorm:"not null" json:"rating"`
	Comment    string  `gorm:"type:text" json:"comment,omitempty"`

	// Relations
	Listing  CaregiverListing `gorm:"foreignKey:ListingID" json:"-"`
	Reviewer User             `gorm:"foreignKey:ReviewerID" json:"-"`
}
