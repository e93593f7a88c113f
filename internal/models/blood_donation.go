package models

// BloodDonationRequest stands alone: it is both the listing and the request
// in the blood domain. Donors answer it with a BloodDonationResponse.
type BloodDonationRequest struct {
	BaseModel
	BloodType     string             `gorm:"size:3;not null" json:"blood_type"` // A+, A-, B+, B-, AB+, AB-, O+, O-
	Location      string             `gorm:"size:255;not null" json:"location"`
	Urgency       string             `gorm:"size:10;not null" json:"urgency"` // High, Medium, Low
	ContactNumber string             `gorm:"size:20;not null" json:"contact_number"`
	Notes         string             `gorm:"type:text" json:"notes,omitempty"`
	UserID        uint               `gorm:"not null;index" json:"user_id"`
	Status        BloodRequestStatus `gorm:"type:varchar(50);not null;default:'available'" json:"status"`

	// Relations
	User      User                    `gorm:"foreignKey:UserID" json:"-"`
	Responses []BloodDonationResponse `gorm:"foreignKey:RequestID" json:"-"`
}

type BloodDonationResponse struct {
	BaseModel
	RequestID uint           `gorm:"not null;index" json:"request_id"`
	DonorID   uint           `gorm:"not null;index" json:"donor_id"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	Status    ResponseStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	// Relations
	Donor   User                 `gorm:"foreignKey:DonorID" json:"-"`
	Request BloodDonationRequest `gorm:"foreignKey:RequestID" json:"-"`
}
