package models

type AssistiveDeviceListing struct {
	BaseModel
	DonorID     uint                `gorm:"not null;index" json:"donor_id"`
	DeviceName  string              `gorm:"size:255;not null" json:"device_name"`
	DeviceType  string              `gorm:"size:100;not null" json:"device_type"`
	Condition   string              `gorm:"size:50;not null" json:"condition"`
	Description string              `gorm:"type:text;not null" json:"description"`
	Location    string              `gorm:"size:255;not null" json:"location"`
	ContactInfo string              `gorm:"size:100;not null" json:"contact_info"`
	Status      DeviceListingStatus `gorm:"type:varchar(20);not null;default:'available'" json:"status"`

	// Relations
	Donor     User                      `gorm:"foreignKey:DonorID" json:"-"`
	Requests  []AssistiveDeviceRequest  `gorm:"foreignKey:ListingID" json:"-"`
	Reviews   []DeviceReview            `gorm:"foreignKey:ListingID" json:"-"`
	Responses []AssistiveDeviceResponse `gorm:"foreignKey:ListingID" json:"-"`
}

type AssistiveDeviceRequest struct {
	BaseModel
	ListingID  uint          `gorm:"not null;index" json:"listing_id"`
	ReceiverID uint          `gorm:"not null;index" json:"receiver_id"`
	Message    string        `gorm:"type:text;not null" json:"message"`
	Status     RequestStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	// Relations
	Receiver User                   `gorm:"foreignKey:ReceiverID" json:"-"`
	Listing  AssistiveDeviceListing `gorm:"foreignKey:ListingID" json:"-"`
}

type AssistiveDeviceResponse struct {
	BaseModel
	RequestID  uint           `gorm:"not null;index" json:"request_id"`
	ListingID  uint           `gorm:"not null;index" json:"listing_id"`
	DonorID    uint           `gorm:"not null;index" json:"donor_id"`
	ReceiverID uint           `gorm:"not null" json:"receiver_id"` // copied from the request's receiver
	Message    string         `gorm:"type:text;not null" json:"message"`
	Status     ResponseStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	// Relations
	Donor   User                   `gorm:"foreignKey:DonorID" json:"-"`
	Request AssistiveDeviceRequest `gorm:"foreignKey:RequestID" json:"-"`
	Listing AssistiveDeviceListing `gorm:"foreignKey:ListingID" json:"-"`
}

type DeviceReview struct {
	BaseModel
	ListingID  uint    `gorm:"not null;index" json:"listing_id"`
	ReviewerID uint    `gorm:"not null;index" json:"reviewer_id"`
	Rating     float64 `gorm:"not null" json:"rating"`
	Comment    string  `gorm:"type:text" json:"comment,omitempty"`

	// Relations
	Reviewer User                   `gorm:"foreignKey:ReviewerID" json:"-"`
	Listing  AssistiveDeviceListing `gorm:"foreignKey:ListingID" json:"-"`
}
