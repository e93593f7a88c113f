package models

type Share struct {
	BaseModel
	UserID        uint            `gorm:"not null;index" json:"user_id"`
	ShareableType ShareableType   `gorm:"type:varchar(30);not null;index:idx_shares_target" json:"shareable_type"`
	ShareableID   uint            `gorm:"not null;index:idx_shares_target" json:"shareable_id"`
	Platform      SharingPlatform `gorm:"type:varchar(20);not null" json:"platform"`
	ShareURL      string          `gorm:"size:1024" json:"share_url"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
