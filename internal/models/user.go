package models

import (
	"gorm.io/gorm"
)

type User struct {
	BaseModel
	Email        string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Username     string         `gorm:"uniqueIndex;size:255;not null" json:"username"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	FullName     string         `gorm:"size:255" json:"full_name"`
	PhoneNumber  string         `gorm:"size:20" json:"phone_number"`
	Role         UserRole       `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Admins pass every role check.

func (u *User) IsDonor() bool {
	return u.Role == UserRoleDonor || u.Role == UserRoleAdmin
}

func (u *User) IsRecipient() bool {
	return u.Role == UserRoleRecipient || u.Role == UserRoleAdmin
}

func (u *User) IsCaregiver() bool {
	return u.Role == UserRoleCaregiver || u.Role == UserRoleAdmin
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
