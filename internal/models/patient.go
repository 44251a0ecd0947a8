package models

import "time"

type Patient struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Contact       string     `gorm:"size:20" json:"contact"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
	IsBlacklisted bool       `gorm:"default:false" json:"is_blacklisted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
