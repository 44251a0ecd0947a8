package models

import "time"

// Doctor accounts are created by the admin only; patients never see
// blacklisted doctors.
type Doctor struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	DepartmentID uint       `json:"department_id"`
	Department   Department `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"department"`

	Contact       string `gorm:"size:20" json:"contact"`
	IsBlacklisted bool   `gorm:"default:false" json:"is_blacklisted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
