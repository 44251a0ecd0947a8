package models

import "time"

// AvailabilityWindow is a doctor's recurring permitted range on one weekday.
// Weekday holds the English day name ("Monday".."Sunday"); StartTime and
// EndTime are zero-padded "15:04" strings, so string comparison orders them.
type AvailabilityWindow struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	DoctorID uint `gorm:"uniqueIndex:idx_doctor_weekday;not null" json:"doctor_id"`

	Weekday   string `gorm:"size:10;uniqueIndex:idx_doctor_weekday;not null" json:"weekday"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
}
