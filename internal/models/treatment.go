package models

import "time"

// Treatment is created once, as a side effect of the assigned doctor
// completing an appointment. Its lifetime is bound to the appointment.
type Treatment struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"uniqueIndex;not null" json:"appointment_id"`

	Diagnosis    string `gorm:"size:255;not null" json:"diagnosis"`
	Prescription string `gorm:"type:text" json:"prescription"`
	Notes        string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}
