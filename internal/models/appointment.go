package models

import "time"

// Appointment ties a patient to a doctor at one (date, time) slot.
// Rows are never deleted; the status moves Booked -> Completed | Cancelled.
// A partial unique index on (doctor_id, date, time) WHERE status <> 'Cancelled'
// (created in internal/db) guarantees at most one active booking per slot.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint    `gorm:"not null" json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	DoctorID uint   `gorm:"not null" json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"doctor"`

	Date string `gorm:"size:10;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Status string `gorm:"size:20;default:'Booked'" json:"status"`

	Treatment *Treatment `gorm:"constraint:OnDelete:CASCADE;" json:"treatment,omitempty"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
