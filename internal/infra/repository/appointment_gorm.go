package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/CareSlotLabs/hospital-scheduler/internal/domain/appointment"
	"github.com/CareSlotLabs/hospital-scheduler/internal/httperr"
	"github.com/CareSlotLabs/hospital-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Participants
// --------------------------------------------------

func (r *AppointmentGormRepository) GetDoctorByID(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var doc models.Doctor
	if err := r.db.WithContext(ctx).First(&doc, id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *AppointmentGormRepository) GetPatientByID(
	ctx context.Context,
	id uint,
) (*models.Patient, error) {

	var p models.Patient
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) HasActiveAppointment(
	ctx context.Context,
	doctorID uint,
	date string,
	clock string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"doctor_id = ? AND date = ? AND time = ? AND status <> ?",
			doctorID, date, clock, string(domain.StatusCancelled),
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *AppointmentGormRepository) CreateAppointmentInSlot(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"doctor_id = ? AND date = ? AND time = ? AND status <> ?",
				ap.DoctorID, ap.Date, ap.Time, string(domain.StatusCancelled),
			).
			Count(&conflicts).Error; err != nil {
			return err
		}

		if conflicts > 0 {
			return httperr.ErrConflict("slot_conflict")
		}

		return tx.Create(ap).Error
	})

	// The partial unique index backs up the locked check; a concurrent
	// insert that slipped past it still surfaces as a slot conflict.
	if isUniqueViolation(err) {
		return httperr.ErrConflict("slot_conflict")
	}

	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) SaveCompletion(
	ctx context.Context,
	ap *models.Appointment,
	tr *models.Treatment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(ap).Error; err != nil {
			return err
		}
		return tx.Create(tr).Error
	})
}

func (r *AppointmentGormRepository) GetTreatmentByAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Treatment, error) {

	var tr models.Treatment
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		First(&tr).Error; err != nil {
		return nil, err
	}

	return &tr, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWindow(
	ctx context.Context,
	doctorID uint,
	weekday string,
) (*models.AvailabilityWindow, error) {

	var w models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND weekday = ?", doctorID, weekday).
		First(&w).Error; err != nil {
		return nil, err
	}

	return &w, nil
}

func (r *AppointmentGormRepository) ListWindows(
	ctx context.Context,
	doctorID uint,
) ([]models.AvailabilityWindow, error) {

	var windows []models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("id ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}

	return windows, nil
}

func (r *AppointmentGormRepository) ReplaceWindows(
	ctx context.Context,
	doctorID uint,
	windows []models.AvailabilityWindow,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Where("doctor_id = ?", doctorID).
			Delete(&models.AvailabilityWindow{}).Error; err != nil {
			return err
		}

		if len(windows) == 0 {
			return nil
		}

		return tx.Create(&windows).Error
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
