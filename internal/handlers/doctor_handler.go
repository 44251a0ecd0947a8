package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CareSlotLabs/hospital-scheduler/internal/httperr"
	"github.com/CareSlotLabs/hospital-scheduler/internal/httpresp"
	"github.com/CareSlotLabs/hospital-scheduler/internal/middleware"
	"github.com/CareSlotLabs/hospital-scheduler/internal/models"
)

type DoctorHandler struct {
	db *gorm.DB
	tz string
}

func NewDoctorHandler(db *gorm.DB, tz string) *DoctorHandler {
	return &DoctorHandler{db: db, tz: tz}
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *DoctorHandler) Dashboard(c *gin.Context) {
	doc := middleware.CurrentActor(c)

	today := todayString(h.tz)
	nextWeek := daysFromToday(h.tz, 7)

	var todays []models.Appointment
	h.db.
		Preload("Patient").
		Where("doctor_id = ? AND date = ?", doc.ID, today).
		Order("time ASC").
		Find(&todays)

	var upcoming []models.Appointment
	h.db.
		Preload("Patient").
		Where("doctor_id = ? AND date > ? AND date <= ?", doc.ID, today, nextWeek).
		Order("date ASC, time ASC").
		Find(&upcoming)

	var pending int64
	h.db.Model(&models.Appointment{}).
		Where("doctor_id = ? AND status = ?", doc.ID, "Booked").
		Count(&pending)

	httpresp.OK(c, gin.H{
		"today_appointments":    todays,
		"upcoming_appointments": upcoming,
		"stats": gin.H{
			"today":    len(todays),
			"upcoming": len(upcoming),
			"pending":  pending,
		},
	})
}

// ======================================================
// APPOINTMENTS
// ======================================================

func (h *DoctorHandler) ListAppointments(c *gin.Context) {
	doc := middleware.CurrentActor(c)

	date := c.Query("date")
	status := c.Query("status")

	q := h.db.
		Preload("Patient").
		Preload("Treatment").
		Where("doctor_id = ?", doc.ID).
		Order("date ASC, time ASC")

	if date != "" {
		if !validDateString(date) {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		q = q.Where("date = ?", date)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := q.Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Unexpected error.")
		return
	}

	httpresp.List(c, appointments)
}

// GetTreatment returns the treatment record of one of the doctor's own
// appointments.
func (h *DoctorHandler) GetTreatment(c *gin.Context) {
	doc := middleware.CurrentActor(c)

	var ap models.Appointment
	if err := h.db.
		Preload("Treatment").
		Where("id = ? AND doctor_id = ?", c.Param("id"), doc.ID).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	if ap.Treatment == nil {
		httperr.NotFound(c, "treatment_not_found", "No treatment recorded.")
		return
	}

	httpresp.OK(c, ap.Treatment)
}
