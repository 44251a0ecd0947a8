package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CareSlotLabs/hospital-scheduler/internal/httperr"
	"github.com/CareSlotLabs/hospital-scheduler/internal/httpresp"
	"github.com/CareSlotLabs/hospital-scheduler/internal/middleware"
	"github.com/CareSlotLabs/hospital-scheduler/internal/models"
)

type PatientHandler struct {
	db *gorm.DB
	tz string
}

func NewPatientHandler(db *gorm.DB, tz string) *PatientHandler {
	return &PatientHandler{db: db, tz: tz}
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *PatientHandler) Dashboard(c *gin.Context) {
	p := middleware.CurrentActor(c)

	var departments []models.Department
	h.db.Order("name ASC").Find(&departments)

	var upcoming []models.Appointment
	h.db.
		Preload("Doctor").
		Preload("Doctor.Department").
		Where("patient_id = ? AND date >= ? AND status = ?", p.ID, todayString(h.tz), "Booked").
		Order("date ASC, time ASC").
		Limit(5).
		Find(&upcoming)

	var totalDoctors int64
	h.db.Model(&models.Doctor{}).Where("is_blacklisted = ?", false).Count(&totalDoctors)

	httpresp.OK(c, gin.H{
		"departments":           departments,
		"upcoming_appointments": upcoming,
		"stats": gin.H{
			"upcoming":      len(upcoming),
			"total_doctors": totalDoctors,
			"departments":   len(departments),
		},
	})
}

// ======================================================
// DOCTOR SEARCH
// ======================================================

// SearchDoctors lists bookable doctors; blacklisted ones are never shown.
func (h *PatientHandler) SearchDoctors(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	departmentID := c.Query("department_id")

	q := h.db.
		Preload("Department").
		Where("is_blacklisted = ?", false).
		Order("name ASC")

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ?", like)
	}
	if departmentID != "" {
		q = q.Where("department_id = ?", departmentID)
	}

	var doctors []models.Doctor
	if err := q.Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Unexpected error.")
		return
	}

	httpresp.List(c, doctors)
}

// ======================================================
// APPOINTMENTS / HISTORY
// ======================================================

func (h *PatientHandler) ListAppointments(c *gin.Context) {
	p := middleware.CurrentActor(c)

	q := h.db.
		Preload("Doctor").
		Preload("Doctor.Department").
		Preload("Treatment").
		Where("patient_id = ?", p.ID).
		Order("date DESC, time DESC")

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := q.Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Unexpected error.")
		return
	}

	httpresp.List(c, appointments)
}

// History returns the treatments of the patient's completed appointments.
func (h *PatientHandler) History(c *gin.Context) {
	p := middleware.CurrentActor(c)

	var appointments []models.Appointment
	if err := h.db.
		Preload("Doctor").
		Preload("Doctor.Department").
		Preload("Treatment").
		Where("patient_id = ? AND status = ?", p.ID, "Completed").
		Order("date DESC, time DESC").
		Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_load_history", "Unexpected error.")
		return
	}

	httpresp.List(c, appointments)
}
