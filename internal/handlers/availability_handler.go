package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/CareSlotLabs/hospital-scheduler/internal/domain/appointment"
	"github.com/CareSlotLabs/hospital-scheduler/internal/httperr"
	"github.com/CareSlotLabs/hospital-scheduler/internal/httpresp"
	"github.com/CareSlotLabs/hospital-scheduler/internal/middleware"
	"github.com/CareSlotLabs/hospital-scheduler/internal/models"
	ucAppointment "github.com/CareSlotLabs/hospital-scheduler/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	db  *gorm.DB
	set *ucAppointment.SetWeeklyAvailability
	get *ucAppointment.GetAvailability
}

func NewAvailabilityHandler(
	db *gorm.DB,
	set *ucAppointment.SetWeeklyAvailability,
	get *ucAppointment.GetAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		db:  db,
		set: set,
		get: get,
	}
}

type ReplaceAvailabilityRequest struct {
	Windows []domain.WindowInput `json:"windows" binding:"required"`
}

// Replace swaps the doctor's whole weekly schedule for the supplied set.
func (h *AvailabilityHandler) Replace(c *gin.Context) {
	doc := middleware.CurrentActor(c)

	var req ReplaceAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	windows, err := h.set.Execute(c.Request.Context(), doc.ID, req.Windows)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.List(c, windows)
}

// Mine lists the calling doctor's own weekly windows.
func (h *AvailabilityHandler) Mine(c *gin.Context) {
	doc := middleware.CurrentActor(c)

	windows, err := h.get.Execute(c.Request.Context(), doc.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_availability", "Unexpected error.")
		return
	}

	httpresp.List(c, windows)
}

// ForDoctor lets a patient inspect a bookable doctor's weekly windows.
func (h *AvailabilityHandler) ForDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Invalid doctor id.")
		return
	}

	var doctor models.Doctor
	if err := h.db.First(&doctor, uint(id)).Error; err != nil || doctor.IsBlacklisted {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	windows, err := h.get.Execute(c.Request.Context(), doctor.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_availability", "Unexpected error.")
		return
	}

	httpresp.List(c, windows)
}
