package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/CareSlotLabs/hospital-scheduler/internal/httperr"
	"github.com/CareSlotLabs/hospital-scheduler/internal/httpresp"
	"github.com/CareSlotLabs/hospital-scheduler/internal/middleware"
	ucAppointment "github.com/CareSlotLabs/hospital-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// AppointmentHandler exposes the scheduling core; every operation goes
// through a use case, never straight at the database.
type AppointmentHandler struct {
	book     *ucAppointment.BookAppointment
	cancel   *ucAppointment.CancelAppointment
	complete *ucAppointment.CompleteAppointment
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	cancel *ucAppointment.CancelAppointment,
	complete *ucAppointment.CompleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:     book,
		cancel:   cancel,
		complete: complete,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	DoctorID uint   `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
}

// Diagnosis is required, but the rule lives in the use case so an absent
// diagnosis reports diagnosis_required instead of a generic bind failure.
type CompleteAppointmentRequest struct {
	Diagnosis    string `json:"diagnosis"`
	Prescription string `json:"prescription"`
	Notes        string `json:"notes"`
}

// ======================================================
// BOOK (PATIENT)
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	patient := middleware.CurrentActor(c)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	ap, warnings, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		PatientID: patient.ID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OKWithWarnings(c, http.StatusCreated, ap, warnings)
}

// ======================================================
// CANCEL (DOCTOR OR PATIENT)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	by := middleware.CurrentActor(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), by, uint(id))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// COMPLETE (DOCTOR)
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	by := middleware.CurrentActor(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	var req CompleteAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	ap, tr, err := h.complete.Execute(c.Request.Context(), by, ucAppointment.CompleteAppointmentInput{
		AppointmentID: uint(id),
		Diagnosis:     req.Diagnosis,
		Prescription:  req.Prescription,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"appointment": ap,
		"treatment":   tr,
	})
}
