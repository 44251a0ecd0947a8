package handlers

import (
	"crypto/rand"
	"math/big"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/CareSlotLabs/hospital-scheduler/internal/audit"
	"github.com/CareSlotLabs/hospital-scheduler/internal/httperr"
	"github.com/CareSlotLabs/hospital-scheduler/internal/httpresp"
	"github.com/CareSlotLabs/hospital-scheduler/internal/middleware"
	"github.com/CareSlotLabs/hospital-scheduler/internal/models"
	"github.com/CareSlotLabs/hospital-scheduler/internal/notify"
	"github.com/CareSlotLabs/hospital-scheduler/internal/validators"
)

type AdminHandler struct {
	db       *gorm.DB
	notifier *notify.Notifier
	audit    audit.Recorder
}

func NewAdminHandler(db *gorm.DB, notifier *notify.Notifier, auditDispatcher audit.Recorder) *AdminHandler {
	return &AdminHandler{
		db:       db,
		notifier: notifier,
		audit:    auditDispatcher,
	}
}

// ======================================================
// STATS
// ======================================================

func (h *AdminHandler) Stats(c *gin.Context) {
	var doctors, patients, appointments, pending int64

	h.db.Model(&models.Doctor{}).Count(&doctors)
	h.db.Model(&models.Patient{}).Count(&patients)
	h.db.Model(&models.Appointment{}).Count(&appointments)
	h.db.Model(&models.Appointment{}).Where("status = ?", "Booked").Count(&pending)

	httpresp.OK(c, gin.H{
		"doctors":      doctors,
		"patients":     patients,
		"appointments": appointments,
		"pending":      pending,
	})
}

// ======================================================
// DOCTORS
// ======================================================

type CreateDoctorRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	DepartmentID uint   `json:"department_id" binding:"required"`
	Contact      string `json:"contact"`
	Password     string `json:"password"`
}

func (h *AdminHandler) CreateDoctor(c *gin.Context) {
	admin := middleware.CurrentActor(c)

	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	if emailInUse(h.db, email) {
		httperr.BadRequest(c, "email_already_registered", "Email already registered.")
		return
	}

	var dept models.Department
	if err := h.db.First(&dept, req.DepartmentID).Error; err != nil {
		httperr.BadRequest(c, "department_not_found", "Department not found.")
		return
	}

	password := req.Password
	if password == "" {
		password = generatePassword(12)
	}
	if len(password) < 6 {
		httperr.BadRequest(c, "password_too_short", "Password must be at least 6 characters.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Unexpected error.")
		return
	}

	doctor := models.Doctor{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		DepartmentID: dept.ID,
		Contact:      req.Contact,
	}

	if err := h.db.Create(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_create_doctor", "Unexpected error.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorRole: string(admin.Role),
		ActorID:   &admin.ID,
		Action:    "doctor_created",
		Entity:    "doctor",
		EntityID:  &doctor.ID,
	})

	warnings := h.notifier.DoctorWelcome(doctor.Email, doctor.Name, password)

	doctor.Department = dept
	httpresp.OKWithWarnings(c, http.StatusCreated, doctor, warnings)
}

func (h *AdminHandler) ListDoctors(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	departmentID := c.Query("department_id")

	q := h.db.Preload("Department").Order("created_at DESC")

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
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

type UpdateDoctorRequest struct {
	Name         string `json:"name"`
	Contact      string `json:"contact"`
	DepartmentID uint   `json:"department_id"`
}

func (h *AdminHandler) UpdateDoctor(c *gin.Context) {
	admin := middleware.CurrentActor(c)

	var doctor models.Doctor
	if err := h.db.First(&doctor, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	var req UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	if req.Name != "" {
		doctor.Name = req.Name
	}
	if req.Contact != "" {
		doctor.Contact = req.Contact
	}
	if req.DepartmentID != 0 {
		var dept models.Department
		if err := h.db.First(&dept, req.DepartmentID).Error; err != nil {
			httperr.BadRequest(c, "department_not_found", "Department not found.")
			return
		}
		doctor.DepartmentID = dept.ID
	}

	if err := h.db.Save(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_update_doctor", "Unexpected error.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorRole: string(admin.Role),
		ActorID:   &admin.ID,
		Action:    "doctor_updated",
		Entity:    "doctor",
		EntityID:  &doctor.ID,
	})

	httpresp.OK(c, doctor)
}

// ======================================================
// BLACKLIST
// ======================================================

type BlacklistRequest struct {
	Blacklisted *bool `json:"blacklisted" binding:"required"`
}

// SetDoctorBlacklist flips the flag without touching any history; existing
// appointments stay as they are, only new bookings are blocked.
func (h *AdminHandler) SetDoctorBlacklist(c *gin.Context) {
	admin := middleware.CurrentActor(c)

	var doctor models.Doctor
	if err := h.db.First(&doctor, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	var req BlacklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	doctor.IsBlacklisted = *req.Blacklisted
	if err := h.db.Save(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_update_doctor", "Unexpected error.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorRole: string(admin.Role),
		ActorID:   &admin.ID,
		Action:    "doctor_blacklist_changed",
		Entity:    "doctor",
		EntityID:  &doctor.ID,
		Metadata:  map[string]any{"blacklisted": doctor.IsBlacklisted},
	})

	httpresp.OK(c, doctor)
}

func (h *AdminHandler) SetPatientBlacklist(c *gin.Context) {
	admin := middleware.CurrentActor(c)

	var patient models.Patient
	if err := h.db.First(&patient, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}

	var req BlacklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	patient.IsBlacklisted = *req.Blacklisted
	if err := h.db.Save(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_update_patient", "Unexpected error.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorRole: string(admin.Role),
		ActorID:   &admin.ID,
		Action:    "patient_blacklist_changed",
		Entity:    "patient",
		EntityID:  &patient.ID,
		Metadata:  map[string]any{"blacklisted": patient.IsBlacklisted},
	})

	httpresp.OK(c, patient)
}

// ======================================================
// PATIENTS
// ======================================================

func (h *AdminHandler) ListPatients(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Order("created_at DESC")

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var patients []models.Patient
	if err := q.Find(&patients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_patients", "Unexpected error.")
		return
	}

	httpresp.List(c, patients)
}

// ======================================================
// APPOINTMENTS (GLOBAL VIEW)
// ======================================================

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	status := c.Query("status")
	date := c.Query("date")

	q := h.db.
		Preload("Patient").
		Preload("Doctor").
		Order("date DESC, time DESC")

	if status != "" {
		q = q.Where("status = ?", status)
	}
	if date != "" {
		q = q.Where("date = ?", date)
	}

	var appointments []models.Appointment
	if err := q.Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Unexpected error.")
		return
	}

	httpresp.List(c, appointments)
}

// ======================================================
// HELPERS
// ======================================================

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func generatePassword(length int) string {
	out := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))

	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			out[i] = passwordAlphabet[0]
			continue
		}
		out[i] = passwordAlphabet[n.Int64()]
	}

	return string(out)
}
