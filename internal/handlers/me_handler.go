package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CareSlotLabs/hospital-scheduler/internal/domain/actor"
	"github.com/CareSlotLabs/hospital-scheduler/internal/httperr"
	"github.com/CareSlotLabs/hospital-scheduler/internal/httpresp"
	"github.com/CareSlotLabs/hospital-scheduler/internal/middleware"
	"github.com/CareSlotLabs/hospital-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// GetMe resolves the actor's profile from its role's own table.
func (h *MeHandler) GetMe(c *gin.Context) {
	a := middleware.CurrentActor(c)

	switch a.Role {
	case actor.RoleAdmin:
		var admin models.Admin
		if err := h.db.First(&admin, a.ID).Error; err != nil {
			httperr.NotFound(c, "account_not_found", "Account not found.")
			return
		}
		httpresp.OK(c, gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"email":    admin.Email,
			"role":     string(a.Role),
		})

	case actor.RoleDoctor:
		var doctor models.Doctor
		if err := h.db.Preload("Department").First(&doctor, a.ID).Error; err != nil {
			httperr.NotFound(c, "account_not_found", "Account not found.")
			return
		}
		httpresp.OK(c, gin.H{
			"id":         doctor.ID,
			"name":       doctor.Name,
			"email":      doctor.Email,
			"contact":    doctor.Contact,
			"department": doctor.Department.Name,
			"role":       string(a.Role),
		})

	case actor.RolePatient:
		var patient models.Patient
		if err := h.db.First(&patient, a.ID).Error; err != nil {
			httperr.NotFound(c, "account_not_found", "Account not found.")
			return
		}
		httpresp.OK(c, gin.H{
			"id":            patient.ID,
			"name":          patient.Name,
			"email":         patient.Email,
			"contact":       patient.Contact,
			"date_of_birth": patient.DateOfBirth,
			"role":          string(a.Role),
		})

	default:
		httperr.Unauthorized(c, "unknown_role", "Unknown role.")
	}
}
