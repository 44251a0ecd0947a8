package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/CareSlotLabs/hospital-scheduler/internal/config"
	"github.com/CareSlotLabs/hospital-scheduler/internal/domain/actor"
	domain "github.com/CareSlotLabs/hospital-scheduler/internal/domain/appointment"
	"github.com/CareSlotLabs/hospital-scheduler/internal/httperr"
	"github.com/CareSlotLabs/hospital-scheduler/internal/models"
	"github.com/CareSlotLabs/hospital-scheduler/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Contact         string `json:"contact"`
	DateOfBirth     string `json:"date_of_birth"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register creates a patient account. Doctors are created by the admin and
// the admin itself is seeded; self-registration is patient-only.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Password != req.ConfirmPassword {
		httperr.BadRequest(c, "password_mismatch", "Passwords do not match.")
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

	var dob *time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse(domain.DateLayout, req.DateOfBirth)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_of_birth", "Date of birth must be YYYY-MM-DD.")
			return
		}
		dob = &parsed
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Unexpected error.")
		return
	}

	patient := models.Patient{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Contact:      req.Contact,
		DateOfBirth:  dob,
	}

	if err := h.db.Create(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_create_patient", "Unexpected error.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    patient.ID,
		"name":  patient.Name,
		"email": patient.Email,
		"role":  string(actor.RolePatient),
	})
}

// Login is the universal entry point for all three roles: the email is
// probed against admins, then doctors, then patients, and the matched
// account's role is baked into the token once.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var admin models.Admin
	if err := h.db.Where("email = ?", email).First(&admin).Error; err == nil {
		if !checkPassword(admin.PasswordHash, req.Password) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		if !admin.IsActive {
			httperr.Forbidden(c, "account_suspended", "Your account has been deactivated.")
			return
		}

		h.respondWithToken(c, admin.ID, actor.RoleAdmin, gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"email":    admin.Email,
			"role":     string(actor.RoleAdmin),
		})
		return
	}

	var doctor models.Doctor
	if err := h.db.Where("email = ?", email).First(&doctor).Error; err == nil {
		if !checkPassword(doctor.PasswordHash, req.Password) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		if doctor.IsBlacklisted {
			httperr.Forbidden(c, "account_suspended", "Your account has been suspended.")
			return
		}

		h.respondWithToken(c, doctor.ID, actor.RoleDoctor, gin.H{
			"id":    doctor.ID,
			"name":  doctor.Name,
			"email": doctor.Email,
			"role":  string(actor.RoleDoctor),
		})
		return
	}

	var patient models.Patient
	if err := h.db.Where("email = ?", email).First(&patient).Error; err == nil {
		if !checkPassword(patient.PasswordHash, req.Password) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		if patient.IsBlacklisted {
			httperr.Forbidden(c, "account_suspended", "Your account has been suspended.")
			return
		}

		h.respondWithToken(c, patient.ID, actor.RolePatient, gin.H{
			"id":    patient.ID,
			"name":  patient.Name,
			"email": patient.Email,
			"role":  string(actor.RolePatient),
		})
		return
	}

	httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
}

// emailInUse probes all three account tables. Login resolves an email in
// admins -> doctors -> patients order, so a duplicate in any table would
// shadow the later account's login.
func emailInUse(db *gorm.DB, email string) bool {
	var count int64

	db.Model(&models.Admin{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return true
	}

	db.Model(&models.Doctor{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return true
	}

	db.Model(&models.Patient{}).Where("email = ?", email).Count(&count)
	return count > 0
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (h *AuthHandler) respondWithToken(c *gin.Context, id uint, role actor.Role, user gin.H) {
	token, err := h.generateToken(id, role)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Unexpected error.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(id uint, role actor.Role) (string, error) {
	claims := jwt.MapClaims{
		"sub":  id,
		"role": string(role),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
