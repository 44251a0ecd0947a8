package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CareSlotLabs/hospital-scheduler/internal/audit"
	"github.com/CareSlotLabs/hospital-scheduler/internal/httperr"
	"github.com/CareSlotLabs/hospital-scheduler/internal/httpresp"
	"github.com/CareSlotLabs/hospital-scheduler/internal/middleware"
	"github.com/CareSlotLabs/hospital-scheduler/internal/models"
)

type DepartmentHandler struct {
	db    *gorm.DB
	audit audit.Recorder
}

func NewDepartmentHandler(db *gorm.DB, auditDispatcher audit.Recorder) *DepartmentHandler {
	return &DepartmentHandler{db: db, audit: auditDispatcher}
}

type DepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	admin := middleware.CurrentActor(c)

	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	var count int64
	h.db.Model(&models.Department{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "department_already_exists", "Department already exists.")
		return
	}

	dept := models.Department{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.db.Create(&dept).Error; err != nil {
		httperr.Internal(c, "failed_to_create_department", "Unexpected error.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorRole: string(admin.Role),
		ActorID:   &admin.ID,
		Action:    "department_created",
		Entity:    "department",
		EntityID:  &dept.ID,
	})

	c.JSON(http.StatusCreated, dept)
}

func (h *DepartmentHandler) List(c *gin.Context) {
	var departments []models.Department
	if err := h.db.Order("name ASC").Find(&departments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_departments", "Unexpected error.")
		return
	}

	httpresp.List(c, departments)
}

func (h *DepartmentHandler) Update(c *gin.Context) {
	admin := middleware.CurrentActor(c)

	var dept models.Department
	if err := h.db.First(&dept, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "department_not_found", "Department not found.")
		return
	}

	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	dept.Name = req.Name
	dept.Description = req.Description

	if err := h.db.Save(&dept).Error; err != nil {
		httperr.Internal(c, "failed_to_update_department", "Unexpected error.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorRole: string(admin.Role),
		ActorID:   &admin.ID,
		Action:    "department_updated",
		Entity:    "department",
		EntityID:  &dept.ID,
	})

	httpresp.OK(c, dept)
}
