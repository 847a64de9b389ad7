package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/court-scheduler/internal/models"
)

type CourtHandler struct {
	db *gorm.DB
}

func NewCourtHandler(db *gorm.DB) *CourtHandler {
	return &CourtHandler{db: db}
}

// --------- Requests ---------

type CreateCourtRequest struct {
	Name         string  `json:"name" binding:"required"`
	SportType    string  `json:"sport_type" binding:"required"`
	Location     string  `json:"location"`
	Timezone     string  `json:"timezone"`
	PricePerSlot float64 `json:"price_per_slot" binding:"required"`
	SlotDuration int     `json:"slot_duration"`
}

type UpdateCourtRequest struct {
	Name         *string  `json:"name,omitempty"`
	SportType    *string  `json:"sport_type,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Timezone     *string  `json:"timezone,omitempty"`
	PricePerSlot *float64 `json:"price_per_slot,omitempty"`
	SlotDuration *int     `json:"slot_duration,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

// --------- Handlers ---------

func (h *CourtHandler) List(c *gin.Context) {
	sport := strings.ToLower(strings.TrimSpace(c.Query("sport_type")))
	activeStr := strings.TrimSpace(c.Query("active")) // "true", "false" ou vazio
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})

	if sport != "" {
		q = q.Where("LOWER(sport_type) = ?", sport)
	}

	if activeStr != "" {
		if activeStr == "true" {
			q = q.Where("is_active = ?", true)
		} else if activeStr == "false" {
			q = q.Where("is_active = ?", false)
		}
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(location) LIKE ?", like, like)
	}

	var courts []models.Court
	if err := q.
		Order("name ASC").
		Find(&courts).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_courts"})
		return
	}

	c.JSON(http.StatusOK, courts)
}

func (h *CourtHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var court models.Court
	if err := h.db.First(&court, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "court_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_court"})
		return
	}

	c.JSON(http.StatusOK, court)
}

func (h *CourtHandler) Create(c *gin.Context) {
	var req CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	duration := req.SlotDuration
	if duration <= 0 {
		duration = 30
	}

	court := models.Court{
		ID:           uuid.NewString(),
		Name:         req.Name,
		SportType:    strings.ToLower(req.SportType),
		Location:     req.Location,
		Timezone:     req.Timezone,
		PricePerSlot: req.PricePerSlot,
		SlotDuration: duration,
		IsActive:     true,
	}

	if err := h.db.Create(&court).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_court"})
		return
	}

	c.JSON(http.StatusCreated, court)
}

func (h *CourtHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var court models.Court
	if err := h.db.First(&court, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "court_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_court"})
		return
	}

	var req UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		court.Name = *req.Name
	}
	if req.SportType != nil {
		court.SportType = strings.ToLower(*req.SportType)
	}
	if req.Location != nil {
		court.Location = *req.Location
	}
	if req.Timezone != nil {
		court.Timezone = *req.Timezone
	}
	if req.PricePerSlot != nil {
		court.PricePerSlot = *req.PricePerSlot
	}
	if req.SlotDuration != nil && *req.SlotDuration > 0 {
		court.SlotDuration = *req.SlotDuration
	}
	if req.IsActive != nil {
		court.IsActive = *req.IsActive
	}

	if err := h.db.Save(&court).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_court"})
		return
	}

	c.JSON(http.StatusOK, court)
}
