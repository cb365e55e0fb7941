package controllers

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"furnish-shop/models"
	"furnish-shop/store"
	"furnish-shop/utils"
)

type EnquiryController struct {
	Store *store.Store
	Email *models.EmailService
}

// CreateEnquiry godoc
// @Summary Submit an enquiry
// @Tags Enquiries
// @Accept json
// @Produce json
// @Param request body models.CreateEnquiryRequest true "Enquiry"
// @Success 201 {object} models.Enquiry
// @Failure 400 {object} models.ErrorResponse
// @Router /enquiries [post]
func (ctrl *EnquiryController) CreateEnquiry(c *gin.Context) {
	var req models.CreateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: validationMessage(err)})
		return
	}

	now := time.Now().UTC()
	enquiry := models.Enquiry{
		ID:        utils.NewID(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		Status:    models.EnquiryStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := store.Mutate(ctrl.Store, models.EnquiriesSet, func(enquiries []models.Enquiry) ([]models.Enquiry, error) {
		return append(enquiries, enquiry), nil
	})
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to save enquiry", Error: err.Error()})
		return
	}

	if ctrl.Email != nil {
		go func(e models.Enquiry) {
			if err := ctrl.Email.SendEnquiryNotification(e); err != nil {
				log.Println("Enquiry notification failed:", err)
			}
		}(enquiry)
	}

	c.JSON(201, enquiry)
}

// GetEnquiries godoc
// @Summary List enquiries
// @Description Newest first, optionally filtered by status and search text
// @Tags Admin - Enquiries
// @Security BearerAuth
// @Produce json
// @Param status query string false "new, contacted, or resolved"
// @Param search query string false "Case-insensitive match over name and email"
// @Success 200 {array} models.Enquiry
// @Router /admin/enquiries [get]
func (ctrl *EnquiryController) GetEnquiries(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	search := strings.TrimSpace(c.Query("search"))

	enquiries, err := store.Read[models.Enquiry](ctrl.Store, models.EnquiriesSet)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to read enquiries", Error: err.Error()})
		return
	}

	c.JSON(200, models.FilterEnquiries(enquiries, status, search))
}

// UpdateEnquiryStatus godoc
// @Summary Update enquiry status
// @Description Status-only update with optional notes
// @Tags Admin - Enquiries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Enquiry ID"
// @Param request body models.EnquiryStatusRequest true "Status"
// @Success 200 {object} models.Enquiry
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/enquiries/{id}/status [patch]
func (ctrl *EnquiryController) UpdateEnquiryStatus(c *gin.Context) {
	id := c.Param("id")

	var req models.EnquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: validationMessage(err)})
		return
	}

	var updated models.Enquiry
	_, err := store.Mutate(ctrl.Store, models.EnquiriesSet, func(enquiries []models.Enquiry) ([]models.Enquiry, error) {
		for i := range enquiries {
			if enquiries[i].ID != id {
				continue
			}
			enquiries[i].Status = req.Status
			if req.Notes != "" {
				enquiries[i].Notes = req.Notes
			}
			enquiries[i].UpdatedAt = time.Now().UTC()
			updated = enquiries[i]
			return enquiries, nil
		}
		return nil, store.ErrNotFound
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(404, models.ErrorResponse{Success: false, Message: "Enquiry not found"})
			return
		}
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to update enquiry", Error: err.Error()})
		return
	}

	c.JSON(200, updated)
}

// DeleteEnquiry godoc
// @Summary Delete enquiry
// @Tags Admin - Enquiries
// @Security BearerAuth
// @Produce json
// @Param id path string true "Enquiry ID"
// @Success 200 {object} models.DeleteResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/enquiries/{id} [delete]
func (ctrl *EnquiryController) DeleteEnquiry(c *gin.Context) {
	id := c.Param("id")

	_, err := store.Mutate(ctrl.Store, models.EnquiriesSet, func(enquiries []models.Enquiry) ([]models.Enquiry, error) {
		for i := range enquiries {
			if enquiries[i].ID == id {
				return append(enquiries[:i], enquiries[i+1:]...), nil
			}
		}
		return nil, store.ErrNotFound
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(404, models.ErrorResponse{Success: false, Message: "Enquiry not found"})
			return
		}
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to delete enquiry", Error: err.Error()})
		return
	}

	c.JSON(200, models.DeleteResponse{Success: true, Message: "Enquiry deleted"})
}
