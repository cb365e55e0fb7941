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

type AppointmentController struct {
	Store *store.Store
	Email *models.EmailService
}

// CreateAppointment godoc
// @Summary Book an appointment
// @Tags Appointments
// @Accept json
// @Produce json
// @Param request body models.CreateAppointmentRequest true "Appointment"
// @Success 201 {object} models.Appointment
// @Failure 400 {object} models.ErrorResponse
// @Router /appointments [post]
func (ctrl *AppointmentController) CreateAppointment(c *gin.Context) {
	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: validationMessage(err)})
		return
	}

	now := time.Now().UTC()
	appointment := models.Appointment{
		ID:        utils.NewID(),
		EnquiryID: req.EnquiryID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Date:      req.Date,
		Time:      req.Time,
		Service:   req.Service,
		Message:   req.Message,
		Status:    models.AppointmentStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := store.Mutate(ctrl.Store, models.AppointmentsSet, func(appointments []models.Appointment) ([]models.Appointment, error) {
		return append(appointments, appointment), nil
	})
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to save appointment", Error: err.Error()})
		return
	}

	if ctrl.Email != nil {
		go func(a models.Appointment) {
			if err := ctrl.Email.SendAppointmentNotification(a); err != nil {
				log.Println("Appointment notification failed:", err)
			}
		}(appointment)
	}

	c.JSON(201, appointment)
}

// GetAppointments godoc
// @Summary List appointments
// @Description Newest first, optionally filtered by status, search text, and date
// @Tags Admin - Appointments
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending, confirmed, completed, cancelled, or rescheduled"
// @Param search query string false "Case-insensitive match over name and email"
// @Param date query string false "Exact date match"
// @Success 200 {array} models.Appointment
// @Router /admin/appointments [get]
func (ctrl *AppointmentController) GetAppointments(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	search := strings.TrimSpace(c.Query("search"))
	date := strings.TrimSpace(c.Query("date"))

	appointments, err := store.Read[models.Appointment](ctrl.Store, models.AppointmentsSet)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to read appointments", Error: err.Error()})
		return
	}

	c.JSON(200, models.FilterAppointments(appointments, status, search, date))
}

// UpdateAppointmentStatus godoc
// @Summary Update appointment status
// @Description Status-only update with optional notes
// @Tags Admin - Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body models.AppointmentStatusRequest true "Status"
// @Success 200 {object} models.Appointment
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/appointments/{id}/status [patch]
func (ctrl *AppointmentController) UpdateAppointmentStatus(c *gin.Context) {
	id := c.Param("id")

	var req models.AppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: validationMessage(err)})
		return
	}

	var updated models.Appointment
	_, err := store.Mutate(ctrl.Store, models.AppointmentsSet, func(appointments []models.Appointment) ([]models.Appointment, error) {
		for i := range appointments {
			if appointments[i].ID != id {
				continue
			}
			appointments[i].Status = req.Status
			if req.Notes != "" {
				appointments[i].Notes = req.Notes
			}
			appointments[i].UpdatedAt = time.Now().UTC()
			updated = appointments[i]
			return appointments, nil
		}
		return nil, store.ErrNotFound
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(404, models.ErrorResponse{Success: false, Message: "Appointment not found"})
			return
		}
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to update appointment", Error: err.Error()})
		return
	}

	c.JSON(200, updated)
}

// DeleteAppointment godoc
// @Summary Delete appointment
// @Tags Admin - Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} models.DeleteResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/appointments/{id} [delete]
func (ctrl *AppointmentController) DeleteAppointment(c *gin.Context) {
	id := c.Param("id")

	_, err := store.Mutate(ctrl.Store, models.AppointmentsSet, func(appointments []models.Appointment) ([]models.Appointment, error) {
		for i := range appointments {
			if appointments[i].ID == id {
				return append(appointments[:i], appointments[i+1:]...), nil
			}
		}
		return nil, store.ErrNotFound
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(404, models.ErrorResponse{Success: false, Message: "Appointment not found"})
			return
		}
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to delete appointment", Error: err.Error()})
		return
	}

	c.JSON(200, models.DeleteResponse{Success: true, Message: "Appointment deleted"})
}
