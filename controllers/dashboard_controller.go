package controllers

import (
	"github.com/gin-gonic/gin"

	"furnish-shop/models"
	"furnish-shop/store"
)

type DashboardController struct {
	Store *store.Store
}

func (ctrl *DashboardController) readAll() (models.ExportResponse, error) {
	var out models.ExportResponse
	var err error
	if out.Products, err = store.Read[models.Product](ctrl.Store, models.ProductsSet); err != nil {
		return out, err
	}
	if out.Enquiries, err = store.Read[models.Enquiry](ctrl.Store, models.EnquiriesSet); err != nil {
		return out, err
	}
	if out.Appointments, err = store.Read[models.Appointment](ctrl.Store, models.AppointmentsSet); err != nil {
		return out, err
	}
	if out.Gallery, err = store.Read[models.GalleryImage](ctrl.Store, models.GallerySet); err != nil {
		return out, err
	}
	if out.Content, err = store.Read[models.ContentItem](ctrl.Store, models.ContentSet); err != nil {
		return out, err
	}
	return out, nil
}

// GetDashboard godoc
// @Summary Admin dashboard counts
// @Tags Admin - Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.DashboardResponse
// @Router /admin/dashboard [get]
func (ctrl *DashboardController) GetDashboard(c *gin.Context) {
	all, err := ctrl.readAll()
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to read store", Error: err.Error()})
		return
	}

	resp := models.DashboardResponse{
		Products:      len(all.Products),
		Enquiries:     len(all.Enquiries),
		Appointments:  len(all.Appointments),
		GalleryImages: len(all.Gallery),
	}
	for _, p := range all.Products {
		if p.Status == models.ProductStatusActive {
			resp.ActiveProducts++
		}
	}
	for _, e := range all.Enquiries {
		if e.Status == models.EnquiryStatusNew {
			resp.NewEnquiries++
		}
	}
	for _, a := range all.Appointments {
		if a.Status == models.AppointmentStatusPending {
			resp.PendingAppointments++
		}
	}

	c.JSON(200, resp)
}

// ExportData godoc
// @Summary Export every record set as one backup document
// @Tags Admin - Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.ExportResponse
// @Router /admin/export [get]
func (ctrl *DashboardController) ExportData(c *gin.Context) {
	all, err := ctrl.readAll()
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to read store", Error: err.Error()})
		return
	}
	c.JSON(200, all)
}

// ImportData godoc
// @Summary Import a backup document
// @Description Replaces only the record sets present in the payload
// @Tags Admin - Dashboard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ImportRequest true "Backup document"
// @Success 200 {object} models.DeleteResponse
// @Router /admin/import [post]
func (ctrl *DashboardController) ImportData(c *gin.Context) {
	var req models.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid JSON data"})
		return
	}

	type setPayload struct {
		name string
		data any
	}
	sets := []setPayload{}
	if req.Products != nil {
		sets = append(sets, setPayload{models.ProductsSet, *req.Products})
	}
	if req.Enquiries != nil {
		sets = append(sets, setPayload{models.EnquiriesSet, *req.Enquiries})
	}
	if req.Appointments != nil {
		sets = append(sets, setPayload{models.AppointmentsSet, *req.Appointments})
	}
	if req.Gallery != nil {
		sets = append(sets, setPayload{models.GallerySet, *req.Gallery})
	}
	if req.Content != nil {
		sets = append(sets, setPayload{models.ContentSet, *req.Content})
	}
	if len(sets) == 0 {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "No record sets supplied"})
		return
	}

	for _, set := range sets {
		if err := ctrl.Store.Save(set.name, set.data); err != nil {
			c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to import " + set.name, Error: err.Error()})
			return
		}
	}

	invalidateProductCache()
	c.JSON(200, models.DeleteResponse{Success: true, Message: "Import complete"})
}
