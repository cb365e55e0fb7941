package models

import "encoding/json"

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type CreateEnquiryRequest struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Phone   string `json:"phone" form:"phone" binding:"required"`
	Message string `json:"message" form:"message" binding:"required"`
}

type EnquiryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new contacted resolved"`
	Notes  string `json:"notes"`
}

type CreateAppointmentRequest struct {
	EnquiryID string `json:"enquiryId" form:"enquiryId"`
	Name      string `json:"name" form:"name" binding:"required"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Phone     string `json:"phone" form:"phone" binding:"required"`
	Date      string `json:"date" form:"date" binding:"required"`
	Time      string `json:"time" form:"time" binding:"required"`
	Service   string `json:"service" form:"service" binding:"required"`
	Message   string `json:"message" form:"message"`
}

type AppointmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled rescheduled"`
	Notes  string `json:"notes"`
}

type ContentValueRequest struct {
	Value json.RawMessage `json:"value" binding:"required"`
}

// ImportRequest carries a backup document; only the sets present in the
// payload are replaced.
type ImportRequest struct {
	Products     *[]Product      `json:"products"`
	Enquiries    *[]Enquiry      `json:"enquiries"`
	Appointments *[]Appointment  `json:"appointments"`
	Gallery      *[]GalleryImage `json:"gallery"`
	Content      *[]ContentItem  `json:"content"`
}
