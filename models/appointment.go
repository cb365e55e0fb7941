package models

import "time"

const AppointmentsSet = "appointments"

const (
	AppointmentStatusPending     = "pending"
	AppointmentStatusConfirmed   = "confirmed"
	AppointmentStatusCompleted   = "completed"
	AppointmentStatusCancelled   = "cancelled"
	AppointmentStatusRescheduled = "rescheduled"
)

type Appointment struct {
	ID        string    `json:"id"`
	EnquiryID string    `json:"enquiryId,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Service   string    `json:"service"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
