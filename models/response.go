package models

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

type DashboardResponse struct {
	Products            int `json:"products"`
	ActiveProducts      int `json:"activeProducts"`
	Enquiries           int `json:"enquiries"`
	NewEnquiries        int `json:"newEnquiries"`
	Appointments        int `json:"appointments"`
	PendingAppointments int `json:"pendingAppointments"`
	GalleryImages       int `json:"galleryImages"`
}

// ExportResponse mirrors ImportRequest without the pointer indirection.
type ExportResponse struct {
	Products     []Product      `json:"products"`
	Enquiries    []Enquiry      `json:"enquiries"`
	Appointments []Appointment  `json:"appointments"`
	Gallery      []GalleryImage `json:"gallery"`
	Content      []ContentItem  `json:"content"`
}
