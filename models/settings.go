package models

import "time"

const SettingsSet = "settings"

// SiteSettings is the single business-info record rendered on every page.
type SiteSettings struct {
	BusinessName    string    `json:"businessName"`
	Phone1          string    `json:"phone1"`
	Phone2          string    `json:"phone2,omitempty"`
	Email           string    `json:"email"`
	Address         string    `json:"address"`
	WhatsappNumber  string    `json:"whatsappNumber"`
	BusinessHours   string    `json:"businessHours"`
	MetaTitle       string    `json:"metaTitle"`
	MetaDescription string    `json:"metaDescription"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
