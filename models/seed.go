package models

import (
	"encoding/json"
	"time"

	"furnish-shop/config"
	"furnish-shop/store"
	"furnish-shop/utils"
)

// SeedDefaults initializes the singleton record sets on first run: the
// admin credential (hashed from config), the site settings, and the base
// editable content. Existing documents are left alone.
func SeedDefaults(s *store.Store) error {
	var user User
	ok, err := s.Load(UserSet, &user)
	if err != nil {
		return err
	}
	if !ok {
		hash, err := utils.HashPassword(config.AppConfig.AdminPassword)
		if err != nil {
			return err
		}
		user = User{
			Email:    config.AppConfig.AdminEmail,
			Password: hash,
			Name:     config.AppConfig.AdminName,
		}
		if err := s.Save(UserSet, user); err != nil {
			return err
		}
	}

	var settings SiteSettings
	ok, err = s.Load(SettingsSet, &settings)
	if err != nil {
		return err
	}
	if !ok {
		settings = SiteSettings{
			BusinessName:    "Sri Venkateswara Furnishings",
			Phone1:          "+91 98765 00000",
			Email:           config.AppConfig.AdminEmail,
			Address:         "Main Road, Hyderabad",
			WhatsappNumber:  "+91 98765 00000",
			BusinessHours:   "Mon-Sat 10:00-20:00",
			MetaTitle:       "Home Decor",
			MetaDescription: "Wholesale & Retailer of Home Furnishings",
			UpdatedAt:       time.Now().UTC(),
		}
		if err := s.Save(SettingsSet, settings); err != nil {
			return err
		}
	}

	content, err := store.Read[ContentItem](s, ContentSet)
	if err != nil {
		return err
	}
	if len(content) == 0 {
		now := time.Now().UTC()
		content = []ContentItem{
			{Key: "site_title", Value: json.RawMessage(`"HOME DECOR"`), UpdatedAt: now},
			{Key: "site_description", Value: json.RawMessage(`"Wholesale & Retailer of Home Furnishings"`), UpdatedAt: now},
		}
		if err := s.Save(ContentSet, content); err != nil {
			return err
		}
	}

	return nil
}
