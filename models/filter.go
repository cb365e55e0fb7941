package models

import (
	"sort"
	"strings"
)

// The list filters live here so the API handlers and any in-process preview
// share one implementation. Category and status filters are exact matches,
// search is a case-insensitive substring match over the entity's designated
// text fields, and multiple filters are ANDed.

func FilterProducts(products []Product, category, status, search string) []Product {
	search = strings.ToLower(search)
	out := []Product{}
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func FilterEnquiries(enquiries []Enquiry, status, search string) []Enquiry {
	search = strings.ToLower(search)
	out := []Enquiry{}
	for _, e := range enquiries {
		if status != "" && e.Status != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Name), search) &&
			!strings.Contains(strings.ToLower(e.Email), search) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func FilterAppointments(appointments []Appointment, status, search, date string) []Appointment {
	search = strings.ToLower(search)
	out := []Appointment{}
	for _, a := range appointments {
		if status != "" && a.Status != status {
			continue
		}
		if date != "" && a.Date != date {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(a.Name), search) &&
			!strings.Contains(strings.ToLower(a.Email), search) {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func FilterGallery(images []GalleryImage, category string) []GalleryImage {
	out := []GalleryImage{}
	for _, img := range images {
		if category != "" && img.Category != category {
			continue
		}
		out = append(out, img)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
