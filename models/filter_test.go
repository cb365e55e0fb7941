package models

import (
	"testing"
	"time"
)

func TestFilterProducts(t *testing.T) {
	products := []Product{
		{ID: "1", Name: "Royal Velvet Drapes", Category: "Curtains", Description: "Luxurious velvet drapes", Status: ProductStatusActive},
		{ID: "2", Name: "Milano Modular Sofa", Category: "Sofas", Description: "Contemporary modular sofa", Status: ProductStatusActive},
		{ID: "3", Name: "Roman Blinds", Category: "Curtains", Description: "Light control blinds", Status: ProductStatusHidden},
	}

	tests := []struct {
		name     string
		category string
		status   string
		search   string
		wantIDs  []string
	}{
		{"no filters", "", "", "", []string{"1", "2", "3"}},
		{"category exact", "Curtains", "", "", []string{"1", "3"}},
		{"category is case sensitive", "curtains", "", "", []string{}},
		{"status", "", ProductStatusHidden, "", []string{"3"}},
		{"search name case insensitive", "", "", "VELVET", []string{"1"}},
		{"search description", "", "", "light control", []string{"3"}},
		{"filters are ANDed", "Curtains", ProductStatusActive, "drapes", []string{"1"}},
		{"no match", "Curtains", "", "sofa", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProducts(products, tt.category, tt.status, tt.search)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d products, want %d", len(got), len(tt.wantIDs))
			}
			for i, p := range got {
				if p.ID != tt.wantIDs[i] {
					t.Errorf("position %d: got id %s, want %s", i, p.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestFilterEnquiriesNewestFirst(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	enquiries := []Enquiry{
		{ID: "old", Name: "Priya", Email: "priya@example.com", Status: EnquiryStatusNew, CreatedAt: base},
		{ID: "new", Name: "Rajesh", Email: "rajesh@example.com", Status: EnquiryStatusNew, CreatedAt: base.Add(time.Hour)},
	}

	got := FilterEnquiries(enquiries, "", "")
	if len(got) != 2 || got[0].ID != "new" || got[1].ID != "old" {
		t.Fatalf("expected newest first, got %+v", got)
	}

	got = FilterEnquiries(enquiries, "", "RAJESH")
	if len(got) != 1 || got[0].ID != "new" {
		t.Fatalf("search should match name case-insensitively, got %+v", got)
	}

	got = FilterEnquiries(enquiries, EnquiryStatusContacted, "")
	if len(got) != 0 {
		t.Fatalf("expected no contacted enquiries, got %+v", got)
	}
}

func TestFilterAppointmentsByDate(t *testing.T) {
	appointments := []Appointment{
		{ID: "1", Name: "Priya", Date: "2026-01-20", Status: AppointmentStatusPending},
		{ID: "2", Name: "Ananya", Date: "2026-01-18", Status: AppointmentStatusConfirmed},
	}

	got := FilterAppointments(appointments, "", "", "2026-01-18")
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected only the matching date, got %+v", got)
	}

	got = FilterAppointments(appointments, AppointmentStatusPending, "", "2026-01-18")
	if len(got) != 0 {
		t.Fatalf("date and status filters must be ANDed, got %+v", got)
	}
}

func TestFilterGalleryByCategory(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	images := []GalleryImage{
		{ID: "1", Category: "Curtains", CreatedAt: base},
		{ID: "2", Category: "Bedroom", CreatedAt: base.Add(time.Minute)},
		{ID: "3", Category: "Curtains", CreatedAt: base.Add(2 * time.Minute)},
	}

	got := FilterGallery(images, "Curtains")
	if len(got) != 2 || got[0].ID != "3" || got[1].ID != "1" {
		t.Fatalf("expected curtains newest first, got %+v", got)
	}
}
