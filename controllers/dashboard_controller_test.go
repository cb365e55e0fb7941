package controllers_test

import (
	"net/http"
	"testing"

	"furnish-shop/models"
)

func TestDashboardCounts(t *testing.T) {
	router := newTestServer(t)
	token := adminToken(t)

	createProduct(t, router, token, map[string]string{"name": "Sofa", "category": "Sofas", "price": "1", "description": "d"})
	hidden := createProduct(t, router, token, map[string]string{"name": "Rug", "category": "Rugs", "price": "2", "description": "d"})
	doJSON(t, router, "PATCH", "/admin/products/"+hidden.ID+"/visibility", "", token)

	doJSON(t, router, "POST", "/enquiries",
		`{"name":"A","email":"a@example.com","phone":"1","message":"hi"}`, "")
	contacted := decode[models.Enquiry](t, doJSON(t, router, "POST", "/enquiries",
		`{"name":"B","email":"b@example.com","phone":"2","message":"hi"}`, ""))
	doJSON(t, router, "PATCH", "/admin/enquiries/"+contacted.ID+"/status", `{"status":"contacted"}`, token)

	createAppointment(t, router, `{"name":"C","email":"c@example.com","phone":"3","date":"2026-09-10","time":"10:00","service":"Visit"}`)

	w := doJSON(t, router, "GET", "/admin/dashboard", "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard: got %d", w.Code)
	}
	counts := decode[models.DashboardResponse](t, w)
	if counts.Products != 2 || counts.ActiveProducts != 1 {
		t.Errorf("product counts: %+v", counts)
	}
	if counts.Enquiries != 2 || counts.NewEnquiries != 1 {
		t.Errorf("enquiry counts: %+v", counts)
	}
	if counts.Appointments != 1 || counts.PendingAppointments != 1 {
		t.Errorf("appointment counts: %+v", counts)
	}
}

func TestExportImport(t *testing.T) {
	router := newTestServer(t)
	token := adminToken(t)

	createProduct(t, router, token, map[string]string{"name": "Sofa", "category": "Sofas", "price": "1", "description": "d"})
	doJSON(t, router, "POST", "/enquiries",
		`{"name":"A","email":"a@example.com","phone":"1","message":"hi"}`, "")

	w := doJSON(t, router, "GET", "/admin/export", "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("export: got %d", w.Code)
	}
	backup := decode[models.ExportResponse](t, w)
	if len(backup.Products) != 1 || len(backup.Enquiries) != 1 {
		t.Fatalf("export missing records: %+v", backup)
	}
	if len(backup.Content) == 0 {
		t.Errorf("export missing seeded content")
	}

	// Import a payload that replaces products only; enquiries stay untouched.
	w = doJSON(t, router, "POST", "/admin/import", `{
		"products": [
			{"id":"100","name":"Imported Chair","category":"Chairs","price":"5","description":"d","status":"active"}
		]
	}`, token)
	if w.Code != http.StatusOK {
		t.Fatalf("import: got %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, "GET", "/products", "", "")
	products := decode[[]models.Product](t, w)
	if len(products) != 1 || products[0].Name != "Imported Chair" {
		t.Errorf("import did not replace products: %+v", products)
	}

	w = doJSON(t, router, "GET", "/admin/enquiries", "", token)
	if enquiries := decode[[]models.Enquiry](t, w); len(enquiries) != 1 {
		t.Errorf("import touched enquiries: %+v", enquiries)
	}

	w = doJSON(t, router, "POST", "/admin/import", `{}`, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty import: got %d, want 400", w.Code)
	}
}
