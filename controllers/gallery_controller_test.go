package controllers_test

import (
	"bytes"
	"net/http"
	"strings"
	"testing"
	"time"

	"furnish-shop/models"
)

func TestGalleryUploadAndServe(t *testing.T) {
	router := newTestServer(t)
	token := adminToken(t)

	imageContent := bytes.Repeat([]byte{0xAB}, 2<<20)
	body, contentType := multipartBody(t, map[string]string{
		"title":       "Showroom Corner",
		"category":    "Interiors",
		"description": "Main floor display",
	}, "image", "corner.png", imageContent)
	w := doRequest(t, router, "POST", "/admin/gallery", body, contentType, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("upload: got %d, body %s", w.Code, w.Body.String())
	}
	created := decode[models.GalleryImage](t, w)
	if !strings.HasPrefix(created.Image, "/uploads/gallery/") {
		t.Fatalf("unexpected image path: %s", created.Image)
	}

	w = doRequest(t, router, "GET", created.Image, nil, "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("serve: got %d", w.Code)
	}
	if !bytes.Equal(w.Body.Bytes(), imageContent) {
		t.Errorf("served bytes differ from uploaded bytes (%d vs %d)", w.Body.Len(), len(imageContent))
	}

	w = doJSON(t, router, "DELETE", "/admin/gallery/"+created.ID, "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: got %d", w.Code)
	}
	w = doRequest(t, router, "GET", created.Image, nil, "", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("file still served after delete: %d", w.Code)
	}
	w = doJSON(t, router, "DELETE", "/admin/gallery/"+created.ID, "", token)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete: got %d, want 404", w.Code)
	}
}

func TestGalleryUploadRejections(t *testing.T) {
	router := newTestServer(t)
	token := adminToken(t)

	cases := []struct {
		name     string
		fields   map[string]string
		fileName string
		content  []byte
		wantMsg  string
	}{
		{
			name:    "missing title and category",
			fields:  map[string]string{"description": "no labels"},
			wantMsg: "Title and category",
		},
		{
			name:    "missing file",
			fields:  map[string]string{"title": "T", "category": "C"},
			wantMsg: "Image file is required",
		},
		{
			name:     "oversized file",
			fields:   map[string]string{"title": "T", "category": "C"},
			fileName: "huge.png",
			content:  bytes.Repeat([]byte{0x01}, 15<<20),
			wantMsg:  "exceeds",
		},
		{
			name:     "disallowed extension",
			fields:   map[string]string{"title": "T", "category": "C"},
			fileName: "notes.txt",
			content:  []byte("plain text"),
			wantMsg:  "file type",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fileField := ""
			if tc.fileName != "" {
				fileField = "image"
			}
			body, contentType := multipartBody(t, tc.fields, fileField, tc.fileName, tc.content)
			w := doRequest(t, router, "POST", "/admin/gallery", body, contentType, token)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("got %d, want 400 (body %s)", w.Code, w.Body.String())
			}
			resp := decode[models.ErrorResponse](t, w)
			if !strings.Contains(strings.ToLower(resp.Message), strings.ToLower(tc.wantMsg)) {
				t.Errorf("message %q does not mention %q", resp.Message, tc.wantMsg)
			}
		})
	}

	// None of the rejected uploads may have produced a record.
	w := doJSON(t, router, "GET", "/gallery", "", "")
	if list := decode[[]models.GalleryImage](t, w); len(list) != 0 {
		t.Errorf("rejected uploads left %d records behind", len(list))
	}
}

func TestGalleryCategoryFilterAndOrder(t *testing.T) {
	router := newTestServer(t)
	token := adminToken(t)

	upload := func(title, category string) {
		t.Helper()
		body, contentType := multipartBody(t, map[string]string{"title": title, "category": category}, "image", "a.jpg", []byte{0xFF, 0xD8})
		w := doRequest(t, router, "POST", "/admin/gallery", body, contentType, token)
		if w.Code != http.StatusCreated {
			t.Fatalf("upload %s: got %d", title, w.Code)
		}
	}
	upload("First", "Interiors")
	time.Sleep(2 * time.Millisecond)
	upload("Second", "Fabrics")
	time.Sleep(2 * time.Millisecond)
	upload("Third", "Interiors")

	w := doJSON(t, router, "GET", "/gallery?category=Interiors", "", "")
	list := decode[[]models.GalleryImage](t, w)
	if len(list) != 2 {
		t.Fatalf("category filter: got %d, want 2", len(list))
	}
	if list[0].Title != "Third" || list[1].Title != "First" {
		t.Errorf("expected newest first, got %s then %s", list[0].Title, list[1].Title)
	}

	w = doJSON(t, router, "GET", "/gallery?category=all", "", "")
	if all := decode[[]models.GalleryImage](t, w); len(all) != 3 {
		t.Errorf("category=all: got %d, want 3", len(all))
	}
}
