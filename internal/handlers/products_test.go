package handlers

import (
	"net/http"
	"testing"

	"shop_api/internal/models"
	"shop_api/internal/service"
)

func pageOf(products []models.Product, total int) *models.ProductPage {
	first := "/v1/products?page=1"
	last := "/v1/products?page=1"
	return &models.ProductPage{
		Data:  products,
		Links: models.PageLinks{First: &first, Last: &last},
		Meta: models.PageMeta{
			CurrentPage: 1,
			LastPage:    1,
			Path:        "/v1/products",
			PerPage:     10,
			Total:       total,
		},
	}
}

func TestProductHandlers_List(t *testing.T) {
	t.Run("returns data, links and meta", func(t *testing.T) {
		products := []models.Product{
			{ID: 1, Name: "Shirt", Description: "Cotton shirt", Price: 29.99},
			{ID: 2, Name: "Pants", Description: "Chino pants", Price: 49.5},
			{ID: 3, Name: "Hat", Description: "Wool beanie", Price: 18.25},
		}
		catalog := &mockCatalog{page: pageOf(products, 3)}
		r := newTestRouter(&service.Service{Catalog: catalog})

		w := getJSON(r, "/v1/products", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		m := decodeBody(t, w)
		data := m["data"].([]any)
		if len(data) != 3 {
			t.Fatalf("expected 3 products, got %d", len(data))
		}
		meta := m["meta"].(map[string]any)
		if int(meta["total"].(float64)) != 3 {
			t.Fatalf("expected meta.total=3, got %v", meta["total"])
		}
		if _, ok := m["links"].(map[string]any)["first"]; !ok {
			t.Fatalf("expected links.first, got %v", m["links"])
		}
	})

	t.Run("page query is forwarded", func(t *testing.T) {
		catalog := &mockCatalog{page: pageOf([]models.Product{}, 0)}
		r := newTestRouter(&service.Service{Catalog: catalog})

		if w := getJSON(r, "/v1/products?page=2", nil); w.Code != http.StatusOK {
			t.Fatalf("status=%d", w.Code)
		}
		if catalog.lastPage != 2 {
			t.Fatalf("expected page 2 forwarded, got %d", catalog.lastPage)
		}
	})

	t.Run("garbage page falls back to 1", func(t *testing.T) {
		catalog := &mockCatalog{page: pageOf([]models.Product{}, 0)}
		r := newTestRouter(&service.Service{Catalog: catalog})

		if w := getJSON(r, "/v1/products?page=abc", nil); w.Code != http.StatusOK {
			t.Fatalf("status=%d", w.Code)
		}
		if catalog.lastPage != 1 {
			t.Fatalf("expected fallback to page 1, got %d", catalog.lastPage)
		}
	})
}

func TestProductHandlers_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		catalog := &mockCatalog{product: &models.Product{ID: 5, Name: "Test Product Alpha", Price: 1999}}
		r := newTestRouter(&service.Service{Catalog: catalog})

		w := getJSON(r, "/v1/products/5", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		data := decodeBody(t, w)["data"].(map[string]any)
		if data["name"] != "Test Product Alpha" || data["price"].(float64) != 1999 {
			t.Fatalf("unexpected product: %v", data)
		}
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		catalog := &mockCatalog{getErr: service.ErrProductNotFound}
		r := newTestRouter(&service.Service{Catalog: catalog})

		w := getJSON(r, "/v1/products/99999", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("non-numeric id is 404, not a fault", func(t *testing.T) {
		catalog := &mockCatalog{}
		r := newTestRouter(&service.Service{Catalog: catalog})

		w := getJSON(r, "/v1/products/abc-invalid", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if catalog.lastGetID != 0 {
			t.Fatalf("service should not be called for a malformed id")
		}
	})
}
