package catalog

import (
	"encoding/json"
	"testing"
)

func TestProduct_DecodesCatalogPayload(t *testing.T) {
	// Shape taken from a real catalog response.
	payload := `{
		"id": 1,
		"title": "Fjallraven - Foldsack No. 1 Backpack, Fits 15 Laptops",
		"price": 109.95,
		"description": "Your perfect pack for everyday use and walks in the forest.",
		"category": "men's clothing",
		"image": "https://fakestoreapi.com/img/81fPKd-2AYL._AC_SL1500_.jpg",
		"rating": {"rate": 3.9, "count": 120}
	}`

	var p Product
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if p.ID != 1 {
		t.Fatalf("ID = %d, want 1", p.ID)
	}
	if p.Price != 109.95 {
		t.Fatalf("Price = %v, want 109.95", p.Price)
	}
	if p.Category != "men's clothing" {
		t.Fatalf("Category = %q, want men's clothing", p.Category)
	}
	if p.Rating.Rate != 3.9 || p.Rating.Count != 120 {
		t.Fatalf("Rating = %#v, want rate=3.9 count=120", p.Rating)
	}
}

func TestProduct_DecodeToleratesMissingFields(t *testing.T) {
	var p Product
	if err := json.Unmarshal([]byte(`{"id": 5, "title": "Ring"}`), &p); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if p.ID != 5 || p.Title != "Ring" {
		t.Fatalf("product = %#v, want id=5 title=Ring", p)
	}
	if p.Rating.Rate != 0 || p.Rating.Count != 0 {
		t.Fatalf("Rating = %#v, want zero value", p.Rating)
	}
}
