package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
	if u.Host != "fakestoreapi.com" {
		t.Fatalf("host = %q, want fakestoreapi.com", u.Host)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	u, err = parseBaseURL("store.example.com")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Host != "store.example.com" {
		t.Fatalf("url = %q, want https://store.example.com", u.String())
	}
}

func TestClient_FetchesProductsAndProduct(t *testing.T) {
	t.Parallel()

	var gotUserAgent string
	var gotAccept string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/products":
			_ = json.NewEncoder(w).Encode([]Product{
				{ID: 1, Title: "Shirt", Price: 9.99},
				{ID: 2, Title: "Backpack", Price: 109.95},
			})
		case "/products/2":
			_ = json.NewEncoder(w).Encode(Product{
				ID:       2,
				Title:    "Backpack",
				Price:    109.95,
				Category: "men's clothing",
				Rating:   Rating{Rate: 3.9, Count: 120},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	products, err := c.FetchProducts(ctx)
	if err != nil {
		t.Fatalf("FetchProducts returned error: %v", err)
	}
	if len(products) != 2 || products[0].ID != 1 || products[1].Title != "Backpack" {
		t.Fatalf("FetchProducts = %#v, want 2 products", products)
	}

	product, err := c.FetchProduct(ctx, 2)
	if err != nil {
		t.Fatalf("FetchProduct returned error: %v", err)
	}
	if product.ID != 2 || product.Rating.Count != 120 {
		t.Fatalf("FetchProduct = %#v, want id=2 count=120", product)
	}

	if gotUserAgent == "" || !strings.HasPrefix(gotUserAgent, "wishlet/") {
		t.Fatalf("User-Agent = %q, want wishlet/*", gotUserAgent)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
}

func TestClient_FetchProductNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/404":
			http.NotFound(w, r)
		case "/products/999":
			// The public catalog replies to unknown ids with an empty
			// 200 body rather than a 404.
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchProduct(context.Background(), 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("FetchProduct(404) error = %v, want ErrNotFound", err)
	}

	_, err = c.FetchProduct(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("FetchProduct(999) error = %v, want ErrNotFound", err)
	}
}

func TestClient_FetchProductRequiresID(t *testing.T) {
	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err = c.FetchProduct(context.Background(), 0); err == nil {
		t.Fatalf("FetchProduct(0) returned nil error, want error")
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			http.Error(w, "nope", http.StatusInternalServerError)
		case "/products/1":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchProducts(context.Background())
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchProducts error = %v, want status 500 error", err)
	}

	_, err = c.FetchProduct(context.Background(), 1)
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchProduct error = %v, want decode response error", err)
	}
}
