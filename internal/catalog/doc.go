// Package catalog provides an HTTP client for the remote product catalog.
//
// # Overview
//
// Wishlet does not implement a catalog of its own; it renders whatever a
// public REST catalog service returns. This package defines the client for
// that collaborator: HTTP communication, JSON decoding, and the typed
// Product/Rating shapes the rest of the application works with.
//
// # Client Usage
//
// Create a client using the API base URL from configuration:
//
//	client, err := catalog.NewClient("https://fakestoreapi.com")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	// Fetch the product listing
//	products, err := client.FetchProducts(ctx)
//
//	// Fetch a single product
//	product, err := client.FetchProduct(ctx, 7)
//	if errors.Is(err, catalog.ErrNotFound) {
//		// unknown id
//	}
//
// # API Endpoints
//
// The client supports two read-only endpoints:
//
//   - GET /products       Full product listing
//   - GET /products/{id}  Single product detail
//
// # Error Handling
//
// Transport failures and non-2xx statuses are returned as wrapped errors.
// An unknown product id maps to ErrNotFound, whether the service signals it
// with a 404 or with an empty 200 body (the public catalog does the
// latter). Successful payloads are trusted as-is; there is no schema
// validation beyond JSON decoding.
//
// # Design Notes
//
// The Fetcher interface exists so the UI can be exercised against a fake
// catalog in tests. Responses are never cached: every view fetch goes back
// to the service.
package catalog
