package catalog

// Product mirrors a single product as returned by the catalog API.
// Products are read-only from wishlet's point of view: they are fetched on
// demand, rendered, and optionally copied into the wishlist, but never
// modified or written back.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// Rating aggregates the average review score and the number of reviews
// behind it. Rate is on a 0..5 scale.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}
