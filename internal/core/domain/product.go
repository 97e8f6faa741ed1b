package domain

// Product is a catalog entry. Readable by anyone; writable only by admins.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}
