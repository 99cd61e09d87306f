package models

// Product is a read-only catalog item. Creation happens via seeding; there are
// no mutation endpoints.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"` // non-negative, two decimal places
}
