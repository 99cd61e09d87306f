package models

import "time"

// WishlistItem links one user to one product they saved. The pair
// (user_id, product_id) is unique at the storage layer.
type WishlistItem struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	ProductID int       `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}
