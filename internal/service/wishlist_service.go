package service

import (
	"context"
	"errors"

	"shop_api/internal/models"
	"shop_api/internal/repository"
)

// WishlistService maintains the per-user product wishlist.
type WishlistService struct {
	wishlist repository.Wishlist
	products repository.Products
}

func NewWishlistService(wishlist repository.Wishlist, products repository.Products) *WishlistService {
	return &WishlistService{wishlist: wishlist, products: products}
}

// List returns all products the user has saved; an empty wishlist is a valid
// empty slice, not an error.
func (s *WishlistService) List(ctx context.Context, userID int) ([]models.Product, error) {
	return s.wishlist.ProductsFor(ctx, userID)
}

// Add associates a product with the user's wishlist. The product must exist in
// the catalog (validation error otherwise) and must not already be saved
// (conflict otherwise). The store's UNIQUE pair backstops concurrent adds.
func (s *WishlistService) Add(ctx context.Context, userID, productID int) (*models.WishlistItem, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		ve := &ValidationError{}
		ve.add("product_id", "The product you are trying to add to the wishlist does not exist.")
		return nil, ve
	}

	exists, err := s.wishlist.ExistsFor(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyInWishlist
	}

	item, err := s.wishlist.Insert(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyInWishlist
		}
		return nil, err
	}
	return item, nil
}

// Remove deletes the association. Membership is checked against the wishlist
// itself, not the catalog: removing a product that exists in the catalog but
// was never saved fails the same way as removing an unknown id.
func (s *WishlistService) Remove(ctx context.Context, userID, productID int) error {
	err := s.wishlist.Delete(ctx, userID, productID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotInWishlist
	}
	return err
}
