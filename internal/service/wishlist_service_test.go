package service

import (
	"context"
	"errors"
	"testing"

	"shop_api/internal/models"
	"shop_api/internal/repository"
)

func productByID(known ...int) func(id int) (*models.Product, error) {
	return func(id int) (*models.Product, error) {
		for _, k := range known {
			if id == k {
				return &models.Product{ID: id, Name: "Known", Price: 9.99}, nil
			}
		}
		return nil, nil
	}
}

func TestWishlistService_Add_Success(t *testing.T) {
	wishlist := &mockWishlistRepo{
		ExistsForFn: func(userID, productID int) (bool, error) { return false, nil },
		InsertFn: func(userID, productID int) (*models.WishlistItem, error) {
			return &models.WishlistItem{ID: 1, UserID: userID, ProductID: productID}, nil
		},
	}
	products := &mockProducts{GetByIDFn: productByID(5)}
	svc := NewWishlistService(wishlist, products)

	item, err := svc.Add(context.Background(), 7, 5)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if item.UserID != 7 || item.ProductID != 5 {
		t.Fatalf("unexpected item: %+v", item)
	}
	if len(wishlist.insertCalls) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(wishlist.insertCalls))
	}
}

func TestWishlistService_Add_UnknownProductIsValidationError(t *testing.T) {
	wishlist := &mockWishlistRepo{
		ExistsForFn: func(userID, productID int) (bool, error) {
			t.Fatal("ExistsFor should not be called for an unknown product")
			return false, nil
		},
	}
	svc := NewWishlistService(wishlist, &mockProducts{GetByIDFn: productByID()})

	_, err := svc.Add(context.Background(), 7, 9999)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields["product_id"]) == 0 {
		t.Fatalf("expected product_id field error, got %+v", ve.Fields)
	}
}

func TestWishlistService_Add_DuplicateIsConflict(t *testing.T) {
	wishlist := &mockWishlistRepo{
		ExistsForFn: func(userID, productID int) (bool, error) { return true, nil },
		InsertFn: func(userID, productID int) (*models.WishlistItem, error) {
			t.Fatal("Insert should not be called when the pair already exists")
			return nil, nil
		},
	}
	svc := NewWishlistService(wishlist, &mockProducts{GetByIDFn: productByID(5)})

	_, err := svc.Add(context.Background(), 7, 5)
	if !errors.Is(err, ErrAlreadyInWishlist) {
		t.Fatalf("expected ErrAlreadyInWishlist, got %v", err)
	}
}

func TestWishlistService_Add_RaceLosesAtStore(t *testing.T) {
	// Pre-check passes but a concurrent add wins; the constraint violation is
	// reported exactly like the pre-check catch.
	wishlist := &mockWishlistRepo{
		ExistsForFn: func(userID, productID int) (bool, error) { return false, nil },
		InsertFn: func(userID, productID int) (*models.WishlistItem, error) {
			return nil, repository.ErrDuplicate
		},
	}
	svc := NewWishlistService(wishlist, &mockProducts{GetByIDFn: productByID(5)})

	_, err := svc.Add(context.Background(), 7, 5)
	if !errors.Is(err, ErrAlreadyInWishlist) {
		t.Fatalf("expected ErrAlreadyInWishlist, got %v", err)
	}
}

func TestWishlistService_Remove(t *testing.T) {
	t.Run("present pair is removed", func(t *testing.T) {
		wishlist := &mockWishlistRepo{
			DeleteFn: func(userID, productID int) error { return nil },
		}
		svc := NewWishlistService(wishlist, &mockProducts{})

		if err := svc.Remove(context.Background(), 7, 5); err != nil {
			t.Fatalf("Remove returned error: %v", err)
		}
		if len(wishlist.deleteCalls) != 1 {
			t.Fatalf("expected 1 delete, got %d", len(wishlist.deleteCalls))
		}
	})

	t.Run("absent pair is not found, regardless of catalog", func(t *testing.T) {
		// The product may well exist in the catalog; membership is what counts.
		wishlist := &mockWishlistRepo{
			DeleteFn: func(userID, productID int) error { return repository.ErrNotFound },
		}
		svc := NewWishlistService(wishlist, &mockProducts{})

		err := svc.Remove(context.Background(), 7, 5)
		if !errors.Is(err, ErrNotInWishlist) {
			t.Fatalf("expected ErrNotInWishlist, got %v", err)
		}
	})
}

func TestWishlistService_List(t *testing.T) {
	t.Run("returns saved products", func(t *testing.T) {
		wishlist := &mockWishlistRepo{
			ProductsForFn: func(userID int) ([]models.Product, error) {
				return []models.Product{{ID: 1}, {ID: 3}}, nil
			},
		}
		svc := NewWishlistService(wishlist, &mockProducts{})

		products, err := svc.List(context.Background(), 7)
		if err != nil {
			t.Fatalf("List returned error: %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("expected 2 products, got %d", len(products))
		}
	})

	t.Run("empty wishlist is empty slice", func(t *testing.T) {
		wishlist := &mockWishlistRepo{
			ProductsForFn: func(userID int) ([]models.Product, error) {
				return []models.Product{}, nil
			},
		}
		svc := NewWishlistService(wishlist, &mockProducts{})

		products, err := svc.List(context.Background(), 7)
		if err != nil {
			t.Fatalf("List returned error: %v", err)
		}
		if products == nil || len(products) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", products)
		}
	})
}
