package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"shop_api/internal/models"
)

type WishlistRepository struct {
	db *sql.DB
}

func NewWishlistRepository(db *sql.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

var _ Wishlist = (*WishlistRepository)(nil)

const (
	selectWishedProductsSQL = `
		SELECT p.id, p.name, p.description, p.price
		FROM wishlist_items w
		JOIN products p ON p.id = w.product_id
		WHERE w.user_id = ?
		ORDER BY w.id ASC
	`

	existsWishlistItemSQL = `SELECT EXISTS (SELECT 1 FROM wishlist_items WHERE user_id = ? AND product_id = ?)`
	insertWishlistItemSQL = `INSERT INTO wishlist_items (user_id, product_id, created_at) VALUES (?, ?, ?)`
	deleteWishlistItemSQL = `DELETE FROM wishlist_items WHERE user_id = ? AND product_id = ?`
)

// ProductsFor returns the products in a user's wishlist, oldest entry first.
func (r *WishlistRepository) ProductsFor(ctx context.Context, userID int) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, selectWishedProductsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select wishlist for user %d: %w", userID, err)
	}
	defer func() { _ = rows.Close() }()

	products := make([]models.Product, 0)
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price); err != nil {
			return nil, fmt.Errorf("scan wishlist row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wishlist: %w", err)
	}
	return products, nil
}

func (r *WishlistRepository) ExistsFor(ctx context.Context, userID, productID int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, existsWishlistItemSQL, userID, productID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check wishlist item (%d, %d): %w", userID, productID, err)
	}
	return exists, nil
}

// Insert creates the association. A duplicate pair is rejected by the UNIQUE
// constraint and reported as ErrDuplicate, so a racing second writer loses
// atomically even if it passed the ExistsFor pre-check.
func (r *WishlistRepository) Insert(ctx context.Context, userID, productID int) (*models.WishlistItem, error) {
	item := models.WishlistItem{
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now().UTC(),
	}
	res, err := r.db.ExecContext(ctx, insertWishlistItemSQL, userID, productID, item.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("insert wishlist item (%d, %d): %w", userID, productID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id for wishlist item (%d, %d): %w", userID, productID, err)
	}
	item.ID = int(lastID)
	return &item, nil
}

// Delete removes exactly one association; ErrNotFound when the pair is absent.
func (r *WishlistRepository) Delete(ctx context.Context, userID, productID int) error {
	res, err := r.db.ExecContext(ctx, deleteWishlistItemSQL, userID, productID)
	if err != nil {
		return fmt.Errorf("delete wishlist item (%d, %d): %w", userID, productID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for wishlist item (%d, %d): %w", userID, productID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
