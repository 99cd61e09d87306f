package repository

import (
	"context"
	"database/sql"
	"errors"

	"shop_api/internal/models"
	"shop_api/internal/repository/db"
)

var (
	// ErrDuplicate is returned when an insert violates a UNIQUE constraint
	// (email on users, (user_id, product_id) on wishlist_items).
	ErrDuplicate = errors.New("duplicate record")
	// ErrNotFound is returned by deletes that matched no row.
	ErrNotFound = errors.New("record not found")
)

type Users interface {
	Create(ctx context.Context, name, email, passwordHash string) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

type Tokens interface {
	Insert(ctx context.Context, t models.AuthToken) error
	GetUserByTokenHash(ctx context.Context, tokenHash string) (*models.User, error)
	DeleteByUser(ctx context.Context, userID int) error
}

type Products interface {
	List(ctx context.Context, limit, offset int) ([]models.Product, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	Create(ctx context.Context, p models.Product) (int, error)
}

type Wishlist interface {
	ProductsFor(ctx context.Context, userID int) ([]models.Product, error)
	ExistsFor(ctx context.Context, userID, productID int) (bool, error)
	Insert(ctx context.Context, userID, productID int) (*models.WishlistItem, error)
	Delete(ctx context.Context, userID, productID int) error
}

type Repository struct {
	Users    Users
	Tokens   Tokens
	Products Products
	Wishlist Wishlist
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(sqlDB),
		Tokens:   NewTokenRepository(sqlDB),
		Products: NewProductRepository(sqlDB),
		Wishlist: NewWishlistRepository(sqlDB),
	}
}

// InitDB opens the SQLite database and bootstraps the schema.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
