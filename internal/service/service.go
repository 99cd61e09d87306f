package service

import (
	"context"

	"shop_api/internal/logger"
	"shop_api/internal/models"
	"shop_api/internal/repository"
)

// RegisterParams is the registration input before validation.
type RegisterParams struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

type Authorization interface {
	Register(ctx context.Context, p RegisterParams) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Validate(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, userID int) error
}

// Catalog exposes the read-only product listing and lookup.
type Catalog interface {
	List(ctx context.Context, page int) (*models.ProductPage, error)
	Get(ctx context.Context, productID int) (*models.Product, error)
}

type Wishlist interface {
	List(ctx context.Context, userID int) ([]models.Product, error)
	Add(ctx context.Context, userID, productID int) (*models.WishlistItem, error)
	Remove(ctx context.Context, userID, productID int) error
}

// Notifications receives fire-and-forget domain events. Run drains the queue
// until the context is cancelled; stop it via context cancellation in main()
// for graceful shutdown.
type Notifications interface {
	UserRegistered(u models.User)
	Run(ctx context.Context)
}

// Config carries the service-layer tunables read from configuration in main.
type Config struct {
	BcryptCost   int    // 0 means bcrypt.DefaultCost
	ProductsPath string // base path used in pagination links, e.g. "/v1/products"
	PageSize     int    // 0 means the default of 10
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Catalog
	Wishlist
	Notifications
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg Config, log *logger.Logger) *Service {
	notifier := NewRegistrationNotifier(log)
	return &Service{
		Authorization: NewAuthService(repos.Users, repos.Tokens, notifier, cfg.BcryptCost),
		Catalog:       NewCatalogService(repos.Products, cfg.ProductsPath, cfg.PageSize),
		Wishlist:      NewWishlistService(repos.Wishlist, repos.Products),
		Notifications: notifier,
	}
}
