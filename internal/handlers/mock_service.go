package handlers

import (
	"context"
	"net/http"

	"shop_api/internal/models"
	"shop_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser *models.User
	registerErr  error
	loginUser    *models.User
	loginToken   string
	loginErr     error
	validateUser *models.User
	validateErr  error
	logoutErr    error

	// optional overrides for stateful scenarios
	ValidateFn func(token string) (*models.User, error)
	LogoutFn   func(userID int) error

	lastRegister  service.RegisterParams
	lastLoginMail string
	logoutCalls   []int
}

func (m *mockAuth) Register(_ context.Context, p service.RegisterParams) (*models.User, error) {
	m.lastRegister = p
	return m.registerUser, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, email, password string) (*models.User, string, error) {
	m.lastLoginMail = email
	return m.loginUser, m.loginToken, m.loginErr
}

func (m *mockAuth) Validate(_ context.Context, token string) (*models.User, error) {
	if m.ValidateFn != nil {
		return m.ValidateFn(token)
	}
	return m.validateUser, m.validateErr
}

func (m *mockAuth) Logout(_ context.Context, userID int) error {
	m.logoutCalls = append(m.logoutCalls, userID)
	if m.LogoutFn != nil {
		return m.LogoutFn(userID)
	}
	return m.logoutErr
}

type mockCatalog struct {
	page    *models.ProductPage
	pageErr error
	product *models.Product
	getErr  error

	lastPage  int
	lastGetID int
}

func (m *mockCatalog) List(_ context.Context, page int) (*models.ProductPage, error) {
	m.lastPage = page
	return m.page, m.pageErr
}

func (m *mockCatalog) Get(_ context.Context, productID int) (*models.Product, error) {
	m.lastGetID = productID
	return m.product, m.getErr
}

type mockWishlist struct {
	products  []models.Product
	listErr   error
	addItem   *models.WishlistItem
	addErr    error
	removeErr error

	// optional overrides for stateful scenarios
	AddFn    func(userID, productID int) (*models.WishlistItem, error)
	RemoveFn func(userID, productID int) error

	addCalls    []int
	removeCalls []int
}

func (m *mockWishlist) List(_ context.Context, userID int) ([]models.Product, error) {
	return m.products, m.listErr
}

func (m *mockWishlist) Add(_ context.Context, userID, productID int) (*models.WishlistItem, error) {
	m.addCalls = append(m.addCalls, productID)
	if m.AddFn != nil {
		return m.AddFn(userID, productID)
	}
	return m.addItem, m.addErr
}

func (m *mockWishlist) Remove(_ context.Context, userID, productID int) error {
	m.removeCalls = append(m.removeCalls, productID)
	if m.RemoveFn != nil {
		return m.RemoveFn(userID, productID)
	}
	return m.removeErr
}

type mockNotifications struct{}

func (mockNotifications) UserRegistered(models.User) {}
func (mockNotifications) Run(context.Context)        {}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
