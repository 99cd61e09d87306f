package service

import (
	"context"

	"shop_api/internal/models"
)

// Lightweight in-test mocks for the repository interfaces, configured per test
// through function fields.

type mockUsers struct {
	CreateFn     func(name, email, hash string) (int, error)
	GetByEmailFn func(email string) (*models.User, error)
	GetByIDFn    func(id int) (*models.User, error)

	createCalls []struct {
		name  string
		email string
		hash  string
	}
	getByEmailCalls []string
}

func (m *mockUsers) Create(_ context.Context, name, email, hash string) (int, error) {
	m.createCalls = append(m.createCalls, struct {
		name  string
		email string
		hash  string
	}{name: name, email: email, hash: hash})
	return m.CreateFn(name, email, hash)
}

func (m *mockUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.getByEmailCalls = append(m.getByEmailCalls, email)
	return m.GetByEmailFn(email)
}

func (m *mockUsers) GetByID(_ context.Context, id int) (*models.User, error) {
	return m.GetByIDFn(id)
}

// mockTokens keeps inserted tokens in memory so login/validate/logout
// round-trips work without a database.
type mockTokens struct {
	insertErr error
	byHash    map[string]*models.User
	owners    map[string]int // token hash → user id

	insertCalls []models.AuthToken
	deleteCalls []int
}

func newMockTokens() *mockTokens {
	return &mockTokens{
		byHash: make(map[string]*models.User),
		owners: make(map[string]int),
	}
}

// bind associates future inserts for this user with the given profile.
func (m *mockTokens) Insert(_ context.Context, t models.AuthToken) error {
	m.insertCalls = append(m.insertCalls, t)
	if m.insertErr != nil {
		return m.insertErr
	}
	m.owners[t.TokenHash] = t.UserID
	return nil
}

func (m *mockTokens) GetUserByTokenHash(_ context.Context, hash string) (*models.User, error) {
	u, ok := m.byHash[hash]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (m *mockTokens) DeleteByUser(_ context.Context, userID int) error {
	m.deleteCalls = append(m.deleteCalls, userID)
	for hash, owner := range m.owners {
		if owner == userID {
			delete(m.owners, hash)
			delete(m.byHash, hash)
		}
	}
	return nil
}

// resolve marks every token inserted so far for the user as resolving to u.
func (m *mockTokens) resolve(u *models.User) {
	for hash, owner := range m.owners {
		if owner == u.ID {
			m.byHash[hash] = u
		}
	}
}

type mockProducts struct {
	ListFn    func(limit, offset int) ([]models.Product, error)
	CountFn   func() (int, error)
	GetByIDFn func(id int) (*models.Product, error)
	CreateFn  func(p models.Product) (int, error)

	listCalls []struct{ limit, offset int }
}

func (m *mockProducts) List(_ context.Context, limit, offset int) ([]models.Product, error) {
	m.listCalls = append(m.listCalls, struct{ limit, offset int }{limit, offset})
	return m.ListFn(limit, offset)
}

func (m *mockProducts) Count(_ context.Context) (int, error) {
	return m.CountFn()
}

func (m *mockProducts) GetByID(_ context.Context, id int) (*models.Product, error) {
	return m.GetByIDFn(id)
}

func (m *mockProducts) Create(_ context.Context, p models.Product) (int, error) {
	return m.CreateFn(p)
}

type mockWishlistRepo struct {
	ProductsForFn func(userID int) ([]models.Product, error)
	ExistsForFn   func(userID, productID int) (bool, error)
	InsertFn      func(userID, productID int) (*models.WishlistItem, error)
	DeleteFn      func(userID, productID int) error

	insertCalls []struct{ userID, productID int }
	deleteCalls []struct{ userID, productID int }
}

func (m *mockWishlistRepo) ProductsFor(_ context.Context, userID int) ([]models.Product, error) {
	return m.ProductsForFn(userID)
}

func (m *mockWishlistRepo) ExistsFor(_ context.Context, userID, productID int) (bool, error) {
	return m.ExistsForFn(userID, productID)
}

func (m *mockWishlistRepo) Insert(_ context.Context, userID, productID int) (*models.WishlistItem, error) {
	m.insertCalls = append(m.insertCalls, struct{ userID, productID int }{userID, productID})
	return m.InsertFn(userID, productID)
}

func (m *mockWishlistRepo) Delete(_ context.Context, userID, productID int) error {
	m.deleteCalls = append(m.deleteCalls, struct{ userID, productID int }{userID, productID})
	return m.DeleteFn(userID, productID)
}

// mockNotifier records registration events.
type mockNotifier struct {
	registered []models.User
}

func (m *mockNotifier) UserRegistered(u models.User) {
	m.registered = append(m.registered, u)
}

func (m *mockNotifier) Run(_ context.Context) {}
