package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shop_api/internal/models"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

var _ Products = (*ProductRepository)(nil)

const (
	// id ASC keeps pagination reproducible across calls.
	selectProductsPageSQL = `SELECT id, name, description, price FROM products ORDER BY id ASC LIMIT ? OFFSET ?`
	countProductsSQL      = `SELECT COUNT(*) FROM products`
	selectProductByIDSQL  = `SELECT id, name, description, price FROM products WHERE id = ?`
	insertProductSQL      = `INSERT INTO products (name, description, price) VALUES (?, ?, ?)`
)

// List returns one page of products in id order.
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, selectProductsPageSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select products page: %w", err)
	}
	defer func() { _ = rows.Close() }()

	products := make([]models.Product, 0, limit)
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countProductsSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// GetByID fetches a product. Returns (nil, nil) if not found.
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	var p models.Product
	err := r.db.QueryRowContext(ctx, selectProductByIDSQL, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select product %d: %w", id, err)
	}
	return &p, nil
}

// Create inserts a catalog item; used by seeding and tests only.
func (r *ProductRepository) Create(ctx context.Context, p models.Product) (int, error) {
	res, err := r.db.ExecContext(ctx, insertProductSQL, p.Name, p.Description, p.Price)
	if err != nil {
		return 0, fmt.Errorf("insert product %q: %w", p.Name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for product %q: %w", p.Name, err)
	}
	return int(lastID), nil
}
