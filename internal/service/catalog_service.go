package service

import (
	"context"
	"fmt"

	"shop_api/internal/models"
	"shop_api/internal/repository"
)

const (
	defaultPageSize     = 10
	defaultProductsPath = "/v1/products"
)

// CatalogService serves the read-only, paginated product catalog.
type CatalogService struct {
	products repository.Products
	path     string
	pageSize int
}

func NewCatalogService(products repository.Products, path string, pageSize int) *CatalogService {
	if path == "" {
		path = defaultProductsPath
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &CatalogService{products: products, path: path, pageSize: pageSize}
}

// List returns one catalog page in id order. Pages are 1-based; non-positive
// pages read as the first, pages past the end come back empty at the
// requested page number, and an empty catalog is a valid zero-total page.
func (s *CatalogService) List(ctx context.Context, page int) (*models.ProductPage, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}

	lastPage := (total + s.pageSize - 1) / s.pageSize
	if lastPage < 1 {
		lastPage = 1
	}

	items, err := s.products.List(ctx, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return nil, err
	}

	return &models.ProductPage{
		Data:  items,
		Links: s.pageLinks(page, lastPage),
		Meta:  s.pageMeta(page, lastPage, total, len(items)),
	}, nil
}

// Get fetches a single product; unknown ids yield ErrProductNotFound.
func (s *CatalogService) Get(ctx context.Context, productID int) (*models.Product, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *CatalogService) pageURL(page int) string {
	return fmt.Sprintf("%s?page=%d", s.path, page)
}

func (s *CatalogService) pageLinks(page, lastPage int) models.PageLinks {
	first := s.pageURL(1)
	last := s.pageURL(lastPage)
	links := models.PageLinks{First: &first, Last: &last}
	if page > 1 {
		prev := s.pageURL(page - 1)
		links.Prev = &prev
	}
	if page < lastPage {
		next := s.pageURL(page + 1)
		links.Next = &next
	}
	return links
}

func (s *CatalogService) pageMeta(page, lastPage, total, count int) models.PageMeta {
	meta := models.PageMeta{
		CurrentPage: page,
		LastPage:    lastPage,
		Path:        s.path,
		PerPage:     s.pageSize,
		Total:       total,
	}
	if count > 0 {
		from := (page-1)*s.pageSize + 1
		to := from + count - 1
		meta.From = &from
		meta.To = &to
	}
	return meta
}
