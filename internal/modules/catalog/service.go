package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lesatelierszo/zopos-backend/internal/cache"
)

// Service defines catalog business logic.
type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, activeOnly bool) ([]*Product, error)
	UpdateProduct(ctx context.Context, id string, req CreateProductRequest) (*Product, error)
	UpdateQuantities(ctx context.Context, id string, quantities map[string]int) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// CreateProductRequest holds the data for creating or updating a product.
type CreateProductRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Price       float64        `json:"price"`
	ImageURL    string         `json:"image_url"`
	Quantities  map[string]int `json:"quantities"`
}

const listCacheKey = "catalog:products"

type service struct {
	repo  Repository
	cache *cache.Cache
}

func NewService(repo Repository, c *cache.Cache) Service {
	return &service{repo: repo, cache: c}
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	quantities := req.Quantities
	if quantities == nil {
		quantities = DefaultQuantities()
	}
	clampQuantities(quantities)

	p := &Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsActive:    true,
		Quantities:  quantities,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.cache.Del(ctx, listCacheKey)
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

// ListProducts serves the full catalog, caching the unfiltered list briefly.
// The cache is best-effort: a cold or absent Redis simply means a DB read.
func (s *service) ListProducts(ctx context.Context, activeOnly bool) ([]*Product, error) {
	if !activeOnly {
		var cached []*Product
		if s.cache.Get(ctx, listCacheKey, &cached) {
			return cached, nil
		}
	}
	products, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	if !activeOnly {
		s.cache.Set(ctx, listCacheKey, products, 30*time.Second)
	}
	return products, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, req CreateProductRequest) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Category = req.Category
	p.Price = req.Price
	p.ImageURL = req.ImageURL
	if req.Quantities != nil {
		clampQuantities(req.Quantities)
		p.Quantities = req.Quantities
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.cache.Del(ctx, listCacheKey)
	return p, nil
}

// UpdateQuantities is the manual stock-adjustment flow: the whole map is
// replaced with the submitted one.
func (s *service) UpdateQuantities(ctx context.Context, id string, quantities map[string]int) (*Product, error) {
	if quantities == nil {
		return nil, fmt.Errorf("quantities are required")
	}
	clampQuantities(quantities)
	if err := s.repo.UpdateQuantities(ctx, id, quantities); err != nil {
		return nil, err
	}
	s.cache.Del(ctx, listCacheKey)
	return s.repo.GetByID(ctx, id)
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Del(ctx, listCacheKey)
	return nil
}

// clampQuantities floors every size count at zero.
func clampQuantities(quantities map[string]int) {
	for size, qty := range quantities {
		if qty < 0 {
			quantities[size] = 0
		}
	}
}
