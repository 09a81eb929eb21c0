package services

import (
	"strings"

	"github.com/davidparhut/iBoss/internal/models"
	"github.com/davidparhut/iBoss/internal/repositories"
)

// Filter values shared by the catalog filters.
const (
	FilterAll        = "all"
	FilterInStock    = "inStock"
	FilterOutOfStock = "outOfStock"
)

// ProductFilter narrows the catalog listing. Zero or "all" values
// leave their dimension unfiltered.
type ProductFilter struct {
	Model        string `json:"model"`
	Storage      string `json:"storage"`
	Availability string `json:"availability"`
}

// ProductService handles business logic related to the catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products in display order.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// SearchProducts returns products whose name contains the term,
// case-insensitively.
func (s *ProductService) SearchProducts(term string) ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(term)
	matched := make([]models.Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// FilterProducts narrows the catalog by model-name substring, storage
// size and stock availability.
func (s *ProductService) FilterProducts(filter ProductFilter) ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	matched := make([]models.Product, 0)
	for _, p := range products {
		if filter.Model != "" && filter.Model != FilterAll &&
			!strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Model)) {
			continue
		}
		if filter.Storage != "" && filter.Storage != FilterAll && !p.HasStorage(filter.Storage) {
			continue
		}
		if filter.Availability == FilterInStock && !p.InStock {
			continue
		}
		if filter.Availability == FilterOutOfStock && p.InStock {
			continue
		}
		matched = append(matched, p)
	}
	return matched, nil
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
