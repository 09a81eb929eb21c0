package services_test

import (
	"testing"

	"github.com/davidparhut/iBoss/internal/models"
	"github.com/davidparhut/iBoss/internal/repositories"
	"github.com/davidparhut/iBoss/internal/services"

	"github.com/stretchr/testify/assert"
)

func seededProductService(t *testing.T) (*services.ProductService, *repositories.MockProductRepository) {
	t.Helper()

	repo := repositories.NewMockProductRepository()
	catalog := []models.Product{
		{
			ID:   "p1",
			Name: "iPhone 16 Pro Max",
			StorageOptions: []models.StorageOption{
				{Size: "256GB", Price: 54999},
				{Size: "512GB", Price: 62999},
			},
			Price:        54999,
			InStock:      true,
			DisplayOrder: 1,
		},
		{
			ID:           "p2",
			Name:         "iPhone 15 Pro Max",
			Storage:      "256GB",
			Price:        49999,
			InStock:      true,
			DisplayOrder: 2,
		},
		{
			ID:           "p3",
			Name:         "iPhone 15",
			Storage:      "128GB",
			Price:        35999,
			InStock:      false,
			DisplayOrder: 3,
		},
	}
	for i := range catalog {
		assert.NoError(t, repo.Create(&catalog[i]))
	}
	return services.NewProductService(repo), repo
}

func TestProductService_GetAllProductsInDisplayOrder(t *testing.T) {
	service, _ := seededProductService(t)

	products, err := service.GetAllProducts()
	assert.NoError(t, err)
	assert.Len(t, products, 3)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "p3", products[2].ID)
}

func TestProductService_SearchProducts(t *testing.T) {
	service, _ := seededProductService(t)

	products, err := service.SearchProducts("iphone 15")
	assert.NoError(t, err)
	assert.Len(t, products, 2)

	products, err = service.SearchProducts("Pro Max")
	assert.NoError(t, err)
	assert.Len(t, products, 2)

	products, err = service.SearchProducts("galaxy")
	assert.NoError(t, err)
	assert.Len(t, products, 0)
}

func TestProductService_FilterProducts(t *testing.T) {
	service, _ := seededProductService(t)

	// Model substring filter.
	products, err := service.FilterProducts(services.ProductFilter{Model: "16"})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)

	// Storage matches both option lists and the legacy field.
	products, err = service.FilterProducts(services.ProductFilter{Storage: "256GB"})
	assert.NoError(t, err)
	assert.Len(t, products, 2)

	// Availability flags.
	products, err = service.FilterProducts(services.ProductFilter{Availability: services.FilterInStock})
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	products, err = service.FilterProducts(services.ProductFilter{Availability: services.FilterOutOfStock})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "p3", products[0].ID)

	// "all" dimensions leave everything in.
	products, err = service.FilterProducts(services.ProductFilter{
		Model:   services.FilterAll,
		Storage: services.FilterAll,
	})
	assert.NoError(t, err)
	assert.Len(t, products, 3)

	// Combined filter.
	products, err = service.FilterProducts(services.ProductFilter{
		Model:        "15",
		Storage:      "128GB",
		Availability: services.FilterOutOfStock,
	})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "iPhone 15", products[0].Name)
}

func TestProductService_GetProductByID(t *testing.T) {
	service, _ := seededProductService(t)

	product, err := service.GetProductByID("p1")
	assert.NoError(t, err)
	assert.Equal(t, "iPhone 16 Pro Max", product.Name)

	product, err = service.GetProductByID("p99")
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Contains(t, err.Error(), "not found")
}

func TestProductService_AdminCRUD(t *testing.T) {
	service, repo := seededProductService(t)

	created := &models.Product{Name: "iPhone 17", Price: 59999, DisplayOrder: 4}
	assert.NoError(t, service.CreateProduct(created))
	assert.NotEmpty(t, created.ID)

	created.Price = 57999
	assert.NoError(t, service.UpdateProduct(created))
	stored, err := repo.GetByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.Price(57999), stored.Price)

	assert.NoError(t, service.DeleteProduct(created.ID))
	_, err = service.GetProductByID(created.ID)
	assert.Error(t, err)

	err = service.DeleteProduct("p99")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for deletion")

	err = service.UpdateProduct(&models.Product{ID: "p99", Name: "Ghost"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for update")
}
