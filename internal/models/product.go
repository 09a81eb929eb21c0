package models

import "gorm.io/gorm"

// StorageOption is one purchasable storage variant of a product.
type StorageOption struct {
	Size  string `json:"size" validate:"required"`
	Price Price  `json:"price" validate:"required,gt=0"`
}

// Product represents an iPhone model in the catalog.
//
// Older catalog documents describe a single variant through the plain
// Storage and Price fields; newer ones carry StorageOptions and Colors.
// Both shapes are valid. Price resolution falls back to the base Price
// when no storage option matches.
type Product struct {
	ID             string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name           string          `json:"name" validate:"required,min=2,max=100"`
	Colors         []string        `json:"colors,omitempty" gorm:"serializer:json"`
	StorageOptions []StorageOption `json:"storageOptions,omitempty" gorm:"serializer:json" validate:"omitempty,dive"`
	Storage        string          `json:"storage,omitempty"`
	Price          Price           `json:"price" validate:"required,gt=0"`
	Image          string          `json:"image,omitempty" validate:"omitempty,url"`
	InStock        bool            `json:"inStock"`
	DisplayOrder   int             `json:"order"`
	gorm.Model     `json:"-"`
}

// ResolvePrice returns the unit price for the given storage size,
// falling back to the base price when no storage option matches.
func (p *Product) ResolvePrice(storage string) Price {
	for _, opt := range p.StorageOptions {
		if opt.Size == storage {
			return opt.Price
		}
	}
	return p.Price
}

// DefaultStorage returns the first storage option's size, or the legacy
// single-storage field when no options exist.
func (p *Product) DefaultStorage() string {
	if len(p.StorageOptions) > 0 {
		return p.StorageOptions[0].Size
	}
	return p.Storage
}

// DefaultColor returns the first available color, or empty when the
// product has no color variants.
func (p *Product) DefaultColor() string {
	if len(p.Colors) > 0 {
		return p.Colors[0]
	}
	return ""
}

// HasColor reports whether the product is offered in the given color.
// Products without color variants offer none.
func (p *Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}

// HasStorage reports whether the product is offered with the given
// storage size under either catalog shape.
func (p *Product) HasStorage(size string) bool {
	if len(p.StorageOptions) > 0 {
		for _, opt := range p.StorageOptions {
			if opt.Size == size {
				return true
			}
		}
		return false
	}
	return p.Storage == size
}
