package usecase

import (
	"context"

	"ecomarket/internal/domain/entity"
)

// ProductFilter narrows a product listing. Zero-valued fields do not filter.
// Search is a case-insensitive substring match against name or description.
type ProductFilter struct {
	Category string
	SellerID string
	Search   string
}

// CreateProductInput defines the data required to list a product. IsActive
// defaults to true when omitted.
type CreateProductInput struct {
	SellerID               string   `json:"sellerId" validate:"required"`
	Name                   string   `json:"name" validate:"required"`
	Description            string   `json:"description"`
	Price                  string   `json:"price" validate:"required"`
	Category               string   `json:"category"`
	Tags                   []string `json:"tags"`
	Images                 []string `json:"images"`
	SustainabilityFeatures []string `json:"sustainabilityFeatures"`
	StockQuantity          int      `json:"stockQuantity"`
	IsActive               *bool    `json:"isActive"`
	CarbonFootprint        string   `json:"carbonFootprint"`
	RecycledContent        int      `json:"recycledContent"`
	Biodegradable          bool     `json:"biodegradable"`
}

// UpdateProductInput is a partial update; nil fields are left untouched.
// Any applied update refreshes the product's updatedAt timestamp.
type UpdateProductInput struct {
	Name                   *string   `json:"name"`
	Description            *string   `json:"description"`
	Price                  *string   `json:"price"`
	Category               *string   `json:"category"`
	Tags                   *[]string `json:"tags"`
	Images                 *[]string `json:"images"`
	SustainabilityFeatures *[]string `json:"sustainabilityFeatures"`
	StockQuantity          *int      `json:"stockQuantity"`
	IsActive               *bool     `json:"isActive"`
	CarbonFootprint        *string   `json:"carbonFootprint"`
	RecycledContent        *int      `json:"recycledContent"`
	Biodegradable          *bool     `json:"biodegradable"`
}

// ProductUsecase defines product storage operations. Listing joins each
// product with its seller and silently drops products whose seller cannot be
// resolved.
type ProductUsecase interface {
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	GetProductWithSeller(ctx context.Context, id string) (*entity.ProductWithSeller, error)
	GetProducts(ctx context.Context, filter ProductFilter) ([]*entity.ProductWithSeller, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
