package model

import "ecomarket/internal/domain/entity"

// ProductModel is the persisted shape of a product record.
type ProductModel struct {
	ID                     string   `json:"id"`
	SellerID               string   `json:"sellerId"`
	Name                   string   `json:"name"`
	Description            string   `json:"description"`
	Price                  string   `json:"price"`
	Category               string   `json:"category"`
	Tags                   []string `json:"tags"`
	Images                 []string `json:"images"`
	SustainabilityFeatures []string `json:"sustainabilityFeatures"`
	StockQuantity          int      `json:"stockQuantity"`
	IsActive               bool     `json:"isActive"`
	CarbonFootprint        string   `json:"carbonFootprint"`
	RecycledContent        int      `json:"recycledContent"`
	Biodegradable          bool     `json:"biodegradable"`
	CreatedAt              Time     `json:"createdAt"`
	UpdatedAt              Time     `json:"updatedAt"`
}

func fromProductDomain(data *entity.Product) *ProductModel {
	return &ProductModel{
		ID:                     data.ID,
		SellerID:               data.SellerID,
		Name:                   data.Name,
		Description:            data.Description,
		Price:                  data.Price,
		Category:               data.Category,
		Tags:                   data.Tags,
		Images:                 data.Images,
		SustainabilityFeatures: data.SustainabilityFeatures,
		StockQuantity:          data.StockQuantity,
		IsActive:               data.IsActive,
		CarbonFootprint:        data.CarbonFootprint,
		RecycledContent:        data.RecycledContent,
		Biodegradable:          data.Biodegradable,
		CreatedAt:              NewTime(data.CreatedAt),
		UpdatedAt:              NewTime(data.UpdatedAt),
	}
}

func toProductDomain(data *ProductModel) *entity.Product {
	return &entity.Product{
		ID:                     data.ID,
		SellerID:               data.SellerID,
		Name:                   data.Name,
		Description:            data.Description,
		Price:                  data.Price,
		Category:               data.Category,
		Tags:                   data.Tags,
		Images:                 data.Images,
		SustainabilityFeatures: data.SustainabilityFeatures,
		StockQuantity:          data.StockQuantity,
		IsActive:               data.IsActive,
		CarbonFootprint:        data.CarbonFootprint,
		RecycledContent:        data.RecycledContent,
		Biodegradable:          data.Biodegradable,
		CreatedAt:              data.CreatedAt.Time,
		UpdatedAt:              data.UpdatedAt.Time,
	}
}
