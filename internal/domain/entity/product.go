package entity

import "time"

// Product is a listed item belonging to a seller. IsActive is a soft-delete
// flag: inactive products are excluded from listing queries but remain
// resolvable by ID for historical joins.
type Product struct {
	ID                     string    `json:"id"`
	SellerID               string    `json:"sellerId"`
	Name                   string    `json:"name"`
	Description            string    `json:"description"`
	Price                  string    `json:"price"`
	Category               string    `json:"category"`
	Tags                   []string  `json:"tags"`
	Images                 []string  `json:"images"`
	SustainabilityFeatures []string  `json:"sustainabilityFeatures"`
	StockQuantity          int       `json:"stockQuantity"`
	IsActive               bool      `json:"isActive"`
	CarbonFootprint        string    `json:"carbonFootprint"`
	RecycledContent        int       `json:"recycledContent"`
	Biodegradable          bool      `json:"biodegradable"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}
