package usecase

import (
	"context"

	"ecomarket/internal/domain/entity"
)

// CreateSellerInput defines the data required to register a seller profile.
// KYCStatus defaults to "pending" and monetary fields to "0.00" when empty;
// the seller-application endpoint always submits with the default status.
type CreateSellerInput struct {
	UserID              string             `json:"userId" validate:"required"`
	BusinessName        string             `json:"businessName" validate:"required"`
	KYCStatus           string             `json:"kycStatus"`
	TaxID               string             `json:"taxId"`
	BankDetails         entity.BankDetails `json:"bankDetails"`
	SustainabilityScore int                `json:"sustainabilityScore"`
	TotalSales          string             `json:"totalSales"`
	PendingBalance      string             `json:"pendingBalance"`
	AvailableBalance    string             `json:"availableBalance"`
	Rating              string             `json:"rating"`
	ReviewCount         int                `json:"reviewCount"`
}

// UpdateSellerInput is a partial update; nil fields are left untouched.
type UpdateSellerInput struct {
	BusinessName        *string             `json:"businessName"`
	KYCStatus           *string             `json:"kycStatus"`
	TaxID               *string             `json:"taxId"`
	BankDetails         *entity.BankDetails `json:"bankDetails"`
	SustainabilityScore *int                `json:"sustainabilityScore"`
	TotalSales          *string             `json:"totalSales"`
	PendingBalance      *string             `json:"pendingBalance"`
	AvailableBalance    *string             `json:"availableBalance"`
	Rating              *string             `json:"rating"`
	ReviewCount         *int                `json:"reviewCount"`
}

// SellerUsecase defines seller storage operations.
type SellerUsecase interface {
	GetSeller(ctx context.Context, id string) (*entity.Seller, error)
	GetSellerByUserID(ctx context.Context, userID string) (*entity.Seller, error)
	CreateSeller(ctx context.Context, input CreateSellerInput) (*entity.Seller, error)
	UpdateSeller(ctx context.Context, id string, input UpdateSellerInput) (*entity.Seller, error)

	// GetSellerApplications lists sellers still waiting on KYC review.
	GetSellerApplications(ctx context.Context) ([]*entity.Seller, error)
}
