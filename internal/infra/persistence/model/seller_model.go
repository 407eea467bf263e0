package model

import "ecomarket/internal/domain/entity"

// SellerModel is the persisted shape of a seller record.
type SellerModel struct {
	ID                  string           `json:"id"`
	UserID              string           `json:"userId"`
	BusinessName        string           `json:"businessName"`
	KYCStatus           string           `json:"kycStatus"`
	TaxID               string           `json:"taxId"`
	BankDetails         BankDetailsModel `json:"bankDetails"`
	SustainabilityScore int              `json:"sustainabilityScore"`
	TotalSales          string           `json:"totalSales"`
	PendingBalance      string           `json:"pendingBalance"`
	AvailableBalance    string           `json:"availableBalance"`
	Rating              string           `json:"rating"`
	ReviewCount         int              `json:"reviewCount"`
	CreatedAt           Time             `json:"createdAt"`
}

// BankDetailsModel is the embedded payout destination.
type BankDetailsModel struct {
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
}

func fromSellerDomain(data *entity.Seller) *SellerModel {
	return &SellerModel{
		ID:           data.ID,
		UserID:       data.UserID,
		BusinessName: data.BusinessName,
		KYCStatus:    string(data.KYCStatus),
		TaxID:        data.TaxID,
		BankDetails: BankDetailsModel{
			AccountNumber: data.BankDetails.AccountNumber,
			BankName:      data.BankDetails.BankName,
		},
		SustainabilityScore: data.SustainabilityScore,
		TotalSales:          data.TotalSales,
		PendingBalance:      data.PendingBalance,
		AvailableBalance:    data.AvailableBalance,
		Rating:              data.Rating,
		ReviewCount:         data.ReviewCount,
		CreatedAt:           NewTime(data.CreatedAt),
	}
}

func toSellerDomain(data *SellerModel) *entity.Seller {
	return &entity.Seller{
		ID:           data.ID,
		UserID:       data.UserID,
		BusinessName: data.BusinessName,
		KYCStatus:    entity.KYCStatus(data.KYCStatus),
		TaxID:        data.TaxID,
		BankDetails: entity.BankDetails{
			AccountNumber: data.BankDetails.AccountNumber,
			BankName:      data.BankDetails.BankName,
		},
		SustainabilityScore: data.SustainabilityScore,
		TotalSales:          data.TotalSales,
		PendingBalance:      data.PendingBalance,
		AvailableBalance:    data.AvailableBalance,
		Rating:              data.Rating,
		ReviewCount:         data.ReviewCount,
		CreatedAt:           data.CreatedAt.Time,
	}
}
