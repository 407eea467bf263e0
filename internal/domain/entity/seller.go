package entity

import "time"

// KYCStatus is the seller identity/business verification state gating
// marketplace participation.
type KYCStatus string

const (
	KYCPending  KYCStatus = "pending"
	KYCVerified KYCStatus = "verified"
	KYCRejected KYCStatus = "rejected"
)

// BankDetails holds the payout destination a seller registered with.
type BankDetails struct {
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
}

// Seller is the business profile attached one-to-one to a user account.
// Balance and sales figures are decimal strings.
type Seller struct {
	ID                  string      `json:"id"`
	UserID              string      `json:"userId"`
	BusinessName        string      `json:"businessName"`
	KYCStatus           KYCStatus   `json:"kycStatus"`
	TaxID               string      `json:"taxId"`
	BankDetails         BankDetails `json:"bankDetails"`
	SustainabilityScore int         `json:"sustainabilityScore"`
	TotalSales          string      `json:"totalSales"`
	PendingBalance      string      `json:"pendingBalance"`
	AvailableBalance    string      `json:"availableBalance"`
	Rating              string      `json:"rating"`
	ReviewCount         int         `json:"reviewCount"`
	CreatedAt           time.Time   `json:"createdAt"`
}
