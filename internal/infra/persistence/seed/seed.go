// Package seed produces the deterministic dataset a fresh marketplace store
// starts from. The output is a pure function of nothing: every call returns
// an identical document, which test fixtures rely on.
package seed

import (
	"time"

	"ecomarket/internal/domain/entity"
	"ecomarket/internal/domain/repository"
)

// Document builds the initial dataset: three users covering every role, one
// verified seller, three active products and one delivered order. All other
// collections start empty.
func Document() *repository.Document {
	users := []*entity.User{
		{
			ID:            "user1",
			Username:      "sarah_eco",
			Email:         "sarah@example.com",
			Password:      "hashedpassword",
			FullName:      "Sarah Johnson",
			Role:          entity.RoleBuyer,
			LoyaltyPoints: 2450,
			LoyaltyTier:   entity.TierGold,
			TotalSpent:    "15640.00",
			TreesPlanted:  12,
			CarbonOffset:  "2.40",
			CreatedAt:     date(2024, time.January, 15),
		},
		{
			ID:            "user2",
			Username:      "eco_seller",
			Email:         "seller@ecocompany.com",
			Password:      "hashedpassword",
			FullName:      "Green Business Owner",
			Role:          entity.RoleSeller,
			LoyaltyPoints: 500,
			LoyaltyTier:   entity.TierBronze,
			TotalSpent:    "0.00",
			TreesPlanted:  0,
			CarbonOffset:  "0.00",
			CreatedAt:     date(2024, time.February, 1),
		},
		{
			ID:            "admin1",
			Username:      "admin",
			Email:         "admin@ecomarket.com",
			Password:      "hashedpassword",
			FullName:      "Platform Admin",
			Role:          entity.RoleAdmin,
			LoyaltyPoints: 0,
			LoyaltyTier:   entity.TierBronze,
			TotalSpent:    "0.00",
			TreesPlanted:  0,
			CarbonOffset:  "0.00",
			CreatedAt:     date(2024, time.January, 1),
		},
	}

	sellers := []*entity.Seller{
		{
			ID:           "seller1",
			UserID:       "user2",
			BusinessName: "EcoClothing Co.",
			KYCStatus:    entity.KYCVerified,
			TaxID:        "TAX123456",
			BankDetails: entity.BankDetails{
				AccountNumber: "****1234",
				BankName:      "Green Bank",
			},
			SustainabilityScore: 85,
			TotalSales:          "45670.00",
			PendingBalance:      "8450.00",
			AvailableBalance:    "12350.00",
			Rating:              "4.80",
			ReviewCount:         127,
			CreatedAt:           date(2024, time.February, 1),
		},
	}

	products := []*entity.Product{
		{
			ID:                     "prod1",
			SellerID:               "seller1",
			Name:                   "Organic Cotton T-Shirt",
			Description:            "Made from 100% organic cotton with natural dyes",
			Price:                  "899.00",
			Category:               "Clothing",
			Tags:                   []string{"organic", "cotton", "eco-friendly"},
			Images:                 []string{"https://images.unsplash.com/photo-1523381210434-271e8be1f52b"},
			SustainabilityFeatures: []string{"Organic materials", "Natural dyes", "Fair trade"},
			StockQuantity:          50,
			IsActive:               true,
			CarbonFootprint:        "2.50",
			RecycledContent:        0,
			Biodegradable:          true,
			CreatedAt:              date(2024, time.March, 1),
			UpdatedAt:              date(2024, time.March, 1),
		},
		{
			ID:                     "prod2",
			SellerID:               "seller1",
			Name:                   "Bamboo Water Bottle",
			Description:            "Sustainable bamboo fiber with leak-proof design",
			Price:                  "1299.00",
			Category:               "Home & Garden",
			Tags:                   []string{"bamboo", "reusable", "zero-waste"},
			Images:                 []string{"https://images.unsplash.com/photo-1602143407151-7111542de6e8"},
			SustainabilityFeatures: []string{"Bamboo fiber", "Reusable", "BPA-free"},
			StockQuantity:          30,
			IsActive:               true,
			CarbonFootprint:        "1.80",
			RecycledContent:        0,
			Biodegradable:          true,
			CreatedAt:              date(2024, time.March, 2),
			UpdatedAt:              date(2024, time.March, 2),
		},
		{
			ID:                     "prod3",
			SellerID:               "seller1",
			Name:                   "Solar Garden Lights",
			Description:            "Eco-friendly outdoor lighting with automatic sensors",
			Price:                  "2499.00",
			Category:               "Electronics",
			Tags:                   []string{"solar", "energy-efficient", "outdoor"},
			Images:                 []string{"https://images.unsplash.com/photo-1558618666-fcd25c85cd64"},
			SustainabilityFeatures: []string{"Solar powered", "Energy efficient", "Long lasting"},
			StockQuantity:          20,
			IsActive:               true,
			CarbonFootprint:        "5.20",
			RecycledContent:        25,
			Biodegradable:          false,
			CreatedAt:              date(2024, time.March, 3),
			UpdatedAt:              date(2024, time.March, 3),
		},
	}

	escrowRelease := date(2024, time.March, 20)
	orders := []*entity.Order{
		{
			ID:                  "order1",
			BuyerID:             "user1",
			SellerID:            "seller1",
			Status:              entity.OrderDelivered,
			PaymentStatus:       entity.PaymentReleased,
			TotalAmount:         "3497.00",
			PlatformFee:         "174.85",
			LoyaltyPointsEarned: 175,
			LoyaltyPointsUsed:   0,
			ShippingAddress: entity.ShippingAddress{
				Street:  "123 Green Street",
				City:    "Mumbai",
				State:   "Maharashtra",
				Pincode: "400001",
				Country: "India",
			},
			PaymentIntentID:   "pi_test123",
			EscrowReleaseDate: &escrowRelease,
			EnvironmentalImpact: entity.OrderImpact{
				TreesPlanted: 2,
				CarbonOffset: 0.5,
			},
			CreatedAt: date(2024, time.March, 15),
			UpdatedAt: date(2024, time.March, 20),
		},
	}

	return &repository.Document{
		Users:                users,
		Sellers:              sellers,
		Products:             products,
		Orders:               orders,
		CartItems:            []*entity.CartItem{},
		OrderItems:           []*entity.OrderItem{},
		LoyaltyTransactions:  []*entity.LoyaltyTransaction{},
		EnvironmentalActions: []*entity.EnvironmentalAction{},
		Payouts:              []*entity.Payout{},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
