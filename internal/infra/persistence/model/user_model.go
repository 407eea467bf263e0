// Package model contains the JSON persistence models for the document store
// and the mappers between them and the domain entities. The field names here
// are the on-disk contract and must not drift.
package model

import "ecomarket/internal/domain/entity"

// UserModel is the persisted shape of a user record.
type UserModel struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	FullName      string `json:"fullName"`
	Role          string `json:"role"`
	LoyaltyPoints int    `json:"loyaltyPoints"`
	LoyaltyTier   string `json:"loyaltyTier"`
	TotalSpent    string `json:"totalSpent"`
	TreesPlanted  int    `json:"treesPlanted"`
	CarbonOffset  string `json:"carbonOffset"`
	CreatedAt     Time   `json:"createdAt"`
}

func fromUserDomain(data *entity.User) *UserModel {
	return &UserModel{
		ID:            data.ID,
		Username:      data.Username,
		Email:         data.Email,
		Password:      data.Password,
		FullName:      data.FullName,
		Role:          string(data.Role),
		LoyaltyPoints: data.LoyaltyPoints,
		LoyaltyTier:   string(data.LoyaltyTier),
		TotalSpent:    data.TotalSpent,
		TreesPlanted:  data.TreesPlanted,
		CarbonOffset:  data.CarbonOffset,
		CreatedAt:     NewTime(data.CreatedAt),
	}
}

func toUserDomain(data *UserModel) *entity.User {
	return &entity.User{
		ID:            data.ID,
		Username:      data.Username,
		Email:         data.Email,
		Password:      data.Password,
		FullName:      data.FullName,
		Role:          entity.Role(data.Role),
		LoyaltyPoints: data.LoyaltyPoints,
		LoyaltyTier:   entity.LoyaltyTier(data.LoyaltyTier),
		TotalSpent:    data.TotalSpent,
		TreesPlanted:  data.TreesPlanted,
		CarbonOffset:  data.CarbonOffset,
		CreatedAt:     data.CreatedAt.Time,
	}
}
