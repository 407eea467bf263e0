// Package usecase contains the application-specific business rules of the
// marketplace storage service. It is the contract the delivery layer depends
// on; every operation loads the whole document, computes, and persists back
// when it mutates.
package usecase

import (
	"context"

	"ecomarket/internal/domain/entity"
)

// CreateUserInput defines the data required to create a user. System-assigned
// fields (id, createdAt) and defaulted fields (role, loyalty figures) are
// filled by the service.
type CreateUserInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"fullName" validate:"required"`
	Role     string `json:"role"`
}

// UpdateUserInput is a partial update; nil fields are left untouched. A new
// password is hashed before it is stored.
type UpdateUserInput struct {
	Username      *string `json:"username"`
	Email         *string `json:"email"`
	Password      *string `json:"password"`
	FullName      *string `json:"fullName"`
	Role          *string `json:"role"`
	LoyaltyPoints *int    `json:"loyaltyPoints"`
	LoyaltyTier   *string `json:"loyaltyTier"`
	TotalSpent    *string `json:"totalSpent"`
	TreesPlanted  *int    `json:"treesPlanted"`
	CarbonOffset  *string `json:"carbonOffset"`
}

// UserUsecase defines user storage operations. Lookups and updates report a
// missing ID with repository.ErrUserNotFound, never a hard failure.
type UserUsecase interface {
	GetUser(ctx context.Context, id string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*entity.User, error)
	GetUserWithStats(ctx context.Context, id string) (*entity.UserWithStats, error)
}
