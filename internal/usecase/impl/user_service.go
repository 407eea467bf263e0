package impl

import (
	"context"
	"log/slog"
	"time"

	"ecomarket/internal/domain/entity"
	"ecomarket/internal/domain/repository"
	"ecomarket/internal/domain/service"
	"ecomarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	documentService
	hasher service.PasswordHasher
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	Store  repository.DocumentStore
	Lock   *repository.DocumentLock
	Hasher service.PasswordHasher
	Logger *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		documentService: documentService{
			store:  params.Store,
			lock:   params.Lock,
			logger: params.Logger,
		},
		hasher: params.Hasher,
	}
}

func (srv *userService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for user lookup")
	}

	for _, user := range doc.Users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, errors.Wrap(repository.ErrUserNotFound, "failed to get user")
}

func (srv *userService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for user lookup")
	}

	for _, user := range doc.Users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, errors.Wrap(repository.ErrUserNotFound, "failed to get user by email")
}

func (srv *userService) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for user lookup")
	}

	for _, user := range doc.Users {
		if user.Username == username {
			return user, nil
		}
	}

	return nil, errors.Wrap(repository.ErrUserNotFound, "failed to get user by username")
}

// CreateUser hashes the password and persists a new account with buyer
// defaults and zeroed loyalty figures.
func (srv *userService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during user creation", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during user creation")
	}

	role := entity.RoleBuyer
	if input.Role != "" {
		role = entity.Role(input.Role)
	}

	newUser := &entity.User{
		ID:            uuid.NewString(),
		Username:      input.Username,
		Email:         input.Email,
		Password:      hashedPassword,
		FullName:      input.FullName,
		Role:          role,
		LoyaltyPoints: 0,
		LoyaltyTier:   entity.TierBronze,
		TotalSpent:    "0",
		TreesPlanted:  0,
		CarbonOffset:  "0",
		CreatedAt:     time.Now(),
	}

	srv.lock.Lock()
	defer srv.lock.Unlock()

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for user creation")
	}

	doc.Users = append(doc.Users, newUser)

	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "failed to save document after user creation")
	}
	srv.log(ctx).Debug("User created", slog.String("userID", newUser.ID), slog.String("username", newUser.Username))

	return newUser, nil
}

func (srv *userService) UpdateUser(ctx context.Context, id string, input usecase.UpdateUserInput) (*entity.User, error) {
	var hashedPassword string
	if input.Password != nil {
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during user update", slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to hash password during user update")
		}
		hashedPassword = hashed
	}

	srv.lock.Lock()
	defer srv.lock.Unlock()

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for user update")
	}

	var user *entity.User
	for _, u := range doc.Users {
		if u.ID == id {
			user = u

			break
		}
	}
	if user == nil {
		return nil, errors.Wrap(repository.ErrUserNotFound, "failed to update user")
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		user.Password = hashedPassword
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Role != nil {
		user.Role = entity.Role(*input.Role)
	}
	if input.LoyaltyPoints != nil {
		user.LoyaltyPoints = *input.LoyaltyPoints
	}
	if input.LoyaltyTier != nil {
		user.LoyaltyTier = entity.LoyaltyTier(*input.LoyaltyTier)
	}
	if input.TotalSpent != nil {
		user.TotalSpent = *input.TotalSpent
	}
	if input.TreesPlanted != nil {
		user.TreesPlanted = *input.TreesPlanted
	}
	if input.CarbonOffset != nil {
		user.CarbonOffset = *input.CarbonOffset
	}

	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "failed to save document after user update")
	}

	return user, nil
}

// GetUserWithStats joins the user with their order count and the sums of
// this calendar year's environmental actions.
func (srv *userService) GetUserWithStats(ctx context.Context, id string) (*entity.UserWithStats, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for user stats")
	}

	var user *entity.User
	for _, u := range doc.Users {
		if u.ID == id {
			user = u

			break
		}
	}
	if user == nil {
		return nil, errors.Wrap(repository.ErrUserNotFound, "failed to get user stats")
	}

	orderCount := 0
	for _, order := range doc.Orders {
		if order.BuyerID == id {
			orderCount++
		}
	}

	currentYear := time.Now().Year()
	impact := entity.YearImpact{}
	for _, action := range doc.EnvironmentalActions {
		if action.UserID != id || action.CreatedAt.Year() != currentYear {
			continue
		}
		switch action.ActionType {
		case entity.ActionTreePlanted:
			impact.TreesPlanted += action.Quantity
		case entity.ActionCarbonOffset:
			impact.CarbonOffset += action.Quantity
		}
	}

	return &entity.UserWithStats{
		User:              *user,
		OrderCount:        orderCount,
		TotalOrders:       orderCount,
		CurrentYearImpact: impact,
	}, nil
}
