package impl

import (
	"context"
	"log/slog"
	"time"

	"ecomarket/internal/domain/entity"
	"ecomarket/internal/domain/repository"
	"ecomarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// loyaltyService implements the LoyaltyUsecase interface.
type loyaltyService struct {
	documentService
}

// LoyaltyServiceParams holds dependencies for LoyaltyService, injected by Fx.
type LoyaltyServiceParams struct {
	fx.In

	Store  repository.DocumentStore
	Lock   *repository.DocumentLock
	Logger *slog.Logger
}

// NewLoyaltyService is the constructor for loyaltyService.
func NewLoyaltyService(params LoyaltyServiceParams) usecase.LoyaltyUsecase {
	return &loyaltyService{
		documentService: documentService{
			store:  params.Store,
			lock:   params.Lock,
			logger: params.Logger,
		},
	}
}

// GetLoyaltyTransactions lists a user's ledger entries newest-first.
func (srv *loyaltyService) GetLoyaltyTransactions(ctx context.Context, userID string) ([]*entity.LoyaltyTransaction, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for loyalty listing")
	}

	transactions := make([]*entity.LoyaltyTransaction, 0)
	for _, tx := range doc.LoyaltyTransactions {
		if tx.UserID == userID {
			transactions = append(transactions, tx)
		}
	}
	sortNewestFirst(transactions, func(tx *entity.LoyaltyTransaction) time.Time { return tx.CreatedAt })

	return transactions, nil
}

// CreateLoyaltyTransaction appends a ledger entry and applies its signed
// points to the user's balance in the same save. An entry for an unknown
// user is still recorded; only the balance update is skipped.
func (srv *loyaltyService) CreateLoyaltyTransaction(ctx context.Context, input usecase.CreateLoyaltyTransactionInput) (*entity.LoyaltyTransaction, error) {
	newTx := &entity.LoyaltyTransaction{
		ID:          uuid.NewString(),
		UserID:      input.UserID,
		Points:      input.Points,
		Description: input.Description,
		CreatedAt:   time.Now(),
	}

	srv.lock.Lock()
	defer srv.lock.Unlock()

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for loyalty transaction")
	}

	doc.LoyaltyTransactions = append(doc.LoyaltyTransactions, newTx)

	for _, user := range doc.Users {
		if user.ID == input.UserID {
			user.LoyaltyPoints += input.Points

			break
		}
	}

	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "failed to save document after loyalty transaction")
	}
	srv.log(ctx).Debug("Loyalty transaction recorded",
		slog.String("userID", input.UserID),
		slog.Int("points", input.Points))

	return newTx, nil
}
