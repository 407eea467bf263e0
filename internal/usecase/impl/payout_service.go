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

// payoutService implements the PayoutUsecase interface.
type payoutService struct {
	documentService
}

// PayoutServiceParams holds dependencies for PayoutService, injected by Fx.
type PayoutServiceParams struct {
	fx.In

	Store  repository.DocumentStore
	Lock   *repository.DocumentLock
	Logger *slog.Logger
}

// NewPayoutService is the constructor for payoutService.
func NewPayoutService(params PayoutServiceParams) usecase.PayoutUsecase {
	return &payoutService{
		documentService: documentService{
			store:  params.Store,
			lock:   params.Lock,
			logger: params.Logger,
		},
	}
}

// GetPayouts lists payouts newest-first by request time. An empty sellerID
// lists every payout on the platform.
func (srv *payoutService) GetPayouts(ctx context.Context, sellerID string) ([]*entity.Payout, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for payout listing")
	}

	payouts := make([]*entity.Payout, 0)
	for _, payout := range doc.Payouts {
		if sellerID == "" || payout.SellerID == sellerID {
			payouts = append(payouts, payout)
		}
	}
	sortNewestFirst(payouts, func(p *entity.Payout) time.Time { return p.RequestedAt })

	return payouts, nil
}

func (srv *payoutService) CreatePayout(ctx context.Context, input usecase.CreatePayoutInput) (*entity.Payout, error) {
	status := entity.PayoutPending
	if input.Status != "" {
		status = entity.PayoutStatus(input.Status)
	}

	newPayout := &entity.Payout{
		ID:          uuid.NewString(),
		SellerID:    input.SellerID,
		Amount:      input.Amount,
		Status:      status,
		RequestedAt: time.Now(),
		ProcessedAt: nil,
	}

	srv.lock.Lock()
	defer srv.lock.Unlock()

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for payout creation")
	}

	doc.Payouts = append(doc.Payouts, newPayout)

	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "failed to save document after payout creation")
	}
	srv.log(ctx).Debug("Payout requested",
		slog.String("payoutID", newPayout.ID),
		slog.String("sellerID", newPayout.SellerID),
		slog.String("amount", newPayout.Amount))

	return newPayout, nil
}

// UpdatePayout applies the partial update. Moving the status to a terminal
// value, completed or failed, stamps ProcessedAt in the same save.
func (srv *payoutService) UpdatePayout(ctx context.Context, id string, input usecase.UpdatePayoutInput) (*entity.Payout, error) {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for payout update")
	}

	var payout *entity.Payout
	for _, p := range doc.Payouts {
		if p.ID == id {
			payout = p

			break
		}
	}
	if payout == nil {
		return nil, errors.Wrap(repository.ErrPayoutNotFound, "failed to update payout")
	}

	if input.Amount != nil {
		payout.Amount = *input.Amount
	}
	if input.Status != nil {
		payout.Status = entity.PayoutStatus(*input.Status)

		if payout.Status == entity.PayoutCompleted || payout.Status == entity.PayoutFailed {
			now := time.Now()
			payout.ProcessedAt = &now
		}
	}

	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "failed to save document after payout update")
	}

	return payout, nil
}
