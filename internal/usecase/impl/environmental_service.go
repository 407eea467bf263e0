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

// Platform-wide impact accumulated before action tracking went live. The
// live sums are added on top of these.
const (
	baselineTreesPlanted = 2847
	baselineCarbonOffset = 156
)

// Reported as-is until plastic and waste tracking is wired to real data.
const (
	staticPlasticReduced = 89
	staticWasteReduced   = 1200
)

// environmentalService implements the EnvironmentalUsecase interface.
type environmentalService struct {
	documentService
}

// EnvironmentalServiceParams holds dependencies for EnvironmentalService, injected by Fx.
type EnvironmentalServiceParams struct {
	fx.In

	Store  repository.DocumentStore
	Lock   *repository.DocumentLock
	Logger *slog.Logger
}

// NewEnvironmentalService is the constructor for environmentalService.
func NewEnvironmentalService(params EnvironmentalServiceParams) usecase.EnvironmentalUsecase {
	return &environmentalService{
		documentService: documentService{
			store:  params.Store,
			lock:   params.Lock,
			logger: params.Logger,
		},
	}
}

// GetEnvironmentalActions lists a user's actions newest-first.
func (srv *environmentalService) GetEnvironmentalActions(ctx context.Context, userID string) ([]*entity.EnvironmentalAction, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for environmental listing")
	}

	actions := make([]*entity.EnvironmentalAction, 0)
	for _, action := range doc.EnvironmentalActions {
		if action.UserID == userID {
			actions = append(actions, action)
		}
	}
	sortNewestFirst(actions, func(a *entity.EnvironmentalAction) time.Time { return a.CreatedAt })

	return actions, nil
}

func (srv *environmentalService) CreateEnvironmentalAction(ctx context.Context, input usecase.CreateEnvironmentalActionInput) (*entity.EnvironmentalAction, error) {
	newAction := &entity.EnvironmentalAction{
		ID:         uuid.NewString(),
		UserID:     input.UserID,
		ActionType: entity.ActionType(input.ActionType),
		Quantity:   input.Quantity,
		CreatedAt:  time.Now(),
	}

	srv.lock.Lock()
	defer srv.lock.Unlock()

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for environmental action")
	}

	doc.EnvironmentalActions = append(doc.EnvironmentalActions, newAction)

	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "failed to save document after environmental action")
	}
	srv.log(ctx).Debug("Environmental action recorded",
		slog.String("userID", input.UserID),
		slog.String("actionType", input.ActionType),
		slog.Int("quantity", input.Quantity))

	return newAction, nil
}

// GetTotalEnvironmentalImpact sums all recorded actions on top of the
// historical baselines.
func (srv *environmentalService) GetTotalEnvironmentalImpact(ctx context.Context) (*usecase.TotalImpact, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for environmental totals")
	}

	impact := &usecase.TotalImpact{
		TreesPlanted:   baselineTreesPlanted,
		CarbonOffset:   baselineCarbonOffset,
		PlasticReduced: staticPlasticReduced,
		WasteReduced:   staticWasteReduced,
	}
	for _, action := range doc.EnvironmentalActions {
		switch action.ActionType {
		case entity.ActionTreePlanted:
			impact.TreesPlanted += action.Quantity
		case entity.ActionCarbonOffset:
			impact.CarbonOffset += action.Quantity
		}
	}

	return impact, nil
}
