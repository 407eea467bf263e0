package impl

import (
	"context"
	"log/slog"

	"ecomarket/internal/domain/entity"
	"ecomarket/internal/domain/repository"
	"ecomarket/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	documentService
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	Store  repository.DocumentStore
	Lock   *repository.DocumentLock
	Logger *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		documentService: documentService{
			store:  params.Store,
			lock:   params.Lock,
			logger: params.Logger,
		},
	}
}

// GetDisputedOrders lists fully joined orders whose status is disputed.
func (srv *adminService) GetDisputedOrders(ctx context.Context) ([]*entity.OrderWithItems, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for disputed orders")
	}

	results := make([]*entity.OrderWithItems, 0)
	for _, order := range doc.Orders {
		if order.Status != entity.OrderDisputed {
			continue
		}
		if joined := joinOrder(doc, order.ID); joined != nil {
			results = append(results, joined)
		}
	}

	return results, nil
}

// GetHeldOrders lists orders whose funds have not been released: payment
// status held, or status disputed. This is a superset of the disputed view.
func (srv *adminService) GetHeldOrders(ctx context.Context) ([]*entity.OrderWithItems, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for held orders")
	}

	results := make([]*entity.OrderWithItems, 0)
	for _, order := range doc.Orders {
		if order.PaymentStatus != entity.PaymentHeld && order.Status != entity.OrderDisputed {
			continue
		}
		if joined := joinOrder(doc, order.ID); joined != nil {
			results = append(results, joined)
		}
	}

	return results, nil
}

// GetPlatformStats aggregates the whole order and seller collections.
func (srv *adminService) GetPlatformStats(ctx context.Context) (*usecase.PlatformStats, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for platform stats")
	}

	var totalAmounts, heldAmounts, feeAmounts []string
	stats := &usecase.PlatformStats{}

	for _, order := range doc.Orders {
		totalAmounts = append(totalAmounts, order.TotalAmount)
		feeAmounts = append(feeAmounts, order.PlatformFee)

		if order.PaymentStatus == entity.PaymentHeld {
			heldAmounts = append(heldAmounts, order.TotalAmount)
		}
		switch order.Status {
		case entity.OrderPending, entity.OrderPaid, entity.OrderShipped:
			stats.ActiveOrders++
		case entity.OrderDisputed:
			stats.DisputeCount++
		}
	}

	for _, seller := range doc.Sellers {
		if seller.KYCStatus == entity.KYCVerified {
			stats.ActiveSellers++
		}
	}

	stats.TotalRevenue = sumAmounts(totalAmounts).InexactFloat64()
	stats.HeldFunds = sumAmounts(heldAmounts).InexactFloat64()
	stats.PlatformFee = sumAmounts(feeAmounts).InexactFloat64()

	return stats, nil
}
