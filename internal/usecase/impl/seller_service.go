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

// sellerService implements the SellerUsecase interface.
type sellerService struct {
	documentService
}

// SellerServiceParams holds dependencies for SellerService, injected by Fx.
type SellerServiceParams struct {
	fx.In

	Store  repository.DocumentStore
	Lock   *repository.DocumentLock
	Logger *slog.Logger
}

// NewSellerService is the constructor for sellerService.
func NewSellerService(params SellerServiceParams) usecase.SellerUsecase {
	return &sellerService{
		documentService: documentService{
			store:  params.Store,
			lock:   params.Lock,
			logger: params.Logger,
		},
	}
}

func (srv *sellerService) GetSeller(ctx context.Context, id string) (*entity.Seller, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for seller lookup")
	}

	for _, seller := range doc.Sellers {
		if seller.ID == id {
			return seller, nil
		}
	}

	return nil, errors.Wrap(repository.ErrSellerNotFound, "failed to get seller")
}

func (srv *sellerService) GetSellerByUserID(ctx context.Context, userID string) (*entity.Seller, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for seller lookup")
	}

	for _, seller := range doc.Sellers {
		if seller.UserID == userID {
			return seller, nil
		}
	}

	return nil, errors.Wrap(repository.ErrSellerNotFound, "failed to get seller by user id")
}

// CreateSeller registers a seller profile. The KYC status defaults to
// pending and monetary figures to "0.00" so a fresh application always
// starts unverified with empty balances.
func (srv *sellerService) CreateSeller(ctx context.Context, input usecase.CreateSellerInput) (*entity.Seller, error) {
	kycStatus := entity.KYCPending
	if input.KYCStatus != "" {
		kycStatus = entity.KYCStatus(input.KYCStatus)
	}

	newSeller := &entity.Seller{
		ID:                  uuid.NewString(),
		UserID:              input.UserID,
		BusinessName:        input.BusinessName,
		KYCStatus:           kycStatus,
		TaxID:               input.TaxID,
		BankDetails:         input.BankDetails,
		SustainabilityScore: input.SustainabilityScore,
		TotalSales:          defaultAmount(input.TotalSales),
		PendingBalance:      defaultAmount(input.PendingBalance),
		AvailableBalance:    defaultAmount(input.AvailableBalance),
		Rating:              input.Rating,
		ReviewCount:         input.ReviewCount,
		CreatedAt:           time.Now(),
	}

	srv.lock.Lock()
	defer srv.lock.Unlock()

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for seller creation")
	}

	doc.Sellers = append(doc.Sellers, newSeller)

	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "failed to save document after seller creation")
	}
	srv.log(ctx).Debug("Seller created", slog.String("sellerID", newSeller.ID), slog.String("userID", newSeller.UserID))

	return newSeller, nil
}

func (srv *sellerService) UpdateSeller(ctx context.Context, id string, input usecase.UpdateSellerInput) (*entity.Seller, error) {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for seller update")
	}

	var seller *entity.Seller
	for _, s := range doc.Sellers {
		if s.ID == id {
			seller = s

			break
		}
	}
	if seller == nil {
		return nil, errors.Wrap(repository.ErrSellerNotFound, "failed to update seller")
	}

	if input.BusinessName != nil {
		seller.BusinessName = *input.BusinessName
	}
	if input.KYCStatus != nil {
		seller.KYCStatus = entity.KYCStatus(*input.KYCStatus)
	}
	if input.TaxID != nil {
		seller.TaxID = *input.TaxID
	}
	if input.BankDetails != nil {
		seller.BankDetails = *input.BankDetails
	}
	if input.SustainabilityScore != nil {
		seller.SustainabilityScore = *input.SustainabilityScore
	}
	if input.TotalSales != nil {
		seller.TotalSales = *input.TotalSales
	}
	if input.PendingBalance != nil {
		seller.PendingBalance = *input.PendingBalance
	}
	if input.AvailableBalance != nil {
		seller.AvailableBalance = *input.AvailableBalance
	}
	if input.Rating != nil {
		seller.Rating = *input.Rating
	}
	if input.ReviewCount != nil {
		seller.ReviewCount = *input.ReviewCount
	}

	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "failed to save document after seller update")
	}

	return seller, nil
}

// GetSellerApplications lists sellers whose KYC status is still pending.
func (srv *sellerService) GetSellerApplications(ctx context.Context) ([]*entity.Seller, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for seller applications")
	}

	applications := make([]*entity.Seller, 0)
	for _, seller := range doc.Sellers {
		if seller.KYCStatus == entity.KYCPending {
			applications = append(applications, seller)
		}
	}

	return applications, nil
}

func defaultAmount(amount string) string {
	if amount == "" {
		return "0.00"
	}

	return amount
}
