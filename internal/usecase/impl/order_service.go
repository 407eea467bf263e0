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

// orderService implements the OrderUsecase interface.
type orderService struct {
	documentService
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Store  repository.DocumentStore
	Lock   *repository.DocumentLock
	Logger *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		documentService: documentService{
			store:  params.Store,
			lock:   params.Lock,
			logger: params.Logger,
		},
	}
}

func (srv *orderService) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for order lookup")
	}

	for _, order := range doc.Orders {
		if order.ID == id {
			return order, nil
		}
	}

	return nil, errors.Wrap(repository.ErrOrderNotFound, "failed to get order")
}

// GetOrderWithItems joins an order with its buyer, seller, and item lines.
// Buyer and seller must both resolve or the order is reported as not found;
// item lines with an unresolvable product are dropped from the item list.
func (srv *orderService) GetOrderWithItems(ctx context.Context, id string) (*entity.OrderWithItems, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for order lookup")
	}

	joined := joinOrder(doc, id)
	if joined == nil {
		return nil, errors.Wrap(repository.ErrOrderNotFound, "failed to get order with items")
	}

	return joined, nil
}

// GetOrders lists orders matching the filter, each fully joined. Orders that
// fail the strict buyer/seller join are excluded from the listing.
func (srv *orderService) GetOrders(ctx context.Context, filter usecase.OrderFilter) ([]*entity.OrderWithItems, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for order listing")
	}

	results := make([]*entity.OrderWithItems, 0)
	for _, order := range doc.Orders {
		if filter.BuyerID != "" && order.BuyerID != filter.BuyerID {
			continue
		}
		if filter.SellerID != "" && order.SellerID != filter.SellerID {
			continue
		}
		if filter.Status != "" && string(order.Status) != filter.Status {
			continue
		}

		if joined := joinOrder(doc, order.ID); joined != nil {
			results = append(results, joined)
		}
	}

	return results, nil
}

func (srv *orderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*entity.Order, error) {
	status := entity.OrderPending
	if input.Status != "" {
		status = entity.OrderStatus(input.Status)
	}
	paymentStatus := entity.PaymentPending
	if input.PaymentStatus != "" {
		paymentStatus = entity.PaymentStatus(input.PaymentStatus)
	}

	now := time.Now()
	newOrder := &entity.Order{
		ID:                  uuid.NewString(),
		BuyerID:             input.BuyerID,
		SellerID:            input.SellerID,
		Status:              status,
		PaymentStatus:       paymentStatus,
		TotalAmount:         input.TotalAmount,
		PlatformFee:         defaultAmount(input.PlatformFee),
		LoyaltyPointsEarned: input.LoyaltyPointsEarned,
		LoyaltyPointsUsed:   input.LoyaltyPointsUsed,
		ShippingAddress:     input.ShippingAddress,
		PaymentIntentID:     input.PaymentIntentID,
		EscrowReleaseDate:   input.EscrowReleaseDate,
		EnvironmentalImpact: input.EnvironmentalImpact,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	srv.lock.Lock()
	defer srv.lock.Unlock()

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for order creation")
	}

	doc.Orders = append(doc.Orders, newOrder)

	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "failed to save document after order creation")
	}
	srv.log(ctx).Debug("Order created",
		slog.String("orderID", newOrder.ID),
		slog.String("buyerID", newOrder.BuyerID),
		slog.String("sellerID", newOrder.SellerID))

	return newOrder, nil
}

func (srv *orderService) UpdateOrder(ctx context.Context, id string, input usecase.UpdateOrderInput) (*entity.Order, error) {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for order update")
	}

	var order *entity.Order
	for _, o := range doc.Orders {
		if o.ID == id {
			order = o

			break
		}
	}
	if order == nil {
		return nil, errors.Wrap(repository.ErrOrderNotFound, "failed to update order")
	}

	if input.Status != nil {
		order.Status = entity.OrderStatus(*input.Status)
	}
	if input.PaymentStatus != nil {
		order.PaymentStatus = entity.PaymentStatus(*input.PaymentStatus)
	}
	if input.TotalAmount != nil {
		order.TotalAmount = *input.TotalAmount
	}
	if input.PlatformFee != nil {
		order.PlatformFee = *input.PlatformFee
	}
	if input.LoyaltyPointsEarned != nil {
		order.LoyaltyPointsEarned = *input.LoyaltyPointsEarned
	}
	if input.LoyaltyPointsUsed != nil {
		order.LoyaltyPointsUsed = *input.LoyaltyPointsUsed
	}
	if input.PaymentIntentID != nil {
		order.PaymentIntentID = *input.PaymentIntentID
	}
	if input.EscrowReleaseDate != nil {
		order.EscrowReleaseDate = *input.EscrowReleaseDate
	}
	if input.DisputeReason != nil {
		order.DisputeReason = input.DisputeReason
	}
	if input.AdminNotes != nil {
		order.AdminNotes = input.AdminNotes
	}
	order.UpdatedAt = time.Now()

	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "failed to save document after order update")
	}

	return order, nil
}

// CreateOrderItem appends one order line. The line carries no timestamp of
// its own; it snapshots the unit price at purchase time.
func (srv *orderService) CreateOrderItem(ctx context.Context, input usecase.CreateOrderItemInput) (*entity.OrderItem, error) {
	newItem := &entity.OrderItem{
		ID:        uuid.NewString(),
		OrderID:   input.OrderID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Price:     input.Price,
	}

	srv.lock.Lock()
	defer srv.lock.Unlock()

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for order item creation")
	}

	doc.OrderItems = append(doc.OrderItems, newItem)

	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "failed to save document after order item creation")
	}

	return newItem, nil
}

// joinOrder assembles the full order view, or nil when the order, its buyer,
// or its seller is missing.
func joinOrder(doc *repository.Document, id string) *entity.OrderWithItems {
	var order *entity.Order
	for _, o := range doc.Orders {
		if o.ID == id {
			order = o

			break
		}
	}
	if order == nil {
		return nil
	}

	var buyer *entity.User
	for _, u := range doc.Users {
		if u.ID == order.BuyerID {
			buyer = u

			break
		}
	}

	seller := findSeller(doc, order.SellerID)
	if buyer == nil || seller == nil {
		return nil
	}

	items := make([]entity.OrderItemWithProduct, 0)
	for _, item := range doc.OrderItems {
		if item.OrderID != id {
			continue
		}

		var product *entity.Product
		for _, p := range doc.Products {
			if p.ID == item.ProductID {
				product = p

				break
			}
		}
		if product == nil {
			continue
		}

		items = append(items, entity.OrderItemWithProduct{OrderItem: *item, Product: *product})
	}

	return &entity.OrderWithItems{
		Order:  *order,
		Items:  items,
		Buyer:  *buyer,
		Seller: *seller,
	}
}
