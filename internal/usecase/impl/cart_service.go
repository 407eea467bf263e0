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

// cartService implements the CartUsecase interface.
type cartService struct {
	documentService
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Store  repository.DocumentStore
	Lock   *repository.DocumentLock
	Logger *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		documentService: documentService{
			store:  params.Store,
			lock:   params.Lock,
			logger: params.Logger,
		},
	}
}

// GetCartItems lists a user's cart joined with products and sellers. Items
// whose product or seller cannot be resolved are dropped from the listing
// but stay in the stored cart.
func (srv *cartService) GetCartItems(ctx context.Context, userID string) ([]*entity.CartItemWithProduct, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for cart listing")
	}

	items := make([]*entity.CartItemWithProduct, 0)
	for _, item := range doc.CartItems {
		if item.UserID != userID {
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

		seller := findSeller(doc, product.SellerID)
		if seller == nil {
			continue
		}

		items = append(items, &entity.CartItemWithProduct{
			CartItem: *item,
			Product:  entity.ProductWithSeller{Product: *product, Seller: *seller},
		})
	}

	return items, nil
}

// AddToCart inserts a cart row or, when the (user, product) pair already
// exists, increments the existing row's quantity instead.
func (srv *cartService) AddToCart(ctx context.Context, input usecase.AddToCartInput) (*entity.CartItem, error) {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for cart add")
	}

	for _, item := range doc.CartItems {
		if item.UserID == input.UserID && item.ProductID == input.ProductID {
			item.Quantity += input.Quantity

			if err := srv.store.Save(ctx, doc); err != nil {
				return nil, errors.Wrap(err, "failed to save document after cart merge")
			}

			return item, nil
		}
	}

	newItem := &entity.CartItem{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		CreatedAt: time.Now(),
	}
	doc.CartItems = append(doc.CartItems, newItem)

	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "failed to save document after cart add")
	}

	return newItem, nil
}

// UpdateCartItem replaces the item's quantity. A quantity of zero or less
// removes the item and returns the removed row.
func (srv *cartService) UpdateCartItem(ctx context.Context, id string, quantity int) (*entity.CartItem, error) {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document for cart update")
	}

	index := -1
	for i, item := range doc.CartItems {
		if item.ID == id {
			index = i

			break
		}
	}
	if index == -1 {
		return nil, errors.Wrap(repository.ErrCartItemNotFound, "failed to update cart item")
	}

	if quantity <= 0 {
		removed := doc.CartItems[index]
		doc.CartItems = append(doc.CartItems[:index], doc.CartItems[index+1:]...)

		if err := srv.store.Save(ctx, doc); err != nil {
			return nil, errors.Wrap(err, "failed to save document after cart item removal")
		}

		return removed, nil
	}

	doc.CartItems[index].Quantity = quantity

	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "failed to save document after cart update")
	}

	return doc.CartItems[index], nil
}

func (srv *cartService) RemoveFromCart(ctx context.Context, id string) error {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load document for cart removal")
	}

	remaining := make([]*entity.CartItem, 0, len(doc.CartItems))
	for _, item := range doc.CartItems {
		if item.ID != id {
			remaining = append(remaining, item)
		}
	}
	if len(remaining) == len(doc.CartItems) {
		return errors.Wrap(repository.ErrCartItemNotFound, "failed to remove cart item")
	}
	doc.CartItems = remaining

	if err := srv.store.Save(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to save document after cart removal")
	}

	return nil
}

// ClearCart removes every cart item belonging to the user. Clearing an
// already empty cart is a no-op, not an error.
func (srv *cartService) ClearCart(ctx context.Context, userID string) error {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load document for cart clear")
	}

	remaining := make([]*entity.CartItem, 0, len(doc.CartItems))
	for _, item := range doc.CartItems {
		if item.UserID != userID {
			remaining = append(remaining, item)
		}
	}
	if len(remaining) == len(doc.CartItems) {
		return nil
	}
	doc.CartItems = remaining

	if err := srv.store.Save(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to save document after cart clear")
	}
	srv.log(ctx).Debug("Cart cleared", slog.String("userID", userID))

	return nil
}
