// Package repository defines the persistence contract for the marketplace
// document store. The application layer depends on these interfaces, not on
// the concrete file or blob implementations.
package repository

import (
	"context"
	"errors"
	"sync"

	"ecomarket/internal/domain/entity"
)

// Not-found sentinels. Lookups and updates report a missing ID with one of
// these instead of a hard failure; any other error from the store is an I/O
// failure.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrSellerNotFound   = errors.New("seller not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrPayoutNotFound   = errors.New("payout not found")
)

// Document is the whole dataset: every collection the marketplace persists,
// held together so a store can read and write it as one unit.
type Document struct {
	Users                []*entity.User
	Sellers              []*entity.Seller
	Products             []*entity.Product
	CartItems            []*entity.CartItem
	Orders               []*entity.Order
	OrderItems           []*entity.OrderItem
	LoyaltyTransactions  []*entity.LoyaltyTransaction
	EnvironmentalActions []*entity.EnvironmentalAction
	Payouts              []*entity.Payout
}

// DocumentStore reads and writes the full document. There is no partial I/O:
// every operation is load everything, mutate in memory, save everything.
type DocumentStore interface {
	// Load reads the persisted document. A store that finds no persisted
	// document seeds itself with the initial dataset, persists it, and
	// returns it.
	Load(ctx context.Context) (*Document, error)

	// Save serializes the full document and overwrites the persisted copy.
	Save(ctx context.Context, doc *Document) error
}

// DocumentLock serializes read-modify-write cycles over the document. The
// bare overwrite strategy has no isolation of its own, so every mutating
// operation must hold the lock from its load to its save to avoid losing
// concurrent updates within the process.
type DocumentLock struct {
	mu sync.Mutex
}

func NewDocumentLock() *DocumentLock {
	return &DocumentLock{}
}

func (l *DocumentLock) Lock()   { l.mu.Lock() }
func (l *DocumentLock) Unlock() { l.mu.Unlock() }
