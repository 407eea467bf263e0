// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	deliverycontext "ecomarket/internal/delivery/context"
	"ecomarket/internal/domain/repository"

	"github.com/shopspring/decimal"
)

// documentService is the shared core of every service: the document store,
// the process-wide write lock, and the fallback logger. Mutating operations
// must hold the lock from load to save; plain reads load without it.
type documentService struct {
	store  repository.DocumentStore
	lock   *repository.DocumentLock
	logger *slog.Logger
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *documentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// sumAmounts adds a list of decimal strings. Unparseable values count as
// zero rather than failing the whole aggregate.
func sumAmounts(amounts []string) decimal.Decimal {
	total := decimal.Zero
	for _, raw := range amounts {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}
		total = total.Add(d)
	}

	return total
}

// sortNewestFirst orders items by descending creation time.
func sortNewestFirst[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}
