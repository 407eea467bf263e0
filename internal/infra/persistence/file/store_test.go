package file

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"ecomarket/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStore_Load_SeedsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "db.json")
	s := New(path, testLogger())

	doc, err := s.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, doc.Users, 3)
	assert.Len(t, doc.Sellers, 1)
	assert.Len(t, doc.Products, 3)
	assert.Len(t, doc.Orders, 1)
	assert.Empty(t, doc.CartItems)
	assert.Empty(t, doc.Payouts)

	// The seed is written back, so the file now exists on disk.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestStore_SaveLoad_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	s := New(path, testLogger())
	ctx := context.Background()

	doc, err := s.Load(ctx)
	require.NoError(t, err)

	doc.Users[0].LoyaltyPoints = 9999
	doc.Payouts = append(doc.Payouts, &entity.Payout{
		ID:       "payout-test",
		SellerID: "seller1",
		Amount:   "100.00",
		Status:   entity.PayoutPending,
	})
	require.NoError(t, s.Save(ctx, doc))

	reloaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9999, reloaded.Users[0].LoyaltyPoints)
	require.Len(t, reloaded.Payouts, 1)
	assert.Equal(t, "payout-test", reloaded.Payouts[0].ID)
	assert.Nil(t, reloaded.Payouts[0].ProcessedAt)
}

func TestStore_PersistedTimestampFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	s := New(path, testLogger())

	_, err := s.Load(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Seed user1 joined on 2024-01-15; timestamps carry millisecond
	// precision with a UTC Z suffix.
	assert.Contains(t, string(data), `"2024-01-15T00:00:00.000Z"`)
}

func TestStore_Save_LeavesNoTemporaryFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.json")
	s := New(path, testLogger())
	ctx := context.Background()

	doc, err := s.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, doc))

	// The write lands in a temp file that is renamed over db.json, so
	// only the final file remains.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "db.json", entries[0].Name())
}

func TestStore_Load_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := New(path, testLogger())
	_, err := s.Load(context.Background())
	assert.Error(t, err)
}
