package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildquote/backend/internal/domain/quote"
)

var _ quote.Repository = (*DB)(nil)

// Runs against a real server only when TEST_DATABASE_URL is set.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(ctx))
	return db
}

func TestRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	b := quote.NewBuildingQuote(quote.BuildingInput{Address: "12 Oak", Height: 12, WindowCount: 10, Price: 900}, time.Now())
	require.NoError(t, db.InsertBuildingQuote(ctx, b))
	gotB, err := db.BuildingQuote(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, gotB)

	g := quote.NewGutterQuote(quote.GutterInput{Address: "1 Main", LinearFeet: 50, Stories: 1}, time.Now())
	require.NoError(t, db.InsertGutterQuote(ctx, g))
	gotG, err := db.GutterQuote(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, g, gotG)

	_, err = db.GutterQuote(ctx, "missing")
	assert.ErrorIs(t, err, quote.ErrNotFound)
}

func TestNewRejectsBadDSN(t *testing.T) {
	_, err := New(context.Background(), "postgres://%zz")
	assert.Error(t, err)
}
