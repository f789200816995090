// Package db selects the quote store backend from a database URL.
package db

import (
	"context"
	"strings"

	"buildquote/backend/internal/domain/quote"
	"buildquote/backend/internal/infra/db/postgres"
	"buildquote/backend/internal/infra/db/sqlite"
)

type Store interface {
	quote.Repository
	Migrate(ctx context.Context) error
	Close() error
}

// Open connects to Postgres for postgres:// and postgresql:// URLs and
// treats anything else as a SQLite file path.
func Open(ctx context.Context, url string) (Store, error) {
	if IsPostgres(url) {
		pg, err := postgres.New(ctx, url)
		if err != nil {
			return nil, err
		}
		return pg, nil
	}
	lite, err := sqlite.New(url)
	if err != nil {
		return nil, err
	}
	return lite, nil
}

func IsPostgres(url string) bool {
	u := strings.ToLower(strings.TrimSpace(url))
	return strings.HasPrefix(u, "postgres://") || strings.HasPrefix(u, "postgresql://")
}
