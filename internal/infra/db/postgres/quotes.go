package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"buildquote/backend/internal/domain/quote"
)

func (db *DB) InsertBuildingQuote(ctx context.Context, q quote.BuildingQuote) error {
	const stmt = `insert into quotes (id, address, height, window_count, price, created_at)
values ($1, $2, $3, $4, $5, $6)`
	if _, err := db.Pool.Exec(ctx, stmt, q.ID, q.Address, q.Height, q.WindowCount, q.Price, q.CreatedAt); err != nil {
		return fmt.Errorf("insert quote %s: %w", q.ID, err)
	}
	return nil
}

func (db *DB) InsertGutterQuote(ctx context.Context, q quote.GutterQuote) error {
	const stmt = `insert into gutter_quotes (id, address, linear_feet, stories, price, created_at)
values ($1, $2, $3, $4, $5, $6)`
	if _, err := db.Pool.Exec(ctx, stmt, q.ID, q.Address, q.LinearFeet, q.Stories, q.Price, q.CreatedAt); err != nil {
		return fmt.Errorf("insert gutter quote %s: %w", q.ID, err)
	}
	return nil
}

func (db *DB) BuildingQuote(ctx context.Context, id string) (quote.BuildingQuote, error) {
	const q = `select id, address, height, window_count, price, created_at from quotes where id = $1`
	var out quote.BuildingQuote
	err := db.Pool.QueryRow(ctx, q, id).Scan(&out.ID, &out.Address, &out.Height, &out.WindowCount, &out.Price, &out.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return quote.BuildingQuote{}, quote.ErrNotFound
	}
	if err != nil {
		return quote.BuildingQuote{}, fmt.Errorf("select quote %s: %w", id, err)
	}
	return out, nil
}

func (db *DB) GutterQuote(ctx context.Context, id string) (quote.GutterQuote, error) {
	const q = `select id, address, linear_feet, stories, price, created_at from gutter_quotes where id = $1`
	var out quote.GutterQuote
	err := db.Pool.QueryRow(ctx, q, id).Scan(&out.ID, &out.Address, &out.LinearFeet, &out.Stories, &out.Price, &out.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return quote.GutterQuote{}, quote.ErrNotFound
	}
	if err != nil {
		return quote.GutterQuote{}, fmt.Errorf("select gutter quote %s: %w", id, err)
	}
	return out, nil
}
