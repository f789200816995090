package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"buildquote/backend/internal/domain/quote"
)

func (db *DB) InsertBuildingQuote(ctx context.Context, q quote.BuildingQuote) error {
	const stmt = `INSERT INTO quotes (id, address, height, window_count, price, created_at)
VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := db.SQL.ExecContext(ctx, stmt, q.ID, q.Address, q.Height, q.WindowCount, q.Price, q.CreatedAt); err != nil {
		return fmt.Errorf("insert quote %s: %w", q.ID, err)
	}
	return nil
}

func (db *DB) InsertGutterQuote(ctx context.Context, q quote.GutterQuote) error {
	const stmt = `INSERT INTO gutter_quotes (id, address, linear_feet, stories, price, created_at)
VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := db.SQL.ExecContext(ctx, stmt, q.ID, q.Address, q.LinearFeet, q.Stories, q.Price, q.CreatedAt); err != nil {
		return fmt.Errorf("insert gutter quote %s: %w", q.ID, err)
	}
	return nil
}

func (db *DB) BuildingQuote(ctx context.Context, id string) (quote.BuildingQuote, error) {
	const q = `SELECT id, address, height, window_count, price, created_at FROM quotes WHERE id = ?`
	var out quote.BuildingQuote
	err := db.SQL.QueryRowContext(ctx, q, id).Scan(&out.ID, &out.Address, &out.Height, &out.WindowCount, &out.Price, &out.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return quote.BuildingQuote{}, quote.ErrNotFound
	}
	if err != nil {
		return quote.BuildingQuote{}, fmt.Errorf("select quote %s: %w", id, err)
	}
	return out, nil
}

func (db *DB) GutterQuote(ctx context.Context, id string) (quote.GutterQuote, error) {
	const q = `SELECT id, address, linear_feet, stories, price, created_at FROM gutter_quotes WHERE id = ?`
	var out quote.GutterQuote
	err := db.SQL.QueryRowContext(ctx, q, id).Scan(&out.ID, &out.Address, &out.LinearFeet, &out.Stories, &out.Price, &out.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return quote.GutterQuote{}, quote.ErrNotFound
	}
	if err != nil {
		return quote.GutterQuote{}, fmt.Errorf("select gutter quote %s: %w", id, err)
	}
	return out, nil
}
