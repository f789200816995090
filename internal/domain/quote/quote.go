package quote

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// TimeLayout is the form created_at is stored in: UTC, millisecond precision.
const TimeLayout = "2006-01-02T15:04:05.000Z"

var ErrNotFound = errors.New("quote not found")

type BuildingQuote struct {
	ID          string  `json:"id"`
	Address     string  `json:"address"`
	Height      float64 `json:"height"`
	WindowCount int     `json:"windowCount"`
	Price       float64 `json:"price"`
	CreatedAt   string  `json:"createdAt"`
}

type GutterQuote struct {
	ID         string  `json:"id"`
	Address    string  `json:"address"`
	LinearFeet float64 `json:"linearFeet"`
	Stories    int     `json:"stories"`
	Price      float64 `json:"price"`
	CreatedAt  string  `json:"createdAt"`
}

type BuildingInput struct {
	Address     string
	Height      float64
	WindowCount int
	Price       float64
}

type GutterInput struct {
	Address    string
	LinearFeet float64
	Stories    int
}

// Repository is append-only: rows are inserted once and never updated.
type Repository interface {
	InsertBuildingQuote(ctx context.Context, q BuildingQuote) error
	InsertGutterQuote(ctx context.Context, q GutterQuote) error
	BuildingQuote(ctx context.Context, id string) (BuildingQuote, error)
	GutterQuote(ctx context.Context, id string) (GutterQuote, error)
}

func NewBuildingQuote(in BuildingInput, now time.Time) BuildingQuote {
	return BuildingQuote{
		ID:          uuid.NewString(),
		Address:     in.Address,
		Height:      in.Height,
		WindowCount: in.WindowCount,
		Price:       in.Price,
		CreatedAt:   Timestamp(now),
	}
}

// NewGutterQuote prices the input and stamps a fresh id and creation time.
func NewGutterQuote(in GutterInput, now time.Time) GutterQuote {
	return GutterQuote{
		ID:         uuid.NewString(),
		Address:    in.Address,
		LinearFeet: in.LinearFeet,
		Stories:    in.Stories,
		Price:      GutterPrice(in.LinearFeet, in.Stories),
		CreatedAt:  Timestamp(now),
	}
}

func Timestamp(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
