package pdf

import "buildquote/backend/internal/domain/quote"

type Generator interface {
	Building(q quote.BuildingQuote) ([]byte, error)
	Gutter(q quote.GutterQuote) ([]byte, error)
}
