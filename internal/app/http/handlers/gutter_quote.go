package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"buildquote/backend/internal/domain/quote"
)

type GutterQuoteRequest struct {
	Address    string `json:"address"`
	LinearFeet Number `json:"linearFeet"`
	Stories    Number `json:"stories"`
}

type gutterQuoteResponse struct {
	ID    string  `json:"id"`
	Price float64 `json:"price"`
}

func (req GutterQuoteRequest) input() quote.GutterInput {
	return quote.GutterInput{
		Address:    req.Address,
		LinearFeet: req.LinearFeet.Float(),
		Stories:    req.Stories.Int(),
	}
}

// GutterQuote prices a gutter job, stores it and returns the id and price.
// stories and linearFeet are not range checked.
func (h *Handlers) GutterQuote(w http.ResponseWriter, r *http.Request) {
	q, ok := h.saveGutterQuote(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, gutterQuoteResponse{ID: q.ID, Price: q.Price})
}

func (h *Handlers) saveGutterQuote(w http.ResponseWriter, r *http.Request) (quote.GutterQuote, bool) {
	var req GutterQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Log.Debug("gutter quote: bad body", zap.Error(err))
		h.writeError(w, http.StatusBadRequest, msgInvalidBody)
		return quote.GutterQuote{}, false
	}

	q := quote.NewGutterQuote(req.input(), h.Now())
	if err := h.Quotes.InsertGutterQuote(r.Context(), q); err != nil {
		h.Log.Error("gutter quote: insert failed", zap.String("id", q.ID), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, msgSaveFailed)
		return quote.GutterQuote{}, false
	}
	h.Log.Info("gutter quote saved",
		zap.String("id", q.ID),
		zap.Float64("linear_feet", q.LinearFeet),
		zap.Int("stories", q.Stories),
		zap.Float64("price", q.Price))
	return q, true
}
