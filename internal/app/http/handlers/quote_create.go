package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"buildquote/backend/internal/domain/quote"
)

const (
	msgInvalidBody = "Invalid request body."
	msgSaveFailed  = "Failed to save quote."
)

type CreateQuoteRequest struct {
	Address     string `json:"address"`
	Height      Number `json:"height"`
	WindowCount Number `json:"windowCount"`
	Price       Number `json:"price"`
}

type createQuoteResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

func (req CreateQuoteRequest) input() quote.BuildingInput {
	return quote.BuildingInput{
		Address:     req.Address,
		Height:      req.Height.Float(),
		WindowCount: req.WindowCount.Int(),
		Price:       req.Price.Float(),
	}
}

func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	q, ok := h.saveBuildingQuote(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, createQuoteResponse{Success: true, ID: q.ID})
}

// saveBuildingQuote decodes and stores a building quote. On failure it has
// already written the error response.
func (h *Handlers) saveBuildingQuote(w http.ResponseWriter, r *http.Request) (quote.BuildingQuote, bool) {
	var req CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Log.Debug("create quote: bad body", zap.Error(err))
		h.writeError(w, http.StatusBadRequest, msgInvalidBody)
		return quote.BuildingQuote{}, false
	}

	q := quote.NewBuildingQuote(req.input(), h.Now())
	if err := h.Quotes.InsertBuildingQuote(r.Context(), q); err != nil {
		h.Log.Error("create quote: insert failed", zap.String("id", q.ID), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, msgSaveFailed)
		return quote.BuildingQuote{}, false
	}
	h.Log.Info("quote saved", zap.String("id", q.ID), zap.Float64("price", q.Price))
	return q, true
}
