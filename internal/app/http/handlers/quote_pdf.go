package handlers

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

const msgPDFFailed = "Failed to generate quote document."

// QuotePDF stores a building quote like CreateQuote and answers with a
// printable document instead of JSON.
func (h *Handlers) QuotePDF(w http.ResponseWriter, r *http.Request) {
	q, ok := h.saveBuildingQuote(w, r)
	if !ok {
		return
	}
	doc, err := h.PDF.Building(q)
	if err != nil {
		h.Log.Error("quote pdf failed", zap.String("id", q.ID), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, msgPDFFailed)
		return
	}
	writePDF(w, q.ID, doc)
}

func (h *Handlers) GutterQuotePDF(w http.ResponseWriter, r *http.Request) {
	q, ok := h.saveGutterQuote(w, r)
	if !ok {
		return
	}
	doc, err := h.PDF.Gutter(q)
	if err != nil {
		h.Log.Error("gutter quote pdf failed", zap.String("id", q.ID), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, msgPDFFailed)
		return
	}
	writePDF(w, q.ID, doc)
}

func writePDF(w http.ResponseWriter, id string, doc []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="quote-%s.pdf"`, id))
	w.Header().Set("X-Quote-Id", id)
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}
