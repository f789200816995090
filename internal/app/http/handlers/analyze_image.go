package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"buildquote/backend/internal/domain/quote"
)

const (
	msgNoFile        = "No file uploaded."
	msgFileTooLarge  = "File too large."
	msgAnalyzeFailed = "Failed to analyze image."
)

type analyzeResponse struct {
	EstimatedWindows int     `json:"estimatedWindows"`
	EstimatedHeight  float64 `json:"estimatedHeight"`
}

// AnalyzeImage stores the uploaded photo, counts its windows and derives a
// height estimate. X-Estimate-Source tells detected counts from fallback ones.
func (h *Handlers) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)

	file, fh, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)
			return
		}
		h.Log.Debug("analyze image: no file", zap.Error(err))
		h.writeError(w, http.StatusBadRequest, msgNoFile)
		return
	}
	defer file.Close()
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	path, err := h.Uploads.Save(file, fh.Filename)
	if err != nil {
		h.Log.Error("analyze image: store upload failed",
			zap.String("filename", fh.Filename),
			zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, msgAnalyzeFailed)
		return
	}

	out := h.Detector.Detect(r.Context(), path)
	h.Log.Info("analyze image",
		zap.String("path", path),
		zap.Int64("size", fh.Size),
		zap.Int("windows", out.Count),
		zap.String("source", string(out.Source)))

	w.Header().Set("X-Estimate-Source", string(out.Source))
	h.writeJSON(w, http.StatusOK, analyzeResponse{
		EstimatedWindows: out.Count,
		EstimatedHeight:  quote.EstimateHeight(out.Count),
	})
}
