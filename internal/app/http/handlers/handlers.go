package handlers

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"buildquote/backend/internal/domain/detect"
	"buildquote/backend/internal/domain/quote"
	"buildquote/backend/internal/domain/quote/pdf"
)

const defaultMaxUploadBytes = 25 << 20

type Detector interface {
	Detect(ctx context.Context, imagePath string) detect.Outcome
}

type Uploads interface {
	Save(r io.Reader, filename string) (string, error)
}

type Handlers struct {
	Quotes   quote.Repository
	Detector Detector
	Uploads  Uploads
	PDF      pdf.Generator
	Log      *zap.Logger

	MaxUploadBytes int64
	Now            func() time.Time
}

func New(quotes quote.Repository, det Detector, uploads Uploads, gen pdf.Generator, log *zap.Logger, maxUploadBytes int64) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handlers{
		Quotes:         quotes,
		Detector:       det,
		Uploads:        uploads,
		PDF:            gen,
		Log:            log,
		MaxUploadBytes: maxUploadBytes,
		Now:            time.Now,
	}
}
