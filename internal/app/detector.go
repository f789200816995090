package app

import (
	"context"
	"io"
	"strings"

	"go.uber.org/zap"

	"buildquote/backend/internal/app/config"
	"buildquote/backend/internal/domain/detect"
	"buildquote/backend/internal/infra/vision/gcv"
	"buildquote/backend/internal/infra/vision/gemini"
)

type localizer interface {
	detect.Localizer
	io.Closer
}

// NewDetector builds the detection adapter for cfg. Missing or unusable
// credentials never fail startup: the adapter then only estimates. The
// returned closer releases the vision client, if any.
func NewDetector(ctx context.Context, cfg config.Config, rnd detect.Rand, log *zap.Logger) (*detect.Adapter, io.Closer) {
	loc := newLocalizer(ctx, cfg, log)
	a := detect.New(loc, rnd, cfg.DetectTimeout, log)
	if loc == nil {
		return a, nopCloser{}
	}
	return a, loc
}

func newLocalizer(ctx context.Context, cfg config.Config, log *zap.Logger) localizer {
	hasVision := strings.TrimSpace(cfg.GoogleServiceAccountJSONBase64) != ""
	hasGemini := strings.TrimSpace(cfg.GeminiAPIKey) != ""

	provider := cfg.Detector
	if provider == config.DetectorAuto {
		switch {
		case hasVision:
			provider = config.DetectorVision
		case hasGemini:
			provider = config.DetectorGemini
		default:
			provider = config.DetectorRandom
		}
	}

	switch provider {
	case config.DetectorVision:
		if !hasVision {
			log.Info("Google Vision key not found, using fallback estimates")
			return nil
		}
		creds, err := gcv.DecodeCredentials(cfg.GoogleServiceAccountJSONBase64)
		if err != nil {
			log.Error("vision init failed, using fallback estimates", zap.Error(err))
			return nil
		}
		c, err := gcv.New(ctx, creds)
		if err != nil {
			log.Error("vision init failed, using fallback estimates", zap.Error(err))
			return nil
		}
		log.Info("Google Vision enabled")
		return c
	case config.DetectorGemini:
		if !hasGemini {
			log.Info("Gemini key not found, using fallback estimates")
			return nil
		}
		c, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Error("gemini init failed, using fallback estimates", zap.Error(err))
			return nil
		}
		log.Info("Gemini vision enabled", zap.String("model", cfg.GeminiModel))
		return c
	default:
		log.Info("no vision provider configured, using fallback estimates")
		return nil
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
