// Package detect turns a building photograph into a window count.
//
// A Localizer is the external vision capability. When none is configured, or
// when it fails or times out, the Adapter falls back to a random estimate in
// [FallbackMin, FallbackMax] and never reports the failure to its caller.
package detect

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	FallbackMin = 5
	FallbackMax = 44

	DefaultTimeout = 10 * time.Second
)

// Object is one labeled region returned by a vision capability.
type Object struct {
	Name  string  `json:"name"`
	Score float32 `json:"score"`
}

type Localizer interface {
	LocalizeObjects(ctx context.Context, imagePath string) ([]Object, error)
}

type Source string

const (
	SourceDetected  Source = "detected"
	SourceEstimated Source = "estimated"
)

// Outcome is either a real detection or a fallback estimate.
type Outcome struct {
	Count  int
	Source Source
}

func Detected(n int) Outcome  { return Outcome{Count: n, Source: SourceDetected} }
func Estimated(n int) Outcome { return Outcome{Count: n, Source: SourceEstimated} }

type Adapter struct {
	Localizer Localizer
	Rand      Rand
	Timeout   time.Duration
	Log       *zap.Logger
}

// New returns an adapter over loc. A nil loc means every call is estimated.
func New(loc Localizer, rnd Rand, timeout time.Duration, log *zap.Logger) *Adapter {
	if rnd == nil {
		rnd = NewRand(uint64(time.Now().UnixNano()))
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{Localizer: loc, Rand: rnd, Timeout: timeout, Log: log}
}

func (a *Adapter) Enabled() bool { return a.Localizer != nil }

func (a *Adapter) Detect(ctx context.Context, imagePath string) Outcome {
	if a.Localizer == nil {
		return a.estimate()
	}

	ctx, cancel := context.WithTimeout(ctx, a.Timeout)
	defer cancel()

	objects, err := a.Localizer.LocalizeObjects(ctx, imagePath)
	if err != nil {
		a.Log.Warn("vision call failed, using fallback estimate",
			zap.String("image", imagePath),
			zap.Error(err))
		return a.estimate()
	}

	n := CountWindows(objects)
	a.Log.Debug("vision detection",
		zap.String("image", imagePath),
		zap.Int("objects", len(objects)),
		zap.Int("windows", n))
	return Detected(n)
}

func (a *Adapter) estimate() Outcome {
	return Estimated(FallbackMin + a.Rand.IntN(FallbackMax-FallbackMin+1))
}

// CountWindows counts objects whose name contains "window", ignoring case.
func CountWindows(objects []Object) int {
	n := 0
	for _, o := range objects {
		if strings.Contains(strings.ToLower(o.Name), "window") {
			n++
		}
	}
	return n
}
