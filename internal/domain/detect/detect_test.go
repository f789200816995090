package detect

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeLocalizer struct {
	objects []Object
	err     error
	calls   int
	path    string
}

func (f *fakeLocalizer) LocalizeObjects(ctx context.Context, imagePath string) ([]Object, error) {
	f.calls++
	f.path = imagePath
	return f.objects, f.err
}

type blockingLocalizer struct{}

func (blockingLocalizer) LocalizeObjects(ctx context.Context, imagePath string) ([]Object, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// fixedRand returns values from a script, in order.
type fixedRand struct {
	vals []int
	got  []int
}

func (f *fixedRand) IntN(n int) int {
	f.got = append(f.got, n)
	v := f.vals[0]
	f.vals = f.vals[1:]
	return v
}

func TestDetectWithoutLocalizerEstimatesInRange(t *testing.T) {
	a := New(nil, NewRand(7), 0, nil)
	assert.False(t, a.Enabled())

	for i := 0; i < 2000; i++ {
		out := a.Detect(context.Background(), "/tmp/x.jpg")
		require.Equal(t, SourceEstimated, out.Source)
		require.GreaterOrEqual(t, out.Count, FallbackMin)
		require.LessOrEqual(t, out.Count, FallbackMax)
	}
}

func TestDetectFallbackCoversBothBounds(t *testing.T) {
	a := New(nil, NewRand(1), 0, nil)
	seen := map[int]bool{}
	for i := 0; i < 5000; i++ {
		seen[a.Detect(context.Background(), "").Count] = true
	}
	assert.True(t, seen[FallbackMin])
	assert.True(t, seen[FallbackMax])
	assert.Len(t, seen, FallbackMax-FallbackMin+1)
}

func TestDetectEstimateUsesInjectedRand(t *testing.T) {
	r := &fixedRand{vals: []int{0, 39, 12}}
	a := New(nil, r, 0, nil)

	assert.Equal(t, Estimated(5), a.Detect(context.Background(), ""))
	assert.Equal(t, Estimated(44), a.Detect(context.Background(), ""))
	assert.Equal(t, Estimated(17), a.Detect(context.Background(), ""))
	assert.Equal(t, []int{40, 40, 40}, r.got)
}

func TestDetectCountsWindows(t *testing.T) {
	loc := &fakeLocalizer{objects: []Object{
		{Name: "Window"},
		{Name: "Building"},
		{Name: "window"},
		{Name: "Bay WINDOW frame"},
		{Name: "Door"},
	}}
	a := New(loc, &fixedRand{}, time.Second, nil)

	out := a.Detect(context.Background(), "/uploads/a.jpg")

	assert.Equal(t, Detected(3), out)
	assert.Equal(t, 1, loc.calls)
	assert.Equal(t, "/uploads/a.jpg", loc.path)
}

func TestDetectNoWindowsIsZeroDetected(t *testing.T) {
	a := New(&fakeLocalizer{objects: []Object{{Name: "Tree"}}}, &fixedRand{}, time.Second, nil)
	assert.Equal(t, Detected(0), a.Detect(context.Background(), "p"))
}

func TestDetectFailureFallsBackAndLogs(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	loc := &fakeLocalizer{err: errors.New("permission denied")}
	a := New(loc, &fixedRand{vals: []int{20}}, time.Second, zap.New(core))

	out := a.Detect(context.Background(), "p")

	assert.Equal(t, Estimated(25), out)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "vision call failed, using fallback estimate", entry.Message)
	assert.Equal(t, "permission denied", entry.ContextMap()["error"])
}

func TestDetectTimeoutFallsBack(t *testing.T) {
	a := New(blockingLocalizer{}, &fixedRand{vals: []int{3}}, 20*time.Millisecond, nil)

	start := time.Now()
	out := a.Detect(context.Background(), "p")

	assert.Equal(t, Estimated(8), out)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestNewRandSeeded(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.IntN(40), b.IntN(40))
	}
}

func TestCountWindows(t *testing.T) {
	assert.Equal(t, 0, CountWindows(nil))
	assert.Equal(t, 2, CountWindows([]Object{{Name: "windowpane"}, {Name: "WINDOW"}, {Name: "wind"}}))
}
