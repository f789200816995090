package quote

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGutterPrice(t *testing.T) {
	tests := []struct {
		name       string
		linearFeet float64
		stories    int
		want       float64
	}{
		{name: "two stories", linearFeet: 100, stories: 2, want: 156.25},
		{name: "one story", linearFeet: 50, stories: 1, want: 62.5},
		{name: "three stories", linearFeet: 80, stories: 3, want: 150},
		{name: "zero feet", linearFeet: 0, stories: 4, want: 0},
		{name: "zero stories not clamped", linearFeet: 100, stories: 0, want: 93.75},
		{name: "negative stories not clamped", linearFeet: 100, stories: -3, want: 0},
		{name: "very negative stories", linearFeet: 100, stories: -7, want: -125},
		{name: "negative feet", linearFeet: -10, stories: 1, want: -12.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, GutterPrice(tt.linearFeet, tt.stories), 1e-9)
		})
	}
}

func TestGutterPriceMatchesFormula(t *testing.T) {
	for stories := 1; stories <= 6; stories++ {
		for _, feet := range []float64{0, 1, 12.5, 99.9, 240} {
			want := feet * 1.25 * (1 + float64(stories-1)*0.25)
			assert.InDelta(t, want, GutterPrice(feet, stories), 1e-9, "feet=%v stories=%d", feet, stories)
		}
	}
}

func TestEstimateHeight(t *testing.T) {
	assert.InDelta(t, 12.0, EstimateHeight(10), 1e-9)
	assert.Equal(t, 0.0, EstimateHeight(0))
	assert.InDelta(t, -6.0, EstimateHeight(-5), 1e-9)
	for n := 0; n <= 50; n++ {
		assert.InDelta(t, float64(n)*1.2, EstimateHeight(n), 1e-9)
	}
}

func TestNewGutterQuote(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 6, 789_000_000, time.FixedZone("x", 3*3600))

	q := NewGutterQuote(GutterInput{Address: "1 Main St", LinearFeet: 100, Stories: 2}, now)

	_, err := uuid.Parse(q.ID)
	require.NoError(t, err)
	assert.Equal(t, "1 Main St", q.Address)
	assert.InDelta(t, 156.25, q.Price, 1e-9)
	assert.Equal(t, "2024-03-09T11:05:06.789Z", q.CreatedAt)
}

func TestNewBuildingQuoteFreshIDs(t *testing.T) {
	in := BuildingInput{Address: "2 Elm", Height: 12, WindowCount: 10, Price: 900}
	a := NewBuildingQuote(in, time.Now())
	b := NewBuildingQuote(in, time.Now())

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, in.Address, a.Address)
	assert.Equal(t, in.WindowCount, a.WindowCount)
	assert.Equal(t, in.Price, a.Price)
}
