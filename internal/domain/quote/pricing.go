package quote

const (
	// GutterBaseRate is the price per linear foot of a single-story run.
	GutterBaseRate = 1.25
	// StoryIncrement is added to the multiplier for every story above the first.
	StoryIncrement = 0.25

	// HeightPerWindow is the rough building height contributed by one window.
	HeightPerWindow = 1.2
)

// EstimateHeight turns a window count into a height estimate.
// Counts are not bounds checked.
func EstimateHeight(windowCount int) float64 {
	return float64(windowCount) * HeightPerWindow
}

// StoriesMultiplier returns 1 for one story and grows by StoryIncrement per
// extra story. Zero or negative stories yield a multiplier below 1.
func StoriesMultiplier(stories int) float64 {
	return 1 + float64(stories-1)*StoryIncrement
}

func GutterPrice(linearFeet float64, stories int) float64 {
	return linearFeet * GutterBaseRate * StoriesMultiplier(stories)
}
