package models

// Difficulty levels used by the catalog. DifficultyAny is only meaningful
// as a search criterion.
const (
	DifficultyAny    = -1
	DifficultyEasy   = 0
	DifficultyMedium = 1
	DifficultyHard   = 2
)

// Recipe is one catalog entry. Image is either an absolute URL or an
// object key inside the configured bucket.
type Recipe struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Image           string   `json:"image"`
	VideoURL        string   `json:"video_url,omitempty"`
	Ingredients     []string `json:"ingredients"`
	Steps           []string `json:"steps"`
	Categories      []string `json:"categories,omitempty"`
	DurationMinutes int      `json:"duration_minutes"`
	Difficulty      int      `json:"difficulty"`
}

// DifficultyName renders a difficulty level for display.
func DifficultyName(level int) string {
	switch level {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}
