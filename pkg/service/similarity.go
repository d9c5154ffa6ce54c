package service

const (
	VerySimilar     = "Very similar"
	Similar         = "Similar"
	SomewhatSimilar = "Somewhat similar"
	NotVerySimilar  = "Not very similar"
)

// Interpret classifies a cosine similarity. Thresholds are strict, so a
// score of exactly 0.8 is "Similar".
func Interpret(score float64) string {
	switch {
	case score > 0.8:
		return VerySimilar
	case score > 0.6:
		return Similar
	case score > 0.4:
		return SomewhatSimilar
	default:
		return NotVerySimilar
	}
}
