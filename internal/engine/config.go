package engine

// Config carries the engine's tuning constants. The three thresholds
// are intentionally independent: the idea generator, the occasion
// matcher and the suitability rules were each tuned separately and
// share no single correct cutoff.
type Config struct {
	// StyleWeight and ColorWeight blend cohesion and harmony into the
	// overall compatibility score.
	StyleWeight float64
	ColorWeight float64

	// OccasionWeight and CoherenceWeight blend occasion similarity and
	// internal coherence when ranking existing outfits.
	OccasionWeight  float64
	CoherenceWeight float64

	// MinCoherence is the hard filter below which an outfit is dropped
	// from occasion ranking entirely.
	MinCoherence float64

	// IdeaThreshold is the minimum overall compatibility for a generated
	// outfit idea to be accepted.
	IdeaThreshold float64

	// IdeaAttempts bounds the random sampling loop of the generator.
	IdeaAttempts int

	// SuitabilityThreshold is the minimum confidence for an occasion to
	// be named in the suitability description.
	SuitabilityThreshold float64
}

func DefaultConfig() Config {
	return Config{
		StyleWeight:          0.7,
		ColorWeight:          0.3,
		OccasionWeight:       0.7,
		CoherenceWeight:      0.3,
		MinCoherence:         0.4,
		IdeaThreshold:        0.55,
		IdeaAttempts:         15,
		SuitabilityThreshold: 0.6,
	}
}
