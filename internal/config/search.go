package config

// SearchConfig holds settings shared by the searching players.
type SearchConfig struct {
	// Workers is the number of goroutines evaluating root branches
	Workers int `validate:"min=1,max=64"`

	// Seed fixes the random source for tie-breaks and random players
	// (0 = seed from the runtime)
	Seed uint64
}

// NewSearchConfig creates a sequential, randomly seeded SearchConfig.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Workers: 1,
	}
}
