package config

// PlayerConfig selects how one side chooses its moves.
type PlayerConfig struct {
	// Kind is one of human, random, minimax or alphabeta
	Kind string `validate:"required,oneof=human random minimax alphabeta"`

	// Depth is the search look-ahead in plies; ignored by human and random.
	// Minimax keeps the whole tree, so deeper searches do not fit in memory.
	Depth int `validate:"min=1,max=6"`
}

// NewPlayerConfig creates a PlayerConfig of the given kind at DefaultDepth.
func NewPlayerConfig(kind string) *PlayerConfig {
	return &PlayerConfig{
		Kind:  kind,
		Depth: DefaultDepth,
	}
}

// Validate checks the player configuration on its own.
func (p *PlayerConfig) Validate() error {
	return check(p)
}
