package config

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// GameConfig holds settings for the board and the length of a game.
type GameConfig struct {
	// Size is the board edge length; layouts must match it. Square
	// notation runs a..h and 1..8, so boards larger than 8 cannot be played.
	Size int `validate:"min=5,max=8"`

	// Layout is the starting position in layout encoding
	Layout string `validate:"required"`

	// MaxPlies stops the game after this many plies (0 = no limit)
	MaxPlies int `validate:"min=0"`
}

// NewGameConfig creates a GameConfig for a standard game with no ply limit.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		Size:   chess.StandardSize,
		Layout: chess.StandardLayout,
	}
}

// NewPosition builds the starting position described by the config.
func (g *GameConfig) NewPosition() (*chess.Position, error) {
	pos := chess.NewPosition(g.Size)
	if err := pos.PlaceLayout(g.Layout); err != nil {
		return nil, err
	}
	return pos, nil
}
