package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// ShowBoard prints the board after every ply
	ShowBoard bool

	// Color enables ANSI colours in board diagrams
	Color bool

	// JSONFormat writes the finished game as JSON instead of a move list
	JSONFormat bool

	// ShowCoordinates labels files and ranks around the board
	ShowCoordinates bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard:       true,
		ShowCoordinates: true,
	}
}
