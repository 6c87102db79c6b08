package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config. It does not validate; call Validate.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithFirst sets the player for the side that moves first.
func (b *ConfigBuilder) WithFirst(kind string, depth int) *ConfigBuilder {
	b.cfg.First = PlayerConfig{Kind: kind, Depth: depth}
	return b
}

// WithSecond sets the player for the side that moves second.
func (b *ConfigBuilder) WithSecond(kind string, depth int) *ConfigBuilder {
	b.cfg.Second = PlayerConfig{Kind: kind, Depth: depth}
	return b
}

// WithDepth sets the search depth of both players.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.First.Depth = depth
	b.cfg.Second.Depth = depth
	return b
}

// WithLayout sets the starting layout and board size.
func (b *ConfigBuilder) WithLayout(layout string, size int) *ConfigBuilder {
	b.cfg.Game.Layout = layout
	b.cfg.Game.Size = size
	return b
}

// WithMaxPlies limits the length of the game.
func (b *ConfigBuilder) WithMaxPlies(plies int) *ConfigBuilder {
	b.cfg.Game.MaxPlies = plies
	return b
}

// WithSeed fixes the random source.
func (b *ConfigBuilder) WithSeed(seed uint64) *ConfigBuilder {
	b.cfg.Search.Seed = seed
	return b
}

// WithWorkers sets the number of root search goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithColor enables coloured board output.
func (b *ConfigBuilder) WithColor(enabled bool) *ConfigBuilder {
	b.cfg.Output.Color = enabled
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// ShowBoard controls whether the board is printed after each ply.
func (b *ConfigBuilder) ShowBoard(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = show
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
