package config

// ConfigBuilder provides a fluent API for building Config instances.
// Command-line flags use it to override values read from the config file.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// From starts a builder from a copy of cfg.
func From(cfg *Config) *ConfigBuilder {
	c := *cfg
	return &ConfigBuilder{cfg: &c}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithSymbols sets the symbol set.
func (b *ConfigBuilder) WithSymbols(s SymbolSet) *ConfigBuilder {
	b.cfg.Display.Symbols = s
	return b
}

// WithPlain selects the line-mode console.
func (b *ConfigBuilder) WithPlain(plain bool) *ConfigBuilder {
	b.cfg.Display.Plain = plain
	return b
}

// WithPlacementFile sets the initial placement file.
func (b *ConfigBuilder) WithPlacementFile(path string) *ConfigBuilder {
	b.cfg.PlacementFile = path
	return b
}

// WithLogFile sets the diagnostics log file.
func (b *ConfigBuilder) WithLogFile(path string) *ConfigBuilder {
	b.cfg.LogFile = path
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
