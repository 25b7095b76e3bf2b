package config

// ConverterConfig contains converter-specific configuration
type ConverterConfig struct {
	RejectDuplicates bool `yaml:"rejectDuplicates"`
}

// LoggingConfig controls CLI log output
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=auto console json"` // auto picks console on a terminal
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Input     string          `yaml:"input" validate:"required"`
	Output    string          `yaml:"output" validate:"required"`
	Format    string          `yaml:"format" validate:"oneof=xml jsonl"`
	Converter ConverterConfig `yaml:"converter"`
	Logging   LoggingConfig   `yaml:"logging"`
}
