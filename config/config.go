package config

// Service defines the configuration for the scoring service.
type Service struct {
	// NamingConvention is the naming convention used while deriving
	// the covariate names from the template structures.
	// Allowed values:
	// - camel
	// - lowercamel
	// - snake
	// - kebab
	NamingConvention string `mapstructure:"naming_convention"`

	// LogLevel is the current logging level.
	LogLevel string `mapstructure:"log_level"`

	// ValidatorAlias is the struct tag name used by the subject validator.
	ValidatorAlias string `mapstructure:"validator_alias"`

	// DefaultModelName defines the risk model used when no explicit model
	// name is provided for the scoring.
	DefaultModelName string `mapstructure:"default_model_name"`

	// CollectRowErrors defines if the batch scoring should continue on the
	// row failures and report all of them once finished, instead of
	// stopping at the first invalid row.
	CollectRowErrors bool `mapstructure:"collect_row_errors"`

	// Population is the config used for the population sampling.
	Population *Population `mapstructure:"population" validate:"required"`
}

// Population defines the configuration for the population sampling.
type Population struct {
	// Seed is the pseudo random source seed used by the samplers.
	Seed uint64 `mapstructure:"seed"`

	// Size is the default number of subjects to sample.
	Size int `mapstructure:"size" validate:"gte=0"`
}

// DefaultPopulation returns the default population sampling configuration.
func DefaultPopulation() *Population {
	return &Population{
		Seed: 1234,
		Size: 1000,
	}
}
