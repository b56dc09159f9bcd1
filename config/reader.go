package config

import (
	"github.com/spf13/viper"

	"github.com/cardiolabs/cvdrisk/errors"
	"github.com/cardiolabs/cvdrisk/errors/class"
	"github.com/cardiolabs/cvdrisk/log"
)

var defaultConfig *Service

// ViperSetDefaults sets the default values for the viper config.
func ViperSetDefaults(v *viper.Viper) {
	setDefaults(v)
}

// ReadNamedConfig reads the config with the provided name.
func ReadNamedConfig(name string) (*Service, error) {
	return readNamedConfig(name)
}

// ReadConfig reads the config with the default 'config' name.
func ReadConfig() (*Service, error) {
	return readNamedConfig("config")
}

// ReadDefaultConfig reads the default service configuration.
func ReadDefaultConfig() *Service {
	return readDefaultConfig()
}

func readNamedConfig(name string) (*Service, error) {
	v := viper.New()
	v.SetConfigName(name)

	v.AddConfigPath(".")
	v.AddConfigPath("configs")

	setDefaults(v)

	err := v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.Newf(class.ConfigReadNotFound, "config file: '%s' not found", name)
		}
		return nil, err
	}

	s := &Service{}
	if err = v.Unmarshal(s); err != nil {
		log.Debugf("Unmarshaling Service Config failed. %v", err)
		return nil, err
	}

	return s, nil
}

func readDefaultConfig() *Service {
	if defaultConfig == nil {
		v := viper.New()
		setDefaults(v)

		s := &Service{}

		if err := v.Unmarshal(s); err != nil {
			log.Debugf("Unmarshaling Config failed: %v", err)
			panic(err)
		}
		defaultConfig = s
	}

	return defaultConfig
}

// Default values
func setDefaults(v *viper.Viper) {
	keys := map[string]interface{}{
		"naming_convention":  "snake",
		"validator_alias":    "validate",
		"default_model_name": "framingham",
		"population":         DefaultPopulation(),
	}

	for k, value := range keys {
		v.SetDefault(k, value)
	}
}
