package cvdrisk

import (
	"sort"
	"strings"

	"github.com/neuronlabs/uni-logger"
	validator "gopkg.in/go-playground/validator.v9"

	"github.com/cardiolabs/cvdrisk/config"
	"github.com/cardiolabs/cvdrisk/errors"
	"github.com/cardiolabs/cvdrisk/errors/class"
	"github.com/cardiolabs/cvdrisk/log"
	"github.com/cardiolabs/cvdrisk/namer"
	"github.com/cardiolabs/cvdrisk/population"
	"github.com/cardiolabs/cvdrisk/risk"
	"github.com/cardiolabs/cvdrisk/subject"
	"github.com/cardiolabs/cvdrisk/table"
)

var (
	validate       = validator.New()
	defaultService *Service
)

// Service is the root structure responsible for controlling the risk models,
// the subject templates and the population sampling.
type Service struct {
	// Config is the configuration struct for the service.
	Config *config.Service

	// NamerFunc defines the function strategy how the covariates are named
	// after the untagged template fields.
	NamerFunc namer.Namer

	// SubjectValidator is used as a validator for the subject records.
	SubjectValidator *validator.Validate

	// models is the mapping of the registered risk models by their names.
	models map[string]risk.Model
}

// New creates and returns new Service for provided 'cfg' config.
func New(cfg *config.Service) (*Service, error) {
	s, err := newService(cfg)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// SetDefault sets the 's' Service as default.
func SetDefault(s *Service) {
	defaultService = s
}

// Default creates new Service with default config.
func Default() *Service {
	if defaultService == nil {
		s, err := newService(config.ReadDefaultConfig())
		if err != nil {
			panic(err)
		}
		defaultService = s
	}
	return defaultService
}

/**
 *
 * Models
 *
 */

// RegisterModel registers the risk model 'm' within the service.
// Returns error if a model with the same name was already registered.
func (s *Service) RegisterModel(m risk.Model) error {
	if m == nil {
		return errors.New(class.ModelValueNil, "provided nil risk model")
	}

	if _, ok := s.models[m.Name()]; ok {
		return errors.Newf(class.ModelAlreadyRegistered, "model: '%s' is already registered", m.Name())
	}
	s.models[m.Name()] = m

	log.Debugf("Model: '%s' registered within the service", m.Name())
	return nil
}

// Model gets the registered risk model with the provided 'name'.
// Providing the empty name gets the service's default model.
func (s *Service) Model(name string) (risk.Model, error) {
	if name == "" {
		name = s.Config.DefaultModelName
	}

	m, ok := s.models[name]
	if !ok {
		return nil, errors.Newf(class.ModelNotRegistered, "model: '%s' is not registered", name)
	}
	return m, nil
}

// Models returns the sorted names of all the risk models registered
// within the service.
func (s *Service) Models() []string {
	names := make([]string, 0, len(s.models))
	for name := range s.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewTemplate parses given subject 'model' struct into the *subject.Template
// using the service's naming convention and subject validator.
func (s *Service) NewTemplate(model interface{}) (*subject.Template, error) {
	return subject.NewTemplate(model, s.NamerFunc, s.SubjectValidator)
}

/**
 *
 * Scoring
 *
 */

// ScoreOne computes the 10-year risk score for a single subject 'value'.
// The 'value' might be an instance of the model template's struct (or a
// pointer to it), the covariate name to value mapping or an already built
// *subject.Record. Providing the empty 'modelName' scores with the
// service's default risk model.
func (s *Service) ScoreOne(modelName string, value interface{}) (float64, error) {
	m, err := s.Model(modelName)
	if err != nil {
		return 0, err
	}

	var record *subject.Record
	switch v := value.(type) {
	case *subject.Record:
		record = v
	case map[string]interface{}:
		if record, err = m.Template().NewRecord(v); err != nil {
			return 0, err
		}
	default:
		if record, err = m.Template().Record(value); err != nil {
			return 0, err
		}
	}
	return m.ScoreOne(record)
}

// ScoreBatch computes the 10-year risk scores for all the rows of the
// tabular 'data' with the columns resolved by the 'mapping'. The i-th score
// always belongs to the i-th input row. The config's CollectRowErrors flag
// decides whether the batch stops at the first invalid row or scores the
// failed rows as NaN collecting all the row failures.
func (s *Service) ScoreBatch(modelName string, data interface{}, mapping table.ColumnMap) ([]float64, error) {
	m, err := s.Model(modelName)
	if err != nil {
		return nil, err
	}

	if s.Config.CollectRowErrors {
		return risk.ScoreBatchTolerant(m, data, mapping)
	}
	return risk.ScoreBatch(m, data, mapping)
}

/**
 *
 * Population
 *
 */

// Sample generates the pseudo random population table of 'n' subjects with
// the default population statistics. Providing zero 'n' samples the config's
// population size. Every call samples with a fresh source seeded from the
// config, thus the same call always generates the same table.
func (s *Service) Sample(n int) (*table.Table, error) {
	if n == 0 {
		n = s.Config.Population.Size
	}

	g, err := population.NewGenerator(nil, s.Config.Population.Seed)
	if err != nil {
		return nil, err
	}
	return g.Sample(n)
}

func newService(cfg *config.Service) (*Service, error) {
	s := &Service{
		SubjectValidator: validator.New(),
		models:           make(map[string]risk.Model),
	}

	if err := s.setConfig(cfg); err != nil {
		return nil, err
	}

	// the validated framingham general CVD model is always registered
	model, err := risk.NewFramingham()
	if err != nil {
		return nil, err
	}
	if err = s.RegisterModel(model); err != nil {
		return nil, err
	}

	return s, nil
}

// setConfig sets and validates provided config
func (s *Service) setConfig(cfg *config.Service) error {
	// if there is no service config provided throw an error.
	if cfg == nil {
		return errors.New(class.ConfigValueNil, "provided nil config value")
	}

	// set the log level from the provided config.
	if cfg.LogLevel != "" {
		level := unilogger.ParseLevel(cfg.LogLevel)
		if level == unilogger.UNKNOWN {
			return errors.Newf(class.ConfigValueInvalid, "invalid 'log_level' value: '%s'", cfg.LogLevel)
		}
		if log.Logger() == nil {
			log.Default()
		}
		// get and set default logger
		if err := log.SetLevel(level); err != nil {
			return err
		}
	}

	log.Debug2f("Creating new service with config: '%#v'", cfg)

	// set the naming convention
	cfg.NamingConvention = strings.ToLower(cfg.NamingConvention)
	if cfg.NamingConvention == "" {
		cfg.NamingConvention = "snake"
	}

	if cfg.Population == nil {
		cfg.Population = config.DefaultPopulation()
	}

	if err := validate.Struct(cfg); err != nil {
		return errors.New(class.ConfigValueInvalid, "validating config failed")
	}

	s.Config = cfg

	// set naming convention
	switch cfg.NamingConvention {
	case "kebab":
		s.NamerFunc = namer.NamingKebab
	case "camel":
		s.NamerFunc = namer.NamingCamel
	case "lowercamel":
		s.NamerFunc = namer.NamingLowerCamel
	case "snake":
		s.NamerFunc = namer.NamingSnake
	default:
		return errors.Newf(class.ConfigValueNaming, "unknown naming convention name: %s", cfg.NamingConvention)
	}
	log.Debugf("Naming convention used for the templates: %s", cfg.NamingConvention)

	if cfg.DefaultModelName == "" {
		cfg.DefaultModelName = risk.FraminghamName
	}

	if cfg.ValidatorAlias == "" {
		cfg.ValidatorAlias = "validate"
	}
	s.SubjectValidator.SetTagName(cfg.ValidatorAlias)

	return nil
}
