package risk

import (
	"math"

	"github.com/cardiolabs/cvdrisk/errors"
	"github.com/cardiolabs/cvdrisk/errors/class"
	"github.com/cardiolabs/cvdrisk/log"
	"github.com/cardiolabs/cvdrisk/subject"
)

// FraminghamName is the registry name of the Framingham general
// cardiovascular risk model.
const FraminghamName = "framingham"

// Coefficient binds a single covariate with its regression weight.
type Coefficient struct {
	Covariate string
	Beta      float64
}

// sexParameters groups the per sex regression constants of a risk model.
type sexParameters struct {
	// baseline is the sex specific baseline survival probability.
	baseline float64
	// mean is the sex specific mean of the linear predictor.
	mean float64
	// betas are the regression coefficients in the published order.
	betas []Coefficient
}

// Framingham is the 10 year general cardiovascular disease risk model
// estimated on the Framingham Heart Study cohort (D'Agostino et al. 2008).
// The regression constants are sex specific and fixed - the model requires
// no fitting.
type Framingham struct {
	template *subject.Template
	female   sexParameters
	male     sexParameters
}

// compile time check if Framingham implements the Model interface.
var _ Model = &Framingham{}

// NewFramingham creates the Framingham general cardiovascular risk model
// upon the canonical subject.Framingham template.
func NewFramingham() (*Framingham, error) {
	template, err := subject.NewTemplate(subject.Framingham{}, nil, nil)
	if err != nil {
		return nil, err
	}

	f := &Framingham{
		template: template,
		female: sexParameters{
			baseline: 0.95012,
			mean:     26.1931,
			betas: []Coefficient{
				{Covariate: "age", Beta: 2.32888},
				{Covariate: "tch", Beta: 1.20904},
				{Covariate: "HDL", Beta: -0.70833},
				{Covariate: "SBP_nt", Beta: 2.76157},
				{Covariate: "SBP_t", Beta: 2.82263},
				{Covariate: "smoking", Beta: 0.52873},
				{Covariate: "diabetes", Beta: 0.69154},
			},
		},
		male: sexParameters{
			baseline: 0.88936,
			mean:     23.9802,
			betas: []Coefficient{
				{Covariate: "age", Beta: 3.06117},
				{Covariate: "tch", Beta: 1.12370},
				{Covariate: "HDL", Beta: -0.93263},
				{Covariate: "SBP_nt", Beta: 1.93303},
				{Covariate: "SBP_t", Beta: 1.99881},
				{Covariate: "smoking", Beta: 0.65451},
				{Covariate: "diabetes", Beta: 0.57367},
			},
		},
	}
	if err = f.validateParameters(); err != nil {
		return nil, err
	}
	return f, nil
}

// Name returns the unique model name.
func (f *Framingham) Name() string {
	return FraminghamName
}

// Template returns the subject template the model scores.
func (f *Framingham) Template() *subject.Template {
	return f.template
}

// ScoreOne computes the 10 year cardiovascular disease risk probability for
// given subject record. The risk is computed as:
//
//	1 - baseline^exp(L - mean)
//
// where 'L' is the linear predictor - the sum of the transformed covariate
// values weighted with the sex specific regression coefficients.
func (f *Framingham) ScoreOne(record *subject.Record) (float64, error) {
	if record == nil {
		return 0, errors.New(class.ModelValueNil, "scoring a nil subject record")
	}

	var params sexParameters
	switch sex := record.Sex(); sex {
	case subject.SexFemale:
		params = f.female
	case subject.SexMale:
		params = f.male
	default:
		// the records guarantee a valid sex discriminator - reaching this
		// branch means the subject package and the model disagree
		log.Errorf("Model: '%s' - scoring a record with unsupported sex value: '%d'", FraminghamName, sex)
		return 0, errors.Newf(class.ModelInternalConsistency, "record with unsupported sex value: '%d'", sex)
	}

	var predictor float64
	for _, coefficient := range params.betas {
		value, ok := record.Covariate(coefficient.Covariate)
		if !ok {
			return 0, errors.Newf(class.ModelValueCovariate, "record doesn't provide the covariate: '%s'", coefficient.Covariate).
				SetDetailf("The record built upon the template: '%s' doesn't provide the covariate: '%s' required by the model: '%s'.", record.Template().Collection(), coefficient.Covariate, FraminghamName)
		}

		// the nonzero continuous covariates enter the predictor log linearly,
		// the zero valued terms and the binary flags are used as provided
		if field, ok := record.Template().FieldByName(coefficient.Covariate); ok && field.Kind() == subject.KindContinuous && value != 0 {
			value = math.Log(value)
		}
		predictor += coefficient.Beta * value
	}
	return 1 - math.Pow(params.baseline, math.Exp(predictor-params.mean)), nil
}

// validateParameters checks the internal consistency of the model's
// regression constants against its template.
func (f *Framingham) validateParameters() error {
	if err := f.validateSexParameters(subject.SexFemale, f.female); err != nil {
		return err
	}
	return f.validateSexParameters(subject.SexMale, f.male)
}

func (f *Framingham) validateSexParameters(sex subject.Sex, params sexParameters) error {
	if params.baseline <= 0 || params.baseline >= 1 {
		return errors.Newf(class.ModelInternalConsistency, "model: '%s' %s baseline survival: '%v' out of the (0,1) range", FraminghamName, sex, params.baseline)
	}
	if len(params.betas) == 0 {
		return errors.Newf(class.ModelInternalConsistency, "model: '%s' defines no %s regression coefficients", FraminghamName, sex)
	}

	visited := make(map[string]struct{}, len(params.betas))
	for _, coefficient := range params.betas {
		field, ok := f.template.FieldByName(coefficient.Covariate)
		if !ok {
			return errors.Newf(class.ModelInternalConsistency, "model: '%s' defines the coefficient: '%s' not known to the template: '%s'", FraminghamName, coefficient.Covariate, f.template.Collection())
		}
		if field.Kind() == subject.KindSex {
			return errors.Newf(class.ModelInternalConsistency, "model: '%s' defines a coefficient upon the sex discriminator", FraminghamName)
		}
		if _, ok = visited[coefficient.Covariate]; ok {
			return errors.Newf(class.ModelInternalConsistency, "model: '%s' defines duplicated coefficient: '%s'", FraminghamName, coefficient.Covariate)
		}
		visited[coefficient.Covariate] = struct{}{}
	}
	return nil
}
