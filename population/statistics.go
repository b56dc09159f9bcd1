package population

import (
	"math"

	"github.com/cardiolabs/cvdrisk/errors"
	"github.com/cardiolabs/cvdrisk/errors/class"
)

// proportionTolerance is the allowed absolute deviation of the band
// proportion sum from one.
const proportionTolerance = 1e-9

// Band is a single value interval with the proportion of the population
// falling into it.
type Band struct {
	Min        float64
	Max        float64
	Proportion float64
}

// Bands is an ordered set of the value intervals a continuous covariate is
// sampled from.
type Bands []Band

// Validate checks if the bands define finite increasing intervals with the
// proportions summing up to one.
func (b Bands) Validate() error {
	if len(b) == 0 {
		return errors.New(class.PopulationStatisticsInvalid, "provided no value bands")
	}

	var sum float64
	for i, band := range b {
		if !isFinite(band.Min) || !isFinite(band.Max) {
			return errors.Newf(class.PopulationStatisticsInvalid, "band: '%d' defines non finite bounds", i)
		}
		if band.Min >= band.Max {
			return errors.Newf(class.PopulationStatisticsInvalid, "band: '%d' bounds: [%v, %v] are not increasing", i, band.Min, band.Max)
		}
		if band.Proportion < 0 || band.Proportion > 1 || math.IsNaN(band.Proportion) {
			return errors.Newf(class.PopulationStatisticsProportion, "band: '%d' proportion: '%v' out of the [0,1] range", i, band.Proportion)
		}
		sum += band.Proportion
	}

	if math.Abs(sum-1) > proportionTolerance {
		return errors.Newf(class.PopulationStatisticsProportion, "band proportions sum up to: '%v' - must sum up to one", sum)
	}
	return nil
}

// weights returns the band proportions as the categorical sampling weights.
func (b Bands) weights() []float64 {
	weights := make([]float64, len(b))
	for i, band := range b {
		weights[i] = band.Proportion
	}
	return weights
}

// SexStatistics describes the marginal covariate distributions of a single
// sex fraction of the population.
type SexStatistics struct {
	// Age is the age distribution in years.
	Age Bands
	// SystolicBP is the systolic blood pressure distribution in mmHg.
	SystolicBP Bands
	// TotalCholesterol is the total cholesterol distribution in mg/dL.
	TotalCholesterol Bands
	// HDLCholesterol is the HDL cholesterol distribution in mg/dL.
	HDLCholesterol Bands
	// TreatedBP is the probability of being treated for the blood pressure.
	TreatedBP float64
	// Smoking is the probability of being a smoker.
	Smoking float64
	// Diabetes is the probability of being diabetic.
	Diabetes float64
}

func (s SexStatistics) validate(sex string) error {
	for _, marginal := range []struct {
		name  string
		bands Bands
	}{
		{"age", s.Age},
		{"SBP", s.SystolicBP},
		{"tch", s.TotalCholesterol},
		{"HDL", s.HDLCholesterol},
	} {
		if err := marginal.bands.Validate(); err != nil {
			if classed, ok := err.(*errors.Error); ok {
				classed.WrapDetailf("The %s '%s' bands are invalid.", sex, marginal.name)
			}
			return err
		}
	}

	for _, probability := range []struct {
		name  string
		value float64
	}{
		{"treated_for_BP", s.TreatedBP},
		{"smoking", s.Smoking},
		{"diabetes", s.Diabetes},
	} {
		if probability.value < 0 || probability.value > 1 || math.IsNaN(probability.value) {
			return errors.Newf(class.PopulationStatisticsProportion, "the %s '%s' probability: '%v' out of the [0,1] range", sex, probability.name, probability.value)
		}
	}
	return nil
}

// Statistics describes the synthesized population - the sex split together
// with the per sex marginal distributions.
type Statistics struct {
	// FemaleProportion is the female fraction of the population.
	FemaleProportion float64
	// Female describes the female fraction of the population.
	Female SexStatistics
	// Male describes the male fraction of the population.
	Male SexStatistics
}

// Validate checks if the statistics are correctly defined.
func (s *Statistics) Validate() error {
	if s.FemaleProportion < 0 || s.FemaleProportion > 1 || math.IsNaN(s.FemaleProportion) {
		return errors.Newf(class.PopulationStatisticsProportion, "female population proportion: '%v' out of the [0,1] range", s.FemaleProportion)
	}
	if err := s.Female.validate("female"); err != nil {
		return err
	}
	return s.Male.validate("male")
}

// DefaultStatistics returns the approximate US population statistics the
// synthetic cohorts are sampled from by default.
func DefaultStatistics() *Statistics {
	return &Statistics{
		FemaleProportion: 0.532,
		Female: SexStatistics{
			Age: Bands{
				{Min: 30, Max: 40, Proportion: 0.3},
				{Min: 40, Max: 50, Proportion: 0.4},
				{Min: 50, Max: 60, Proportion: 0.2},
				{Min: 60, Max: 70, Proportion: 0.1},
			},
			SystolicBP: Bands{
				{Min: 100, Max: 125, Proportion: 0.2},
				{Min: 125, Max: 150, Proportion: 0.6},
				{Min: 150, Max: 180, Proportion: 0.2},
			},
			TotalCholesterol: Bands{
				{Min: 160, Max: 190, Proportion: 0.6},
				{Min: 190, Max: 220, Proportion: 0.2},
				{Min: 220, Max: 270, Proportion: 0.2},
			},
			HDLCholesterol: Bands{
				{Min: 40, Max: 50, Proportion: 0.3},
				{Min: 50, Max: 60, Proportion: 0.5},
				{Min: 60, Max: 75, Proportion: 0.2},
			},
			TreatedBP: 0.118,
			Smoking:   0.342,
			Diabetes:  0.038,
		},
		Male: SexStatistics{
			Age: Bands{
				{Min: 30, Max: 40, Proportion: 0.3},
				{Min: 40, Max: 50, Proportion: 0.4},
				{Min: 50, Max: 60, Proportion: 0.2},
				{Min: 60, Max: 70, Proportion: 0.1},
			},
			SystolicBP: Bands{
				{Min: 100, Max: 125, Proportion: 0.2},
				{Min: 125, Max: 150, Proportion: 0.6},
				{Min: 150, Max: 180, Proportion: 0.2},
			},
			TotalCholesterol: Bands{
				{Min: 160, Max: 190, Proportion: 0.6},
				{Min: 190, Max: 220, Proportion: 0.2},
				{Min: 220, Max: 270, Proportion: 0.2},
			},
			HDLCholesterol: Bands{
				{Min: 30, Max: 40, Proportion: 0.3},
				{Min: 40, Max: 50, Proportion: 0.5},
				{Min: 50, Max: 65, Proportion: 0.2},
			},
			TreatedBP: 0.101,
			Smoking:   0.352,
			Diabetes:  0.065,
		},
	}
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
