package population

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cardiolabs/cvdrisk/errors"
	"github.com/cardiolabs/cvdrisk/errors/class"
	"github.com/cardiolabs/cvdrisk/log"
	"github.com/cardiolabs/cvdrisk/subject"
	"github.com/cardiolabs/cvdrisk/table"
)

// DefaultSeed seeds the generators by default. Sampling with the same seed
// and statistics is fully deterministic.
const DefaultSeed uint64 = 1234

// Columns returns the column header of the generated population tables.
func Columns() []string {
	return []string{"age", "sex", "SBP_nt", "SBP_t", "tch", "HDL", "smoking", "diabetes"}
}

// Generator samples the synthetic subject cohorts from the population
// statistics. The generator is not safe for concurrent use.
type Generator struct {
	stats *Statistics
	src   rand.Source
}

// NewGenerator creates the population generator upon given statistics seeded
// with 'seed'. Providing nil 'stats' takes the default population statistics.
func NewGenerator(stats *Statistics, seed uint64) (*Generator, error) {
	if stats == nil {
		stats = DefaultStatistics()
	}
	if err := stats.Validate(); err != nil {
		return nil, err
	}
	return &Generator{stats: stats, src: rand.NewSource(seed)}, nil
}

// Sample generates the labeled table of 'n' synthetic subjects - the female
// fraction of the population first, the male afterwards. Every covariate is
// sampled from its own marginal distribution and the continuous values are
// rounded to the whole numbers.
func (g *Generator) Sample(n int) (*table.Table, error) {
	if n < 0 {
		return nil, errors.Newf(class.PopulationSampleSize, "invalid sample size: '%d'", n).
			SetDetailf("The sample size: '%d' must not be negative.", n)
	}

	females := int(math.Round(g.stats.FemaleProportion * float64(n)))
	males := int(math.Round((1 - g.stats.FemaleProportion) * float64(n)))

	rows := make([][]interface{}, 0, females+males)
	rows = g.appendSexSample(rows, subject.SexFemale, g.stats.Female, females)
	rows = g.appendSexSample(rows, subject.SexMale, g.stats.Male, males)

	log.Debugf("Sampled: '%d' female and '%d' male subjects", females, males)
	return table.NewTable(Columns(), rows)
}

func (g *Generator) appendSexSample(rows [][]interface{}, sex subject.Sex, stats SexStatistics, count int) [][]interface{} {
	var (
		age      = newBandSampler(stats.Age, g.src)
		sbp      = newBandSampler(stats.SystolicBP, g.src)
		tch      = newBandSampler(stats.TotalCholesterol, g.src)
		hdl      = newBandSampler(stats.HDLCholesterol, g.src)
		treated  = distuv.Bernoulli{P: stats.TreatedBP, Src: g.src}
		smoking  = distuv.Bernoulli{P: stats.Smoking, Src: g.src}
		diabetes = distuv.Bernoulli{P: stats.Diabetes, Src: g.src}
	)

	for i := 0; i < count; i++ {
		// the sampled pressure lands in the treated or the not treated
		// column - the other one holds zero
		var (
			sbpNt float64
			sbpT  = sbp.sample()
		)
		if treated.Rand() == 0 {
			sbpNt, sbpT = sbpT, 0
		}

		rows = append(rows, []interface{}{
			age.sample(),
			sex.String(),
			sbpNt,
			sbpT,
			tch.sample(),
			hdl.sample(),
			smoking.Rand() == 1,
			diabetes.Rand() == 1,
		})
	}
	return rows
}

// bandSampler draws the banded continuous covariate values - a band with the
// categorical band proportions, then a uniform value within the band.
type bandSampler struct {
	bands       Bands
	categorical distuv.Categorical
	src         rand.Source
}

func newBandSampler(bands Bands, src rand.Source) *bandSampler {
	return &bandSampler{
		bands:       bands,
		categorical: distuv.NewCategorical(bands.weights(), src),
		src:         src,
	}
}

func (b *bandSampler) sample() float64 {
	band := b.bands[int(b.categorical.Rand())]
	return math.Round(distuv.Uniform{Min: band.Min, Max: band.Max, Src: b.src}.Rand())
}
