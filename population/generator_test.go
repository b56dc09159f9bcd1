package population

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardiolabs/cvdrisk/errors"
	"github.com/cardiolabs/cvdrisk/errors/class"
	"github.com/cardiolabs/cvdrisk/table"
)

// TestNewGenerator tests the generator constructor.
func TestNewGenerator(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		generator, err := NewGenerator(nil, DefaultSeed)
		require.NoError(t, err)
		assert.NotNil(t, generator)
	})

	t.Run("InvalidStatistics", func(t *testing.T) {
		stats := DefaultStatistics()
		stats.FemaleProportion = -1

		_, err := NewGenerator(stats, DefaultSeed)
		if assert.Error(t, err) {
			assert.True(t, errors.IsClass(err, class.PopulationStatisticsProportion))
		}
	})
}

// TestSample tests the synthetic cohort sampling.
func TestSample(t *testing.T) {
	t.Run("SexSplit", func(t *testing.T) {
		generator, err := NewGenerator(nil, DefaultSeed)
		require.NoError(t, err)

		sampled, err := generator.Sample(1000)
		require.NoError(t, err)

		assert.Equal(t, Columns(), sampled.Columns())
		require.Equal(t, 1000, sampled.Rows())

		// the female fraction of the population comes first
		for i := 0; i < 532; i++ {
			assert.Equal(t, "female", sampled.Row(i)[1])
		}
		for i := 532; i < 1000; i++ {
			assert.Equal(t, "male", sampled.Row(i)[1])
		}
	})

	t.Run("ValueRanges", func(t *testing.T) {
		generator, err := NewGenerator(nil, DefaultSeed)
		require.NoError(t, err)

		sampled, err := generator.Sample(500)
		require.NoError(t, err)

		sbpNtColumn, err := sampled.ColumnIndex("SBP_nt")
		require.NoError(t, err)
		sbpTColumn, err := sampled.ColumnIndex("SBP_t")
		require.NoError(t, err)

		for i := 0; i < sampled.Rows(); i++ {
			row := sampled.Row(i)

			age, err := sampled.Float(i, 0)
			require.NoError(t, err)
			assert.True(t, age >= 30 && age <= 70, "row: %d age: %v", i, age)

			// exactly one systolic pressure column holds the sampled value
			sbpNt, err := sampled.Float(i, sbpNtColumn)
			require.NoError(t, err)
			sbpT, err := sampled.Float(i, sbpTColumn)
			require.NoError(t, err)

			sbp := sbpNt + sbpT
			assert.True(t, sbpNt == 0 || sbpT == 0, "row: %d", i)
			assert.True(t, sbp >= 100 && sbp <= 180, "row: %d SBP: %v", i, sbp)

			tch, err := sampled.Float(i, 4)
			require.NoError(t, err)
			assert.True(t, tch >= 160 && tch <= 270, "row: %d tch: %v", i, tch)

			hdl, err := sampled.Float(i, 5)
			require.NoError(t, err)
			assert.True(t, hdl >= 30 && hdl <= 75, "row: %d HDL: %v", i, hdl)

			_, ok := row[6].(bool)
			assert.True(t, ok)
			_, ok = row[7].(bool)
			assert.True(t, ok)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		first, err := NewGenerator(nil, DefaultSeed)
		require.NoError(t, err)
		second, err := NewGenerator(nil, DefaultSeed)
		require.NoError(t, err)

		firstSample, err := first.Sample(100)
		require.NoError(t, err)
		secondSample, err := second.Sample(100)
		require.NoError(t, err)

		assert.Equal(t, firstSample, secondSample)

		// a different seed draws a different cohort
		other, err := NewGenerator(nil, 4321)
		require.NoError(t, err)
		otherSample, err := other.Sample(100)
		require.NoError(t, err)
		assert.NotEqual(t, firstSample, otherSample)
	})

	t.Run("Proportions", func(t *testing.T) {
		generator, err := NewGenerator(nil, DefaultSeed)
		require.NoError(t, err)

		sampled, err := generator.Sample(2000)
		require.NoError(t, err)

		smokers := 0
		for i := 0; i < sampled.Rows(); i++ {
			if sampled.Row(i)[6].(bool) {
				smokers++
			}
		}

		// the empirical smoking proportion stays near the configured 0.342/0.352
		proportion := float64(smokers) / float64(sampled.Rows())
		assert.True(t, proportion > 0.25 && proportion < 0.45, "smoking proportion: %v", proportion)
	})

	t.Run("ZeroSize", func(t *testing.T) {
		generator, err := NewGenerator(nil, DefaultSeed)
		require.NoError(t, err)

		sampled, err := generator.Sample(0)
		require.NoError(t, err)
		assert.Equal(t, 0, sampled.Rows())
	})

	t.Run("NegativeSize", func(t *testing.T) {
		generator, err := NewGenerator(nil, DefaultSeed)
		require.NoError(t, err)

		_, err = generator.Sample(-10)
		if assert.Error(t, err) {
			assert.True(t, errors.IsClass(err, class.PopulationSampleSize))
		}
	})
}

// TestSampleCustomStatistics tests sampling upon the caller provided statistics.
func TestSampleCustomStatistics(t *testing.T) {
	stats := &Statistics{
		FemaleProportion: 1.0,
		Female: SexStatistics{
			Age:              Bands{{Min: 40, Max: 41, Proportion: 1}},
			SystolicBP:       Bands{{Min: 120, Max: 121, Proportion: 1}},
			TotalCholesterol: Bands{{Min: 200, Max: 201, Proportion: 1}},
			HDLCholesterol:   Bands{{Min: 50, Max: 51, Proportion: 1}},
			TreatedBP:        1.0,
			Smoking:          0.0,
			Diabetes:         1.0,
		},
		Male: DefaultStatistics().Male,
	}

	generator, err := NewGenerator(stats, DefaultSeed)
	require.NoError(t, err)

	sampled, err := generator.Sample(10)
	require.NoError(t, err)
	require.Equal(t, 10, sampled.Rows())

	for i := 0; i < sampled.Rows(); i++ {
		row := sampled.Row(i)
		assert.Equal(t, "female", row[1])

		// everybody is treated for the blood pressure
		sbpNt, err := sampled.Float(i, 2)
		require.NoError(t, err)
		assert.Equal(t, 0.0, sbpNt)

		sbpT, err := sampled.Float(i, 3)
		require.NoError(t, err)
		assert.True(t, sbpT >= 120 && sbpT <= 121)

		assert.Equal(t, false, row[6])
		assert.Equal(t, true, row[7])
	}

	_, err = table.Normalize(sampled, nil)
	assert.NoError(t, err)
}
