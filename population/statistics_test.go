package population

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardiolabs/cvdrisk/errors"
	"github.com/cardiolabs/cvdrisk/errors/class"
)

// TestDefaultStatistics tests the default population statistics.
func TestDefaultStatistics(t *testing.T) {
	stats := DefaultStatistics()
	require.NoError(t, stats.Validate())

	assert.Equal(t, 0.532, stats.FemaleProportion)

	// the HDL distribution differs per sex
	assert.Equal(t, 40.0, stats.Female.HDLCholesterol[0].Min)
	assert.Equal(t, 30.0, stats.Male.HDLCholesterol[0].Min)

	assert.Equal(t, 0.118, stats.Female.TreatedBP)
	assert.Equal(t, 0.101, stats.Male.TreatedBP)
	assert.Equal(t, 0.038, stats.Female.Diabetes)
	assert.Equal(t, 0.065, stats.Male.Diabetes)
}

// TestBandsValidate tests the band set validation.
func TestBandsValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		bands := Bands{
			{Min: 100, Max: 125, Proportion: 0.2},
			{Min: 125, Max: 150, Proportion: 0.6},
			{Min: 150, Max: 180, Proportion: 0.2},
		}
		assert.NoError(t, bands.Validate())
	})

	t.Run("Empty", func(t *testing.T) {
		err := Bands{}.Validate()
		if assert.Error(t, err) {
			assert.True(t, errors.IsClass(err, class.PopulationStatisticsInvalid))
		}
	})

	t.Run("NotIncreasing", func(t *testing.T) {
		err := Bands{{Min: 125, Max: 100, Proportion: 1}}.Validate()
		if assert.Error(t, err) {
			assert.True(t, errors.IsClass(err, class.PopulationStatisticsInvalid))
		}
	})

	t.Run("NegativeProportion", func(t *testing.T) {
		err := Bands{
			{Min: 100, Max: 125, Proportion: -0.2},
			{Min: 125, Max: 150, Proportion: 1.2},
		}.Validate()
		if assert.Error(t, err) {
			assert.True(t, errors.IsClass(err, class.PopulationStatisticsProportion))
		}
	})

	t.Run("NotSummingToOne", func(t *testing.T) {
		err := Bands{
			{Min: 100, Max: 125, Proportion: 0.2},
			{Min: 125, Max: 150, Proportion: 0.6},
		}.Validate()
		if assert.Error(t, err) {
			assert.True(t, errors.IsClass(err, class.PopulationStatisticsProportion))
		}
	})
}

// TestStatisticsValidate tests the full statistics validation.
func TestStatisticsValidate(t *testing.T) {
	t.Run("FemaleProportion", func(t *testing.T) {
		stats := DefaultStatistics()
		stats.FemaleProportion = 1.5

		err := stats.Validate()
		if assert.Error(t, err) {
			assert.True(t, errors.IsClass(err, class.PopulationStatisticsProportion))
		}
	})

	t.Run("Probability", func(t *testing.T) {
		stats := DefaultStatistics()
		stats.Male.Smoking = -0.1

		err := stats.Validate()
		if assert.Error(t, err) {
			assert.True(t, errors.IsClass(err, class.PopulationStatisticsProportion))
		}
	})

	t.Run("BrokenBands", func(t *testing.T) {
		stats := DefaultStatistics()
		stats.Female.Age = nil

		err := stats.Validate()
		if assert.Error(t, err) {
			assert.True(t, errors.IsClass(err, class.PopulationStatisticsInvalid))
		}
	})
}
