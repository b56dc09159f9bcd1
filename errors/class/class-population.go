package class

// MjrPopulation - major that classifies errors related with the population sampling.
var MjrPopulation Major

func registerPopulationClasses() {
	MjrPopulation = MustRegisterMajor("Population", "population sampling related issues")

	registerPopulationStatistics()
	registerPopulationSample()
}

var (
	// MnrPopulationStatistics is the 'MjrPopulation' minor error classification
	// for the population statistics issues.
	MnrPopulationStatistics Minor

	// PopulationStatisticsInvalid is the 'MjrPopulation', 'MnrPopulationStatistics'
	// error classification for malformed statistics - i.e. mismatched band bounds.
	PopulationStatisticsInvalid Class

	// PopulationStatisticsProportion is the 'MjrPopulation', 'MnrPopulationStatistics'
	// error classification for band proportions that doesn't sum up to one.
	PopulationStatisticsProportion Class
)

func registerPopulationStatistics() {
	MnrPopulationStatistics = MjrPopulation.MustRegisterMinor("Statistics", "population statistics issues")

	PopulationStatisticsInvalid = MnrPopulationStatistics.MustRegisterIndex("Invalid", "malformed population statistics").Class()
	PopulationStatisticsProportion = MnrPopulationStatistics.MustRegisterIndex("Proportion", "band proportions doesn't sum up to one").Class()
}

var (
	// MnrPopulationSample is the 'MjrPopulation' minor error classification
	// for the sampling issues.
	MnrPopulationSample Minor

	// PopulationSampleSize is the 'MjrPopulation', 'MnrPopulationSample' error
	// classification for invalid sample sizes.
	PopulationSampleSize Class
)

func registerPopulationSample() {
	MnrPopulationSample = MjrPopulation.MustRegisterMinor("Sample", "population sampling issues")

	PopulationSampleSize = MnrPopulationSample.MustRegisterIndex("Size", "invalid sample size").Class()
}
