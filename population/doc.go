// Package population generates the synthetic subject cohorts used to
// exercise the risk models without any real patient data.
//
// The subjects are sampled from the banded marginal distributions of each
// covariate - the default statistics approximate the US population. The
// sampling is seeded and fully deterministic.
package population
