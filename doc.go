// Package cvdrisk is the validated 10-year cardiovascular disease risk
// calculator. It scores the risk of a general cardiovascular event with
// the sex specific Framingham Heart Study regression models, for single
// subjects as well as whole tabular cohorts.
// It consists of the following packages:
// - cvdrisk - the root package that gives easy access to all subpackages.
// - config - contains the configurations for all packages.
// - subject - maps the subject model structures into the covariate
//   templates and validated records.
// - risk - contains the risk models with their regression coefficients
//   and the batch scoring.
// - table - normalizes the tabular input data and resolves the column
//   to covariate mappings.
// - population - samples the synthetic population tables with the
//   configurable per sex statistics.
// - errors - used as a default error package for the cvdrisk packages.
// - errors/class - contains errors classification system for the cvdrisk
//   packages.
// - log - is the logging interface for the cvdrisk based applications.
// - namer - contains the naming conventions used for the covariate names.
package cvdrisk
