// Package subject defines the covariate schemas of the scored subjects.
//
// A subject model is a plain struct annotated with the 'cvd' field tags. The
// package parses such structs into Templates that map the struct fields into
// the named covariates. Validated subject values are represented as Records -
// the only input accepted by the risk models.
package subject
