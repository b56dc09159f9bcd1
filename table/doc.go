// Package table implements the labeled, row major tables of the subject
// covariate values together with the column to covariate mappings.
//
// The batch scoring inputs come in multiple shapes - labeled tables, raw
// row major slices or the gonum matrices. The package normalizes all of them
// into the single *table.Table form resolved against a table.ColumnMap.
package table
