// Package risk implements the cardiovascular disease risk models together
// with the batch scoring upon the tabular inputs.
//
// Every model scores a single validated subject.Record - the batch scoring
// normalizes the caller's tabular data, resolves its columns against the
// model covariates with a table.ColumnMap and scores the rows one by one
// preserving their order.
package risk
