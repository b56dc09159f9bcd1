package table

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cardiolabs/cvdrisk/errors"
	"github.com/cardiolabs/cvdrisk/errors/class"
)

// Normalize converts the supported tabular 'data' inputs into the labeled
// *table.Table. The supported inputs are:
//	- *table.Table returned as provided,
//	- [][]float64 and [][]interface{} row major values - the rows are
//	  unlabeled, thus the mapped columns in the column map order become
//	  their positional header,
//	- mat.Matrix - the gonum matrices labeled like the raw row major values.
//
// The row major values are copied so that scoring never mutates the caller's
// data.
func Normalize(data interface{}, mapping ColumnMap) (*Table, error) {
	switch d := data.(type) {
	case *Table:
		if d == nil {
			return nil, errors.New(class.TableValueInput, "provided nil table input")
		}
		return d, nil
	case [][]float64:
		rows := make([][]interface{}, len(d))
		for i, row := range d {
			values := make([]interface{}, len(row))
			for j, value := range row {
				values[j] = value
			}
			rows[i] = values
		}
		return NewTable(mapping.Columns(), rows)
	case [][]interface{}:
		rows := make([][]interface{}, len(d))
		for i, row := range d {
			values := make([]interface{}, len(row))
			copy(values, row)
			rows[i] = values
		}
		return NewTable(mapping.Columns(), rows)
	case mat.Matrix:
		r, c := d.Dims()
		rows := make([][]interface{}, r)
		for i := 0; i < r; i++ {
			values := make([]interface{}, c)
			for j := 0; j < c; j++ {
				values[j] = d.At(i, j)
			}
			rows[i] = values
		}
		return NewTable(mapping.Columns(), rows)
	case nil:
		return nil, errors.New(class.TableValueInput, "provided nil data input").
			SetDetail("The data input must be one of: *table.Table, [][]float64, [][]interface{} or mat.Matrix.")
	}
	return nil, errors.Newf(class.TableValueInput, "unsupported data input of type: '%T'", data).
		SetDetailf("The data input of type: '%T' is not supported. Provide one of: *table.Table, [][]float64, [][]interface{} or mat.Matrix.", data)
}
