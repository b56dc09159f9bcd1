package table

import (
	"golang.org/x/text/unicode/norm"

	"github.com/cardiolabs/cvdrisk/errors"
	"github.com/cardiolabs/cvdrisk/errors/class"
)

// Table is a labeled, row major collection of the subject covariate values.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]interface{}
}

// NewTable creates the labeled table with given 'columns' header and the row
// major 'rows' values. Every row must match the header's width. The column
// names are unicode normalized (NFC) for the lookups, so the visually equal
// headers coming from the external files resolve into the same column.
func NewTable(columns []string, rows [][]interface{}) (*Table, error) {
	t := &Table{
		columns: make([]string, len(columns)),
		index:   make(map[string]int, len(columns)),
	}

	for i, column := range columns {
		normalized := norm.NFC.String(column)
		if _, ok := t.index[normalized]; ok {
			return nil, errors.Newf(class.TableColumnDuplicated, "duplicated column: '%s' within the table header", column).
				SetDetailf("The column: '%s' is defined multiple times within the table header.", column)
		}
		t.columns[i] = column
		t.index[normalized] = i
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, errors.Newf(class.TableShapeInvalid, "row: '%d' is of width: '%d' - the table header defines: '%d' columns", i, len(row), len(columns)).
				SetDetailf("The row: '%d' doesn't match the table header width: '%d'.", i, len(columns))
		}
	}
	t.rows = rows
	return t, nil
}

// Columns returns the table's column header.
func (t *Table) Columns() []string {
	return t.columns
}

// Rows returns the number of the table's rows.
func (t *Table) Rows() int {
	return len(t.rows)
}

// Row returns the values of the 'i'-th table row.
func (t *Table) Row(i int) []interface{} {
	return t.rows[i]
}

// ColumnIndex gets the position of given column within the table's header.
func (t *Table) ColumnIndex(column string) (int, error) {
	index, ok := t.index[norm.NFC.String(column)]
	if !ok {
		return 0, errors.Newf(class.TableColumnNotFound, "column: '%s' not found within the table", column).
			SetDetailf("The column: '%s' is not defined within the table columns: %v.", column, t.columns)
	}
	return index, nil
}

// Float gets the numeric value of the table's cell at given 'row' and
// 'column' position. The boolean cells map into the '1.0'/'0.0' values.
func (t *Table) Float(row, column int) (float64, error) {
	if row < 0 || row >= len(t.rows) || column < 0 || column >= len(t.columns) {
		return 0, errors.Newf(class.TableShapeInvalid, "cell: '%d,%d' out of the table bounds", row, column)
	}

	value := t.rows[row][column]
	if flag, ok := value.(bool); ok {
		if flag {
			return 1, nil
		}
		return 0, nil
	}

	number, ok := toFloat64(value)
	if !ok {
		return 0, errors.Newf(class.TableValueType, "cell: '%d,%d' of unsupported type: '%T'", row, column, value)
	}
	return number, nil
}

// toFloat64 converts the numeric cell value into float64.
func toFloat64(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}
