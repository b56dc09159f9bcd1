package risk

import (
	"math"

	"github.com/cardiolabs/cvdrisk/errors"
	"github.com/cardiolabs/cvdrisk/errors/class"
	"github.com/cardiolabs/cvdrisk/log"
	"github.com/cardiolabs/cvdrisk/subject"
	"github.com/cardiolabs/cvdrisk/table"
)

// ScoreBatch scores all the rows of the tabular 'data' with the model 'm'.
// The data is normalized with table.Normalize and resolved against given
// column map before any row is processed - every mapped column must exist
// within the table. The i-th output score always belongs to the i-th input
// row. The first invalid row aborts the whole batch with no partial scores.
func ScoreBatch(m Model, data interface{}, mapping table.ColumnMap) ([]float64, error) {
	return scoreBatch(m, data, mapping, false)
}

// ScoreBatchTolerant scores like ScoreBatch but doesn't abort upon the
// invalid rows. The failed rows score as NaN and all the row failures are
// collected into the returned errors.MultiError.
func ScoreBatchTolerant(m Model, data interface{}, mapping table.ColumnMap) ([]float64, error) {
	return scoreBatch(m, data, mapping, true)
}

func scoreBatch(m Model, data interface{}, mapping table.ColumnMap, tolerant bool) ([]float64, error) {
	if m == nil {
		return nil, errors.New(class.ModelValueNil, "provided nil model")
	}

	// the column map must be valid before any row is processed
	if err := mapping.Validate(); err != nil {
		return nil, err
	}

	t, err := table.Normalize(data, mapping)
	if err != nil {
		return nil, err
	}

	// resolve the mapped columns within the table's header
	indexes := make([]int, len(mapping))
	for i, cm := range mapping {
		if indexes[i], err = t.ColumnIndex(cm.Column); err != nil {
			return nil, err
		}
	}

	var (
		template = m.Template()
		scores   = make([]float64, t.Rows())
		failures errors.MultiError
	)
	for i := 0; i < t.Rows(); i++ {
		score, err := scoreRow(m, template, t.Row(i), mapping, indexes)
		if err != nil {
			err = rowError(err, i)
			if !tolerant {
				return nil, err
			}
			failures = append(failures, err)
			scores[i] = math.NaN()
			continue
		}
		scores[i] = score
	}

	if len(failures) > 0 {
		log.Debugf("Model: '%s' - '%d' of '%d' rows failed scoring", m.Name(), len(failures), t.Rows())
		return scores, failures
	}
	return scores, nil
}

// scoreRow zips the mapped row cells into the covariate field values,
// validates them as a subject record and scores it.
func scoreRow(m Model, template *subject.Template, row []interface{}, mapping table.ColumnMap, indexes []int) (float64, error) {
	fieldValues := make(map[string]interface{}, len(mapping))
	for i, cm := range mapping {
		fieldValues[cm.Covariate] = row[indexes[i]]
	}

	record, err := template.NewRecord(fieldValues)
	if err != nil {
		return 0, err
	}
	return m.ScoreOne(record)
}

// rowError wraps the row's failure details with the row position context.
func rowError(err error, row int) error {
	switch e := err.(type) {
	case *errors.Error:
		return e.WrapDetailf("Scoring the row: '%d' failed.", row)
	case errors.MultiError:
		for _, single := range e {
			if classed, ok := single.(*errors.Error); ok {
				classed.WrapDetailf("Scoring the row: '%d' failed.", row)
			}
		}
	}
	return err
}
