package table

import (
	"golang.org/x/text/unicode/norm"

	"github.com/cardiolabs/cvdrisk/errors"
	"github.com/cardiolabs/cvdrisk/errors/class"
)

// ColumnMapping is a single translation of the caller's column name into the
// model's covariate name.
type ColumnMapping struct {
	Column    string
	Covariate string
}

// ColumnMap is the ordered set of the column to covariate translations used
// to resolve the caller's tables against the model covariates. The entry
// order defines the positional header for the unlabeled inputs. Mapping
// multiple columns into a single covariate is allowed - the last mapped
// column wins.
type ColumnMap []ColumnMapping

// Validate checks if the column map is correctly defined. The map must not
// be empty, the names must not be blank and every column may be mapped only
// once.
func (c ColumnMap) Validate() error {
	if len(c) == 0 {
		return errors.New(class.TableMappingEmpty, "provided empty column map").
			SetDetail("The column map must define at least a single column to covariate mapping.")
	}

	visited := make(map[string]struct{}, len(c))
	for i, mapping := range c {
		if mapping.Column == "" || mapping.Covariate == "" {
			return errors.Newf(class.TableMappingName, "column map entry: '%d' defines a blank name", i).
				SetDetailf("The column map entry: '%d' - '%s': '%s' must define non blank names.", i, mapping.Column, mapping.Covariate)
		}

		normalized := norm.NFC.String(mapping.Column)
		if _, ok := visited[normalized]; ok {
			return errors.Newf(class.TableMappingDuplicated, "column: '%s' mapped multiple times", mapping.Column).
				SetDetailf("The column: '%s' is mapped multiple times within the column map.", mapping.Column)
		}
		visited[normalized] = struct{}{}
	}
	return nil
}

// Columns returns the mapped column names in the definition order.
func (c ColumnMap) Columns() []string {
	columns := make([]string, len(c))
	for i, mapping := range c {
		columns[i] = mapping.Column
	}
	return columns
}

// Covariates returns the mapped covariate names in the definition order.
func (c ColumnMap) Covariates() []string {
	covariates := make([]string, len(c))
	for i, mapping := range c {
		covariates[i] = mapping.Covariate
	}
	return covariates
}
