package subject

import (
	"reflect"
)

// Record is a single validated subject built upon its template. The record
// values are guaranteed to fulfill the template's field constraints.
type Record struct {
	template *Template
	value    reflect.Value
}

// Template returns the record's template.
func (r *Record) Template() *Template {
	return r.template
}

// Interface returns the underlying subject model value.
func (r *Record) Interface() interface{} {
	return r.value.Interface()
}

// Sex returns the subject's sex discriminator value.
func (r *Record) Sex() Sex {
	return r.value.Field(r.template.sexField.Index()).Interface().(Sex)
}

// Covariate gets the numeric value of the 'name' covariate. The binary
// covariates are mapped into the '1.0' and '0.0' values. The sex discriminator
// is not readable as a numeric covariate - the function returns false for it,
// as well as for the names not defined within the template.
func (r *Record) Covariate(name string) (float64, bool) {
	field, ok := r.template.byName[name]
	if !ok {
		return 0, false
	}

	fv := r.value.Field(field.Index())
	switch field.Kind() {
	case KindContinuous:
		return fv.Float(), true
	case KindBinary:
		if fv.Bool() {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}
