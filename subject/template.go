package subject

import (
	"reflect"
	"strconv"

	"github.com/jinzhu/inflection"
	validator "gopkg.in/go-playground/validator.v9"

	"github.com/cardiolabs/cvdrisk/errors"
	"github.com/cardiolabs/cvdrisk/errors/class"
	"github.com/cardiolabs/cvdrisk/log"
	"github.com/cardiolabs/cvdrisk/namer"
)

// sexType is the reflect type of the sex discriminator fields.
var sexType = reflect.TypeOf(UnknownSex)

// Template is the parsed schema of a subject model struct. It maps the
// model's fields into the named covariates, builds the subject records
// and validates their values.
type Template struct {
	modelType  reflect.Type
	collection string

	fields   []*StructField
	sexField *StructField
	byName   map[string]*StructField

	namerFunc namer.Namer
	validate  *validator.Validate
}

// NewTemplate parses given subject 'model' struct into the *subject.Template.
// The covariate names are taken from the 'cvd' field tags and for the untagged
// fields computed from the field names with given 'namerFunc'. Providing nil
// 'namerFunc' maps the untagged fields with the snake case convention, whereas
// nil 'validate' creates a default validator instance for the template.
func NewTemplate(model interface{}, namerFunc namer.Namer, validate *validator.Validate) (*Template, error) {
	if model == nil {
		return nil, errors.New(class.ModelValueNil, "provided nil subject model")
	}

	modelType := reflect.TypeOf(model)
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}
	if modelType.Kind() != reflect.Struct {
		return nil, errors.Newf(class.SchemaTemplateInvalid, "provided invalid subject model: '%T'", model)
	}

	if namerFunc == nil {
		namerFunc = namer.NamingSnake
	}
	if validate == nil {
		validate = validator.New()
	}

	t := &Template{
		modelType:  modelType,
		collection: inflection.Plural(namerFunc(modelType.Name())),
		byName:     map[string]*StructField{},
		namerFunc:  namerFunc,
		validate:   validate,
	}

	for i := 0; i < modelType.NumField(); i++ {
		tField := modelType.Field(i)
		if tField.PkgPath != "" {
			// skip the unexported fields
			continue
		}

		structField := &StructField{reflectField: tField, fieldIndex: i}

		tags := structField.ExtractFieldTags()
		if len(tags) == 1 && tags[0].Key == AnnotationNotIncluded {
			continue
		}
		for _, tag := range tags {
			switch tag.Key {
			case AnnotationName:
				if len(tag.Values) == 0 || tag.Values[0] == "" {
					return nil, errors.Newf(class.SchemaTemplateTag, "template: '%s' field: '%s' defines the name tag with no value", modelType.Name(), tField.Name)
				}
				structField.covariateName = tag.Values[0]
			default:
				return nil, errors.Newf(class.SchemaTemplateTag, "template: '%s' field: '%s' defines unsupported tag: '%s'", modelType.Name(), tField.Name, tag.Key)
			}
		}

		if tField.Type == sexType {
			structField.kind = KindSex
		} else {
			switch tField.Type.Kind() {
			case reflect.Float64, reflect.Float32:
				structField.kind = KindContinuous
			case reflect.Bool:
				structField.kind = KindBinary
			default:
				return nil, errors.Newf(class.SchemaTemplateInvalid, "template: '%s' field: '%s' is of unsupported type: '%s'", modelType.Name(), tField.Name, tField.Type.String())
			}
		}

		if structField.covariateName == "" {
			structField.covariateName = t.namerFunc(tField.Name)
		}

		if _, ok := t.byName[structField.covariateName]; ok {
			return nil, errors.Newf(class.SchemaTemplateInvalid, "template: '%s' defines duplicated covariate name: '%s'", modelType.Name(), structField.covariateName)
		}

		if structField.kind == KindSex {
			if t.sexField != nil {
				return nil, errors.Newf(class.SchemaTemplateInvalid, "template: '%s' defines multiple sex discriminator fields", modelType.Name())
			}
			t.sexField = structField
		}

		t.fields = append(t.fields, structField)
		t.byName[structField.covariateName] = structField
		log.Debug3f("Template: '%s' field: '%s' mapped into the covariate: '%s' of kind: '%s'", t.collection, tField.Name, structField.covariateName, structField.kind)
	}

	if t.sexField == nil {
		return nil, errors.Newf(class.SchemaTemplateInvalid, "template: '%s' defines no sex discriminator field", modelType.Name())
	}
	if len(t.fields) <= 1 {
		return nil, errors.Newf(class.SchemaTemplateInvalid, "template: '%s' defines no covariate fields", modelType.Name())
	}
	return t, nil
}

// Type returns the template's model struct type.
func (t *Template) Type() reflect.Type {
	return t.modelType
}

// Collection returns the template's pluralized collection name.
func (t *Template) Collection() string {
	return t.collection
}

// Fields returns all the template's covariate fields in the definition order.
func (t *Template) Fields() []*StructField {
	return t.fields
}

// SexField returns the template's sex discriminator field.
func (t *Template) SexField() *StructField {
	return t.sexField
}

// FieldByName gets the template's field mapped into the 'name' covariate.
func (t *Template) FieldByName(name string) (*StructField, bool) {
	field, ok := t.byName[name]
	return field, ok
}

// Covariates returns the covariate names in the field definition order.
func (t *Template) Covariates() []string {
	names := make([]string, len(t.fields))
	for i, field := range t.fields {
		names[i] = field.CovariateName()
	}
	return names
}

// NewRecord creates and validates a single subject record built from the
// covariate name to value mapping. The 'fieldValues' keys not defined within
// the template are ignored.
func (t *Template) NewRecord(fieldValues map[string]interface{}) (*Record, error) {
	value := reflect.New(t.modelType).Elem()
	for _, field := range t.fields {
		raw, ok := fieldValues[field.CovariateName()]
		if !ok {
			return nil, errors.Newf(class.SchemaFieldMissing, "missing required covariate: '%s'", field.CovariateName()).
				SetDetailf("The covariate: '%s' is required.", field.CovariateName())
		}
		if err := t.setFieldValue(value, field, raw); err != nil {
			return nil, err
		}
	}
	return t.newRecord(value)
}

// Record wraps and validates given instance of the template's model struct.
// The instance value is copied so that further caller mutations don't affect
// the record.
func (t *Template) Record(model interface{}) (*Record, error) {
	if model == nil {
		return nil, errors.New(class.ModelValueNil, "provided nil subject model")
	}

	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, errors.New(class.ModelValueNil, "provided nil subject model")
		}
		v = v.Elem()
	}
	if v.Type() != t.modelType {
		return nil, errors.Newf(class.SchemaTemplateInvalid, "provided model: '%T' doesn't match the template: '%s'", model, t.collection)
	}

	value := reflect.New(t.modelType).Elem()
	value.Set(v)
	return t.newRecord(value)
}

func (t *Template) newRecord(value reflect.Value) (*Record, error) {
	if err := t.validateStruct(value.Interface()); err != nil {
		return nil, err
	}

	record := &Record{template: t, value: value}
	// every record must carry a valid sex discriminator
	if sex := record.Sex(); !sex.Valid() {
		return nil, errors.Newf(class.SchemaFieldEnum, "unsupported sex value: '%d'", sex).
			SetDetailf("The covariate: '%s' value: '%d' is not a valid enum value.", t.sexField.CovariateName(), sex)
	}
	return record, nil
}

func (t *Template) setFieldValue(value reflect.Value, field *StructField, raw interface{}) error {
	fv := value.Field(field.Index())
	switch field.Kind() {
	case KindSex:
		sex, err := parseSexValue(raw)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(sex))
	case KindContinuous:
		number, ok := parseContinuousValue(raw)
		if !ok {
			return errors.Newf(class.SchemaFieldType, "invalid type: '%T' for the continuous covariate: '%s'", raw, field.CovariateName()).
				SetDetailf("The covariate: '%s' value: '%v' must be representable as a real number.", field.CovariateName(), raw)
		}
		fv.SetFloat(number)
	case KindBinary:
		flag, ok := raw.(bool)
		if !ok {
			return errors.Newf(class.SchemaFieldType, "invalid type: '%T' for the binary covariate: '%s'", raw, field.CovariateName()).
				SetDetailf("The covariate: '%s' value: '%v' must be a boolean.", field.CovariateName(), raw)
		}
		fv.SetBool(flag)
	}
	return nil
}

// validateStruct checks the subject model value with the template's validator
// and classifies the field failures.
func (t *Template) validateStruct(model interface{}) error {
	err := t.validate.Struct(model)
	if err == nil {
		return nil
	}

	switch er := err.(type) {
	case *validator.InvalidValidationError:
		// invalid argument passed to the validator
		log.Errorf("Template: '%s' - invalid validation error: %v", t.collection, er)
		return errors.Newf(class.SchemaTemplateInvalid, "invalid validation for the template: '%s'", t.collection)
	case validator.ValidationErrors:
		var errs errors.MultiError
		for _, verr := range er {
			errs = append(errs, t.classifyFieldError(verr))
		}
		if len(errs) == 1 {
			return errs[0]
		}
		return errs
	}
	return errors.Newf(class.SchemaTemplateInvalid, "template: '%s' validation failed: %v", t.collection, err)
}

func (t *Template) classifyFieldError(verr validator.FieldError) *errors.Error {
	name := verr.StructField()
	if field, ok := t.fieldByStructName(name); ok {
		name = field.CovariateName()
	}

	switch tag := verr.Tag(); tag {
	case "required":
		return errors.Newf(class.SchemaFieldMissing, "covariate: '%s' is required", name).
			SetDetailf("The covariate: '%s' is required.", name)
	case "gt", "gte", "lt", "lte":
		return errors.Newf(class.SchemaFieldRange, "covariate: '%s' value out of range", name).
			SetDetailf("The covariate: '%s' value: '%v' violates the '%s=%s' constraint.", name, verr.Value(), tag, verr.Param())
	case "oneof":
		return errors.Newf(class.SchemaFieldEnum, "covariate: '%s' value not allowed", name).
			SetDetailf("The covariate: '%s' value: '%v' is not one of the allowed: '%s' values.", name, verr.Value(), verr.Param())
	default:
		return errors.Newf(class.SchemaFieldRange, "covariate: '%s' value invalid", name).
			SetDetailf("The covariate: '%s' value: '%v' violates the '%s' constraint.", name, verr.Value(), tag)
	}
}

func (t *Template) fieldByStructName(name string) (*StructField, bool) {
	for _, field := range t.fields {
		if field.reflectField.Name == name {
			return field, true
		}
	}
	return nil, false
}

// parseSexValue converts the raw input value into the Sex enum.
func parseSexValue(raw interface{}) (Sex, error) {
	switch v := raw.(type) {
	case Sex:
		if !v.Valid() {
			return UnknownSex, errors.Newf(class.SchemaFieldEnum, "unsupported sex value: '%d'", v).
				SetDetailf("The sex value: '%d' is not a valid enum value.", v)
		}
		return v, nil
	case string:
		return ParseSex(v)
	}
	return UnknownSex, errors.Newf(class.SchemaFieldType, "invalid type: '%T' for the sex covariate", raw).
		SetDetailf("The covariate: 'sex' value: '%v' must be a string or a subject.Sex value.", raw)
}

// parseContinuousValue converts the raw input value into float64. Besides
// the numeric types the numeric strings are accepted as well - the raw
// tabular sources frequently carry the numbers spelled as text. The booleans
// are not real numbers and don't convert.
func parseContinuousValue(value interface{}) (float64, bool) {
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
	case string:
		number, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return number, true
	}
	return 0, false
}
