package subject

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardiolabs/cvdrisk/errors"
	"github.com/cardiolabs/cvdrisk/errors/class"
	"github.com/cardiolabs/cvdrisk/namer"
)

type lipidPanel struct {
	Sex           Sex
	BodyMassIndex float64
	ApoB          float64 `cvd:"name=apo_b"`
	Fasting       bool
	Comment       string `cvd:"-"`
	hidden        string
}

type noSexPanel struct {
	Age float64
}

type textPanel struct {
	Sex  Sex
	Name string
}

// TestNewTemplate tests the subject model template parser.
func TestNewTemplate(t *testing.T) {
	t.Run("Framingham", func(t *testing.T) {
		template, err := NewTemplate(Framingham{}, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, "framinghams", template.Collection())
		assert.Equal(t, reflect.TypeOf(Framingham{}), template.Type())
		assert.Len(t, template.Fields(), 8)
		assert.Equal(t, []string{"sex", "age", "SBP_nt", "SBP_t", "tch", "HDL", "smoking", "diabetes"}, template.Covariates())

		require.NotNil(t, template.SexField())
		assert.Equal(t, KindSex, template.SexField().Kind())
		assert.Equal(t, "sex", template.SexField().CovariateName())

		field, ok := template.FieldByName("SBP_nt")
		require.True(t, ok)
		assert.Equal(t, KindContinuous, field.Kind())
		assert.Equal(t, "SystolicBloodPressureNotTreated", field.ReflectField().Name)

		field, ok = template.FieldByName("diabetes")
		require.True(t, ok)
		assert.Equal(t, KindBinary, field.Kind())
	})

	t.Run("CustomNaming", func(t *testing.T) {
		template, err := NewTemplate(&lipidPanel{}, namer.NamingKebab, nil)
		require.NoError(t, err)

		assert.Equal(t, "lipid-panels", template.Collection())
		assert.Equal(t, []string{"sex", "body-mass-index", "apo_b", "fasting"}, template.Covariates())

		// the omitted and unexported fields are not mapped
		_, ok := template.FieldByName("comment")
		assert.False(t, ok)
		_, ok = template.FieldByName("hidden")
		assert.False(t, ok)
	})

	t.Run("NilModel", func(t *testing.T) {
		_, err := NewTemplate(nil, nil, nil)
		if assert.Error(t, err) {
			assert.True(t, errors.IsClass(err, class.ModelValueNil))
		}
	})

	t.Run("NonStruct", func(t *testing.T) {
		_, err := NewTemplate("framingham", nil, nil)
		if assert.Error(t, err) {
			assert.True(t, errors.IsClass(err, class.SchemaTemplateInvalid))
		}
	})

	t.Run("NoSexField", func(t *testing.T) {
		_, err := NewTemplate(noSexPanel{}, nil, nil)
		if assert.Error(t, err) {
			assert.True(t, errors.IsClass(err, class.SchemaTemplateInvalid))
		}
	})

	t.Run("UnsupportedFieldType", func(t *testing.T) {
		_, err := NewTemplate(textPanel{}, nil, nil)
		if assert.Error(t, err) {
			assert.True(t, errors.IsClass(err, class.SchemaTemplateInvalid))
		}
	})

	t.Run("DuplicatedCovariate", func(t *testing.T) {
		type duplicated struct {
			Sex Sex
			Age float64
			Old float64 `cvd:"name=age"`
		}
		_, err := NewTemplate(duplicated{}, nil, nil)
		if assert.Error(t, err) {
			assert.True(t, errors.IsClass(err, class.SchemaTemplateInvalid))
		}
	})

	t.Run("MultipleSexFields", func(t *testing.T) {
		type doubled struct {
			Sex   Sex
			Other Sex `cvd:"name=other"`
			Age   float64
		}
		_, err := NewTemplate(doubled{}, nil, nil)
		if assert.Error(t, err) {
			assert.True(t, errors.IsClass(err, class.SchemaTemplateInvalid))
		}
	})

	t.Run("MalformedTag", func(t *testing.T) {
		type malformed struct {
			Sex Sex
			Age float64 `cvd:"name="`
		}
		_, err := NewTemplate(malformed{}, nil, nil)
		if assert.Error(t, err) {
			assert.True(t, errors.IsClass(err, class.SchemaTemplateTag))
		}
	})

	t.Run("UnsupportedTag", func(t *testing.T) {
		type unsupported struct {
			Sex Sex
			Age float64 `cvd:"primary"`
		}
		_, err := NewTemplate(unsupported{}, nil, nil)
		if assert.Error(t, err) {
			assert.True(t, errors.IsClass(err, class.SchemaTemplateTag))
		}
	})
}

// TestExtractFieldTags tests the 'cvd' field tag extraction.
func TestExtractFieldTags(t *testing.T) {
	type tagged struct {
		First  float64 `cvd:"name=apo_b"`
		Second float64 `cvd:"name=a\\;b"`
		Third  float64 `cvd:"-"`
		Fourth float64
	}
	taggedType := reflect.TypeOf(tagged{})

	t.Run("KeyValue", func(t *testing.T) {
		field := &StructField{reflectField: taggedType.Field(0)}
		tags := field.ExtractFieldTags()
		require.Len(t, tags, 1)
		assert.Equal(t, AnnotationName, tags[0].Key)
		assert.Equal(t, []string{"apo_b"}, tags[0].Values)
	})

	t.Run("EscapedSeparator", func(t *testing.T) {
		field := &StructField{reflectField: taggedType.Field(1)}
		tags := field.ExtractFieldTags()
		require.Len(t, tags, 1)
		assert.Equal(t, []string{`a\;b`}, tags[0].Values)
	})

	t.Run("NotIncluded", func(t *testing.T) {
		field := &StructField{reflectField: taggedType.Field(2)}
		tags := field.ExtractFieldTags()
		require.Len(t, tags, 1)
		assert.Equal(t, AnnotationNotIncluded, tags[0].Key)
	})

	t.Run("NoTag", func(t *testing.T) {
		field := &StructField{reflectField: taggedType.Field(3)}
		assert.Nil(t, field.ExtractFieldTags())
	})
}
