package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardiolabs/cvdrisk/errors/class"
)

// TestError tests the classified error creation functions.
func TestError(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		first := New(class.SchemaFieldMissing, "some testing message")
		second := Newf(class.SchemaFieldMissing, "formatted: '%d'", 2)

		assert.Equal(t, "some testing message", first.Error())
		assert.Equal(t, "formatted: '2'", second.Error())

		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, class.SchemaFieldMissing, first.Class)
	})

	t.Run("Detail", func(t *testing.T) {
		err := New(class.TableColumnNotFound, "column not found")

		err.SetDetailf("Column: '%s' is not found within the table.", "sbp")
		assert.Equal(t, "Column: 'sbp' is not found within the table.", err.Detail)

		err.WrapDetail("Remapping failed.")
		assert.Equal(t, "Remapping failed. Column: 'sbp' is not found within the table.", err.Detail)

		err.Detail = ""
		err.WrapDetail("Should be stored.")
		assert.Equal(t, "Should be stored.", err.Detail)
	})

	t.Run("Operation", func(t *testing.T) {
		err := New(class.ModelValueNil, "nil record").SetOperation("risk.scoreOne")
		assert.Equal(t, "risk.scoreOne", err.Operation)
	})
}

// TestIsClass tests the error class matching.
func TestIsClass(t *testing.T) {
	err := New(class.SchemaFieldRange, "value out of range")

	assert.True(t, IsClass(err, class.SchemaFieldRange))
	assert.False(t, IsClass(err, class.SchemaFieldType))
	assert.True(t, IsMajor(err, class.MjrSchema))
	assert.False(t, IsMajor(err, class.MjrTable))

	t.Run("MultiError", func(t *testing.T) {
		multi := MultiError{
			New(class.SchemaFieldRange, "value out of range"),
			New(class.TableShapeInvalid, "ragged row"),
		}

		assert.True(t, IsClass(multi, class.TableShapeInvalid))
		assert.False(t, IsClass(multi, class.TableColumnNotFound))
		assert.True(t, IsMajor(multi, class.MjrSchema))

		require.Len(t, multi.Classes(), 2)
		assert.Contains(t, multi.Error(), "ragged row")
	})
}
