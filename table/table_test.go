package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardiolabs/cvdrisk/errors"
	"github.com/cardiolabs/cvdrisk/errors/class"
)

// TestNewTable tests the labeled table constructor.
func TestNewTable(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		table, err := NewTable(
			[]string{"age", "sex", "smoker"},
			[][]interface{}{
				{53.0, "male", false},
				{61.0, "female", true},
			},
		)
		require.NoError(t, err)

		assert.Equal(t, []string{"age", "sex", "smoker"}, table.Columns())
		assert.Equal(t, 2, table.Rows())
		assert.Equal(t, []interface{}{61.0, "female", true}, table.Row(1))
	})

	t.Run("NoRows", func(t *testing.T) {
		table, err := NewTable([]string{"age"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, table.Rows())
	})

	t.Run("DuplicatedColumn", func(t *testing.T) {
		_, err := NewTable([]string{"age", "age"}, nil)
		if assert.Error(t, err) {
			assert.True(t, errors.IsClass(err, class.TableColumnDuplicated))
		}

		// the composed and decomposed unicode headers resolve into the same column
		_, err = NewTable([]string{"ége", "ége"}, nil)
		if assert.Error(t, err) {
			assert.True(t, errors.IsClass(err, class.TableColumnDuplicated))
		}
	})

	t.Run("RaggedRows", func(t *testing.T) {
		_, err := NewTable(
			[]string{"age", "sex"},
			[][]interface{}{
				{53.0, "male"},
				{61.0},
			},
		)
		if assert.Error(t, err) {
			assert.True(t, errors.IsClass(err, class.TableShapeInvalid))
		}
	})
}

// TestColumnIndex tests the normalized column lookups.
func TestColumnIndex(t *testing.T) {
	table, err := NewTable([]string{"age", "ége"}, nil)
	require.NoError(t, err)

	index, err := table.ColumnIndex("age")
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	// lookup with the decomposed spelling of the header
	index, err = table.ColumnIndex("ége")
	require.NoError(t, err)
	assert.Equal(t, 1, index)

	_, err = table.ColumnIndex("weight")
	if assert.Error(t, err) {
		assert.True(t, errors.IsClass(err, class.TableColumnNotFound))
	}
}

// TestFloat tests the numeric cell access.
func TestFloat(t *testing.T) {
	table, err := NewTable(
		[]string{"age", "smoker", "tch", "sex"},
		[][]interface{}{
			{53.0, true, 161, "male"},
			{61.0, false, 180, "female"},
		},
	)
	require.NoError(t, err)

	value, err := table.Float(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 53.0, value)

	// the boolean cells map into the 1.0/0.0 values
	value, err = table.Float(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, value)

	value, err = table.Float(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, value)

	value, err = table.Float(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 161.0, value)

	_, err = table.Float(0, 3)
	if assert.Error(t, err) {
		assert.True(t, errors.IsClass(err, class.TableValueType))
	}

	_, err = table.Float(5, 0)
	if assert.Error(t, err) {
		assert.True(t, errors.IsClass(err, class.TableShapeInvalid))
	}
}
