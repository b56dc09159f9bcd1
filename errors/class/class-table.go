package class

// MjrTable - major that classifies errors related with the tabular inputs.
var MjrTable Major

func registerTableClasses() {
	MjrTable = MustRegisterMajor("Table")

	registerTableColumn()
	registerTableMapping()
	registerTableShape()
	registerTableValue()
}

var (
	// MnrTableColumn is the 'MjrTable' minor error classification
	// on the table column issues.
	MnrTableColumn Minor

	// TableColumnNotFound is the 'MjrTable', 'MnrTableColumn' error classification
	// when the named column is not found within the table.
	TableColumnNotFound Class

	// TableColumnDuplicated is the 'MjrTable', 'MnrTableColumn' error classification
	// when the table header contains duplicated column names.
	TableColumnDuplicated Class
)

func registerTableColumn() {
	MnrTableColumn = MjrTable.MustRegisterMinor("Column", "table column issues")

	TableColumnNotFound = MnrTableColumn.MustRegisterIndex("Not Found", "column not found within the table").Class()
	TableColumnDuplicated = MnrTableColumn.MustRegisterIndex("Duplicated", "duplicated column name within the table").Class()
}

var (
	// MnrTableMapping is the 'MjrTable' minor error classification
	// on the column mapping issues.
	MnrTableMapping Minor

	// TableMappingEmpty is the 'MjrTable', 'MnrTableMapping' error classification
	// for empty column mappings.
	TableMappingEmpty Class

	// TableMappingDuplicated is the 'MjrTable', 'MnrTableMapping' error classification
	// for column mappings with duplicated entries.
	TableMappingDuplicated Class

	// TableMappingName is the 'MjrTable', 'MnrTableMapping' error classification
	// for column mappings with blank names.
	TableMappingName Class
)

func registerTableMapping() {
	MnrTableMapping = MjrTable.MustRegisterMinor("Mapping", "column mapping issues")

	TableMappingEmpty = MnrTableMapping.MustRegisterIndex("Empty", "empty column mapping").Class()
	TableMappingDuplicated = MnrTableMapping.MustRegisterIndex("Duplicated", "duplicated column mapping entry").Class()
	TableMappingName = MnrTableMapping.MustRegisterIndex("Name", "blank column mapping name").Class()
}

var (
	// MnrTableShape is the 'MjrTable' minor error classification
	// on the table shape issues.
	MnrTableShape Minor

	// TableShapeInvalid is the 'MjrTable', 'MnrTableShape' error classification
	// for ragged rows or rows not matching the header width.
	TableShapeInvalid Class
)

func registerTableShape() {
	MnrTableShape = MjrTable.MustRegisterMinor("Shape", "table shape issues")

	TableShapeInvalid = MnrTableShape.MustRegisterIndex("Invalid", "table rows doesn't match the header width").Class()
}

var (
	// MnrTableValue is the 'MjrTable' minor error classification
	// on the table value issues.
	MnrTableValue Minor

	// TableValueType is the 'MjrTable', 'MnrTableValue' error classification
	// for table cells of unsupported type.
	TableValueType Class

	// TableValueInput is the 'MjrTable', 'MnrTableValue' error classification
	// for table inputs of unsupported kind.
	TableValueInput Class
)

func registerTableValue() {
	MnrTableValue = MjrTable.MustRegisterMinor("Value", "table value issues")

	TableValueType = MnrTableValue.MustRegisterIndex("Type", "table cell of unsupported type").Class()
	TableValueInput = MnrTableValue.MustRegisterIndex("Input", "table input of unsupported kind").Class()
}
