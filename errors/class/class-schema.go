package class

// MjrSchema - major that classifies errors related with the subject schema.
var MjrSchema Major

func registerSchemaClasses() {
	MjrSchema = MustRegisterMajor("Schema")

	registerSchemaField()
	registerSchemaTemplate()
}

/**

Schema Field

*/
var (
	// MnrSchemaField is the 'MjrSchema' minor error classification
	// on the subject field values.
	MnrSchemaField Minor

	// SchemaFieldMissing is the 'MjrSchema', 'MnrSchemaField' error classification
	// when a required covariate is not provided.
	SchemaFieldMissing Class

	// SchemaFieldType is the 'MjrSchema', 'MnrSchemaField' error classification
	// when the provided covariate value has an unsupported type.
	SchemaFieldType Class

	// SchemaFieldRange is the 'MjrSchema', 'MnrSchemaField' error classification
	// when the provided covariate value is out of its allowed range.
	SchemaFieldRange Class

	// SchemaFieldEnum is the 'MjrSchema', 'MnrSchemaField' error classification
	// when the provided covariate value is not one of the allowed enumerated values.
	SchemaFieldEnum Class
)

func registerSchemaField() {
	MnrSchemaField = MjrSchema.MustRegisterMinor("Field", "subject field value issues")

	SchemaFieldMissing = MnrSchemaField.MustRegisterIndex("Missing", "required covariate not provided").Class()
	SchemaFieldType = MnrSchemaField.MustRegisterIndex("Type", "covariate value of unsupported type").Class()
	SchemaFieldRange = MnrSchemaField.MustRegisterIndex("Range", "covariate value out of allowed range").Class()
	SchemaFieldEnum = MnrSchemaField.MustRegisterIndex("Enum", "covariate value not within allowed enum").Class()
}

/**

Schema Template

*/
var (
	// MnrSchemaTemplate is the 'MjrSchema' minor error classification
	// on the subject template definitions.
	MnrSchemaTemplate Minor

	// SchemaTemplateInvalid is the 'MjrSchema', 'MnrSchemaTemplate' error classification
	// for invalid template definitions - i.e. non struct types or duplicated covariates.
	SchemaTemplateInvalid Class

	// SchemaTemplateTag is the 'MjrSchema', 'MnrSchemaTemplate' error classification
	// for malformed template field tags.
	SchemaTemplateTag Class
)

func registerSchemaTemplate() {
	MnrSchemaTemplate = MjrSchema.MustRegisterMinor("Template", "subject template definition issues")

	SchemaTemplateInvalid = MnrSchemaTemplate.MustRegisterIndex("Invalid", "invalid template definition").Class()
	SchemaTemplateTag = MnrSchemaTemplate.MustRegisterIndex("Tag", "malformed template field tag").Class()
}
