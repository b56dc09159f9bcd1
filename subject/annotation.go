package subject

// AnnotationSubject is the root struct field annotation tag.
const AnnotationSubject = "cvd"

// Subject model field annotation tags.
const (
	// AnnotationName is the subject field's tag used to override the covariate name.
	// Example: `cvd:"name=SBP_nt"`
	AnnotationName = "name"

	// AnnotationNotIncluded is the tag value used to omit given field from the template.
	// Example: `cvd:"-"`
	AnnotationNotIncluded = "-"
)

// Separators and other symbols.
const (
	// AnnotationSeparator is the symbol used to separate the sub-tag values for given cvd tag.
	// Example: `cvd:"name=value1,value2"`
	//						       ^
	AnnotationSeparator = ","

	// AnnotationTagSeparator is the symbol used to separate cvd based tags.
	// Example: `cvd:"name=custom_name;other"`
	//								  ^
	AnnotationTagSeparator = ";"

	// AnnotationTagEqual is the symbol used to set the values for given cvd tag.
	// Example: `cvd:"name=custom_name"`
	//					  ^
	AnnotationTagEqual = '='
)
