package subject

import (
	"reflect"
	"strings"
)

// FieldKind is an enum that defines the covariate kind of the template's field.
type FieldKind int

// Enums for the field kind.
const (
	// UnknownKind is the unsupported unknown kind of the struct field.
	UnknownKind FieldKind = iota

	// KindSex is the subject's sex discriminator field.
	KindSex

	// KindContinuous is a continuous, real valued covariate field.
	KindContinuous

	// KindBinary is a boolean covariate field.
	KindBinary
)

// String implements fmt.Stringer interface.
func (f FieldKind) String() string {
	switch f {
	case KindSex:
		return "Sex"
	case KindContinuous:
		return "Continuous"
	case KindBinary:
		return "Binary"
	}
	return "Unknown"
}

// FieldTag is the key: values pair for the given field struct's tag.
type FieldTag struct {
	Key    string
	Values []string
}

// StructField is a single covariate field of the subject template.
type StructField struct {
	covariateName string
	kind          FieldKind
	reflectField  reflect.StructField
	fieldIndex    int
}

// CovariateName returns the covariate name the field maps into.
func (s *StructField) CovariateName() string {
	return s.covariateName
}

// Kind returns the field's covariate kind.
func (s *StructField) Kind() FieldKind {
	return s.kind
}

// ReflectField returns the reflect.StructField for given field.
func (s *StructField) ReflectField() reflect.StructField {
	return s.reflectField
}

// Index returns the field's index within the template's struct type.
func (s *StructField) Index() int {
	return s.fieldIndex
}

// ExtractFieldTags extracts the []*subject.FieldTag from the given
// StructField's 'cvd' reflect tag.
func (s *StructField) ExtractFieldTags() []*FieldTag {
	return s.extractFieldTags(AnnotationSubject, AnnotationTagSeparator, AnnotationSeparator)
}

func (s *StructField) extractFieldTags(fieldTag, tagSeparator, valuesSeparator string) []*FieldTag {
	tag, ok := s.reflectField.Tag.Lookup(fieldTag)
	if !ok {
		// if there is no struct tag with name 'fieldTag' return nil
		return nil
	}

	// omit the field with the '-' tag
	if tag == AnnotationNotIncluded {
		return []*FieldTag{{Key: AnnotationNotIncluded}}
	}

	var tags []*FieldTag
	for _, option := range splitNotEscaped(tag, []rune(tagSeparator)[0]) {
		fieldTag := &FieldTag{Key: option}

		// split the option into the 'key=values' pair
		if index := indexNotEscaped(option, AnnotationTagEqual); index > 0 {
			fieldTag.Key = option[:index]
			fieldTag.Values = strings.Split(option[index+1:], valuesSeparator)
		}
		tags = append(tags, fieldTag)
	}
	return tags
}

// splitNotEscaped splits the tag on each non escaped occurrence of the separator rune.
func splitNotEscaped(tag string, separator rune) []string {
	var (
		parts []string
		last  int
	)
	for i, r := range tag {
		// check if the rune before is not an 'escape'
		if i != 0 && r == separator && tag[i-1] != '\\' {
			parts = append(parts, tag[last:i])
			last = i + 1
		}
	}
	return append(parts, tag[last:])
}

// indexNotEscaped gets the index of the first non escaped occurrence of given symbol.
func indexNotEscaped(option string, symbol rune) int {
	for i, r := range option {
		if i != 0 && r == symbol && option[i-1] != '\\' {
			return i
		}
	}
	return -1
}
