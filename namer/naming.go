package namer

import (
	"github.com/iancoleman/strcase"
)

// Namer is the function strategy responsible for naming the covariates
// derived from the template struct fields.
type Namer func(string) string

// NamingSnake is a Namer function.
// it convert the name into the 'snake_case_covariate'.
func NamingSnake(raw string) string {
	return strcase.ToSnake(raw)
}

// NamingKebab is a Namer function.
// it convert the name into the 'kebab-case-covariate'.
func NamingKebab(raw string) string {
	return strcase.ToKebab(raw)
}

// NamingCamel is a Namer function.
// it convert the name into the 'CamelCaseCovariate'.
func NamingCamel(raw string) string {
	return strcase.ToCamel(raw)
}

// NamingLowerCamel is a Namer function.
// it convert the name into the 'camelCaseCovariate'.
func NamingLowerCamel(raw string) string {
	return strcase.ToLowerCamel(raw)
}
