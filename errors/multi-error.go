package errors

import (
	"strings"

	"github.com/cardiolabs/cvdrisk/errors/class"
)

// MultiError is the slice of errors parsable into a single error.
type MultiError []error

// Error implements error interface.
func (m MultiError) Error() string {
	sb := &strings.Builder{}

	for i, e := range m {
		sb.WriteString(e.Error())
		if i != len(m)-1 {
			sb.WriteString(",")
		}
	}
	return sb.String()
}

// Classes lists the classes of all contained class based errors.
func (m MultiError) Classes() []class.Class {
	classes := make([]class.Class, 0, len(m))
	for _, e := range m {
		if classed, ok := e.(*Error); ok {
			classes = append(classes, classed.Class)
		}
	}
	return classes
}
