package errors

import (
	"github.com/cardiolabs/cvdrisk/errors/class"
)

// IsClass checks if given error is of given class 'c'.
// For the MultiError the function checks if any of the contained
// errors matches given class.
func IsClass(err error, c class.Class) bool {
	switch e := err.(type) {
	case *Error:
		return e.Class == c
	case MultiError:
		for _, single := range e {
			if IsClass(single, c) {
				return true
			}
		}
	}
	return false
}

// IsMajor checks if given error's class is composed of the major 'm'.
// For the MultiError the function checks if any of the contained
// errors matches given major.
func IsMajor(err error, m class.Major) bool {
	switch e := err.(type) {
	case *Error:
		return e.Class.IsMajor(m)
	case MultiError:
		for _, single := range e {
			if IsMajor(single, m) {
				return true
			}
		}
	}
	return false
}
