// Package errors provides lightweight error handling and classification primitives.
//
// Each error created by this package carries its unique instance ID and
// a class defined in the errors/class subpackage. The classes allow the
// callers to distinguish schema validation failures from the table or
// model issues without inspecting error messages.
package errors
