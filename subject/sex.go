package subject

import (
	"github.com/cardiolabs/cvdrisk/errors"
	"github.com/cardiolabs/cvdrisk/errors/class"
)

// Sex is an enum that defines the biological sex of the scored subject.
type Sex int

// Enums for the subject's sex.
const (
	// UnknownSex is an invalid zero value of the Sex enum.
	UnknownSex Sex = iota

	// SexFemale is the 'female' subject's sex.
	SexFemale

	// SexMale is the 'male' subject's sex.
	SexMale
)

// ParseSex parses the 'raw' string into the Sex enum value. The raw value
// must match the lower case enum name exactly - no other spelling is accepted.
func ParseSex(raw string) (Sex, error) {
	switch raw {
	case "female":
		return SexFemale, nil
	case "male":
		return SexMale, nil
	}
	return UnknownSex, errors.Newf(class.SchemaFieldEnum, "unsupported sex value: '%s'", raw).
		SetDetailf("The sex value: '%s' is not supported. Provide one of: 'female', 'male'.", raw)
}

// String implements fmt.Stringer interface.
func (s Sex) String() string {
	switch s {
	case SexFemale:
		return "female"
	case SexMale:
		return "male"
	}
	return "unknown"
}

// Valid checks if given sex value is one of the defined enum values.
func (s Sex) Valid() bool {
	return s == SexFemale || s == SexMale
}
