package toolsversion

import (
	"errors"
	"fmt"
)

// Reason classifies why a version string was rejected.
type Reason string

const (
	ReasonEmpty             Reason = "empty"
	ReasonNonNumeric        Reason = "non-numeric-component"
	ReasonLeadingZero       Reason = "leading-zero"
	ReasonInvalidIdentifier Reason = "invalid-identifier-character"
	ReasonTooManyComponents Reason = "too-many-components"
	ReasonTooLong           Reason = "too-long"
)

// ErrMalformedVersion is matched by every *MalformedVersionError.
var ErrMalformedVersion = errors.New("malformed tools version")

// MalformedVersionError describes a version string that does not match the
// tools version grammar. Offending holds the substring that failed, if any.
type MalformedVersionError struct {
	Input     string
	Reason    Reason
	Offending string
}

func malformed(input string, reason Reason, offending string) *MalformedVersionError {
	return &MalformedVersionError{Input: input, Reason: reason, Offending: offending}
}

func (e *MalformedVersionError) Error() string {
	switch e.Reason {
	case ReasonEmpty:
		if e.Input == "" {
			return fmt.Sprintf("%s: version string is empty", ErrMalformedVersion)
		}
		return fmt.Sprintf("%s %q: empty component", ErrMalformedVersion, e.Input)
	case ReasonTooLong:
		return fmt.Sprintf("%s: version string exceeds maximum length of %d", ErrMalformedVersion, maxVersionLength)
	case ReasonNonNumeric:
		return fmt.Sprintf("%s %q: component %q is not numeric", ErrMalformedVersion, e.Input, e.Offending)
	case ReasonLeadingZero:
		return fmt.Sprintf("%s %q: component %q has a leading zero", ErrMalformedVersion, e.Input, e.Offending)
	case ReasonInvalidIdentifier:
		return fmt.Sprintf("%s %q: identifier %q contains invalid characters", ErrMalformedVersion, e.Input, e.Offending)
	case ReasonTooManyComponents:
		return fmt.Sprintf("%s %q: more than 3 numeric components", ErrMalformedVersion, e.Input)
	default:
		return fmt.Sprintf("%s %q", ErrMalformedVersion, e.Input)
	}
}

// Is makes errors.Is(err, ErrMalformedVersion) succeed.
func (e *MalformedVersionError) Is(target error) bool {
	return target == ErrMalformedVersion
}
