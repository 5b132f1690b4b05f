package directive

import (
	"errors"
	"fmt"

	"github.com/indaco/toolsver/internal/toolsversion"
)

// Spelling describes one recognized way of writing the directive.
type Spelling struct {
	// Name identifies the spelling in diagnostics.
	Name string

	// Marker is the line-comment marker, e.g. "//" or "#".
	Marker string

	// Keyword is the directive keyword, matched case-insensitively.
	Keyword string

	// Separator sits between the keyword and the version.
	Separator byte
}

// DefaultKeyword is the keyword used by every built-in spelling.
const DefaultKeyword = "tools-version"

// CanonicalSpelling is the spelling used when a directive has to be inserted.
var CanonicalSpelling = Spelling{Name: "canonical", Marker: "//", Keyword: DefaultKeyword, Separator: ':'}

// DefaultSpellings lists the built-in spellings in priority order.
var DefaultSpellings = []Spelling{
	CanonicalSpelling,
	{Name: "hash", Marker: "#", Keyword: DefaultKeyword, Separator: ':'},
	{Name: "legacy-equals", Marker: "//", Keyword: DefaultKeyword, Separator: '='},
}

// Line renders a complete directive line (without line ending) for v.
func (s Spelling) Line(v toolsversion.Version) string {
	return s.Marker + " " + s.Keyword + string(s.Separator) + v.String()
}

// Location describes a directive found in a manifest.
type Location struct {
	// Start and End delimit the directive as a half-open byte range,
	// from the comment marker through the end of the version payload.
	Start int
	End   int

	// VersionStart is the offset at which the version payload begins.
	VersionStart int

	// Raw is the matched literal, data[Start:End].
	Raw string

	// Version is the decoded payload.
	Version toolsversion.Version

	// Spelling is the spelling that matched.
	Spelling Spelling
}

// Prefix returns the directive text preceding the version payload.
func (l *Location) Prefix() string {
	return l.Raw[:l.VersionStart-l.Start]
}

var (
	// ErrMalformedDirective is matched by every *MalformedDirectiveError.
	ErrMalformedDirective = errors.New("malformed tools-version directive")

	// ErrMissingSeparator reports a directive keyword not followed by a known separator.
	ErrMissingSeparator = errors.New("missing separator after directive keyword")

	// ErrMissingVersion reports a directive without a version payload.
	ErrMissingVersion = errors.New("missing version after separator")
)

// MalformedDirectiveError is returned when the directive keyword is present
// but the rest of the line cannot be decoded.
type MalformedDirectiveError struct {
	Raw string
	Err error
}

func (e *MalformedDirectiveError) Error() string {
	return fmt.Sprintf("%s %q: %v", ErrMalformedDirective, e.Raw, e.Err)
}

// Unwrap returns the underlying reason.
func (e *MalformedDirectiveError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrMalformedDirective) succeed.
func (e *MalformedDirectiveError) Is(target error) bool {
	return target == ErrMalformedDirective
}
