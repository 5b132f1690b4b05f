package toolsversion

import (
	"slices"
	"strconv"
	"strings"
)

// Version represents a tools version (major.minor.patch-preRelease+build).
//
// A Version is a value type and must be treated as immutable: methods that
// derive a new version return a copy and never share identifier slices.
type Version struct {
	Major      int
	Minor      int
	Patch      int
	PreRelease []string
	Build      []string
}

// maxVersionLength is the maximum allowed length for a version string.
const maxVersionLength = 128

// New returns a release version with no pre-release or build identifiers.
func New(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Parse parses a tools version string.
//
// Supported formats:
//   - "5" and "5.7" (missing components default to 0)
//   - "5.7.1"
//   - "5.7.1-beta.2" (with pre-release identifiers)
//   - "5.7.1+build.42" (with build metadata)
//   - "5.7.1-rc.1+build.42" (with both)
//
// A "v" prefix is not accepted. Failures are returned as *MalformedVersionError.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, malformed(s, ReasonEmpty, "")
	}
	if len(s) > maxVersionLength {
		return Version{}, malformed(s, ReasonTooLong, "")
	}

	rest := s
	var build, pre []string

	if i := strings.IndexByte(rest, '+'); i >= 0 {
		ids, err := parseIdentifiers(s, rest[i+1:])
		if err != nil {
			return Version{}, err
		}
		build = ids
		rest = rest[:i]
	}

	if i := strings.IndexByte(rest, '-'); i >= 0 {
		ids, err := parseIdentifiers(s, rest[i+1:])
		if err != nil {
			return Version{}, err
		}
		pre = ids
		rest = rest[:i]
	}

	parts := strings.Split(rest, ".")
	if len(parts) > 3 {
		return Version{}, malformed(s, ReasonTooManyComponents, rest)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := parseNumericComponent(s, p)
		if err != nil {
			return Version{}, err
		}
		nums[i] = n
	}

	return Version{
		Major:      nums[0],
		Minor:      nums[1],
		Patch:      nums[2],
		PreRelease: pre,
		Build:      build,
	}, nil
}

// MustParse is like Parse but panics on malformed input.
// It is intended for constants and tests.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func parseNumericComponent(input, p string) (int, error) {
	if p == "" {
		return 0, malformed(input, ReasonEmpty, p)
	}
	if !isAllDigits(p) {
		return 0, malformed(input, ReasonNonNumeric, p)
	}
	if len(p) > 1 && p[0] == '0' {
		return 0, malformed(input, ReasonLeadingZero, p)
	}
	n, err := strconv.Atoi(p)
	if err != nil {
		return 0, malformed(input, ReasonNonNumeric, p)
	}
	return n, nil
}

func parseIdentifiers(input, s string) ([]string, error) {
	ids := strings.Split(s, ".")
	for _, id := range ids {
		if id == "" {
			return nil, malformed(input, ReasonEmpty, s)
		}
		for i := 0; i < len(id); i++ {
			if !isIdentifierChar(id[i]) {
				return nil, malformed(input, ReasonInvalidIdentifier, id)
			}
		}
	}
	return ids, nil
}

func isIdentifierChar(c byte) bool {
	return c == '-' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

// isAllDigits returns true if s consists entirely of ASCII digits.
func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String returns the canonical representation of the version.
// The patch component is always emitted, so "5.7" formats as "5.7.0".
func (v Version) String() string {
	var sb strings.Builder
	sb.Grow(16)
	sb.WriteString(strconv.Itoa(v.Major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Patch))
	if len(v.PreRelease) > 0 {
		sb.WriteByte('-')
		sb.WriteString(strings.Join(v.PreRelease, "."))
	}
	if len(v.Build) > 0 {
		sb.WriteByte('+')
		sb.WriteString(strings.Join(v.Build, "."))
	}
	return sb.String()
}

// ZeroedPatch returns the version with its patch set to zero and without
// pre-release or build identifiers.
func (v Version) ZeroedPatch() Version {
	return Version{Major: v.Major, Minor: v.Minor}
}

// IsPreRelease reports whether the version carries pre-release identifiers.
func (v Version) IsPreRelease() bool {
	return len(v.PreRelease) > 0
}

// Equal reports whether both versions are identical, build metadata included.
// Use Compare to test precedence.
func (v Version) Equal(other Version) bool {
	return v.Major == other.Major &&
		v.Minor == other.Minor &&
		v.Patch == other.Patch &&
		slices.Equal(v.PreRelease, other.PreRelease) &&
		slices.Equal(v.Build, other.Build)
}

// Compare compares v with other.
// It returns -1 if v < other, 0 if v == other, and +1 if v > other.
// Build metadata is ignored.
func (v Version) Compare(other Version) int {
	return Compare(v, other)
}

// Less reports whether v has lower precedence than other.
func (v Version) Less(other Version) bool {
	return Compare(v, other) < 0
}

// Compare compares two tools versions.
// Pre-release versions have lower precedence than the associated normal version
// (e.g., 5.7.0-beta < 5.7.0).
func Compare(a, b Version) int {
	if c := compareInt(a.Major, b.Major); c != 0 {
		return c
	}
	if c := compareInt(a.Minor, b.Minor); c != 0 {
		return c
	}
	if c := compareInt(a.Patch, b.Patch); c != 0 {
		return c
	}

	switch {
	case len(a.PreRelease) == 0 && len(b.PreRelease) == 0:
		return 0
	case len(a.PreRelease) == 0:
		return 1
	case len(b.PreRelease) == 0:
		return -1
	default:
		return comparePreRelease(a.PreRelease, b.PreRelease)
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func comparePreRelease(a, b []string) int {
	n := min(len(a), len(b))
	for i := range n {
		if c := compareIdentifier(a[i], b[i]); c != 0 {
			return c
		}
	}

	// If equal so far, shorter list has lower precedence.
	return compareInt(len(a), len(b))
}

func compareIdentifier(a, b string) int {
	aIsNum, bIsNum := isNumericIdentifier(a), isNumericIdentifier(b)

	switch {
	case aIsNum && bIsNum:
		// Without leading zeros, a longer digit string is the larger number.
		if c := compareInt(len(a), len(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	case aIsNum:
		return -1 // numeric < non-numeric
	case bIsNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// Numeric identifiers are digits only, without leading zeros unless exactly "0".
// They may exceed the range of int.
func isNumericIdentifier(s string) bool {
	return s != "" && (len(s) == 1 || s[0] != '0') && isAllDigits(s)
}
