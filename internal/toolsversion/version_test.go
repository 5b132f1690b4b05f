package toolsversion

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"
)

/* ------------------------------------------------------------------------- */
/* PARSE                                                                     */
/* ------------------------------------------------------------------------- */

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Version
	}{
		{"5", Version{Major: 5}},
		{"5.7", Version{Major: 5, Minor: 7}},
		{"5.7.1", Version{Major: 5, Minor: 7, Patch: 1}},
		{"0.0.0", Version{}},
		{"10.20.30", Version{Major: 10, Minor: 20, Patch: 30}},
		{"5.7.1-beta", Version{Major: 5, Minor: 7, Patch: 1, PreRelease: []string{"beta"}}},
		{"5.7-rc.1", Version{Major: 5, Minor: 7, PreRelease: []string{"rc", "1"}}},
		{"5.7.1-beta-2", Version{Major: 5, Minor: 7, Patch: 1, PreRelease: []string{"beta-2"}}},
		{"5.7.1+build.42", Version{Major: 5, Minor: 7, Patch: 1, Build: []string{"build", "42"}}},
		{"5.7.1-rc.1+exp.sha-5114f85", Version{
			Major: 5, Minor: 7, Patch: 1,
			PreRelease: []string{"rc", "1"},
			Build:      []string{"exp", "sha-5114f85"},
		}},
		{"1.0.0-Alpha", Version{Major: 1, PreRelease: []string{"Alpha"}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		input     string
		reason    Reason
		offending string
	}{
		{"", ReasonEmpty, ""},
		{"5..1", ReasonEmpty, ""},
		{"5.", ReasonEmpty, ""},
		{".5", ReasonEmpty, ""},
		{"v5.0", ReasonNonNumeric, "v5"},
		{"5.x", ReasonNonNumeric, "x"},
		{"5.7.1 ", ReasonNonNumeric, "1 "},
		{"05.1", ReasonLeadingZero, "05"},
		{"5.01.0", ReasonLeadingZero, "01"},
		{"5.7.1-", ReasonEmpty, ""},
		{"5.7.1-beta..1", ReasonEmpty, "beta..1"},
		{"5.7.1+", ReasonEmpty, ""},
		{"5.7.1-beta_1", ReasonInvalidIdentifier, "beta_1"},
		{"5.7.1+build!", ReasonInvalidIdentifier, "build!"},
		{"5.7.1.2", ReasonTooManyComponents, "5.7.1.2"},
		{strings.Repeat("1", maxVersionLength+1), ReasonTooLong, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", tt.input)
			}
			if !errors.Is(err, ErrMalformedVersion) {
				t.Errorf("expected ErrMalformedVersion, got %v", err)
			}

			var mErr *MalformedVersionError
			if !errors.As(err, &mErr) {
				t.Fatalf("expected *MalformedVersionError, got %T", err)
			}
			if mErr.Reason != tt.reason {
				t.Errorf("reason = %q, want %q", mErr.Reason, tt.reason)
			}
			if mErr.Offending != tt.offending {
				t.Errorf("offending = %q, want %q", mErr.Offending, tt.offending)
			}
			if mErr.Input != tt.input {
				t.Errorf("input = %q, want %q", mErr.Input, tt.input)
			}
		})
	}
}

func TestMalformedVersionError_Message(t *testing.T) {
	_, err := Parse("v5.0")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `"v5"`) {
		t.Errorf("expected message to name the offending component, got %q", err.Error())
	}

	_, err = Parse("")
	if err == nil || !strings.Contains(err.Error(), "empty") {
		t.Errorf("expected empty-version message, got %v", err)
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected MustParse to panic on malformed input")
		}
	}()
	MustParse("not-a-version")
}

/* ------------------------------------------------------------------------- */
/* FORMAT                                                                    */
/* ------------------------------------------------------------------------- */

func TestString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"5", "5.0.0"},
		{"5.7", "5.7.0"},
		{"5.7.1", "5.7.1"},
		{"5.7-beta.1", "5.7.0-beta.1"},
		{"5.7.1+Build.7", "5.7.1+Build.7"},
		{"5.7.1-rc.1+exp.sha", "5.7.1-rc.1+exp.sha"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MustParse(tt.input).String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	versions := []Version{
		{},
		New(5, 7, 1),
		New(123, 0, 45),
		{Major: 1, PreRelease: []string{"alpha"}},
		{Major: 1, Minor: 2, Patch: 3, PreRelease: []string{"rc", "10", "x-y"}},
		{Major: 2, Build: []string{"build", "001"}},
		{Major: 6, Minor: 1, PreRelease: []string{"0", "dev"}, Build: []string{"sha", "abc-def"}},
	}

	for _, v := range versions {
		t.Run(v.String(), func(t *testing.T) {
			got, err := Parse(v.String())
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", v.String(), err)
			}
			if !got.Equal(v) {
				t.Errorf("round trip mismatch: got %#v, want %#v", got, v)
			}
		})
	}
}

/* ------------------------------------------------------------------------- */
/* COMPARE                                                                   */
/* ------------------------------------------------------------------------- */

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"5.7.0", "5.7.0", 0},
		{"5.7", "5.7.0", 0},
		{"5.7.0", "5.7.1", -1},
		{"5.8.0", "5.7.9", 1},
		{"6.0.0", "5.99.99", 1},
		{"1.0.0-alpha", "1.0.0", -1},
		{"1.0.0", "1.0.0-rc.1", 1},
		{"1.0.0-alpha", "1.0.0-alpha.1", -1},
		{"1.0.0-alpha.1", "1.0.0-alpha.beta", -1},
		{"1.0.0-alpha.beta", "1.0.0-beta", -1},
		{"1.0.0-beta.2", "1.0.0-beta.11", -1},
		{"1.0.0-beta.11", "1.0.0-rc.1", -1},
		{"1.0.0-rc.1", "1.0.0-rc.1", 0},
		{"1.0.0+build.1", "1.0.0+build.2", 0},
		{"1.0.0-rc.1+a", "1.0.0-rc.1+b", 0},
		{"1.0.0-100000000000000000000", "1.0.0-99999999999999999999", 1},
		{"1.0.0-rc.18446744073709551616", "1.0.0-rc.18446744073709551617", -1},
		{"1.0.0-99999999999999999999", "1.0.0-99999999999999999999", 0},
		{"1.0.0-99999999999999999999", "1.0.0-a", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			a, b := MustParse(tt.a), MustParse(tt.b)
			if got := Compare(a, b); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := b.Compare(a); got != -tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestCompare_TotalOrder(t *testing.T) {
	inputs := []string{
		"1.0.0-alpha", "1.0.0-alpha.1", "1.0.0-alpha.beta", "1.0.0-beta",
		"1.0.0-beta.2", "1.0.0-beta.11", "1.0.0-rc.1", "1.0.0", "1.0.1",
		"1.1.0", "2.0.0-0", "2.0.0", "5.7.0+meta",
	}
	versions := make([]Version, len(inputs))
	for i, s := range inputs {
		versions[i] = MustParse(s)
	}

	for i, a := range versions {
		for j, b := range versions {
			want := compareInt(i, j)
			if got := Compare(a, b); got != want {
				t.Errorf("Compare(%s, %s) = %d, want %d", a, b, got, want)
			}
		}
	}

	shuffled := slices.Clone(versions)
	slices.Reverse(shuffled)
	slices.SortFunc(shuffled, Compare)
	for i := range shuffled {
		if !shuffled[i].Equal(versions[i]) {
			t.Errorf("sorted[%d] = %s, want %s", i, shuffled[i], versions[i])
		}
	}
}

func TestPreReleasePrecedence(t *testing.T) {
	if !MustParse("1.0.0-alpha").Less(MustParse("1.0.0")) {
		t.Error("expected 1.0.0-alpha < 1.0.0")
	}
}

func TestEqual_IncludesBuild(t *testing.T) {
	a := MustParse("1.0.0+a")
	b := MustParse("1.0.0+b")
	if a.Equal(b) {
		t.Error("expected versions with different build metadata to differ")
	}
	if a.Compare(b) != 0 {
		t.Error("expected build metadata to be ignored by Compare")
	}
}

/* ------------------------------------------------------------------------- */
/* DERIVED VALUES                                                            */
/* ------------------------------------------------------------------------- */

func TestZeroedPatch(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"5.7.3", "5.7.0"},
		{"5.7.0", "5.7.0"},
		{"6.0.2-dev+abc", "6.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := MustParse(tt.input).ZeroedPatch()
			if !got.Equal(MustParse(tt.want)) {
				t.Errorf("ZeroedPatch() = %#v, want %s", got, tt.want)
			}
		})
	}
}

func TestZeroedPatch_DoesNotMutate(t *testing.T) {
	v := MustParse("5.7.3-beta+b")
	_ = v.ZeroedPatch()
	if v.String() != "5.7.3-beta+b" {
		t.Errorf("original mutated: %s", v)
	}
}
