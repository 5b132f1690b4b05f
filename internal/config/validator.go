package config

import (
	"fmt"
	"strings"

	"github.com/indaco/toolsver/internal/toolsversion"
	"github.com/indaco/toolsver/internal/tui"
)

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	// Category is the validation category (e.g., "Manifest", "Directive").
	Category string

	// Passed indicates if the check passed.
	Passed bool

	// Message provides details about the validation result.
	Message string

	// Warning indicates if this is a warning rather than an error.
	Warning bool
}

// Validator validates configuration settings.
type Validator struct {
	cfg         *Config
	validations []ValidationResult
}

// NewValidator creates a new configuration validator.
func NewValidator(cfg *Config) *Validator {
	return &Validator{
		cfg:         cfg,
		validations: make([]ValidationResult, 0),
	}
}

// Validate runs all validation checks and returns the results.
func (v *Validator) Validate() []ValidationResult {
	v.validations = make([]ValidationResult, 0)

	v.validateManifest()
	v.validateVersions()
	v.validateDirective()
	v.validateTheme()

	return v.validations
}

func (v *Validator) validateManifest() {
	name := v.cfg.Manifest
	switch {
	case name == "":
		v.addValidation("Manifest", false, "manifest file name is empty", false)
	case strings.ContainsAny(name, `/\`):
		v.addValidation("Manifest", false, fmt.Sprintf("manifest %q must be a file name, not a path", name), false)
	default:
		v.addValidation("Manifest", true, fmt.Sprintf("manifest file name %q", name), false)
	}
}

func (v *Validator) validateVersions() {
	var current, minimum *toolsversion.Version

	if raw := v.cfg.CurrentToolsVersion; raw != "" {
		parsed, err := toolsversion.Parse(raw)
		if err != nil {
			v.addValidation("Versions", false, fmt.Sprintf("current-tools-version: %v", err), false)
		} else {
			current = &parsed
		}
	}

	if raw := v.cfg.MinimumToolsVersion; raw != "" {
		parsed, err := toolsversion.Parse(raw)
		if err != nil {
			v.addValidation("Versions", false, fmt.Sprintf("minimum-tools-version: %v", err), false)
		} else {
			minimum = &parsed
		}
	}

	if current != nil && minimum != nil && current.Less(*minimum) {
		v.addValidation("Versions", false,
			fmt.Sprintf("current-tools-version %s is below minimum-tools-version %s", current, minimum), false)
		return
	}

	if current != nil && current.IsPreRelease() {
		v.addValidation("Versions", true,
			fmt.Sprintf("current-tools-version %s is a pre-release", current), true)
	}
}

func (v *Validator) validateDirective() {
	d := v.cfg.Directive
	if d == nil {
		return
	}

	if d.Marker != "" && strings.ContainsAny(d.Marker, " \t\r\n") {
		v.addValidation("Directive", false, fmt.Sprintf("marker %q must not contain whitespace", d.Marker), false)
	}
	if d.Keyword != "" && !isKeyword(d.Keyword) {
		v.addValidation("Directive", false,
			fmt.Sprintf("keyword %q may only contain letters, digits, '-' and '_'", d.Keyword), false)
	}
	if d.Separator != "" && d.Separator != ":" && d.Separator != "=" {
		v.addValidation("Directive", false, fmt.Sprintf("separator %q must be ':' or '='", d.Separator), false)
	}
}

// validateTheme warns about unknown themes; the default theme is used instead.
func (v *Validator) validateTheme() {
	if v.cfg.Theme == "" || tui.IsValidTheme(v.cfg.Theme) {
		return
	}
	v.addValidation("Theme", true,
		fmt.Sprintf("unknown theme %q, valid themes: %s", v.cfg.Theme, strings.Join(tui.ThemeNames(), ", ")), true)
}

func isKeyword(s string) bool {
	for _, c := range s {
		ok := c == '-' || c == '_' ||
			(c >= '0' && c <= '9') ||
			(c >= 'a' && c <= 'z') ||
			(c >= 'A' && c <= 'Z')
		if !ok {
			return false
		}
	}
	return true
}

// addValidation adds a validation result to the list.
func (v *Validator) addValidation(category string, passed bool, message string, warning bool) {
	v.validations = append(v.validations, ValidationResult{
		Category: category,
		Passed:   passed,
		Message:  message,
		Warning:  warning,
	})
}

// Validate checks cfg and returns an error describing every failed check.
func (c *Config) Validate() error {
	results := NewValidator(c).Validate()
	if !HasErrors(results) {
		return nil
	}

	var msgs []string
	for _, r := range results {
		if !r.Passed && !r.Warning {
			msgs = append(msgs, r.Message)
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// HasErrors returns true if any validation failed.
func HasErrors(results []ValidationResult) bool {
	return ErrorCount(results) > 0
}

// ErrorCount returns the number of failed validations.
func ErrorCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if !r.Passed && !r.Warning {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warnings.
func WarningCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if r.Warning {
			count++
		}
	}
	return count
}
