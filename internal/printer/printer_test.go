package printer

import (
	"bytes"
	"strings"
	"testing"
)

// TestRenderFunctions verifies that all render functions return non-empty styled strings.
func TestRenderFunctions(t *testing.T) {
	tests := []struct {
		name     string
		function func(string) string
		input    string
	}{
		{"Faint", Faint, "test text"},
		{"Bold", Bold, "test text"},
		{"Success", Success, "test text"},
		{"Error", Error, "test text"},
		{"Warning", Warning, "test text"},
		{"Info", Info, "test text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.function(tt.input)

			// Verify result is not empty
			if result == "" {
				t.Errorf("%s() returned empty string", tt.name)
			}

			// Verify result contains the original text
			// The styled output may or may not contain ANSI codes depending on terminal detection,
			// but it should at minimum contain the original text
			if !strings.Contains(result, tt.input) {
				t.Errorf("%s() result does not contain input text. got %q, want to contain %q", tt.name, result, tt.input)
			}
		})
	}
}

// TestPrintFunctions verifies that print functions write to the configured output.
func TestPrintFunctions(t *testing.T) {
	tests := []struct {
		name     string
		function func(string)
		input    string
	}{
		{"PrintFaint", PrintFaint, "test text"},
		{"PrintBold", PrintBold, "test text"},
		{"PrintSuccess", PrintSuccess, "test text"},
		{"PrintError", PrintError, "test text"},
		{"PrintWarning", PrintWarning, "test text"},
		{"PrintInfo", PrintInfo, "test text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetOutput(&buf)
			defer SetOutput(nil)

			tt.function(tt.input)
			output := buf.String()

			if output == "" {
				t.Errorf("%s() produced no output", tt.name)
			}

			if !strings.Contains(output, tt.input) {
				t.Errorf("%s() output does not contain input text. got %q, want to contain %q", tt.name, output, tt.input)
			}

			if !strings.HasSuffix(output, "\n") {
				t.Errorf("%s() output does not end with newline", tt.name)
			}
		})
	}
}

// TestSetNoColor verifies that disabling color yields plain text.
func TestSetNoColor(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	if got := Success("done"); got != "done" {
		t.Errorf("Success() with no color = %q, want %q", got, "done")
	}
	if got := Error("failed"); got != "failed" {
		t.Errorf("Error() with no color = %q, want %q", got, "failed")
	}
}

// TestEmptyInput verifies that functions handle empty strings gracefully.
func TestEmptyInput(t *testing.T) {
	tests := []struct {
		name     string
		function func(string) string
	}{
		{"Faint", Faint},
		{"Bold", Bold},
		{"Success", Success},
		{"Error", Error},
		{"Warning", Warning},
		{"Info", Info},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.function("")

			// Even with empty input, the function should return a string
			// (it may contain ANSI codes even for empty text)
			if result == "" {
				// This is acceptable - empty input may yield empty output
				return
			}
		})
	}
}
