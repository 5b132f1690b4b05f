package tui

import (
	"os"

	"golang.org/x/term"
)

// EnvNoPrompt disables interactive prompts when set to any value.
const EnvNoPrompt = "TOOLSVER_NO_PROMPT"

// ciVariables are set by CI services; prompts are never shown there.
var ciVariables = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"BUILDKITE",
	"JENKINS_HOME",
	"TF_BUILD",
}

// Replaceable in tests.
var (
	isTerminal = term.IsTerminal
	getenv     = os.Getenv
)

// IsInteractive reports whether a prompt can be answered: the prompt reads
// stdin and renders on stdout, so both must be terminals. CI environments
// and EnvNoPrompt turn prompts off.
func IsInteractive() bool {
	return canPrompt(int(os.Stdin.Fd()), int(os.Stdout.Fd())) //nolint:gosec // G115: small fds
}

func canPrompt(stdin, stdout int) bool {
	if !isTerminal(stdin) || !isTerminal(stdout) {
		return false
	}
	if getenv(EnvNoPrompt) != "" {
		return false
	}
	for _, name := range ciVariables {
		if getenv(name) != "" {
			return false
		}
	}
	return true
}
