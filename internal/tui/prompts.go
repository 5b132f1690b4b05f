package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// confirmRequest is everything needed to render a yes/no prompt.
type confirmRequest struct {
	Title       string
	Description string
	Theme       *huh.Theme
}

// runConfirm renders the prompt; replaceable in tests.
var runConfirm = func(req confirmRequest) (bool, error) {
	var ok bool
	field := huh.NewConfirm().
		Title(req.Title).
		Description(req.Description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)

	err := huh.NewForm(huh.NewGroup(field)).WithTheme(req.Theme).Run()
	return ok, err
}

// Confirm shows a yes/no prompt using the selected theme.
// Aborting the prompt (ctrl+c) counts as "no".
func Confirm(title, description string) (bool, error) {
	ok, err := runConfirm(confirmRequest{
		Title:       title,
		Description: description,
		Theme:       activeTheme(),
	})
	switch {
	case errors.Is(err, huh.ErrUserAborted):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("prompt %q: %w", title, err)
	}
	return ok, nil
}
