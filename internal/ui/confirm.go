package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// ConfirmResolve asks whether to open the resolver for a file that contains
// no conflict markers. The likeliest cause is a wrong filename, so the
// question is asked before the alternate screen is entered.
func ConfirmResolve(path string) (bool, error) {
	open := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s contains no conflict markers.", path)).
				Description("Open the resolver anyway?").
				Affirmative("Open").
				Negative("Quit").
				Value(&open),
		),
	)

	err := form.Run()
	if err != nil {
		return false, err
	}

	return open, nil
}
