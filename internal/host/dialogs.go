package host

import (
	"context"

	"github.com/charmbracelet/huh"
)

// Prompter presents blocking dialogs when no host modal is available.
type Prompter interface {
	Alert(ctx context.Context, message string) error
	Confirm(ctx context.Context, message string) (bool, error)
}

// terminalPrompter renders dialogs as terminal forms, the standalone
// equivalent of the host's native modals.
type terminalPrompter struct{}

func NewTerminalPrompter() Prompter {
	return terminalPrompter{}
}

func (terminalPrompter) Alert(ctx context.Context, message string) error {
	var acknowledged bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Affirmative("OK").
				Negative("").
				Value(&acknowledged),
		),
	)

	return form.RunWithContext(ctx)
}

func (terminalPrompter) Confirm(ctx context.Context, message string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return false, err
	}

	return confirmed, nil
}
