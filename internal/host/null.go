package host

import (
	"context"

	"github.com/gebeya-io/miniapp/internal/models"
)

// nullBridge is the standalone stand-in. Lifecycle signals and haptics are
// silent no-ops, capability objects accept registrations but never reach a
// host, and dialogs fall back to the terminal prompter.
type nullBridge struct {
	prompter Prompter

	haptics    Haptics
	backButton Button
	mainButton MainButton
}

func newNullBridge(prompter Prompter) *nullBridge {
	transport := nopTransport{}

	return &nullBridge{
		prompter:   prompter,
		haptics:    newHaptics(transport),
		backButton: newButton(transport, EventSetupBackButton),
		mainButton: newButton(transport, EventSetupMainButton),
	}
}

func (n *nullBridge) Ready()  {}
func (n *nullBridge) Expand() {}
func (n *nullBridge) Close()  {}

func (n *nullBridge) InitData() string {
	return ""
}

func (n *nullBridge) IsEmbedded() bool {
	return false
}

func (n *nullBridge) User() *models.TelegramUser {
	return nil
}

func (n *nullBridge) Platform() string {
	return "standalone"
}

func (n *nullBridge) ColorScheme() string {
	return "light"
}

func (n *nullBridge) Theme() models.ThemeParams {
	return models.ThemeParams{}
}

func (n *nullBridge) ThemeVariables() map[string]string {
	return map[string]string{}
}

func (n *nullBridge) Haptics() Haptics {
	return n.haptics
}

func (n *nullBridge) BackButton() Button {
	return n.backButton
}

func (n *nullBridge) MainButton() MainButton {
	return n.mainButton
}

func (n *nullBridge) ShowAlert(ctx context.Context, message string) error {
	return n.prompter.Alert(ctx, message)
}

func (n *nullBridge) ShowConfirm(ctx context.Context, message string) (bool, error) {
	return n.prompter.Confirm(ctx, message)
}
