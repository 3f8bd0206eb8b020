package host

import (
	"context"
	"sync"

	"github.com/gebeya-io/miniapp/internal/models"
)

// realBridge talks to an actual embedding host. The session snapshot is
// taken once at construction and never mutated.
type realBridge struct {
	session   models.HostSession
	transport Transport
	prompter  Prompter

	readyOnce  sync.Once
	expandOnce sync.Once

	haptics    Haptics
	backButton Button
	mainButton MainButton
}

func newRealBridge(session models.HostSession, transport Transport, prompter Prompter) *realBridge {
	bridge := &realBridge{
		session:    session,
		transport:  transport,
		prompter:   prompter,
		haptics:    newHaptics(transport),
		backButton: newButton(transport, EventSetupBackButton),
		mainButton: newButton(transport, EventSetupMainButton),
	}

	bridge.applyTheme()

	return bridge
}

// applyTheme pushes the host palette out as presentation variables. Happens
// once, during initialization.
func (r *realBridge) applyTheme() {
	vars := r.session.Theme.Variables()
	if len(vars) == 0 {
		return
	}

	payload := make(map[string]any, len(vars))
	for name, color := range vars {
		payload[name] = color
	}

	r.transport.PostEvent(EventApplyTheme, payload)
}

func (r *realBridge) Ready() {
	r.readyOnce.Do(func() {
		r.transport.PostEvent(EventReady, nil)
	})
}

func (r *realBridge) Expand() {
	r.expandOnce.Do(func() {
		r.transport.PostEvent(EventExpand, nil)
	})
}

func (r *realBridge) Close() {
	r.transport.PostEvent(EventClose, nil)
}

func (r *realBridge) InitData() string {
	return r.session.InitData
}

func (r *realBridge) IsEmbedded() bool {
	return true
}

func (r *realBridge) User() *models.TelegramUser {
	return r.session.User
}

func (r *realBridge) Platform() string {
	return r.session.Platform
}

func (r *realBridge) ColorScheme() string {
	return r.session.ColorScheme
}

func (r *realBridge) Theme() models.ThemeParams {
	return r.session.Theme
}

func (r *realBridge) ThemeVariables() map[string]string {
	return r.session.Theme.Variables()
}

func (r *realBridge) Haptics() Haptics {
	return r.haptics
}

func (r *realBridge) BackButton() Button {
	return r.backButton
}

func (r *realBridge) MainButton() MainButton {
	return r.mainButton
}

func (r *realBridge) ShowAlert(ctx context.Context, message string) error {
	r.transport.PostEvent(EventOpenPopup, map[string]any{
		"message": message,
		"buttons": []map[string]any{{"type": "ok"}},
	})

	if dialogs, ok := r.transport.(DialogTransport); ok {
		return dialogs.Alert(ctx, message)
	}
	return r.prompter.Alert(ctx, message)
}

func (r *realBridge) ShowConfirm(ctx context.Context, message string) (bool, error) {
	r.transport.PostEvent(EventOpenPopup, map[string]any{
		"message": message,
		"buttons": []map[string]any{{"type": "ok"}, {"type": "cancel"}},
	})

	if dialogs, ok := r.transport.(DialogTransport); ok {
		return dialogs.Confirm(ctx, message)
	}
	return r.prompter.Confirm(ctx, message)
}
