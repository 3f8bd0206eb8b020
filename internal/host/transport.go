package host

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Host event names follow the Telegram WebView protocol.
const (
	EventReady           = "web_app_ready"
	EventExpand          = "web_app_expand"
	EventClose           = "web_app_close"
	EventApplyTheme      = "web_app_apply_theme"
	EventHaptic          = "web_app_trigger_haptic_feedback"
	EventSetupBackButton = "web_app_setup_back_button"
	EventSetupMainButton = "web_app_setup_main_button"
	EventOpenPopup       = "web_app_open_popup"
)

// Transport delivers fire-and-forget events to the embedding host. Calls
// either succeed synchronously or the host is permanently unavailable for
// the session; there are no retries.
type Transport interface {
	PostEvent(event string, payload map[string]any)
}

// DialogTransport is an optional extension for hosts that can present
// modal dialogs on the client's behalf.
type DialogTransport interface {
	Transport
	Alert(ctx context.Context, message string) error
	Confirm(ctx context.Context, message string) (bool, error)
}

// logTransport records host events at debug level. It stands in for the
// real host channel in environments where events have nowhere to go.
type logTransport struct{}

func NewLogTransport() Transport {
	return logTransport{}
}

func (logTransport) PostEvent(event string, payload map[string]any) {
	logrus.WithFields(logrus.Fields{
		"event":   event,
		"payload": payload,
	}).Debug("Host event")
}

// nopTransport swallows everything. Used by the null bridge.
type nopTransport struct{}

func (nopTransport) PostEvent(string, map[string]any) {}
