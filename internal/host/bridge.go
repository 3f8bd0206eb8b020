// Package host wraps the embedding platform's hand-off surface behind a
// uniform capability interface. Consumers never test for host presence
// themselves: New selects between a real bridge (signed payload present)
// and a null bridge (standalone execution) exactly once at startup.
package host

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/gebeya-io/miniapp/internal/config"
	"github.com/gebeya-io/miniapp/internal/models"
)

// Bridge is the capability surface of the embedding host. Every method is
// safe to call regardless of whether a host is actually present.
type Bridge interface {
	// Ready signals the host that the client finished loading. Sent at most
	// once per process, no-op when the host is absent.
	Ready()
	// Expand asks the host for the full viewport. Same one-shot semantics
	// as Ready.
	Expand()
	// Close asks the host to dismiss the client.
	Close()

	InitData() string
	IsEmbedded() bool
	User() *models.TelegramUser
	Platform() string
	ColorScheme() string
	Theme() models.ThemeParams
	// ThemeVariables is the presentation variable mapping derived from the
	// host palette, applied once at initialization. Empty when standalone.
	ThemeVariables() map[string]string

	Haptics() Haptics
	BackButton() Button
	MainButton() MainButton

	// ShowAlert blocks until the user acknowledges the message. Resolves
	// exactly once; honors ctx cancellation.
	ShowAlert(ctx context.Context, message string) error
	// ShowConfirm blocks until the user answers. Resolves exactly once.
	ShowConfirm(ctx context.Context, message string) (bool, error)
}

// Options tunes bridge construction. Zero value selects the defaults.
type Options struct {
	// Transport carries host events. Nil selects the logging transport.
	Transport Transport
	// Prompter handles dialogs when the host cannot. Nil selects the
	// terminal prompter.
	Prompter Prompter
}

// New builds the host session snapshot from the hand-off environment and
// selects the bridge realization. The snapshot is immutable afterwards.
func New(hostCfg config.HostConfig, opts Options) Bridge {
	if opts.Transport == nil {
		opts.Transport = NewLogTransport()
	}
	if opts.Prompter == nil {
		opts.Prompter = NewTerminalPrompter()
	}

	session, err := models.ParseInitData(hostCfg.InitData)
	if err != nil {
		logrus.WithError(err).Warn("Failed to parse host signed payload")
	}

	session.Platform = hostCfg.Platform
	session.ColorScheme = hostCfg.ColorScheme

	if len(hostCfg.ThemeParams) > 0 {
		if err := json.Unmarshal([]byte(hostCfg.ThemeParams), &session.Theme); err != nil {
			logrus.WithError(err).Warn("Failed to parse host theme params")
		}
	}

	if !session.IsEmbedded() {
		logrus.Debug("No signed payload present, using null host bridge")
		return newNullBridge(opts.Prompter)
	}

	logrus.WithFields(logrus.Fields{
		"platform":     session.Platform,
		"color_scheme": session.ColorScheme,
	}).Debug("Embedding host detected")

	return newRealBridge(session, opts.Transport, opts.Prompter)
}
