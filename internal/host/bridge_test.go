package host

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gebeya-io/miniapp/internal/config"
)

type postedEvent struct {
	name    string
	payload map[string]any
}

// recordingTransport captures every host event for assertions.
type recordingTransport struct {
	mu     sync.Mutex
	events []postedEvent
}

func (r *recordingTransport) PostEvent(event string, payload map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, postedEvent{name: event, payload: payload})
}

func (r *recordingTransport) count(event string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, e := range r.events {
		if e.name == event {
			total++
		}
	}
	return total
}

func (r *recordingTransport) last(event string) (map[string]any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].name == event {
			return r.events[i].payload, true
		}
	}
	return nil, false
}

// stubPrompter resolves dialogs without a terminal.
type stubPrompter struct {
	alerts   int
	confirms int
	answer   bool
}

func (s *stubPrompter) Alert(context.Context, string) error {
	s.alerts++
	return nil
}

func (s *stubPrompter) Confirm(context.Context, string) (bool, error) {
	s.confirms++
	return s.answer, nil
}

const embeddedInitData = "user=%7B%22id%22%3A42%2C%22first_name%22%3A%22Abebe%22%7D&auth_date=1700000000&hash=abc"

func newEmbeddedBridge(t *testing.T, transport Transport, prompter Prompter) Bridge {
	t.Helper()

	bridge := New(config.HostConfig{
		InitData:    embeddedInitData,
		ColorScheme: "dark",
		Platform:    "android",
		ThemeParams: `{"bg_color":"#17212b","text_color":"#f5f5f5"}`,
	}, Options{Transport: transport, Prompter: prompter})

	require.True(t, bridge.IsEmbedded())
	return bridge
}

func TestNew_SelectsRealization(t *testing.T) {
	tests := []struct {
		name     string
		initData string
		embedded bool
	}{
		{name: "signed payload present", initData: embeddedInitData, embedded: true},
		{name: "no payload", initData: "", embedded: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bridge := New(config.HostConfig{InitData: tt.initData}, Options{
				Transport: &recordingTransport{},
				Prompter:  &stubPrompter{},
			})

			assert.Equal(t, tt.embedded, bridge.IsEmbedded())
			assert.Equal(t, tt.initData, bridge.InitData())
		})
	}
}

func TestRealBridge_ReadyAndExpandFireOnce(t *testing.T) {
	transport := &recordingTransport{}
	bridge := newEmbeddedBridge(t, transport, &stubPrompter{})

	bridge.Ready()
	bridge.Ready()
	bridge.Expand()
	bridge.Expand()
	bridge.Expand()

	assert.Equal(t, 1, transport.count(EventReady))
	assert.Equal(t, 1, transport.count(EventExpand))
}

func TestRealBridge_ThemeAppliedOnceAtInit(t *testing.T) {
	transport := &recordingTransport{}
	bridge := newEmbeddedBridge(t, transport, &stubPrompter{})

	assert.Equal(t, 1, transport.count(EventApplyTheme))

	payload, ok := transport.last(EventApplyTheme)
	require.True(t, ok)
	assert.Equal(t, "#17212b", payload["--tg-theme-bg-color"])
	assert.Equal(t, "#f5f5f5", payload["--tg-theme-text-color"])

	vars := bridge.ThemeVariables()
	assert.Equal(t, "#17212b", vars["--tg-theme-bg-color"])
}

func TestRealBridge_SessionSnapshot(t *testing.T) {
	bridge := newEmbeddedBridge(t, &recordingTransport{}, &stubPrompter{})

	assert.Equal(t, "android", bridge.Platform())
	assert.Equal(t, "dark", bridge.ColorScheme())

	user := bridge.User()
	require.NotNil(t, user)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "Abebe", user.FirstName)
}

func TestNullBridge_Degrades(t *testing.T) {
	bridge := New(config.HostConfig{}, Options{Prompter: &stubPrompter{}})

	// Everything is callable and silent.
	bridge.Ready()
	bridge.Expand()
	bridge.Close()
	bridge.Haptics().Impact(ImpactHeavy)
	bridge.Haptics().Notification(NotifySuccess)
	bridge.Haptics().Selection()

	assert.Equal(t, "", bridge.InitData())
	assert.Nil(t, bridge.User())
	assert.Empty(t, bridge.ThemeVariables())
	assert.Equal(t, "standalone", bridge.Platform())
}

func TestHaptics_Payloads(t *testing.T) {
	transport := &recordingTransport{}
	haptics := newHaptics(transport)

	haptics.Impact(ImpactRigid)
	payload, ok := transport.last(EventHaptic)
	require.True(t, ok)
	assert.Equal(t, "impact", payload["type"])
	assert.Equal(t, "rigid", payload["impact_style"])

	haptics.Notification(NotifyWarning)
	payload, _ = transport.last(EventHaptic)
	assert.Equal(t, "notification", payload["type"])
	assert.Equal(t, "warning", payload["notification_type"])

	haptics.Impact("")
	payload, _ = transport.last(EventHaptic)
	assert.Equal(t, "medium", payload["impact_style"])
}

func TestButton_DistinctClosuresFromOneLiteralBothFire(t *testing.T) {
	button := newButton(nopTransport{}, EventSetupBackButton)

	var clicks int
	makeCounter := func(step int) Handler {
		return func() { clicks += step }
	}

	// Two closures minted from the same literal share a code pointer but
	// are distinct handlers; both must mount and both must fire.
	first := button.OnClick(makeCounter(1))
	second := button.OnClick(makeCounter(100))
	require.NotEqual(t, first, second)

	button.Click()
	assert.Equal(t, 101, clicks)

	// Removing one leaves the other mounted.
	button.OffClick(second)
	button.Click()
	assert.Equal(t, 102, clicks)
}

func TestButton_OffClickRemovesExactlyOneMount(t *testing.T) {
	button := newButton(nopTransport{}, EventSetupBackButton)

	var clicks int
	handler := func() { clicks++ }

	first := button.OnClick(handler)
	second := button.OnClick(handler)

	button.OffClick(first)
	button.Click()
	assert.Equal(t, 1, clicks, "the second mount must survive")

	button.OffClick(second)
	button.Click()
	assert.Equal(t, 1, clicks)
}

func TestButton_OffClickUnknownTokenIsNoop(t *testing.T) {
	button := newButton(nopTransport{}, EventSetupBackButton)

	var clicks int
	button.OnClick(func() { clicks++ })

	button.OffClick(Registration(999))
	button.OffClick(0)
	button.Click()

	assert.Equal(t, 1, clicks)
}

func TestButton_DisabledSwallowsClicks(t *testing.T) {
	button := newButton(nopTransport{}, EventSetupMainButton)

	var clicks int
	button.OnClick(func() { clicks++ })

	button.Disable()
	button.Click()
	assert.Equal(t, 0, clicks)

	button.Enable()
	button.Click()
	assert.Equal(t, 1, clicks)
}

func TestButton_StateSyncsToHost(t *testing.T) {
	transport := &recordingTransport{}
	button := newButton(transport, EventSetupMainButton)

	button.SetText("Checkout")
	button.Show()
	button.ShowProgress()

	payload, ok := transport.last(EventSetupMainButton)
	require.True(t, ok)
	assert.Equal(t, "Checkout", payload["text"])
	assert.Equal(t, true, payload["is_visible"])
	assert.Equal(t, true, payload["is_progress_visible"])

	assert.True(t, button.IsVisible())
	assert.True(t, button.IsProgressVisible())
	assert.Equal(t, "Checkout", button.Text())
}

// dialogTransport fakes a host that can present modals.
type dialogTransport struct {
	recordingTransport
	confirms int
	answer   bool
}

func (d *dialogTransport) Alert(context.Context, string) error {
	return nil
}

func (d *dialogTransport) Confirm(context.Context, string) (bool, error) {
	d.confirms++
	return d.answer, nil
}

func TestShowConfirm_DelegatesToHostModal(t *testing.T) {
	transport := &dialogTransport{answer: true}
	prompter := &stubPrompter{answer: false}
	bridge := newEmbeddedBridge(t, transport, prompter)

	confirmed, err := bridge.ShowConfirm(context.Background(), "Delete?")
	require.NoError(t, err)

	assert.True(t, confirmed)
	assert.Equal(t, 1, transport.confirms)
	assert.Equal(t, 0, prompter.confirms, "host modal must win over the fallback")
}

func TestShowDialogs_PostPopupEvent(t *testing.T) {
	transport := &recordingTransport{}
	prompter := &stubPrompter{answer: true}
	bridge := newEmbeddedBridge(t, transport, prompter)

	require.NoError(t, bridge.ShowAlert(context.Background(), "Saved"))

	payload, ok := transport.last(EventOpenPopup)
	require.True(t, ok)
	assert.Equal(t, "Saved", payload["message"])

	_, err := bridge.ShowConfirm(context.Background(), "Delete?")
	require.NoError(t, err)

	assert.Equal(t, 2, transport.count(EventOpenPopup))
	payload, _ = transport.last(EventOpenPopup)
	assert.Equal(t, "Delete?", payload["message"])
}

func TestShowConfirm_FallsBackWithoutHostModal(t *testing.T) {
	prompter := &stubPrompter{answer: true}
	bridge := New(config.HostConfig{}, Options{Prompter: prompter})

	confirmed, err := bridge.ShowConfirm(context.Background(), "Delete?")
	require.NoError(t, err)

	assert.True(t, confirmed)
	assert.Equal(t, 1, prompter.confirms)
}

func TestShowAlert_ResolvesOnce(t *testing.T) {
	prompter := &stubPrompter{}
	bridge := New(config.HostConfig{}, Options{Prompter: prompter})

	require.NoError(t, bridge.ShowAlert(context.Background(), "Saved"))
	assert.Equal(t, 1, prompter.alerts)
}
