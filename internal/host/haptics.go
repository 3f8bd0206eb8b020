package host

// ImpactStyle is the strength of an impact haptic.
type ImpactStyle string

const (
	ImpactLight  ImpactStyle = "light"
	ImpactMedium ImpactStyle = "medium"
	ImpactHeavy  ImpactStyle = "heavy"
	ImpactRigid  ImpactStyle = "rigid"
	ImpactSoft   ImpactStyle = "soft"
)

// NotificationKind is the flavor of a notification haptic.
type NotificationKind string

const (
	NotifyError   NotificationKind = "error"
	NotifySuccess NotificationKind = "success"
	NotifyWarning NotificationKind = "warning"
)

// Haptics triggers tactile feedback. Every call is fire-and-forget and a
// silent no-op when the host lacks the capability.
type Haptics interface {
	Impact(style ImpactStyle)
	Notification(kind NotificationKind)
	Selection()
}

type haptics struct {
	transport Transport
}

func newHaptics(transport Transport) Haptics {
	return &haptics{transport: transport}
}

func (h *haptics) Impact(style ImpactStyle) {
	if len(style) == 0 {
		style = ImpactMedium
	}
	h.transport.PostEvent(EventHaptic, map[string]any{
		"type":         "impact",
		"impact_style": string(style),
	})
}

func (h *haptics) Notification(kind NotificationKind) {
	if len(kind) == 0 {
		kind = NotifySuccess
	}
	h.transport.PostEvent(EventHaptic, map[string]any{
		"type":              "notification",
		"notification_type": string(kind),
	})
}

func (h *haptics) Selection() {
	h.transport.PostEvent(EventHaptic, map[string]any{
		"type": "selection_change",
	})
}
