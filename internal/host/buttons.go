package host

import (
	"sync"
)

// Handler is a button click callback.
type Handler func()

// Registration identifies one registered click handler. Zero is never
// issued, so the zero value is safe to hold before registering.
type Registration uint64

// Button is a host capability object with its own show/hide lifecycle,
// independent of page navigation. OnClick hands back a Registration and
// OffClick consumes it, so a component that pairs one OnClick with one
// OffClick on teardown removes exactly what it mounted and can never leak
// a duplicate. Function values carry no usable identity in Go, distinct
// closures from one literal share a code pointer, so the token is the
// identity.
type Button interface {
	Show()
	Hide()
	Enable()
	Disable()
	SetText(text string)
	OnClick(handler Handler) Registration
	OffClick(reg Registration)
	// Click delivers a press to every registered handler, in registration
	// order. The host side calls this when the user taps the control.
	Click()
	IsVisible() bool
	IsEnabled() bool
	Text() string
}

// MainButton additionally exposes the host's progress spinner.
type MainButton interface {
	Button
	ShowProgress()
	HideProgress()
	IsProgressVisible() bool
}

type registration struct {
	id      Registration
	handler Handler
}

type button struct {
	mu        sync.Mutex
	transport Transport
	event     string

	text     string
	visible  bool
	enabled  bool
	progress bool

	lastID   Registration
	handlers []registration
}

func newButton(transport Transport, event string) *button {
	return &button{
		transport: transport,
		event:     event,
		enabled:   true,
	}
}

func (b *button) sync() {
	payload := map[string]any{
		"is_visible": b.visible,
		"is_active":  b.enabled,
	}
	if len(b.text) > 0 {
		payload["text"] = b.text
	}
	if b.event == EventSetupMainButton {
		payload["is_progress_visible"] = b.progress
	}
	b.transport.PostEvent(b.event, payload)
}

func (b *button) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.visible = true
	b.sync()
}

func (b *button) Hide() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.visible = false
	b.sync()
}

func (b *button) Enable() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = true
	b.sync()
}

func (b *button) Disable() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = false
	b.sync()
}

func (b *button) SetText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
	b.sync()
}

func (b *button) OnClick(handler Handler) Registration {
	if handler == nil {
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastID++
	b.handlers = append(b.handlers, registration{id: b.lastID, handler: handler})
	return b.lastID
}

func (b *button) OffClick(reg Registration) {
	if reg == 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i, existing := range b.handlers {
		if existing.id == reg {
			b.handlers = append(b.handlers[:i], b.handlers[i+1:]...)
			return
		}
	}
}

func (b *button) Click() {
	b.mu.Lock()
	snapshot := make([]registration, len(b.handlers))
	copy(snapshot, b.handlers)
	enabled := b.enabled
	b.mu.Unlock()

	if !enabled {
		return
	}

	for _, reg := range snapshot {
		reg.handler()
	}
}

func (b *button) IsVisible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible
}

func (b *button) IsEnabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enabled
}

func (b *button) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

func (b *button) ShowProgress() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.progress = true
	b.sync()
}

func (b *button) HideProgress() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.progress = false
	b.sync()
}

func (b *button) IsProgressVisible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.progress
}
