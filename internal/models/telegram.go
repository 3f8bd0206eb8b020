package models

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// TelegramUser is the unverified user profile parsed out of the host's
// signed payload. Trust decisions belong to the backend, which validates
// the payload signature before issuing a credential.
type TelegramUser struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
	IsPremium    bool   `json:"is_premium,omitempty"`
	PhotoURL     string `json:"photo_url,omitempty"`
}

// ThemeParams is the host-provided color palette. Empty fields mean the
// host did not supply that color and the presentation default applies.
type ThemeParams struct {
	BgColor                string `json:"bg_color,omitempty"`
	TextColor              string `json:"text_color,omitempty"`
	HintColor              string `json:"hint_color,omitempty"`
	LinkColor              string `json:"link_color,omitempty"`
	ButtonColor            string `json:"button_color,omitempty"`
	ButtonTextColor        string `json:"button_text_color,omitempty"`
	SecondaryBgColor       string `json:"secondary_bg_color,omitempty"`
	HeaderBgColor          string `json:"header_bg_color,omitempty"`
	AccentTextColor        string `json:"accent_text_color,omitempty"`
	SectionBgColor         string `json:"section_bg_color,omitempty"`
	SectionHeaderTextColor string `json:"section_header_text_color,omitempty"`
	SubtitleTextColor      string `json:"subtitle_text_color,omitempty"`
	DestructiveTextColor   string `json:"destructive_text_color,omitempty"`
}

// Variables maps the palette onto presentation variable names of the form
// --tg-theme-<name>, with underscores swapped for hyphens. Unset colors are
// omitted so defaults show through.
func (t ThemeParams) Variables() map[string]string {
	raw, err := json.Marshal(t)
	if err != nil {
		return map[string]string{}
	}

	var colors map[string]string
	if err := json.Unmarshal(raw, &colors); err != nil {
		return map[string]string{}
	}

	vars := make(map[string]string, len(colors))
	for key, value := range colors {
		if len(value) == 0 {
			continue
		}
		vars["--tg-theme-"+strings.ReplaceAll(key, "_", "-")] = value
	}
	return vars
}

// HostSession is the read-only snapshot taken from the embedding host when
// the bridge initializes. It never changes for the lifetime of the process.
type HostSession struct {
	InitData    string        `json:"init_data"`
	User        *TelegramUser `json:"user,omitempty"`
	AuthDate    int64         `json:"auth_date,omitempty"`
	QueryID     string        `json:"query_id,omitempty"`
	StartParam  string        `json:"start_param,omitempty"`
	Platform    string        `json:"platform,omitempty"`
	ColorScheme string        `json:"color_scheme,omitempty"`
	Theme       ThemeParams   `json:"theme_params"`
}

// IsEmbedded reports whether the snapshot came from a real embedding host,
// which is exactly the presence of a signed payload.
func (h HostSession) IsEmbedded() bool {
	return len(h.InitData) > 0
}

// ParseInitData extracts the query-string shaped fields of a signed payload.
// The signature is not checked here; the payload stays opaque on the wire
// and only the backend decides whether to trust it.
func ParseInitData(initData string) (HostSession, error) {
	session := HostSession{InitData: initData}

	if len(initData) == 0 {
		return session, nil
	}

	values, err := url.ParseQuery(initData)
	if err != nil {
		return session, err
	}

	if raw := values.Get("user"); len(raw) > 0 {
		var user TelegramUser
		if err := json.Unmarshal([]byte(raw), &user); err == nil {
			session.User = &user
		}
	}

	if raw := values.Get("auth_date"); len(raw) > 0 {
		if date, err := strconv.ParseInt(raw, 10, 64); err == nil {
			session.AuthDate = date
		}
	}

	session.QueryID = values.Get("query_id")
	session.StartParam = values.Get("start_param")

	return session, nil
}
