package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInitData(t *testing.T) {
	payload := url.Values{
		"user":      {`{"id":42,"first_name":"Abebe","username":"abebe","is_premium":true}`},
		"auth_date": {"1700000000"},
		"query_id":  {"AAF9x"},
		"hash":      {"deadbeef"},
	}.Encode()

	session, err := ParseInitData(payload)
	require.NoError(t, err)

	assert.True(t, session.IsEmbedded())
	assert.Equal(t, payload, session.InitData)
	require.NotNil(t, session.User)
	assert.Equal(t, int64(42), session.User.ID)
	assert.Equal(t, "Abebe", session.User.FirstName)
	assert.True(t, session.User.IsPremium)
	assert.Equal(t, int64(1700000000), session.AuthDate)
	assert.Equal(t, "AAF9x", session.QueryID)
}

func TestParseInitData_Empty(t *testing.T) {
	session, err := ParseInitData("")
	require.NoError(t, err)

	assert.False(t, session.IsEmbedded())
	assert.Nil(t, session.User)
}

func TestParseInitData_MalformedUserIgnored(t *testing.T) {
	session, err := ParseInitData("user=notjson&query_id=q1")
	require.NoError(t, err)

	// The payload stays usable for the exchange even if the untrusted
	// profile does not parse.
	assert.True(t, session.IsEmbedded())
	assert.Nil(t, session.User)
	assert.Equal(t, "q1", session.QueryID)
}

func TestThemeParams_Variables(t *testing.T) {
	theme := ThemeParams{
		BgColor:          "#ffffff",
		TextColor:        "#000000",
		SecondaryBgColor: "#f0f0f0",
	}

	vars := theme.Variables()

	assert.Equal(t, "#ffffff", vars["--tg-theme-bg-color"])
	assert.Equal(t, "#000000", vars["--tg-theme-text-color"])
	assert.Equal(t, "#f0f0f0", vars["--tg-theme-secondary-bg-color"])

	// Unset colors stay absent so presentation defaults apply.
	_, ok := vars["--tg-theme-link-color"]
	assert.False(t, ok)
}

func TestThemeParams_VariablesEmpty(t *testing.T) {
	assert.Empty(t, ThemeParams{}.Variables())
}

func TestUser_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{name: "first and last", user: User{FirstName: "Abebe", LastName: "Bikila"}, want: "Abebe Bikila"},
		{name: "first only", user: User{FirstName: "Abebe"}, want: "Abebe"},
		{name: "username fallback", user: User{Username: "abebe"}, want: "abebe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.DisplayName())
		})
	}
}
