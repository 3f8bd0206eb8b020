package models

import "time"

// User is the server-confirmed identity returned by the auth exchange and
// /users/me. It is a superset of the untrusted TelegramUser carried in the
// host's signed payload.
type User struct {
	ID           string `json:"id"`
	TelegramID   int64  `json:"telegram_id"`
	Username     string `json:"username,omitempty"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
	PhotoURL     string `json:"photo_url,omitempty"`
	IsPremium    bool   `json:"is_premium"`

	Phone           string     `json:"phone,omitempty"`
	IsPhoneVerified bool       `json:"is_phone_verified"`
	PhoneVerifiedAt *time.Time `json:"phone_verified_at,omitempty"`

	City string `json:"city,omitempty"`
	Area string `json:"area,omitempty"`

	Rating           float64 `json:"rating"`
	TotalRatings     int     `json:"total_ratings"`
	TotalSales       int     `json:"total_sales"`
	TotalListings    int     `json:"total_listings"`
	IsVerifiedSeller bool    `json:"is_verified_seller"`
	IsAdmin          bool    `json:"is_admin"`

	// Settings is an opaque blob owned by the presentation layer. The client
	// stores and forwards it unmodified.
	Settings map[string]any `json:"settings,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// DisplayName returns the user's full name, falling back to the username.
func (u *User) DisplayName() string {
	if len(u.FirstName) == 0 && len(u.LastName) == 0 {
		return u.Username
	}
	if len(u.LastName) == 0 {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// UserPatch carries the fields a user may change on their own profile.
// Nil fields are omitted from the request so the server leaves them as is.
type UserPatch struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	City      *string `json:"city,omitempty"`
	Area      *string `json:"area,omitempty"`
}
