// Package models provides public SDK types for the Gebeya client.
// These types are re-exported from the internal models package to provide
// a stable public API for external consumers.
package models

import internal "github.com/gebeya-io/miniapp/internal/models"

// User is the server-confirmed identity returned by the auth exchange.
type User = internal.User

// UserPatch carries the fields a user may change on their own profile.
type UserPatch = internal.UserPatch

// TelegramUser is the unverified profile parsed from the signed payload.
type TelegramUser = internal.TelegramUser

// ThemeParams is the host-provided color palette.
type ThemeParams = internal.ThemeParams

// HostSession is the immutable snapshot taken from the embedding host.
type HostSession = internal.HostSession

// AuthResponse is the backend's answer to a successful exchange.
type AuthResponse = internal.AuthResponse

// Listing is a marketplace listing.
type Listing = internal.Listing

// ListingDraftFields carries the writable listing fields.
type ListingDraftFields = internal.ListingDraftFields

// ListingPage is the paginated envelope returned by the listings index.
type ListingPage = internal.ListingPage

// ListingStatus tracks where a listing sits in its sale lifecycle.
type ListingStatus = internal.ListingStatus

// ListingCondition describes the advertised condition of the item.
type ListingCondition = internal.ListingCondition

// Category is a marketplace category.
type Category = internal.Category

// FavoriteResult reports the toggled favorite state.
type FavoriteResult = internal.FavoriteResult
