package models

import "time"

// ListingStatus tracks where a listing sits in its sale lifecycle.
type ListingStatus string

const (
	ListingDraft   ListingStatus = "draft"
	ListingActive  ListingStatus = "active"
	ListingSold    ListingStatus = "sold"
	ListingExpired ListingStatus = "expired"
	ListingDeleted ListingStatus = "deleted"
)

// ListingCondition describes the advertised condition of the item.
type ListingCondition string

const (
	ConditionNew      ListingCondition = "new"
	ConditionLikeNew  ListingCondition = "like_new"
	ConditionUsed     ListingCondition = "used"
	ConditionForParts ListingCondition = "for_parts"
)

// Listing is a marketplace listing as returned by the backend.
type Listing struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	CategoryID string `json:"category_id"`

	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	IsNegotiable bool    `json:"is_negotiable"`

	Condition ListingCondition `json:"condition"`
	Images    []string         `json:"images,omitempty"`

	City      string   `json:"city,omitempty"`
	Area      string   `json:"area,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	Status         ListingStatus `json:"status"`
	ViewsCount     int           `json:"views_count"`
	FavoritesCount int           `json:"favorites_count"`

	IsFeatured    bool       `json:"is_featured"`
	FeaturedUntil *time.Time `json:"featured_until,omitempty"`

	IsFavorited bool `json:"is_favorited,omitempty"`

	Seller *User `json:"seller,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	SoldAt    *time.Time `json:"sold_at,omitempty"`
}

// ListingDraftFields carries the writable listing fields for create and
// update calls. Nil pointers are omitted so partial updates stay partial.
type ListingDraftFields struct {
	CategoryID   *string           `json:"category_id,omitempty"`
	Title        *string           `json:"title,omitempty"`
	Description  *string           `json:"description,omitempty"`
	Price        *float64          `json:"price,omitempty"`
	Currency     *string           `json:"currency,omitempty"`
	IsNegotiable *bool             `json:"is_negotiable,omitempty"`
	Condition    *ListingCondition `json:"condition,omitempty"`
	Images       []string          `json:"images,omitempty"`
	City         *string           `json:"city,omitempty"`
	Area         *string           `json:"area,omitempty"`
	Status       *ListingStatus    `json:"status,omitempty"`
}

// ListingPage is the paginated envelope returned by the listings index.
type ListingPage struct {
	Items   []Listing `json:"items"`
	Total   int       `json:"total"`
	Page    int       `json:"page"`
	PerPage int       `json:"per_page"`
	HasMore bool      `json:"has_more"`
}

// Category is a marketplace category.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Icon     string `json:"icon,omitempty"`
	ParentID string `json:"parent_id,omitempty"`
	Position int    `json:"position,omitempty"`
}

// FavoriteResult reports the toggled favorite state.
type FavoriteResult struct {
	Favorited bool `json:"favorited"`
}

// SeedResult is returned by the demo seeding endpoint.
type SeedResult struct {
	Message  string    `json:"message"`
	Listings []Listing `json:"listings"`
}
