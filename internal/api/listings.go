package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gebeya-io/miniapp/internal/models"
)

// ListingsQuery filters the listings index. Zero values are omitted from
// the request.
type ListingsQuery struct {
	Page      int
	PerPage   int
	Category  string
	Search    string
	MinPrice  float64
	MaxPrice  float64
	Condition models.ListingCondition
	City      string
}

func (q ListingsQuery) params() map[string]string {
	params := map[string]string{
		"category":  q.Category,
		"search":    q.Search,
		"condition": string(q.Condition),
		"city":      q.City,
	}

	if q.Page > 0 {
		params["page"] = strconv.Itoa(q.Page)
	}
	if q.PerPage > 0 {
		params["per_page"] = strconv.Itoa(q.PerPage)
	}
	if q.MinPrice > 0 {
		params["min_price"] = strconv.FormatFloat(q.MinPrice, 'f', -1, 64)
	}
	if q.MaxPrice > 0 {
		params["max_price"] = strconv.FormatFloat(q.MaxPrice, 'f', -1, 64)
	}

	return params
}

// Listings fetches a page of the public listings index.
func (c *Client) Listings(ctx context.Context, query ListingsQuery) (*models.ListingPage, error) {
	var result models.ListingPage
	if err := c.execute(ctx, http.MethodGet, "/listings", nil, query.params(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Listing fetches a single listing by ID.
func (c *Client) Listing(ctx context.Context, id string) (*models.Listing, error) {
	var result models.Listing
	if err := c.execute(ctx, http.MethodGet, fmt.Sprintf("/listings/%s", id), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateListing publishes a new listing.
func (c *Client) CreateListing(ctx context.Context, fields models.ListingDraftFields) (*models.Listing, error) {
	var result models.Listing
	if err := c.execute(ctx, http.MethodPost, "/listings", fields, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateListing applies a partial update to an owned listing.
func (c *Client) UpdateListing(ctx context.Context, id string, fields models.ListingDraftFields) (*models.Listing, error) {
	var result models.Listing
	if err := c.execute(ctx, http.MethodPatch, fmt.Sprintf("/listings/%s", id), fields, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteListing removes an owned listing.
func (c *Client) DeleteListing(ctx context.Context, id string) error {
	return c.execute(ctx, http.MethodDelete, fmt.Sprintf("/listings/%s", id), nil, nil, nil)
}

// MyListings fetches the caller's own listings, optionally filtered by
// status.
func (c *Client) MyListings(ctx context.Context, status models.ListingStatus) ([]models.Listing, error) {
	var result []models.Listing

	query := map[string]string{"status": string(status)}
	if err := c.execute(ctx, http.MethodGet, "/listings/my", nil, query, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// ToggleFavorite flips the favorite flag on a listing and reports the new
// state.
func (c *Client) ToggleFavorite(ctx context.Context, id string) (*models.FavoriteResult, error) {
	var result models.FavoriteResult
	if err := c.execute(ctx, http.MethodPost, fmt.Sprintf("/listings/%s/favorite", id), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
