package api

import (
	"context"
	"net/http"

	"github.com/gebeya-io/miniapp/internal/models"
)

// SeedListings asks the backend to populate demo listings for the current
// user. Development helper, mirrored from the backend's demo router.
func (c *Client) SeedListings(ctx context.Context) (*models.SeedResult, error) {
	var result models.SeedResult
	if err := c.execute(ctx, http.MethodPost, "/demo/seed-listings", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
