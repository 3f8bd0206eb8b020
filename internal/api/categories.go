package api

import (
	"context"
	"net/http"

	"github.com/gebeya-io/miniapp/internal/models"
)

// Categories fetches the category tree.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var result []models.Category
	if err := c.execute(ctx, http.MethodGet, "/categories", nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
