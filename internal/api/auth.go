package api

import (
	"context"
	"net/http"

	"github.com/gebeya-io/miniapp/internal/models"
)

type loginRequest struct {
	InitData string `json:"init_data"`
}

// Login exchanges the host's signed payload for a bearer credential. The
// caller decides whether to persist the returned token.
func (c *Client) Login(ctx context.Context, initData string) (*models.AuthResponse, error) {
	var result models.AuthResponse

	err := c.execute(ctx, http.MethodPost, "/auth/telegram", loginRequest{InitData: initData}, nil, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}
