package api

import (
	"context"
	"net/http"

	"github.com/gebeya-io/miniapp/internal/models"
)

// Me fetches the current authenticated user.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var result models.User
	if err := c.execute(ctx, http.MethodGet, "/users/me", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateMe applies a partial profile update and returns the updated user.
func (c *Client) UpdateMe(ctx context.Context, patch models.UserPatch) (*models.User, error) {
	var result models.User
	if err := c.execute(ctx, http.MethodPatch, "/users/me", patch, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type settingsRequest struct {
	Settings map[string]any `json:"settings"`
}

// UpdateSettings replaces the user's settings blob. The blob is opaque to
// the client and forwarded unmodified.
func (c *Client) UpdateSettings(ctx context.Context, settings map[string]any) (*models.User, error) {
	var result models.User
	if err := c.execute(ctx, http.MethodPatch, "/users/me/settings", settingsRequest{Settings: settings}, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type verifyPhoneRequest struct {
	PhoneNumber string `json:"phone_number"`
}

// VerifyPhone submits a phone number for verification.
func (c *Client) VerifyPhone(ctx context.Context, phoneNumber string) (*models.User, error) {
	var result models.User
	if err := c.execute(ctx, http.MethodPost, "/users/me/verify-phone", verifyPhoneRequest{PhoneNumber: phoneNumber}, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
