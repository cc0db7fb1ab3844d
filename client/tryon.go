package client

import (
	"context"
	"fmt"
)

// TryOn submits a person image URL followed by garment image URLs and
// returns the synthesized result as a base64-encoded JPEG string. The
// synthesis itself happens server-side; this is an opaque call.
func (c *Client) TryOn(ctx context.Context, imageURLs []string) (string, error) {
	if len(imageURLs) < 2 {
		return "", fmt.Errorf("try-on needs a person image and at least one garment image")
	}

	var resp struct {
		Result string `json:"result"`
	}
	if err := c.Post(ctx, "try-on", imageURLs, &resp); err != nil {
		return "", fmt.Errorf("try-on request: %w", err)
	}
	if resp.Result == "" {
		return "", fmt.Errorf("try-on returned an empty result")
	}
	return resp.Result, nil
}
