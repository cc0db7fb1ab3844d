package client

import (
	"context"
	"fmt"

	"github.com/smart-closet/closetctl/models"
)

// Outfits fetches all saved outfits.
func (c *Client) Outfits(ctx context.Context) ([]models.Outfit, error) {
	var outfits []models.Outfit
	if err := c.Get(ctx, "outfits", &outfits); err != nil {
		return nil, fmt.Errorf("fetch outfits: %w", err)
	}
	return outfits, nil
}

// Outfit fetches a single outfit by id.
func (c *Client) Outfit(ctx context.Context, id int) (models.Outfit, error) {
	var outfit models.Outfit
	if err := c.Get(ctx, fmt.Sprintf("outfits/%d", id), &outfit); err != nil {
		return models.Outfit{}, fmt.Errorf("fetch outfit %d: %w", id, err)
	}
	return outfit, nil
}

// CreateOutfit persists a grouping of items. It only talks to the
// backend; appending the result to the local cache is the caller's job.
func (c *Client) CreateOutfit(ctx context.Context, itemIDs []int) (models.Outfit, error) {
	payload := struct {
		ItemIDs []int `json:"item_ids"`
	}{ItemIDs: itemIDs}

	var created models.Outfit
	if err := c.PostCreate(ctx, "outfits", payload, &created); err != nil {
		return models.Outfit{}, fmt.Errorf("create outfit: %w", err)
	}
	return created, nil
}

func (c *Client) UpdateOutfit(ctx context.Context, id int, outfit models.Outfit) (models.Outfit, error) {
	var updated models.Outfit
	if err := c.Put(ctx, fmt.Sprintf("outfits/%d", id), outfit, &updated); err != nil {
		return models.Outfit{}, fmt.Errorf("update outfit %d: %w", id, err)
	}
	return updated, nil
}

func (c *Client) DeleteOutfit(ctx context.Context, id int) error {
	if err := c.Delete(ctx, fmt.Sprintf("outfits/%d", id)); err != nil {
		return fmt.Errorf("delete outfit %d: %w", id, err)
	}
	return nil
}
