package client

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/smart-closet/closetctl/models"
)

// Items fetches the whole item collection in backend order.
func (c *Client) Items(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := c.Get(ctx, "items", &items); err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}
	return items, nil
}

// Item fetches a single item by id.
func (c *Client) Item(ctx context.Context, id int) (models.Item, error) {
	var item models.Item
	if err := c.Get(ctx, fmt.Sprintf("items/%d", id), &item); err != nil {
		return models.Item{}, fmt.Errorf("fetch item %d: %w", id, err)
	}
	return item, nil
}

// CreateItem uploads a garment photo as a multipart form under the
// "image" field. The backend segments the photo server-side, so one
// submission may come back as several items.
func (c *Client) CreateItem(ctx context.Context, upload models.ImageUpload) ([]models.Item, error) {
	file, err := os.Open(upload.Path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", upload.Path, err)
	}
	defer file.Close()

	filename := upload.Filename
	if filename == "" {
		filename = filepath.Base(upload.Path)
	}

	var created []models.Item
	if err := c.PostMultipart(ctx, "items", "image", filename, upload.MimeType, file, &created); err != nil {
		return nil, fmt.Errorf("upload item image: %w", err)
	}
	return created, nil
}

// RegisterItem creates an item whose image already lives at a fetchable
// URL. This is the tail end of the object-storage upload path.
func (c *Client) RegisterItem(ctx context.Context, draft models.ItemDraft) (models.Item, error) {
	var created models.Item
	if err := c.PostCreate(ctx, "items", draft, &created); err != nil {
		return models.Item{}, fmt.Errorf("register item: %w", err)
	}
	return created, nil
}

// UpdateItem replaces the whole record server-side.
func (c *Client) UpdateItem(ctx context.Context, id int, item models.Item) (models.Item, error) {
	var updated models.Item
	if err := c.Put(ctx, fmt.Sprintf("items/%d", id), item, &updated); err != nil {
		return models.Item{}, fmt.Errorf("update item %d: %w", id, err)
	}
	return updated, nil
}

// DeleteItem removes the item server-side. Evicting the cached copy is
// the caller's responsibility, after this call confirms.
func (c *Client) DeleteItem(ctx context.Context, id int) error {
	if err := c.Delete(ctx, fmt.Sprintf("items/%d", id)); err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	return nil
}

// rulebaseRequest is the suggestion payload. Temperature is a pointer so
// an unknown reading is sent as an explicit null rather than 0 degrees.
type rulebaseRequest struct {
	Temperature     *float64 `json:"temperature"`
	ConsiderWeather bool     `json:"consider_weather"`
	UserOccasion    string   `json:"user_occasion"`
	ItemID          *int     `json:"item_id,omitempty"`
	VoiceOccasion   string   `json:"voice_occasion,omitempty"`
}

// SuggestOutfits asks the rulebase for scored top/bottom pairings. The
// weather lookup runs first; if it fails the request proceeds with an
// unknown reading instead of aborting the whole flow. An empty result is
// "no suggestions", not an error. Pairs keep backend order; the backend
// sorts by score and the client does not re-sort.
func (c *Client) SuggestOutfits(ctx context.Context, sctx models.SuggestionContext) ([]models.OutfitPair, error) {
	reading := models.WeatherReading{}
	if sctx.ConsiderWeather {
		var err error
		reading, err = c.weather.Current(ctx, sctx.Latitude, sctx.Longitude)
		if err != nil {
			log.Printf("Weather lookup failed, proceeding without it: %v", err)
			reading = models.WeatherReading{}
		}
	}

	payload := rulebaseRequest{
		ConsiderWeather: sctx.ConsiderWeather && reading.Known,
		UserOccasion:    sctx.UserOccasion,
		ItemID:          sctx.ItemID,
		VoiceOccasion:   sctx.VoiceOccasion,
	}
	if reading.Known {
		payload.Temperature = &reading.FeelsLike
	}

	var pairs []models.OutfitPair
	if err := c.Post(ctx, "rulebase/", payload, &pairs); err != nil {
		return nil, fmt.Errorf("fetch outfit suggestions: %w", err)
	}
	if pairs == nil {
		pairs = []models.OutfitPair{}
	}
	return pairs, nil
}
