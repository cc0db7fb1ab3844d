package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/smart-closet/closetctl/models"
)

// MyImages fetches the user's reference photos.
func (c *Client) MyImages(ctx context.Context) ([]models.MyImage, error) {
	var images []models.MyImage
	if err := c.Get(ctx, "my-images", &images); err != nil {
		return nil, fmt.Errorf("fetch my-images: %w", err)
	}
	return images, nil
}

// MyImage fetches a single reference photo by id.
func (c *Client) MyImage(ctx context.Context, id int) (models.MyImage, error) {
	var image models.MyImage
	if err := c.Get(ctx, fmt.Sprintf("my-images/%d", id), &image); err != nil {
		return models.MyImage{}, fmt.Errorf("fetch my-image %d: %w", id, err)
	}
	return image, nil
}

// CreateMyImage uploads a reference photo as a multipart form under the
// "image" field.
func (c *Client) CreateMyImage(ctx context.Context, upload models.ImageUpload) (models.MyImage, error) {
	file, err := os.Open(upload.Path)
	if err != nil {
		return models.MyImage{}, fmt.Errorf("open image %s: %w", upload.Path, err)
	}
	defer file.Close()

	filename := upload.Filename
	if filename == "" {
		filename = filepath.Base(upload.Path)
	}

	var created models.MyImage
	if err := c.PostMultipart(ctx, "my-images", "image", filename, upload.MimeType, file, &created); err != nil {
		return models.MyImage{}, fmt.Errorf("upload my-image: %w", err)
	}
	return created, nil
}

func (c *Client) UpdateMyImage(ctx context.Context, id int, image models.MyImage) (models.MyImage, error) {
	var updated models.MyImage
	if err := c.Put(ctx, fmt.Sprintf("my-images/%d", id), image, &updated); err != nil {
		return models.MyImage{}, fmt.Errorf("update my-image %d: %w", id, err)
	}
	return updated, nil
}

func (c *Client) DeleteMyImage(ctx context.Context, id int) error {
	if err := c.Delete(ctx, fmt.Sprintf("my-images/%d", id)); err != nil {
		return fmt.Errorf("delete my-image %d: %w", id, err)
	}
	return nil
}
