package closet

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/smart-closet/closetctl/client"
	"github.com/smart-closet/closetctl/models"
	"github.com/smart-closet/closetctl/store"
)

// topSuggestions is how many scored pairs are surfaced to the user.
const topSuggestions = 5

// API is the slice of the backend client the closet layer depends on.
type API interface {
	Items(ctx context.Context) ([]models.Item, error)
	MyImages(ctx context.Context) ([]models.MyImage, error)
	Outfits(ctx context.Context) ([]models.Outfit, error)
	CreateItem(ctx context.Context, upload models.ImageUpload) ([]models.Item, error)
	CreateMyImage(ctx context.Context, upload models.ImageUpload) (models.MyImage, error)
	CreateOutfit(ctx context.Context, itemIDs []int) (models.Outfit, error)
	DeleteItem(ctx context.Context, id int) error
	SuggestOutfits(ctx context.Context, sctx models.SuggestionContext) ([]models.OutfitPair, error)
	TryOn(ctx context.Context, imageURLs []string) (string, error)
}

var _ API = (*client.Client)(nil)

// Closet ties the backend client to the local store: every remote write
// happens first, and only a confirmed result touches the cache.
type Closet struct {
	api   API
	store *store.Store
}

func New(api API, st *store.Store) *Closet {
	return &Closet{api: api, store: st}
}

func (c *Closet) Store() *store.Store {
	return c.store
}

// Refresh hydrates the store with bulk fetches of all three
// collections. The fetches are independent: a failing one leaves its
// collection untouched while the others still hydrate. The joined error
// reports every failure.
func (c *Closet) Refresh(ctx context.Context) error {
	var wg sync.WaitGroup
	errs := make([]error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		items, err := c.api.Items(ctx)
		if err != nil {
			errs[0] = err
			return
		}
		c.store.SetItems(items)
	}()
	go func() {
		defer wg.Done()
		images, err := c.api.MyImages(ctx)
		if err != nil {
			errs[1] = err
			return
		}
		c.store.SetMyImages(images)
	}()
	go func() {
		defer wg.Done()
		outfits, err := c.api.Outfits(ctx)
		if err != nil {
			errs[2] = err
			return
		}
		c.store.SetOutfits(outfits)
	}()
	wg.Wait()

	return errors.Join(errs...)
}

// UploadItem submits a garment photo and appends the created items to
// the cache. The backend may return several garments for one photo; they
// are sorted by id so the cache order does not depend on backend
// ordering whims.
func (c *Closet) UploadItem(ctx context.Context, upload models.ImageUpload) ([]models.Item, error) {
	created, err := c.api.CreateItem(ctx, upload)
	if err != nil {
		return nil, err
	}
	sort.Slice(created, func(i, j int) bool { return created[i].ID < created[j].ID })
	c.store.AddItems(created)
	return created, nil
}

// UploadMyImage submits a reference photo and appends it to the cache.
func (c *Closet) UploadMyImage(ctx context.Context, upload models.ImageUpload) (models.MyImage, error) {
	created, err := c.api.CreateMyImage(ctx, upload)
	if err != nil {
		return models.MyImage{}, err
	}
	c.store.AddMyImage(created)
	return created, nil
}

// SaveOutfit persists a grouping of items and appends it to the cache.
func (c *Closet) SaveOutfit(ctx context.Context, itemIDs []int) (models.Outfit, error) {
	if len(itemIDs) == 0 {
		return models.Outfit{}, fmt.Errorf("an outfit needs at least one item")
	}
	created, err := c.api.CreateOutfit(ctx, itemIDs)
	if err != nil {
		return models.Outfit{}, err
	}
	c.store.AddOutfit(created)
	return created, nil
}

// RemoveItem deletes the item server-side and evicts the cached copy
// only after the delete is confirmed.
func (c *Closet) RemoveItem(ctx context.Context, id int) error {
	if err := c.api.DeleteItem(ctx, id); err != nil {
		return err
	}
	c.store.DeleteItem(id)
	return nil
}

// OutfitExists reports whether a cached outfit consists of exactly the
// given item ids. Used to decide "already saved" before persisting a
// suggested pair.
func (c *Closet) OutfitExists(itemIDs []int) bool {
	for _, outfit := range c.store.Outfits() {
		if outfit.HasExactItems(itemIDs) {
			return true
		}
	}
	return false
}

// Suggest returns at most the top five scored pairs in backend order.
// An empty result means "no suggestions" and is not an error.
func (c *Closet) Suggest(ctx context.Context, sctx models.SuggestionContext) ([]models.OutfitPair, error) {
	pairs, err := c.api.SuggestOutfits(ctx, sctx)
	if err != nil {
		return nil, err
	}
	if len(pairs) > topSuggestions {
		pairs = pairs[:topSuggestions]
	}
	return pairs, nil
}

// TryOn renders the garments onto the person image and returns the
// decoded JPEG bytes.
func (c *Closet) TryOn(ctx context.Context, person models.MyImage, garments []models.Item) ([]byte, error) {
	if person.ImageURL == "" {
		return nil, fmt.Errorf("person image has no URL")
	}
	if len(garments) == 0 {
		return nil, fmt.Errorf("no garments selected")
	}

	urls := make([]string, 0, len(garments)+1)
	urls = append(urls, person.ImageURL)
	for _, garment := range garments {
		if garment.ImageURL == "" {
			return nil, fmt.Errorf("item %d has no image URL", garment.ID)
		}
		urls = append(urls, garment.ImageURL)
	}

	encoded, err := c.api.TryOn(ctx, urls)
	if err != nil {
		return nil, err
	}
	jpeg, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode try-on result: %w", err)
	}
	return jpeg, nil
}
