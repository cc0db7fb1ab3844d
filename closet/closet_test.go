package closet

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-closet/closetctl/models"
	"github.com/smart-closet/closetctl/store"
)

// fakeAPI is a scriptable stand-in for the backend client.
type fakeAPI struct {
	items    []models.Item
	myImages []models.MyImage
	outfits  []models.Outfit

	itemsErr    error
	myImagesErr error
	outfitsErr  error

	createdItems   []models.Item
	createdImage   models.MyImage
	createdOutfit  models.Outfit
	createErr      error
	deleteErr      error
	deletedItemIDs []int

	pairs    []models.OutfitPair
	pairsErr error

	tryOnResult string
	tryOnErr    error
	tryOnURLs   []string
}

func (f *fakeAPI) Items(ctx context.Context) ([]models.Item, error) {
	return f.items, f.itemsErr
}

func (f *fakeAPI) MyImages(ctx context.Context) ([]models.MyImage, error) {
	return f.myImages, f.myImagesErr
}

func (f *fakeAPI) Outfits(ctx context.Context) ([]models.Outfit, error) {
	return f.outfits, f.outfitsErr
}

func (f *fakeAPI) CreateItem(ctx context.Context, upload models.ImageUpload) ([]models.Item, error) {
	return f.createdItems, f.createErr
}

func (f *fakeAPI) CreateMyImage(ctx context.Context, upload models.ImageUpload) (models.MyImage, error) {
	return f.createdImage, f.createErr
}

func (f *fakeAPI) CreateOutfit(ctx context.Context, itemIDs []int) (models.Outfit, error) {
	return f.createdOutfit, f.createErr
}

func (f *fakeAPI) DeleteItem(ctx context.Context, id int) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedItemIDs = append(f.deletedItemIDs, id)
	return nil
}

func (f *fakeAPI) SuggestOutfits(ctx context.Context, sctx models.SuggestionContext) ([]models.OutfitPair, error) {
	return f.pairs, f.pairsErr
}

func (f *fakeAPI) TryOn(ctx context.Context, imageURLs []string) (string, error) {
	f.tryOnURLs = imageURLs
	return f.tryOnResult, f.tryOnErr
}

func TestRefresh_HydratesAllCollections(t *testing.T) {
	api := &fakeAPI{
		items:    []models.Item{{ID: 1}, {ID: 2}},
		myImages: []models.MyImage{{ID: 10}},
		outfits:  []models.Outfit{{ID: 20}},
	}
	cl := New(api, store.New())

	require.NoError(t, cl.Refresh(context.Background()))

	snap := cl.Store().Snapshot()
	assert.Len(t, snap.Items, 2)
	assert.Len(t, snap.MyImages, 1)
	assert.Len(t, snap.Outfits, 1)
}

func TestRefresh_PartialHydrationOnPartialFailure(t *testing.T) {
	api := &fakeAPI{
		items:       []models.Item{{ID: 1}},
		myImagesErr: errors.New("my-images unreachable"),
		outfits:     []models.Outfit{{ID: 20}},
	}
	cl := New(api, store.New())

	err := cl.Refresh(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "my-images unreachable")

	// The failing collection is untouched; the others still hydrated.
	snap := cl.Store().Snapshot()
	assert.Len(t, snap.Items, 1)
	assert.Empty(t, snap.MyImages)
	assert.Len(t, snap.Outfits, 1)
}

func TestUploadItem_SortsAndAppends(t *testing.T) {
	api := &fakeAPI{createdItems: []models.Item{
		{ID: 102, Category: models.Category{Name: "bottom"}},
		{ID: 101, Category: models.Category{Name: "top"}},
	}}
	cl := New(api, store.New())
	cl.Store().SetItems([]models.Item{{ID: 50}})

	created, err := cl.UploadItem(context.Background(), models.ImageUpload{Path: "p"})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, 101, created[0].ID)
	assert.Equal(t, 102, created[1].ID)

	items := cl.Store().Items()
	require.Len(t, items, 3)
	assert.Equal(t, 50, items[0].ID, "prior entries keep their position")
	assert.Equal(t, 101, items[1].ID)
	assert.Equal(t, 102, items[2].ID)
}

func TestUploadItem_FailureLeavesStoreUntouched(t *testing.T) {
	api := &fakeAPI{createErr: errors.New("upload rejected")}
	cl := New(api, store.New())
	cl.Store().SetItems([]models.Item{{ID: 50}})

	_, err := cl.UploadItem(context.Background(), models.ImageUpload{Path: "p"})
	require.Error(t, err)
	assert.Len(t, cl.Store().Items(), 1)
}

func TestSaveOutfit_AppendsToCache(t *testing.T) {
	api := &fakeAPI{createdOutfit: models.Outfit{
		ID:    7,
		Items: []models.Item{{ID: 101}, {ID: 102}},
	}}
	cl := New(api, store.New())

	outfit, err := cl.SaveOutfit(context.Background(), []int{101, 102})
	require.NoError(t, err)
	assert.Equal(t, 7, outfit.ID)

	outfits := cl.Store().Outfits()
	require.Len(t, outfits, 1)
	assert.True(t, outfits[0].HasExactItems([]int{101, 102}))
}

func TestSaveOutfit_RejectsEmptySelection(t *testing.T) {
	cl := New(&fakeAPI{}, store.New())
	_, err := cl.SaveOutfit(context.Background(), nil)
	assert.Error(t, err)
}

func TestOutfitExists_MatchesByIDSet(t *testing.T) {
	cl := New(&fakeAPI{}, store.New())
	cl.Store().SetOutfits([]models.Outfit{
		{ID: 7, Items: []models.Item{{ID: 101}, {ID: 102}}},
	})

	assert.True(t, cl.OutfitExists([]int{102, 101}))
	assert.False(t, cl.OutfitExists([]int{101}))
	assert.False(t, cl.OutfitExists([]int{101, 103}))
}

func TestRemoveItem_EvictsOnlyAfterConfirmedDelete(t *testing.T) {
	api := &fakeAPI{}
	cl := New(api, store.New())
	cl.Store().SetItems([]models.Item{{ID: 1}, {ID: 2}})

	require.NoError(t, cl.RemoveItem(context.Background(), 1))
	assert.Equal(t, []int{1}, api.deletedItemIDs)
	require.Len(t, cl.Store().Items(), 1)

	api.deleteErr = errors.New("server fault")
	require.Error(t, cl.RemoveItem(context.Background(), 2))
	assert.Len(t, cl.Store().Items(), 1, "a failed delete must not evict the cached copy")
}

func TestSuggest_TruncatesToTopFive(t *testing.T) {
	pairs := make([]models.OutfitPair, 8)
	for i := range pairs {
		pairs[i] = models.OutfitPair{Score: float64(8-i) / 10}
	}
	cl := New(&fakeAPI{pairs: pairs}, store.New())

	got, err := cl.Suggest(context.Background(), models.SuggestionContext{UserOccasion: "Party"})
	require.NoError(t, err)
	require.Len(t, got, 5)
	// Backend order is preserved, not re-sorted.
	assert.InDelta(t, 0.8, got[0].Score, 0.001)
	assert.InDelta(t, 0.4, got[4].Score, 0.001)
}

func TestSuggest_EmptyMeansNoSuggestions(t *testing.T) {
	cl := New(&fakeAPI{pairs: []models.OutfitPair{}}, store.New())

	got, err := cl.Suggest(context.Background(), models.SuggestionContext{UserOccasion: "Prom"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTryOn_BuildsURLListAndDecodesResult(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	api := &fakeAPI{tryOnResult: base64.StdEncoding.EncodeToString(jpeg)}
	cl := New(api, store.New())

	got, err := cl.TryOn(context.Background(),
		models.MyImage{ID: 1, ImageURL: "https://img/person.jpg"},
		[]models.Item{
			{ID: 101, ImageURL: "https://img/top.jpg"},
			{ID: 102, ImageURL: "https://img/bottom.jpg"},
		})
	require.NoError(t, err)
	assert.Equal(t, jpeg, got)
	assert.Equal(t, []string{
		"https://img/person.jpg",
		"https://img/top.jpg",
		"https://img/bottom.jpg",
	}, api.tryOnURLs, "person image must come first")
}

func TestTryOn_ValidatesInputsBeforeCalling(t *testing.T) {
	cl := New(&fakeAPI{}, store.New())

	_, err := cl.TryOn(context.Background(), models.MyImage{}, []models.Item{{ID: 1, ImageURL: "u"}})
	assert.Error(t, err, "person image without URL")

	_, err = cl.TryOn(context.Background(), models.MyImage{ImageURL: "u"}, nil)
	assert.Error(t, err, "no garments selected")

	_, err = cl.TryOn(context.Background(), models.MyImage{ImageURL: "u"}, []models.Item{{ID: 1}})
	assert.Error(t, err, "garment without URL")
}

func TestTryOn_RejectsMalformedResult(t *testing.T) {
	cl := New(&fakeAPI{tryOnResult: "%%% not base64 %%%"}, store.New())

	_, err := cl.TryOn(context.Background(),
		models.MyImage{ImageURL: "p"}, []models.Item{{ID: 1, ImageURL: "g"}})
	assert.Error(t, err)
}
