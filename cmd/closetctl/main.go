package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/smart-closet/closetctl/client"
	"github.com/smart-closet/closetctl/closet"
	"github.com/smart-closet/closetctl/config"
	"github.com/smart-closet/closetctl/models"
	"github.com/smart-closet/closetctl/storage"
	"github.com/smart-closet/closetctl/store"
)

func usage() {
	fmt.Println("Usage: closetctl <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  refresh                     hydrate the local cache from the backend")
	fmt.Println("  closet                      list cached closet contents")
	fmt.Println("  upload -file <path>         upload a garment photo")
	fmt.Println("  upload-image -file <path>   upload a reference photo of yourself")
	fmt.Println("  outfit -occasion <name>     ask for outfit suggestions")
	fmt.Println("  save-outfit -items <ids>    save a top/bottom grouping")
	fmt.Println("  tryon -person <id> -items <ids> -out <path>")
	fmt.Println("  storage-upload -file <path> -category <id>")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	api := client.New(cfg)
	cl := closet.New(api, store.New())
	ctx := context.Background()

	switch os.Args[1] {
	case "refresh":
		runRefresh(ctx, cl)
	case "closet":
		runCloset(ctx, cl)
	case "upload":
		runUpload(ctx, cl, os.Args[2:])
	case "upload-image":
		runUploadImage(ctx, cl, os.Args[2:])
	case "outfit":
		runOutfit(ctx, cl, cfg, os.Args[2:])
	case "save-outfit":
		runSaveOutfit(ctx, cl, os.Args[2:])
	case "tryon":
		runTryOn(ctx, cl, os.Args[2:])
	case "storage-upload":
		runStorageUpload(ctx, api, cfg, os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func runRefresh(ctx context.Context, cl *closet.Closet) {
	// Partial hydration is fine: report failures but keep whatever
	// collections did load.
	if err := cl.Refresh(ctx); err != nil {
		log.Printf("Some collections failed to load: %v", err)
	}
	snap := cl.Store().Snapshot()
	fmt.Printf("Cached %d items, %d images, %d outfits\n",
		len(snap.Items), len(snap.MyImages), len(snap.Outfits))
}

func runCloset(ctx context.Context, cl *closet.Closet) {
	if err := cl.Refresh(ctx); err != nil {
		log.Printf("Some collections failed to load: %v", err)
	}
	for _, item := range cl.Store().Items() {
		fmt.Printf("%4d  %-8s %-24s %s\n", item.ID, item.Category.Name, item.Name, item.ImageURL)
	}
	for _, outfit := range cl.Store().Outfits() {
		ids := make([]string, 0, len(outfit.Items))
		for _, item := range outfit.Items {
			ids = append(ids, strconv.Itoa(item.ID))
		}
		fmt.Printf("outfit %d %q: items [%s]\n", outfit.ID, outfit.Name, strings.Join(ids, ", "))
	}
}

func runUpload(ctx context.Context, cl *closet.Closet, args []string) {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	file := fs.String("file", "", "path to the garment photo")
	name := fs.String("name", "", "filename to submit (defaults to the file's base name)")
	fs.Parse(args)

	upload, err := localUpload(*file, *name)
	if err != nil {
		log.Fatalf("%v", err)
	}

	created, err := cl.UploadItem(ctx, upload)
	if err != nil {
		log.Fatalf("Upload failed: %v", err)
	}
	fmt.Printf("Created %d item(s):\n", len(created))
	for _, item := range created {
		fmt.Printf("  %d (%s) %s\n", item.ID, item.Category.Name, item.Name)
	}
}

func runUploadImage(ctx context.Context, cl *closet.Closet, args []string) {
	fs := flag.NewFlagSet("upload-image", flag.ExitOnError)
	file := fs.String("file", "", "path to your reference photo")
	fs.Parse(args)

	upload, err := localUpload(*file, "")
	if err != nil {
		log.Fatalf("%v", err)
	}

	created, err := cl.UploadMyImage(ctx, upload)
	if err != nil {
		log.Fatalf("Upload failed: %v", err)
	}
	fmt.Printf("Created my-image %d: %s\n", created.ID, created.ImageURL)
}

func runOutfit(ctx context.Context, cl *closet.Closet, cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("outfit", flag.ExitOnError)
	occasion := fs.String("occasion", "Daily_Work_and_Conference", "occasion to dress for")
	voice := fs.String("voice", "", "free-form spoken occasion text")
	weather := fs.Bool("weather", true, "factor current weather into suggestions")
	lat := fs.Float64("lat", cfg.DefaultLatitude, "latitude for the weather lookup")
	lon := fs.Float64("lon", cfg.DefaultLongitude, "longitude for the weather lookup")
	itemID := fs.Int("item", 0, "restrict suggestions to pairs involving this item id")
	fs.Parse(args)

	if *occasion == "" && *voice == "" {
		log.Fatalf("Provide -occasion or -voice")
	}

	sctx := models.SuggestionContext{
		ConsiderWeather: *weather,
		UserOccasion:    *occasion,
		Latitude:        *lat,
		Longitude:       *lon,
		VoiceOccasion:   *voice,
	}
	if *itemID > 0 {
		sctx.ItemID = itemID
	}

	pairs, err := cl.Suggest(ctx, sctx)
	if err != nil {
		log.Fatalf("Suggestion request failed: %v", err)
	}
	if len(pairs) == 0 {
		fmt.Println("No suggestions for this occasion.")
		return
	}
	for i, pair := range pairs {
		fmt.Printf("%d. %s + %s (score %.2f)\n", i+1, pair.Top.Name, pair.Bottom.Name, pair.Score)
		fmt.Printf("   %s\n   %s\n", pair.Top.ImageURL, pair.Bottom.ImageURL)
	}
}

func runSaveOutfit(ctx context.Context, cl *closet.Closet, args []string) {
	fs := flag.NewFlagSet("save-outfit", flag.ExitOnError)
	items := fs.String("items", "", "comma-separated item ids, e.g. 101,102")
	fs.Parse(args)

	ids, err := parseIDList(*items)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := cl.Refresh(ctx); err != nil {
		log.Printf("Some collections failed to load: %v", err)
	}
	if cl.OutfitExists(ids) {
		fmt.Println("That outfit is already saved.")
		return
	}

	outfit, err := cl.SaveOutfit(ctx, ids)
	if err != nil {
		log.Fatalf("Failed to save outfit: %v", err)
	}
	fmt.Printf("Saved outfit %d with %d item(s)\n", outfit.ID, len(outfit.Items))
}

func runTryOn(ctx context.Context, cl *closet.Closet, args []string) {
	fs := flag.NewFlagSet("tryon", flag.ExitOnError)
	personID := fs.Int("person", 0, "my-image id to use as the person photo")
	items := fs.String("items", "", "comma-separated garment item ids")
	out := fs.String("out", "tryon.jpg", "where to write the rendered JPEG")
	fs.Parse(args)

	ids, err := parseIDList(*items)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := cl.Refresh(ctx); err != nil {
		log.Printf("Some collections failed to load: %v", err)
	}

	var person models.MyImage
	for _, image := range cl.Store().MyImages() {
		if image.ID == *personID {
			person = image
		}
	}
	if person.ID == 0 {
		log.Fatalf("No my-image with id %d; run upload-image first", *personID)
	}

	var garments []models.Item
	for _, id := range ids {
		for _, item := range cl.Store().Items() {
			if item.ID == id {
				garments = append(garments, item)
			}
		}
	}
	if len(garments) != len(ids) {
		log.Fatalf("Some item ids were not found in the closet")
	}

	jpeg, err := cl.TryOn(ctx, person, garments)
	if err != nil {
		log.Fatalf("Try-on failed: %v", err)
	}
	if err := os.WriteFile(*out, jpeg, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", *out, len(jpeg))
}

func runStorageUpload(ctx context.Context, api *client.Client, cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("storage-upload", flag.ExitOnError)
	file := fs.String("file", "", "path to the garment photo")
	category := fs.Int("category", 0, "category id for the new item")
	fs.Parse(args)

	upload, err := localUpload(*file, "")
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *category <= 0 {
		log.Fatalf("Provide -category")
	}

	uploader, err := storage.NewUploader(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	item, err := uploader.UploadItemImage(ctx, api, upload, *category)
	if err != nil {
		log.Fatalf("Storage upload failed: %v", err)
	}
	fmt.Printf("Created item %d: %s\n", item.ID, item.ImageURL)
}

// localUpload validates the local file before any network call is made.
func localUpload(path, name string) (models.ImageUpload, error) {
	if path == "" {
		return models.ImageUpload{}, fmt.Errorf("please select an image first (-file)")
	}
	if _, err := os.Stat(path); err != nil {
		return models.ImageUpload{}, fmt.Errorf("cannot read %s: %v", path, err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return models.ImageUpload{Path: path, Filename: name, MimeType: mimeType}, nil
}

func parseIDList(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("provide item ids with -items, e.g. -items 101,102")
	}
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid item id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
