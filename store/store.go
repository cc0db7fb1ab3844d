package store

import (
	"sync"

	"github.com/smart-closet/closetctl/models"
)

// Snapshot is a point-in-time copy of the cached collections. Mutating a
// snapshot never affects the store.
type Snapshot struct {
	Items    []models.Item
	MyImages []models.MyImage
	Outfits  []models.Outfit
}

// Store is the client-side cache of server-owned collections. Set
// operations replace a collection wholesale (startup hydration); Add
// operations append without de-duplication — the backend is trusted not
// to hand back duplicates. All writes are serialized through one mutex.
type Store struct {
	mu       sync.RWMutex
	items    []models.Item
	myImages []models.MyImage
	outfits  []models.Outfit
}

func New() *Store {
	return &Store{}
}

// Snapshot returns copies of all three collections.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Items:    append([]models.Item(nil), s.items...),
		MyImages: append([]models.MyImage(nil), s.myImages...),
		Outfits:  append([]models.Outfit(nil), s.outfits...),
	}
}

func (s *Store) Items() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Item(nil), s.items...)
}

func (s *Store) MyImages() []models.MyImage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MyImage(nil), s.myImages...)
}

func (s *Store) Outfits() []models.Outfit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Outfit(nil), s.outfits...)
}

func (s *Store) SetItems(items []models.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]models.Item(nil), items...)
}

func (s *Store) AddItems(items []models.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, items...)
}

// UpdateItem replaces the cached item with the same id. Unknown ids are
// a no-op.
func (s *Store) UpdateItem(item models.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
		}
	}
}

func (s *Store) DeleteItem(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

func (s *Store) SetMyImages(images []models.MyImage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.myImages = append([]models.MyImage(nil), images...)
}

func (s *Store) AddMyImage(image models.MyImage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.myImages = append(s.myImages, image)
}

func (s *Store) UpdateMyImage(image models.MyImage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.myImages {
		if s.myImages[i].ID == image.ID {
			s.myImages[i] = image
		}
	}
}

func (s *Store) DeleteMyImage(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.myImages[:0]
	for _, image := range s.myImages {
		if image.ID != id {
			kept = append(kept, image)
		}
	}
	s.myImages = kept
}

func (s *Store) SetOutfits(outfits []models.Outfit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outfits = append([]models.Outfit(nil), outfits...)
}

func (s *Store) AddOutfit(outfit models.Outfit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outfits = append(s.outfits, outfit)
}

func (s *Store) UpdateOutfit(outfit models.Outfit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.outfits {
		if s.outfits[i].ID == outfit.ID {
			s.outfits[i] = outfit
		}
	}
}

func (s *Store) DeleteOutfit(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.outfits[:0]
	for _, outfit := range s.outfits {
		if outfit.ID != id {
			kept = append(kept, outfit)
		}
	}
	s.outfits = kept
}
