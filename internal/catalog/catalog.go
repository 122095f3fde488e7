package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/LingarajMishra/ModelPortfolioWebsite/internal/blob"
	"github.com/LingarajMishra/ModelPortfolioWebsite/internal/types"
)

// Store is the catalog surface the HTTP layer works against.
type Store interface {
	List(ctx context.Context) ([]types.Photo, error)
	ListByCategory(ctx context.Context, category string) ([]types.Photo, error)
	ListFeatured(ctx context.Context) ([]types.Photo, error)
	Get(ctx context.Context, id int) (types.Photo, error)
	Create(ctx context.Context, draft types.PhotoDraft) (types.Photo, error)
	Delete(ctx context.Context, id int) error
}

// Catalog keeps the photo records in memory. The blob store owns the durable
// bytes; this map is a rebuildable cache over it, seeded once per lifetime by
// enumerating the container.
type Catalog struct {
	mu     sync.Mutex
	photos map[int]types.Photo
	nextID int

	blobs  blob.Store
	logger *slog.Logger

	seedOnce sync.Once
}

func New(blobs blob.Store, logger *slog.Logger) *Catalog {
	return &Catalog{
		photos: make(map[int]types.Photo),
		nextID: 1,
		blobs:  blobs,
		logger: logger,
	}
}

// ensureSeeded runs the blob enumeration at most once, before the first
// operation proceeds. Concurrent callers block until seeding finishes, so no
// reader ever observes a partially-enumerated catalog. An enumeration failure
// is logged and the catalog serves whatever it has.
func (c *Catalog) ensureSeeded(ctx context.Context) {
	c.seedOnce.Do(func() {
		objects, err := c.blobs.ListObjects(ctx)
		if err != nil {
			c.logger.Error("failed to enumerate blob container, serving empty catalog", "error", err)
			return
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		for _, obj := range objects {
			id := c.nextID
			c.nextID++
			c.photos[id] = types.Photo{
				ID:       id,
				URL:      obj.URL,
				Title:    blob.TitleFromKey(obj.Key),
				Category: string(types.CategoryPortrait),
				BlobKey:  obj.Key,
				Featured: false,
			}
		}
		c.logger.Info("seeded catalog from blob container", "photos", len(objects))
	})
}

func (c *Catalog) List(ctx context.Context) ([]types.Photo, error) {
	c.ensureSeeded(ctx)
	return c.collect(func(types.Photo) bool { return true }), nil
}

func (c *Catalog) ListByCategory(ctx context.Context, category string) ([]types.Photo, error) {
	c.ensureSeeded(ctx)
	return c.collect(func(p types.Photo) bool { return p.Category == category }), nil
}

func (c *Catalog) ListFeatured(ctx context.Context) ([]types.Photo, error) {
	c.ensureSeeded(ctx)
	return c.collect(func(p types.Photo) bool { return p.Featured }), nil
}

func (c *Catalog) Get(ctx context.Context, id int) (types.Photo, error) {
	c.ensureSeeded(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	photo, ok := c.photos[id]
	if !ok {
		return types.Photo{}, types.ErrPhotoNotExists{ID: id}
	}
	return photo, nil
}

func (c *Catalog) Create(ctx context.Context, draft types.PhotoDraft) (types.Photo, error) {
	c.ensureSeeded(ctx)

	if !types.ValidCategory(draft.Category) {
		return types.Photo{}, types.ErrInvalidCategory{Category: draft.Category}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++

	photo := types.Photo{
		ID:          id,
		URL:         draft.URL,
		Title:       draft.Title,
		Category:    draft.Category,
		Description: draft.Description,
		BlobKey:     draft.BlobKey,
		Featured:    draft.Featured,
	}
	c.photos[id] = photo
	return photo, nil
}

// Delete removes a record and its backing object. The object delete runs
// first; if it fails the record stays put, so the catalog never points at a
// blob it already destroyed.
func (c *Catalog) Delete(ctx context.Context, id int) error {
	c.ensureSeeded(ctx)

	c.mu.Lock()
	photo, ok := c.photos[id]
	c.mu.Unlock()
	if !ok {
		return types.ErrPhotoNotExists{ID: id}
	}

	if err := c.blobs.DeleteObject(ctx, photo.BlobKey); err != nil {
		return fmt.Errorf("failed to delete backing object %q: %w", photo.BlobKey, err)
	}

	c.mu.Lock()
	delete(c.photos, id)
	c.mu.Unlock()
	return nil
}

// collect snapshots matching records in insertion (ascending id) order.
func (c *Catalog) collect(match func(types.Photo) bool) []types.Photo {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]int, 0, len(c.photos))
	for id := range c.photos {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	photos := make([]types.Photo, 0, len(ids))
	for _, id := range ids {
		if photo := c.photos[id]; match(photo) {
			photos = append(photos, photo)
		}
	}
	return photos
}
