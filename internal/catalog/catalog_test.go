package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/LingarajMishra/ModelPortfolioWebsite/internal/blob"
	"github.com/LingarajMishra/ModelPortfolioWebsite/internal/blob/fake_blob"
	"github.com/LingarajMishra/ModelPortfolioWebsite/internal/catalog"
	"github.com/LingarajMishra/ModelPortfolioWebsite/internal/types"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func draft(title, category string) types.PhotoDraft {
	return types.PhotoDraft{
		URL:      "https://blobs.example.com/" + title,
		Title:    title,
		Category: category,
		BlobKey:  "1700000000000-" + title,
	}
}

func TestCreateThenGet(t *testing.T) {
	ctx := context.Background()
	c := catalog.New(fake_blob.New(), testLogger())

	in := draft("sunset", "portrait")
	created, err := c.Create(ctx, in)
	require.NoError(t, err)
	require.Equal(t, 1, created.ID)
	require.Equal(t, in.URL, created.URL)
	require.Equal(t, in.Title, created.Title)
	require.Equal(t, in.Category, created.Category)
	require.Nil(t, created.Description)
	require.False(t, created.Featured)

	got, err := c.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestCreateRejectsInvalidCategory(t *testing.T) {
	ctx := context.Background()
	c := catalog.New(fake_blob.New(), testLogger())

	_, err := c.Create(ctx, draft("sunset", "landscape"))
	require.Error(t, err)
	require.IsType(t, types.ErrInvalidCategory{}, err)

	photos, err := c.List(ctx)
	require.NoError(t, err)
	require.Empty(t, photos)
}

func TestGetUnknownID(t *testing.T) {
	ctx := context.Background()
	c := catalog.New(fake_blob.New(), testLogger())

	_, err := c.Get(ctx, 42)
	require.Error(t, err)
	require.IsType(t, types.ErrPhotoNotExists{}, err)
}

func TestListAccounting(t *testing.T) {
	ctx := context.Background()
	fake := fake_blob.New()
	c := catalog.New(fake, testLogger())

	for _, title := range []string{"one", "two", "three"} {
		_, err := c.Create(ctx, draft(title, "portrait"))
		require.NoError(t, err)
	}

	photos, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, photos, 3)

	require.NoError(t, c.Delete(ctx, 2))

	photos, err = c.List(ctx)
	require.NoError(t, err)
	require.Len(t, photos, 2)
	require.Equal(t, []int{1, 3}, []int{photos[0].ID, photos[1].ID})
}

func TestListByCategoryPartition(t *testing.T) {
	ctx := context.Background()
	c := catalog.New(fake_blob.New(), testLogger())

	categories := []string{"portrait", "editorial", "commercial", "runway", "portrait"}
	for i, category := range categories {
		_, err := c.Create(ctx, draft(string(rune('a'+i)), category))
		require.NoError(t, err)
	}

	total := 0
	for _, category := range types.Categories {
		photos, err := c.ListByCategory(ctx, string(category))
		require.NoError(t, err)
		for _, p := range photos {
			require.Equal(t, string(category), p.Category)
		}
		total += len(photos)
	}

	all, err := c.List(ctx)
	require.NoError(t, err)
	require.Equal(t, len(all), total)

	// Unknown category yields an empty set, not an error.
	photos, err := c.ListByCategory(ctx, "landscape")
	require.NoError(t, err)
	require.Empty(t, photos)
}

func TestListFeatured(t *testing.T) {
	ctx := context.Background()
	c := catalog.New(fake_blob.New(), testLogger())

	first := draft("plain", "portrait")
	second := draft("starred", "editorial")
	second.Featured = true

	_, err := c.Create(ctx, first)
	require.NoError(t, err)
	created, err := c.Create(ctx, second)
	require.NoError(t, err)

	featured, err := c.ListFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	require.Equal(t, created.ID, featured[0].ID)
}

func TestDeleteUnknownIDLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	c := catalog.New(fake_blob.New(), testLogger())

	_, err := c.Create(ctx, draft("keeper", "portrait"))
	require.NoError(t, err)

	err = c.Delete(ctx, 99)
	require.Error(t, err)
	require.IsType(t, types.ErrPhotoNotExists{}, err)

	photos, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, photos, 1)
}

func TestDeleteFailClosed(t *testing.T) {
	ctx := context.Background()
	fake := fake_blob.New(blob.Object{Key: "1700000000000-doomed", URL: "https://blobs.example.com/1700000000000-doomed"})
	c := catalog.New(fake, testLogger())

	photos, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, photos, 1)

	fake.FailDelete = true
	err = c.Delete(ctx, photos[0].ID)
	require.Error(t, err)
	require.NotContains(t, err.Error(), "No photo found")

	// Both the record and the backing object survive a failed delete.
	photos, err = c.List(ctx)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	require.Equal(t, []string{"1700000000000-doomed"}, fake.Keys())

	fake.FailDelete = false
	require.NoError(t, c.Delete(ctx, photos[0].ID))
	require.Empty(t, fake.Keys())
}

func TestIDsNeverReused(t *testing.T) {
	ctx := context.Background()
	c := catalog.New(fake_blob.New(), testLogger())

	a, err := c.Create(ctx, draft("a", "portrait"))
	require.NoError(t, err)
	require.Equal(t, 1, a.ID)

	require.NoError(t, c.Delete(ctx, a.ID))

	b, err := c.Create(ctx, draft("b", "portrait"))
	require.NoError(t, err)
	require.Equal(t, 2, b.ID)
}

func TestSeedFromEnumeration(t *testing.T) {
	ctx := context.Background()
	fake := fake_blob.New(
		blob.Object{Key: "1700000000000-evening-light", URL: "https://blobs.example.com/1700000000000-evening-light"},
		blob.Object{Key: "1700000001000-studio", URL: "https://blobs.example.com/1700000001000-studio"},
	)
	c := catalog.New(fake, testLogger())

	photos, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, photos, 2)

	require.Equal(t, "evening light", photos[0].Title)
	require.Equal(t, "studio", photos[1].Title)
	for _, p := range photos {
		require.Equal(t, "portrait", p.Category)
		require.False(t, p.Featured)
		require.Nil(t, p.Description)
		require.NotEmpty(t, p.URL)
	}

	// Enumeration runs once per store lifetime: a second read does not
	// duplicate the seeded records.
	photos, err = c.List(ctx)
	require.NoError(t, err)
	require.Len(t, photos, 2)
}

func TestSeedFailureServesEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	fake := fake_blob.New(blob.Object{Key: "1700000000000-unreachable", URL: "u"})
	fake.FailList = true
	c := catalog.New(fake, testLogger())

	photos, err := c.List(ctx)
	require.NoError(t, err)
	require.Empty(t, photos)

	// Creates still work against the unseeded catalog.
	created, err := c.Create(ctx, draft("fresh", "runway"))
	require.NoError(t, err)
	require.Equal(t, 1, created.ID)
}
