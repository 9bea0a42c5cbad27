package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "io.winapps.florafauna/internal/models/entry"
)

func sampleCache() []models.Entry {
	t1 := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	return []models.Entry{
		{ID: "2", Title: "Owl", Type: models.TypeText, Timestamp: t2},
		{ID: "1", Title: "Oak", Type: models.TypeImage, Timestamp: t1},
	}
}

func ids(entries []models.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestFilterCategory(t *testing.T) {
	got := Filter(sampleCache(), Category("image"), "")
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	got := Filter(sampleCache(), CategoryAll, "ow")
	assert.Equal(t, []string{"2"}, ids(got))

	got = Filter(sampleCache(), CategoryAll, "OAK")
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestFilterSearchFields(t *testing.T) {
	cache := []models.Entry{
		{ID: "a", Title: "Fern"},
		{ID: "b", Content: "spotted near the creek"},
		{ID: "c", Location: models.Location{Name: "Creekside Trail"}},
		{ID: "d"},
	}
	assert.Equal(t, []string{"b", "c"}, ids(Filter(cache, CategoryAll, "creek")))
}

func TestFilterNoOpPredicates(t *testing.T) {
	cache := sampleCache()
	assert.Equal(t, ids(cache), ids(Filter(cache, CategoryAll, "")))
	assert.Equal(t, ids(cache), ids(Filter(cache, "", "")))
}

func TestFilterComposesWithAnd(t *testing.T) {
	cache := append(sampleCache(), models.Entry{ID: "3", Title: "Owl feather", Type: models.TypeImage})
	assert.Equal(t, []string{"3"}, ids(Filter(cache, Category("image"), "owl")))
}

func TestFilterProperties(t *testing.T) {
	cache := []models.Entry{
		{ID: "1", Title: "Oak", Type: models.TypeImage},
		{ID: "2", Title: "Owl", Type: models.TypeText},
		{ID: "3", Content: "oak leaves", Type: models.TypeImage},
		{ID: "4", Title: "Pine", Type: models.TypeVideo, Location: models.Location{Name: "Oakwood"}},
		{ID: "5", Type: models.TypeAudio},
		{ID: "6", Title: "Birdsong", Type: models.TypeAudio},
	}
	categories := []Category{CategoryAll, "image", "video", "audio", "text", "other"}
	queries := []string{"", "oak", "O", "zzz", "song"}

	for _, c := range categories {
		for _, q := range queries {
			once := Filter(cache, c, q)

			// subsequence of the cache, in order
			pos := 0
			for _, e := range once {
				for pos < len(cache) && cache[pos].ID != e.ID {
					pos++
				}
				require.Less(t, pos, len(cache), "category=%s query=%q: %s out of order or absent", c, q, e.ID)
				pos++
			}

			// idempotent
			assert.Equal(t, ids(once), ids(Filter(once, c, q)), "category=%s query=%q", c, q)
		}
	}
}

func TestFilterDoesNotAliasCache(t *testing.T) {
	cache := sampleCache()
	out := Filter(cache, CategoryAll, "")
	out[0].Title = "changed"
	assert.Equal(t, "Owl", cache[0].Title)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("")
	require.NoError(t, err)
	assert.Equal(t, CategoryAll, c)

	c, err = ParseCategory("Video")
	require.NoError(t, err)
	assert.Equal(t, Category("video"), c)

	_, err = ParseCategory("plants")
	assert.Error(t, err)
}
