package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRow(t *testing.T) {
	t.Run("full REST row", func(t *testing.T) {
		row := map[string]any{
			"id":            json.Number("42"),
			"entry_type":    "image",
			"title":         "Oak",
			"content":       "A tall oak",
			"file_url":      "https://cdn.example.com/oak.jpg",
			"file_path":     "images/oak.jpg",
			"timestamp":     "2024-05-01T10:20:30.123456+00:00",
			"location_lat":  json.Number("51.5"),
			"location_lng":  json.Number("-0.12"),
			"location_name": "Hyde Park",
			"metadata":      map[string]any{"camera": "x100"},
		}

		entry, err := FromRow(row)
		require.NoError(t, err)
		assert.Equal(t, "42", entry.ID)
		assert.Equal(t, TypeImage, entry.Type)
		assert.Equal(t, "Oak", entry.Title)
		assert.Equal(t, "images/oak.jpg", entry.FilePath)
		assert.Equal(t, 2024, entry.Timestamp.Year())
		require.True(t, entry.Location.HasCoordinates())
		assert.InDelta(t, 51.5, *entry.Location.Latitude, 1e-9)
		assert.InDelta(t, -0.12, *entry.Location.Longitude, 1e-9)
		assert.Equal(t, "x100", entry.Metadata["camera"])
	})

	t.Run("missing optional fields are tolerated", func(t *testing.T) {
		entry, err := FromRow(map[string]any{"id": int64(7), "title": nil, "location_lat": "not a number"})
		require.NoError(t, err)
		assert.Equal(t, "7", entry.ID)
		assert.Equal(t, TypeOther, entry.Type)
		assert.Empty(t, entry.Title)
		assert.False(t, entry.Location.HasCoordinates())
		assert.True(t, entry.Timestamp.IsZero())
	})

	t.Run("zero coordinates are still coordinates", func(t *testing.T) {
		entry, err := FromRow(map[string]any{"id": "a", "location_lat": 0.0, "location_lng": 0.0})
		require.NoError(t, err)
		assert.True(t, entry.Location.HasCoordinates())
	})

	t.Run("postgres values", func(t *testing.T) {
		id := uuid.New()
		ts := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
		entry, err := FromRow(map[string]any{
			"id":         [16]byte(id),
			"entry_type": "VIDEO",
			"timestamp":  ts,
			"metadata":   `{"k":"v"}`,
		})
		require.NoError(t, err)
		assert.Equal(t, id.String(), entry.ID)
		assert.Equal(t, TypeVideo, entry.Type)
		assert.Equal(t, ts, entry.Timestamp)
		assert.Equal(t, "v", entry.Metadata["k"])
	})

	t.Run("row without id is rejected", func(t *testing.T) {
		_, err := FromRow(map[string]any{"title": "Oak"})
		assert.ErrorIs(t, err, ErrMissingID)
	})
}

func TestParseEntryType(t *testing.T) {
	assert.Equal(t, TypeAudio, ParseEntryType(" Audio "))
	assert.Equal(t, TypeOther, ParseEntryType("document"))
	assert.Equal(t, TypeOther, ParseEntryType(""))
}
