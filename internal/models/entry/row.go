package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Column names of the data_entries table
const (
	ColumnID           = "id"
	ColumnEntryType    = "entry_type"
	ColumnTitle        = "title"
	ColumnContent      = "content"
	ColumnFilePath     = "file_path"
	ColumnFileURL      = "file_url"
	ColumnTimestamp    = "timestamp"
	ColumnLatitude     = "location_lat"
	ColumnLongitude    = "location_lng"
	ColumnLocationName = "location_name"
	ColumnMetadata     = "metadata"
)

// ErrMissingID is returned for rows that cannot be keyed
var ErrMissingID = errors.New("row has no id")

// timestamp layouts seen from the REST surface and from hand-written rows
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// FromRow decodes one remote row. Optional fields that are missing, null or
// of an unexpected type fall back to zero values; only the id is required.
func FromRow(row map[string]any) (Entry, error) {
	id, ok := asString(row[ColumnID])
	if !ok || id == "" {
		return Entry{}, ErrMissingID
	}

	entry := Entry{ID: id}

	typ, _ := asString(row[ColumnEntryType])
	entry.Type = ParseEntryType(typ)
	entry.Title, _ = asString(row[ColumnTitle])
	entry.Content, _ = asString(row[ColumnContent])
	entry.FilePath, _ = asString(row[ColumnFilePath])
	entry.FileURL, _ = asString(row[ColumnFileURL])
	entry.Timestamp, _ = asTime(row[ColumnTimestamp])
	entry.Location.Name, _ = asString(row[ColumnLocationName])

	if lat, ok := asFloat(row[ColumnLatitude]); ok {
		entry.Location.Latitude = &lat
	}
	if lng, ok := asFloat(row[ColumnLongitude]); ok {
		entry.Location.Longitude = &lng
	}

	entry.Metadata = asObject(row[ColumnMetadata])

	return entry, nil
}

func asString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case []byte:
		return string(t), true
	case json.Number:
		return t.String(), true
	case int:
		return strconv.Itoa(t), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case [16]byte:
		return uuid.UUID(t).String(), true
	case uuid.UUID:
		return t.String(), true
	case fmt.Stringer:
		return t.String(), true
	}
	return "", false
}

func asFloat(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case pgtype.Numeric:
		fv, err := t.Float64Value()
		if err != nil || !fv.Valid {
			return 0, false
		}
		f = fv.Float64
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range timestampLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

func asObject(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		return t
	case string:
		return decodeObject([]byte(t))
	case []byte:
		return decodeObject(t)
	}
	return nil
}

func decodeObject(b []byte) map[string]any {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil
	}
	return m
}
