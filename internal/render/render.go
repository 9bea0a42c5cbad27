// Package render maps catalog state to view models. Nothing here touches an
// output surface; the templates in this package consume the view models.
package render

import (
	"fmt"
	"html/template"
	"net/url"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"io.winapps.florafauna/internal/catalog"
	models "io.winapps.florafauna/internal/models/entry"
)

const (
	SnippetLength   = 150
	UntitledLabel   = "Untitled"
	UnknownLocation = "Unknown location"

	cardDateLayout   = "Jan 2, 2006"
	detailDateLayout = "1/2/2006, 3:04:05 PM"
)

// PlaceholderImage replaces missing or broken images
const PlaceholderImage template.URL = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iNDAwIiBoZWlnaHQ9IjIwMCIgeG1sbnM9Imh0dHA6Ly93d3cudzMub3JnLzIwMDAvc3ZnIj48cmVjdCB3aWR0aD0iMTAwJSIgaGVpZ2h0PSIxMDAlIiBmaWxsPSIjZjNmNGY2Ii8+PHRleHQgeD0iNTAlIiB5PSI1MCUiIGZvbnQtZmFtaWx5PSJBcmlhbCwgc2Fucy1zZXJpZiIgZm9udC1zaXplPSIxNCIgZmlsbD0iIzk5YTNhZiIgdGV4dC1hbmNob3I9Im1pZGRsZSIgZHk9Ii4zZW0iPk5vIEltYWdlIEF2YWlsYWJsZTwvdGV4dD48L3N2Zz4="

var typeIcons = map[models.EntryType]string{
	models.TypeImage: "🖼️",
	models.TypeVideo: "🎥",
	models.TypeAudio: "🎵",
	models.TypeText:  "📝",
}

const defaultIcon = "📄"

// Preview is the media block at the top of a card
type Preview struct {
	Kind        models.EntryType
	ImageURL    string
	Alt         string
	Placeholder template.URL
}

type Card struct {
	ID           string
	TypeIcon     string
	TypeLabel    string
	Preview      Preview
	Title        string
	Snippet      string
	Date         string
	ShowLocation bool
	Location     string
	FileURL      string
	DetailURL    string
}

type CategoryOption struct {
	Value  string
	Label  string
	Active bool
}

// Page is everything the grid page shows
type Page struct {
	Phase      catalog.Phase
	Message    string
	Cards      []Card
	Category   string
	Query      string
	Categories []CategoryOption
	Status     catalog.ConnStatus
	Stats      catalog.Stats
	Shown      int
	Total      int
}

type MetadataField struct {
	Key   string
	Value string
}

// Detail is the full view of one entry
type Detail struct {
	ID          string
	Title       string
	TypeIcon    string
	TypeLabel   string
	Preview     Preview
	Content     string
	Date        string
	Location    string
	Coordinates string
	MapURL      string
	FileURL     string
	FilePath    string
	Metadata    []MetadataField
}

// NewPage builds the grid page for a view. Cards are only produced in the
// ready phase.
func NewPage(view catalog.View, stats catalog.Stats) Page {
	page := Page{
		Phase:      view.Phase,
		Message:    view.Message,
		Category:   string(view.Category),
		Query:      view.Query,
		Categories: categoryOptions(view.Category),
		Status:     view.Status,
		Stats:      stats,
		Total:      view.Total,
	}
	if page.Category == "" {
		page.Category = string(catalog.CategoryAll)
	}
	if view.Phase == catalog.PhaseReady {
		page.Cards = Cards(view.Entries)
		page.Shown = len(page.Cards)
	}
	return page
}

func Cards(entries []models.Entry) []Card {
	cards := make([]Card, len(entries))
	for i, e := range entries {
		cards[i] = NewCard(e)
	}
	return cards
}

func NewCard(e models.Entry) Card {
	card := Card{
		ID:        e.ID,
		TypeIcon:  TypeIcon(e.Type),
		TypeLabel: TypeLabel(e.Type),
		Preview:   newPreview(e),
		Title:     titleOrDefault(e.Title),
		Snippet:   Truncate(e.Content, SnippetLength),
		Date:      formatDate(e.Timestamp, cardDateLayout),
		FileURL:   e.FileURL,
		DetailURL: "/entries/" + url.PathEscape(e.ID),
	}
	if e.Location.HasCoordinates() {
		card.ShowLocation = true
		card.Location = e.Location.Name
		if card.Location == "" {
			card.Location = UnknownLocation
		}
	}
	return card
}

func NewDetail(e models.Entry) Detail {
	d := Detail{
		ID:        e.ID,
		Title:     titleOrDefault(e.Title),
		TypeIcon:  TypeIcon(e.Type),
		TypeLabel: TypeLabel(e.Type),
		Preview:   newPreview(e),
		Content:   e.Content,
		Date:      formatDate(e.Timestamp, detailDateLayout),
		Location:  e.Location.Name,
		FileURL:   e.FileURL,
		FilePath:  e.FilePath,
		Metadata:  metadataFields(e.Metadata),
	}
	if e.Location.HasCoordinates() {
		lat, lng := *e.Location.Latitude, *e.Location.Longitude
		d.Coordinates = fmt.Sprintf("%.6f, %.6f", lat, lng)
		d.MapURL = fmt.Sprintf("https://www.openstreetmap.org/?mlat=%.6f&mlon=%.6f#map=15/%.6f/%.6f", lat, lng, lat, lng)
	}
	return d
}

// LookupDetail finds id in the state's cache. The second result is false
// when the id is unknown.
func LookupDetail(state catalog.State, id string) (Detail, bool) {
	e, ok := state.Lookup(id)
	if !ok {
		return Detail{}, false
	}
	return NewDetail(e), true
}

// Truncate cuts s to n characters and appends "..." when anything was cut
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}

func TypeIcon(t models.EntryType) string {
	if icon, ok := typeIcons[t]; ok {
		return icon
	}
	return defaultIcon
}

func TypeLabel(t models.EntryType) string {
	if t == "" {
		t = models.TypeOther
	}
	s := string(t)
	return strings.ToUpper(s[:1]) + s[1:]
}

func newPreview(e models.Entry) Preview {
	p := Preview{Kind: e.Type, Placeholder: PlaceholderImage}
	if e.Type == models.TypeImage {
		p.ImageURL = e.FileURL
		p.Alt = e.Title
	}
	return p
}

func titleOrDefault(title string) string {
	if strings.TrimSpace(title) == "" {
		return UntitledLabel
	}
	return title
}

func formatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}

func categoryOptions(active catalog.Category) []CategoryOption {
	if active == "" {
		active = catalog.CategoryAll
	}
	opts := []CategoryOption{{
		Value:  string(catalog.CategoryAll),
		Label:  "All",
		Active: active == catalog.CategoryAll,
	}}
	for _, t := range models.EntryTypes {
		opts = append(opts, CategoryOption{
			Value:  string(t),
			Label:  TypeLabel(t),
			Active: active == catalog.Category(t),
		})
	}
	return opts
}

func metadataFields(m map[string]any) []MetadataField {
	if len(m) == 0 {
		return nil
	}
	fields := make([]MetadataField, 0, len(m))
	for k, v := range m {
		fields = append(fields, MetadataField{Key: k, Value: fmt.Sprint(v)})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })
	return fields
}
