package models

import (
	"strings"
	"time"
)

// EntryType tags what kind of media an entry carries
type EntryType string

const (
	TypeImage EntryType = "image"
	TypeVideo EntryType = "video"
	TypeAudio EntryType = "audio"
	TypeText  EntryType = "text"
	TypeOther EntryType = "other"
)

// EntryTypes lists every type in display order
var EntryTypes = []EntryType{TypeImage, TypeVideo, TypeAudio, TypeText, TypeOther}

// ParseEntryType maps a stored entry_type value onto the known set.
// Anything unrecognised becomes TypeOther.
func ParseEntryType(s string) EntryType {
	t := EntryType(strings.ToLower(strings.TrimSpace(s)))
	if t.Valid() {
		return t
	}
	return TypeOther
}

func (t EntryType) Valid() bool {
	switch t {
	case TypeImage, TypeVideo, TypeAudio, TypeText, TypeOther:
		return true
	}
	return false
}

type Entry struct {
	ID        string         `json:"id"`
	Type      EntryType      `json:"entryType"`
	Title     string         `json:"title,omitempty"`
	Content   string         `json:"content,omitempty"`
	FileURL   string         `json:"fileUrl,omitempty"`
	FilePath  string         `json:"filePath,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Location  Location       `json:"location"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}
