package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Entry is one rated movie as held by the backend
type Entry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Poster      string `json:"poster"`
	Rating      Rating `json:"rating"`
	Description string `json:"description"`
}

// Fields holds the four user-editable fields sent on create and update
type Fields struct {
	Title       string `json:"title"`
	Poster      string `json:"poster"`
	Rating      Rating `json:"rating"`
	Description string `json:"description"`
}

// Rating keeps a rating exactly as it was submitted.
//
// The backend does not coerce types, so a rating may come back as a JSON
// string or a JSON number. Both decode into Rating; it always encodes as a
// JSON string, which is what the form submits.
type Rating string

// UnmarshalJSON accepts a JSON string, a JSON number or null
func (r *Rating) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*r = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Rating(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("rating must be a string or a number: %w", err)
	}
	*r = Rating(n.String())
	return nil
}

// Float parses the rating. The second result is false if it is not a finite number.
func (r Rating) Float() (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(r)), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// String returns the rating as submitted
func (r Rating) String() string {
	return string(r)
}

// wireEntry is the entry as it travels on the wire
type wireEntry struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"Title"`
	Poster      string `json:"Poster"`
	Rating      Rating `json:"Rating"`
	Description string `json:"Description"`
}

func toWire(fields Fields) wireEntry {
	return wireEntry{
		Title:       fields.Title,
		Poster:      fields.Poster,
		Rating:      fields.Rating,
		Description: fields.Description,
	}
}

func (w wireEntry) toEntry() Entry {
	return Entry{
		ID:          w.ID,
		Title:       w.Title,
		Poster:      w.Poster,
		Rating:      w.Rating,
		Description: w.Description,
	}
}
