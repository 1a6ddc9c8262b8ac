package page

import (
	"slices"

	"github.com/s0up4200/kinolist/catalog"
)

// Field names one of the four editable form fields
type Field string

const (
	FieldTitle       Field = "title"
	FieldPoster      Field = "poster"
	FieldRating      Field = "rating"
	FieldDescription Field = "description"
)

// Fields lists the form fields in display order
var Fields = []Field{FieldTitle, FieldPoster, FieldRating, FieldDescription}

// Form is the add/edit form. The zero value is an empty form in create mode.
type Form struct {
	Title       string `json:"title"`
	Poster      string `json:"poster"`
	Rating      string `json:"rating"`
	Description string `json:"description"`
	IsEditing   bool   `json:"isEditing"`
	EditID      string `json:"editId,omitempty"`
}

// Values returns the form content as submitted to the backend
func (f Form) Values() catalog.Fields {
	return catalog.Fields{
		Title:       f.Title,
		Poster:      f.Poster,
		Rating:      catalog.Rating(f.Rating),
		Description: f.Description,
	}
}

// Get returns the value of a field
func (f Form) Get(field Field) string {
	switch field {
	case FieldTitle:
		return f.Title
	case FieldPoster:
		return f.Poster
	case FieldRating:
		return f.Rating
	case FieldDescription:
		return f.Description
	}
	return ""
}

// State is the whole page state
type State struct {
	Form         Form            `json:"form"`
	Entries      []catalog.Entry `json:"entries"`
	Selected     *catalog.Entry  `json:"selected,omitempty"`
	PopupOpen    bool            `json:"popupOpen"`
	ScrollLocked bool            `json:"scrollLocked"`
}

// clone returns a copy sharing no memory with s
func (s State) clone() State {
	out := s
	out.Entries = slices.Clone(s.Entries)
	if out.Entries == nil {
		out.Entries = []catalog.Entry{}
	}
	if s.Selected != nil {
		selected := *s.Selected
		out.Selected = &selected
	}
	return out
}

// Find returns the held entry with the given id
func (s State) Find(id string) (catalog.Entry, bool) {
	for _, e := range s.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return catalog.Entry{}, false
}
