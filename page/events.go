package page

import (
	"slices"

	"github.com/s0up4200/kinolist/catalog"
)

// Event is a state transition
type Event interface {
	apply(State) State
}

// Reduce returns the state after ev. s is not modified.
func Reduce(s State, ev Event) State {
	return ev.apply(s.clone())
}

// FieldChanged sets one form field
type FieldChanged struct {
	Field Field
	Value string
}

func (ev FieldChanged) apply(s State) State {
	switch ev.Field {
	case FieldTitle:
		s.Form.Title = ev.Value
	case FieldPoster:
		s.Form.Poster = ev.Value
	case FieldRating:
		s.Form.Rating = ev.Value
	case FieldDescription:
		s.Form.Description = ev.Value
	}
	return s
}

// EditStarted copies an entry into the form and switches to edit mode
type EditStarted struct {
	Entry catalog.Entry
}

func (ev EditStarted) apply(s State) State {
	s.Form = Form{
		Title:       ev.Entry.Title,
		Poster:      ev.Entry.Poster,
		Rating:      ev.Entry.Rating.String(),
		Description: ev.Entry.Description,
		IsEditing:   true,
		EditID:      ev.Entry.ID,
	}
	return s
}

// FormCleared empties the form and leaves edit mode
type FormCleared struct{}

func (FormCleared) apply(s State) State {
	s.Form = Form{}
	return s
}

// CollectionLoaded replaces the held collection with a fetch result
type CollectionLoaded struct {
	Entries []catalog.Entry
}

func (ev CollectionLoaded) apply(s State) State {
	s.Entries = slices.Clone(ev.Entries)
	if s.Entries == nil {
		s.Entries = []catalog.Entry{}
	}
	return s
}

// DetailOpened shows an entry in the popup and locks background scrolling
type DetailOpened struct {
	Entry catalog.Entry
}

func (ev DetailOpened) apply(s State) State {
	selected := ev.Entry
	s.Selected = &selected
	s.PopupOpen = true
	s.ScrollLocked = true
	return s
}

// PopupClosed hides the popup and restores scrolling
type PopupClosed struct{}

func (PopupClosed) apply(s State) State {
	s.PopupOpen = false
	s.ScrollLocked = false
	return s
}
