package page

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/kinolist/catalog"
)

func TestReduce_DoesNotMutateInput(t *testing.T) {
	entries := []catalog.Entry{{ID: "1", Title: "One"}}
	s := Reduce(State{}, CollectionLoaded{Entries: entries})

	entries[0].Title = "changed"
	assert.Equal(t, "One", s.Entries[0].Title)

	next := Reduce(s, DetailOpened{Entry: s.Entries[0]})
	next.Entries[0].Title = "also changed"
	assert.Equal(t, "One", s.Entries[0].Title)
	assert.Nil(t, s.Selected)
	assert.False(t, s.PopupOpen)
}

func TestReduce_Transitions(t *testing.T) {
	entry := catalog.Entry{ID: "9", Title: "Nine", Poster: "9.jpg", Rating: "9", Description: "d"}

	s := State{}
	s = Reduce(s, FieldChanged{Field: FieldTitle, Value: "draft"})
	assert.Equal(t, "draft", s.Form.Title)

	s = Reduce(s, EditStarted{Entry: entry})
	assert.Equal(t, Form{Title: "Nine", Poster: "9.jpg", Rating: "9", Description: "d", IsEditing: true, EditID: "9"}, s.Form)

	s = Reduce(s, FormCleared{})
	assert.Equal(t, Form{}, s.Form)

	s = Reduce(s, DetailOpened{Entry: entry})
	assert.True(t, s.PopupOpen)
	assert.True(t, s.ScrollLocked)

	s = Reduce(s, PopupClosed{})
	assert.False(t, s.PopupOpen)
	assert.False(t, s.ScrollLocked)

	s = Reduce(s, CollectionLoaded{})
	assert.NotNil(t, s.Entries)
	assert.Empty(t, s.Entries)
}

func TestState_Serializable(t *testing.T) {
	s := Reduce(State{}, CollectionLoaded{Entries: []catalog.Entry{{ID: "1", Title: "One", Rating: "5"}}})
	s = Reduce(s, DetailOpened{Entry: s.Entries[0]})

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"popupOpen":true`)
	assert.Contains(t, string(data), `"isEditing":false`)

	var back State
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s, back)
}

func TestForm_Get(t *testing.T) {
	f := validForm()
	for _, field := range Fields {
		assert.NotEmpty(t, f.Get(field), field)
	}
	assert.Empty(t, f.Get(Field("unknown")))
}
