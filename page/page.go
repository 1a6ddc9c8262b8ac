package page

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/s0up4200/kinolist/catalog"
)

// ErrUnknownEntry is returned when an action names an id missing from the held collection
var ErrUnknownEntry = errors.New("entry is not in the collection")

// Result is the outcome of a page operation. Validation is set when the form
// was rejected before any remote call; Err is set when a call failed.
type Result struct {
	Entry      catalog.Entry
	Validation *ValidationError
	Err        error
}

// OK reports whether the operation succeeded
func (r Result) OK() bool {
	return r.Validation == nil && r.Err == nil
}

// Failure returns the failure as an error, or nil
func (r Result) Failure() error {
	if r.Validation != nil {
		return r.Validation
	}
	return r.Err
}

// Option configures a Page
type Option func(*Page)

// WithPreserveFormOnFailure keeps the form content when create or update
// fails. By default the form is cleared whatever the outcome.
func WithPreserveFormOnFailure() Option {
	return func(p *Page) {
		p.preserveOnFailure = true
	}
}

// Page owns the page state and runs user actions against the collection
type Page struct {
	client            catalog.API
	logger            zerolog.Logger
	preserveOnFailure bool

	mu    sync.Mutex
	state State
}

// New creates a page with an empty form and collection
func New(client catalog.API, logger zerolog.Logger, opts ...Option) *Page {
	p := &Page{
		client: client,
		logger: logger,
		state:  State{Entries: []catalog.Entry{}},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns a snapshot of the current state
func (p *Page) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.clone()
}

// Dispatch applies ev to the page state and returns the new state. All state
// changes go through it or dispatchLocked.
func (p *Page) Dispatch(ev Event) State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dispatchLocked(ev)
}

// dispatchLocked is Dispatch for callers already holding p.mu
func (p *Page) dispatchLocked(ev Event) State {
	p.state = Reduce(p.state, ev)
	return p.state.clone()
}

// SetField updates one form field
func (p *Page) SetField(field Field, value string) State {
	return p.Dispatch(FieldChanged{Field: field, Value: value})
}

// Mount performs the initial fetch of the collection
func (p *Page) Mount(ctx context.Context) Result {
	return p.Refresh(ctx)
}

// Refresh refetches the collection. On failure the held collection is kept.
func (p *Page) Refresh(ctx context.Context) Result {
	entries, err := p.client.ListAll(ctx)
	if err != nil {
		p.logger.Error().Err(err).Msg("Error fetching movie list")
		return Result{Err: err}
	}

	p.Dispatch(CollectionLoaded{Entries: entries})
	return Result{}
}

// afterMutation is the refresh policy: every mutating call, successful or
// not, is followed by exactly one refetch of the collection.
func (p *Page) afterMutation(ctx context.Context) {
	p.Refresh(ctx)
}

// StartEdit loads a held entry into the form and switches to edit mode
func (p *Page) StartEdit(id string) Result {
	p.mu.Lock()
	entry, ok := p.state.Find(id)
	if ok {
		p.dispatchLocked(EditStarted{Entry: entry})
	}
	p.mu.Unlock()

	if !ok {
		p.logger.Warn().Str("id", id).Msg("Edit requested for unknown movie")
		return Result{Err: fmt.Errorf("edit %s: %w", id, ErrUnknownEntry)}
	}
	return Result{Entry: entry}
}

// Submit validates the form and creates or updates the entry, then clears
// the form and refreshes the collection.
func (p *Page) Submit(ctx context.Context) Result {
	form := p.State().Form

	if verr := Validate(form); verr != nil {
		p.logger.Debug().Str("rule", verr.Rule.String()).Msg("Form rejected")
		return Result{Validation: verr}
	}

	var (
		entry catalog.Entry
		err   error
	)
	if form.IsEditing {
		entry, err = p.client.Update(ctx, form.EditID, form.Values())
	} else {
		entry, err = p.client.Create(ctx, form.Values())
	}

	if err != nil {
		p.logger.Error().Err(err).Bool("editing", form.IsEditing).Str("id", form.EditID).Msg("Error saving movie")
		if !p.preserveOnFailure {
			p.Dispatch(FormCleared{})
		}
	} else {
		p.Dispatch(FormCleared{})
	}

	p.afterMutation(ctx)
	return Result{Entry: entry, Err: err}
}

// Delete removes an entry and refreshes the collection
func (p *Page) Delete(ctx context.Context, id string) Result {
	entry, err := p.client.Remove(ctx, id)
	if err != nil {
		p.logger.Error().Err(err).Str("id", id).Msg("Error deleting movie")
	}

	p.afterMutation(ctx)
	return Result{Entry: entry, Err: err}
}

// SelectForDetail fetches one entry and opens the detail popup. On failure
// the popup stays closed.
func (p *Page) SelectForDetail(ctx context.Context, id string) Result {
	entry, err := p.client.GetOne(ctx, id)
	if err != nil {
		p.logger.Error().Err(err).Str("id", id).Msg("Error fetching movie data")
		return Result{Err: err}
	}

	p.Dispatch(DetailOpened{Entry: entry})
	return Result{Entry: entry}
}

// ClosePopup hides the detail popup
func (p *Page) ClosePopup() Result {
	p.Dispatch(PopupClosed{})
	return Result{}
}
