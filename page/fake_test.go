package page

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/s0up4200/kinolist/catalog"
)

var errBackendDown = fmt.Errorf("%w: backend down", catalog.ErrRemote)

// call records one request made to fakeAPI
type call struct {
	Op     string
	ID     string
	Fields catalog.Fields
}

// fakeAPI is an in-memory catalog.API that records every call
type fakeAPI struct {
	mu      sync.Mutex
	entries map[string]catalog.Entry
	nextID  int
	calls   []call

	failList   bool
	failGet    bool
	failCreate bool
	failUpdate bool
	failRemove bool
}

func newFakeAPI(entries ...catalog.Entry) *fakeAPI {
	f := &fakeAPI{entries: make(map[string]catalog.Entry), nextID: 100}
	for _, e := range entries {
		f.entries[e.ID] = e
	}
	return f
}

func (f *fakeAPI) record(c call) {
	f.calls = append(f.calls, c)
}

func (f *fakeAPI) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func (f *fakeAPI) Ops() []string {
	var ops []string
	for _, c := range f.Calls() {
		ops = append(ops, c.Op)
	}
	return ops
}

func (f *fakeAPI) ListAll(ctx context.Context) ([]catalog.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(call{Op: "listAll"})
	if f.failList {
		return nil, errBackendDown
	}

	out := make([]catalog.Entry, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAPI) GetOne(ctx context.Context, id string) (catalog.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(call{Op: "getOne", ID: id})
	if f.failGet {
		return catalog.Entry{}, errBackendDown
	}
	e, ok := f.entries[id]
	if !ok {
		return catalog.Entry{}, &catalog.APIError{StatusCode: 404, Body: "Not found"}
	}
	return e, nil
}

func (f *fakeAPI) Create(ctx context.Context, fields catalog.Fields) (catalog.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(call{Op: "create", Fields: fields})
	if f.failCreate {
		return catalog.Entry{}, errBackendDown
	}
	id := strconv.Itoa(f.nextID)
	f.nextID++
	e := catalog.Entry{ID: id, Title: fields.Title, Poster: fields.Poster, Rating: fields.Rating, Description: fields.Description}
	f.entries[id] = e
	return e, nil
}

func (f *fakeAPI) Update(ctx context.Context, id string, fields catalog.Fields) (catalog.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(call{Op: "update", ID: id, Fields: fields})
	if f.failUpdate {
		return catalog.Entry{}, errBackendDown
	}
	if _, ok := f.entries[id]; !ok {
		return catalog.Entry{}, &catalog.APIError{StatusCode: 404, Body: "Not found"}
	}
	e := catalog.Entry{ID: id, Title: fields.Title, Poster: fields.Poster, Rating: fields.Rating, Description: fields.Description}
	f.entries[id] = e
	return e, nil
}

func (f *fakeAPI) Remove(ctx context.Context, id string) (catalog.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(call{Op: "remove", ID: id})
	if f.failRemove {
		return catalog.Entry{}, errBackendDown
	}
	e, ok := f.entries[id]
	if !ok {
		return catalog.Entry{}, &catalog.APIError{StatusCode: 404, Body: "Not found"}
	}
	delete(f.entries, id)
	return e, nil
}

var _ catalog.API = (*fakeAPI)(nil)
