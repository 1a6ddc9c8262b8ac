// Package page holds the state of the rated-movie page and the operations a
// user can trigger on it.
//
// State is a plain, serializable value: the add/edit form, the collection as
// last fetched, and the detail popup. It only changes through Reduce, which
// maps a state and an Event to a new state. Page owns one State and pairs
// each user action with the remote calls it needs, dispatching the resulting
// events through a single entry point.
//
// The collection shown is always the result of the last successful fetch.
// After every mutating call, whether it succeeded or not, Page refetches the
// whole collection once; nothing is patched locally.
package page
