package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// MaxRemoveConcurrency bounds the number of deletes in flight
const MaxRemoveConcurrency = 5

// BatchRemoveResult contains the results of a batch remove operation
type BatchRemoveResult struct {
	Requested int
	Removed   []string
	Failed    []RemoveError
}

// RemoveError contains information about a failed remove operation
type RemoveError struct {
	ID  string
	Err error
}

// Error implements the error interface
func (e RemoveError) Error() string {
	return fmt.Sprintf("failed to delete entry %s: %v", e.ID, e.Err)
}

// Unwrap returns the underlying error
func (e RemoveError) Unwrap() error {
	return e.Err
}

// RemoveMany deletes entries concurrently. Individual failures are collected
// and do not stop the batch. Removed and Failed keep the order of ids.
func RemoveMany(ctx context.Context, api API, ids []string) BatchRemoveResult {
	result := BatchRemoveResult{
		Requested: len(ids),
	}

	if len(ids) == 0 {
		return result
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxRemoveConcurrency)

	errs := make([]error, len(ids))

	for i, id := range ids {
		g.Go(func() error {
			_, err := api.Remove(ctx, id)
			errs[i] = err
			return nil // Don't stop on individual errors
		})
	}

	g.Wait()

	for i, id := range ids {
		if errs[i] != nil {
			result.Failed = append(result.Failed, RemoveError{ID: id, Err: errs[i]})
			continue
		}
		result.Removed = append(result.Removed, id)
	}

	return result
}
