// Package catalog provides a client for the rated-movie collection kept on a
// mockapi.io style REST backend.
//
// The backend exposes a single resource collection and five operations:
//
//	GET    {base}        list every entry
//	GET    {base}/{id}   fetch one entry
//	POST   {base}        create an entry, the store assigns the id
//	PUT    {base}/{id}   replace an entry's fields
//	DELETE {base}/{id}   delete an entry, the deleted entry is returned
//
// Field names on the wire are capitalized (Title, Poster, Rating, Description).
// Entry and Fields are the internal representation; the mapping between the
// two happens inside this package only.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := catalog.NewClient(catalog.DefaultBaseURL, logger,
//		catalog.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	entries, err := client.ListAll(ctx)
//
// # Error Handling
//
// Every failure reaching the backend is a remote failure: callers can test for it with
// errors.Is(err, catalog.ErrRemote). Non-2xx replies are returned as *APIError,
// which also matches ErrNotFound for 404 replies.
//
// Calls are made at most once. There is no retry and no idempotency key, so a
// request that fails on the client after succeeding on the server leaves the
// two sides inconsistent until the next ListAll.
package catalog
