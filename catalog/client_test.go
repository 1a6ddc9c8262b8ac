package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/kinolist/mockapi"
)

func newMockBackend(t *testing.T, records ...mockapi.Record) (*Client, *mockapi.Server) {
	t.Helper()
	backend := mockapi.NewServer(zerolog.Nop())
	backend.Seed(records...)

	server := httptest.NewServer(backend.Handler())
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL+mockapi.CollectionPath, zerolog.Nop())
	require.NoError(t, err)
	return client, backend
}

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		baseURL string
		wantErr bool
		want    string
	}{
		{name: "default endpoint", baseURL: DefaultBaseURL, want: DefaultBaseURL},
		{name: "trailing slash trimmed", baseURL: "http://localhost:3001/kinolist/rate/", want: "http://localhost:3001/kinolist/rate"},
		{name: "missing URL", baseURL: "", wantErr: true},
		{name: "no scheme", baseURL: "localhost/kinolist", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.baseURL, logger)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, client.BaseURL())
		})
	}
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient(DefaultBaseURL, logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient(DefaultBaseURL, logger, WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("with user agent", func(t *testing.T) {
		client, err := NewClient(DefaultBaseURL, logger, WithUserAgent("test-agent"))
		require.NoError(t, err)
		assert.Equal(t, "test-agent", client.userAgent)
	})
}

func TestClient_CRUDAgainstMockBackend(t *testing.T) {
	client, backend := newMockBackend(t)
	ctx := context.Background()

	require.NoError(t, client.TestConnection(ctx))

	created, err := client.Create(ctx, Fields{Title: "Alien", Poster: "alien.jpg", Rating: "9", Description: "scary"})
	require.NoError(t, err)
	assert.Equal(t, "1", created.ID)
	assert.Equal(t, Rating("9"), created.Rating)

	got, err := client.GetOne(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := client.Update(ctx, created.ID, Fields{Title: "Aliens", Poster: "aliens.jpg", Rating: "10", Description: "loud"})
	require.NoError(t, err)
	assert.Equal(t, "Aliens", updated.Title)
	assert.Equal(t, created.ID, updated.ID)

	entries, err := client.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, updated, entries[0])

	removed, err := client.Remove(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, removed)
	assert.Equal(t, 0, backend.Len())

	_, err = client.GetOne(ctx, created.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrRemote)
}

func TestClient_WireFormat(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		data, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(data, &gotBody))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"42","Title":"Up","Poster":"up.jpg","Rating":7,"Description":"balloons"}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL+"/kinolist/rate", zerolog.Nop())
	require.NoError(t, err)

	entry, err := client.Update(context.Background(), "42", Fields{Title: "Up", Poster: "up.jpg", Rating: "7", Description: "balloons"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/kinolist/rate/42", gotPath)
	assert.Equal(t, map[string]any{
		"Title":       "Up",
		"Poster":      "up.jpg",
		"Rating":      "7",
		"Description": "balloons",
	}, gotBody, "no id and capitalized field names on the wire")

	assert.Equal(t, Entry{ID: "42", Title: "Up", Poster: "up.jpg", Rating: "7", Description: "balloons"}, entry)
}

func TestClient_ServerErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)

	_, err = client.ListAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemote)
	assert.NotErrorIs(t, err, ErrNotFound)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Body)

	assert.ErrorIs(t, client.TestConnection(context.Background()), ErrRemote)
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := NewClient(url, zerolog.Nop())
	require.NoError(t, err)

	_, err = client.Create(context.Background(), Fields{Title: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemote)
}

func TestClient_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)

	_, err = client.ListAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemote)
}

func TestClient_EmptyID(t *testing.T) {
	client, err := NewClient(DefaultBaseURL, zerolog.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = client.GetOne(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = client.Update(ctx, "", Fields{})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = client.Remove(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRating(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		want    Rating
		float   float64
		numeric bool
	}{
		{name: "string", json: `"8"`, want: "8", float: 8, numeric: true},
		{name: "number", json: `7.5`, want: "7.5", float: 7.5, numeric: true},
		{name: "null", json: `null`, want: "", numeric: false},
		{name: "padded string", json: `" 3 "`, want: " 3 ", float: 3, numeric: true},
		{name: "text", json: `"great"`, want: "great", numeric: false},
		{name: "nan", json: `"NaN"`, want: "NaN", numeric: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Rating
			require.NoError(t, json.Unmarshal([]byte(tt.json), &r))
			assert.Equal(t, tt.want, r)

			f, ok := r.Float()
			assert.Equal(t, tt.numeric, ok)
			if ok {
				assert.InDelta(t, tt.float, f, 1e-9)
			}
		})
	}

	t.Run("rejects objects", func(t *testing.T) {
		var r Rating
		assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &r))
	})
}
