package gemini

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListModelsFollowsPages(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/models", r.URL.Path)
		assert.Equal(t, "key-123", r.Header.Get("x-goog-api-key"))

		switch r.URL.Query().Get("pageToken") {
		case "":
			w.Write([]byte(`{"models":[{"name":"models/gemini-1.5-flash"},{"name":"models/gemini-1.5-pro"}],"nextPageToken":"p2"}`))
		case "p2":
			w.Write([]byte(`{"models":[{"name":"models/text-embedding-004","supportedGenerationMethods":["embedContent"]}]}`))
		default:
			t.Errorf("unexpected page token %q", r.URL.Query().Get("pageToken"))
		}
	}))
	defer srv.Close()

	c := NewClient("key-123")
	c.BaseURL = srv.URL

	models, err := c.ListModels(context.Background())

	require.NoError(t, err)
	require.Len(t, models, 3)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "models/gemini-1.5-flash", models[0].Name)
	assert.Equal(t, []string{"embedContent"}, models[2].SupportedGenerationMethods)
}

func TestListModelsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	}))
	defer srv.Close()

	c := NewClient("bad")
	c.BaseURL = srv.URL

	models, err := c.ListModels(context.Background())

	require.Error(t, err)
	assert.Nil(t, models)
	assert.Contains(t, err.Error(), "code 403")
}
