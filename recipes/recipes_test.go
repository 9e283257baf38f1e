package recipes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wandr/globals"
	"wandr/models"
	"wandr/upstream"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withUpstream(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	prev := api
	api = &upstream.Client{BaseURL: server.URL, HTTP: server.Client()}
	t.Cleanup(func() { api = prev })
}

func TestSuggestRecipe(t *testing.T) {
	withUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generate_recipe_with_image", r.URL.Path)
		w.Write([]byte(`{"name": "Tomato Soup", "ingredients": ["tomato"], "image": "data:image/png;base64,xyz"}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/recipe", strings.NewReader(`{"prompt": "soup"}`))
	rec := httptest.NewRecorder()
	SuggestRecipe(rec, req, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Tomato Soup", body["name"])
}

func TestSuggestRecipeBlankPrompt(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/recipe", strings.NewReader(`{"prompt": "   "}`))
	rec := httptest.NewRecorder()
	SuggestRecipe(rec, req, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSuggestRecipeNotConfigured(t *testing.T) {
	prev := api
	api = &upstream.Client{HTTP: &http.Client{}}
	t.Cleanup(func() { api = prev })

	req := httptest.NewRequest(http.MethodPost, "/api/recipe", strings.NewReader(`{"prompt": "soup"}`))
	rec := httptest.NewRecorder()
	SuggestRecipe(rec, req, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSuggestRecipeRelaysUpstreamStatus(t *testing.T) {
	withUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`model busy`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/recipe", strings.NewReader(`{"prompt": "soup"}`))
	rec := httptest.NewRecorder()
	SuggestRecipe(rec, req, nil)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Upstream error", body["error"])
	assert.Contains(t, body["details"], "model busy")
}

// RemoveFavorite must read the same param name the route registers, or
// every unfavorite silently deletes nothing.
func TestRemoveFavoriteReadsRouteParam(t *testing.T) {
	router := httprouter.New()
	router.DELETE("/api/recipes/favorites/:favoriteid", RemoveFavorite)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ctx = context.WithValue(ctx, globals.UserIDKey, "u1")

	req := httptest.NewRequest(http.MethodDelete, "/api/recipes/favorites/fav-123", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// The id made it past the param check; the dead context stops the
	// request at the store instead.
	assert.NotEqual(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRemoveFavoriteMissingID(t *testing.T) {
	ctx := context.WithValue(context.Background(), globals.UserIDKey, "u1")
	req := httptest.NewRequest(http.MethodDelete, "/api/recipes/favorites/", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	RemoveFavorite(rec, req, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindByDomainID(t *testing.T) {
	favs := []models.FavoriteRecipe{
		{FavoriteID: "fav-1", Recipe: models.Recipe{ID: "r1", Name: "Soup"}},
		{FavoriteID: "fav-2", Recipe: models.Recipe{ID: "r2", Name: "Salad"}},
	}

	got, ok := FindByDomainID(favs, "r2")
	require.True(t, ok)
	assert.Equal(t, "fav-2", got.FavoriteID)

	_, ok = FindByDomainID(favs, "r3")
	assert.False(t, ok)

	_, ok = FindByDomainID(nil, "r1")
	assert.False(t, ok)
}
