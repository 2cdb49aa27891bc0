package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fridgechef/backend/internal/models"
	"github.com/fridgechef/backend/internal/testhelpers"
	"github.com/fridgechef/backend/internal/types"
)

func saveRecipe(t *testing.T, ts *testhelpers.TestServer, cookie, title string) models.Recipe {
	t.Helper()
	w := ts.Do(t, http.MethodPost, "/save-recipe", map[string]interface{}{
		"title": title,
		"ingredients": []map[string]interface{}{
			{"name": "flour", "quantity": 200, "unit": "g"},
		},
		"steps": []string{"mix", "bake"},
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var recipe models.Recipe
	testhelpers.DecodeJSON(t, w, &recipe)
	return recipe
}

func TestSaveAndListRecipes(t *testing.T) {
	ts := testhelpers.NewTestServer(t, "")
	cookie := ts.Register(t, "alice", "alice@example.com")

	saveRecipe(t, ts, cookie, "Tomato Soup")
	saveRecipe(t, ts, cookie, "Apple Pie")

	var list types.RecipeListResponse
	w := ts.Do(t, http.MethodGet, "/save-recipe", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	testhelpers.DecodeJSON(t, w, &list)
	require.Len(t, list.Results, 2)
	// Newest first.
	assert.Equal(t, "Apple Pie", list.Results[0].Title)

	w = ts.Do(t, http.MethodGet, "/save-recipe?search=tomato", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	testhelpers.DecodeJSON(t, w, &list)
	require.Len(t, list.Results, 1)
	assert.Equal(t, "Tomato Soup", list.Results[0].Title)
}

func TestSaveRecipeRequiresTitle(t *testing.T) {
	ts := testhelpers.NewTestServer(t, "")
	cookie := ts.Register(t, "alice", "alice@example.com")

	w := ts.Do(t, http.MethodPost, "/save-recipe", map[string]interface{}{
		"steps": []string{"mix"},
	}, cookie)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	testhelpers.DecodeJSON(t, w, &body)
	assert.Contains(t, body.Errors, "title")
}

func TestFavoriteToggleOverHTTP(t *testing.T) {
	ts := testhelpers.NewTestServer(t, "")
	cookie := ts.Register(t, "alice", "alice@example.com")

	recipe := saveRecipe(t, ts, cookie, "Pancakes")
	saveRecipe(t, ts, cookie, "Toast")

	w := ts.Do(t, http.MethodPatch, "/recipes-detail/"+recipe.ID.String(), map[string]interface{}{
		"favorite": true,
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Recipe
	testhelpers.DecodeJSON(t, w, &updated)
	assert.True(t, updated.Favorite)
	assert.Equal(t, "Pancakes", updated.Title)

	var favorites types.RecipeListResponse
	w = ts.Do(t, http.MethodGet, "/save-recipe?favorite=true", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	testhelpers.DecodeJSON(t, w, &favorites)
	require.Len(t, favorites.Results, 1)
	assert.Equal(t, recipe.ID, favorites.Results[0].ID)
}

func TestRecipeDetailScoping(t *testing.T) {
	ts := testhelpers.NewTestServer(t, "")
	alice := ts.Register(t, "alice", "alice@example.com")
	bob := ts.Register(t, "bob", "bob@example.com")

	recipe := saveRecipe(t, ts, alice, "Secret Sauce")

	w := ts.Do(t, http.MethodGet, "/recipes-detail/"+recipe.ID.String(), nil, bob)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = ts.Do(t, http.MethodDelete, "/recipes-detail/"+recipe.ID.String(), nil, bob)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.Do(t, http.MethodDelete, "/recipes-detail/"+recipe.ID.String(), nil, alice)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = ts.Do(t, http.MethodGet, "/recipes-detail/"+recipe.ID.String(), nil, alice)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
