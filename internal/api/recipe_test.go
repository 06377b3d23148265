package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/pageza/recipebox/backend/internal/models"
	"github.com/pageza/recipebox/backend/internal/testhelpers"
	"github.com/pageza/recipebox/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ingredientIDs(t *testing.T, app *testApp, names ...string) []string {
	t.Helper()
	ings := testhelpers.Ingredients(t, app.db, names...)
	ids := make([]string, len(ings))
	for i, ing := range ings {
		ids[i] = strconv.FormatUint(uint64(ing.ID), 10)
	}
	return ids
}

func TestAddRecipeForm(t *testing.T) {
	app := newTestApp(t)
	alice := app.signup(t, "alice")
	ingredientIDs(t, app, "Zucker", "Mehl")

	w := app.get("/add_recipe", alice)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Mehl")
	assert.Contains(t, body, "Zucker")
	for _, unit := range models.UnitSuggestions {
		assert.Contains(t, body, unit)
	}
}

func TestAddRecipeSkipsIncompleteTriples(t *testing.T) {
	app := newTestApp(t)
	alice := app.signup(t, "alice")
	ids := ingredientIDs(t, app, "Eier", "Mehl")

	w := app.postForm("/add_recipe", url.Values{
		"title":         {"Omelett"},
		"instructions":  {"Braten."},
		"ingredient_id": {ids[0], ids[1]},
		"amount":        {"2", ""},
		"unit":          {"Stück", "Gramm"},
	}, alice)
	require.Equal(t, http.StatusFound, w.Code)

	var recipe models.Recipe
	require.NoError(t, app.db.Preload("Ingredients").Last(&recipe).Error)
	assert.Equal(t, fmt.Sprintf("/recipe/%d", recipe.ID), w.Header().Get("Location"))
	require.Len(t, recipe.Ingredients, 1)
	assert.Equal(t, 2.0, recipe.Ingredients[0].Amount)
	assert.Equal(t, "Stück", recipe.Ingredients[0].Unit)
}

func TestAddRecipeInvalid(t *testing.T) {
	app := newTestApp(t)
	alice := app.signup(t, "alice")
	ids := ingredientIDs(t, app, "Mehl")

	tests := []struct {
		name string
		form url.Values
	}{
		{"missing title", url.Values{"instructions": {"x"}}},
		{"bad amount", url.Values{"title": {"x"}, "instructions": {"x"},
			"ingredient_id": {ids[0]}, "amount": {"lots"}, "unit": {"Gramm"}}},
		{"unknown ingredient", url.Values{"title": {"x"}, "instructions": {"x"},
			"ingredient_id": {"999"}, "amount": {"1"}, "unit": {"Gramm"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := app.postForm("/add_recipe", tt.form, alice)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	var count int64
	require.NoError(t, app.db.Model(&models.Recipe{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecipePages(t *testing.T) {
	app := newTestApp(t)
	alice := app.signup(t, "alice")
	bob := app.signup(t, "bob")
	ids := ingredientIDs(t, app, "Mehl")

	w := app.postForm("/add_recipe", url.Values{
		"title":         {"Brot"},
		"instructions":  {"Kneten und backen."},
		"ingredient_id": {ids[0]},
		"amount":        {"0.5"},
		"unit":          {"Kilogramm"},
	}, alice)
	require.Equal(t, http.StatusFound, w.Code)
	location := w.Header().Get("Location")

	w = app.get("/recipes", bob)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `href="`+location+`"`)
	assert.Contains(t, w.Body.String(), "von alice")

	w = app.postForm(location+"/comment", url.Values{"content": {"Sehr lecker"}}, bob)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, location, w.Header().Get("Location"))

	w = app.get(location, bob)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Brot")
	assert.Contains(t, body, "0.5 Kilogramm Mehl")
	assert.Contains(t, body, "Sehr lecker")
}

func TestViewRecipeNotFound(t *testing.T) {
	app := newTestApp(t)
	alice := app.signup(t, "alice")

	for _, path := range []string{"/recipe/4242", "/recipe/abc", "/recipe/-1"} {
		w := app.get(path, alice)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestAddRecipeCommentErrors(t *testing.T) {
	app := newTestApp(t)
	alice := app.signup(t, "alice")
	user, err := app.auth.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	recipe, err := app.recipes.CreateRecipe(context.Background(), user.ID, types.CreateRecipeRequest{Title: "x", Instructions: "y"})
	require.NoError(t, err)

	w := app.postForm(fmt.Sprintf("/recipe/%d/comment", recipe.ID), url.Values{"content": {"  "}}, alice)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.postForm("/recipe/4242/comment", url.Values{"content": {"hallo"}}, alice)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, app.db.Model(&models.RecipeComment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecipeRoundTripThroughAPI(t *testing.T) {
	app := newTestApp(t)
	alice := app.signup(t, "alice")
	ids := ingredientIDs(t, app, "Mehl", "Salz")

	w := app.postForm("/add_recipe", url.Values{
		"title":         {"Pizza"},
		"instructions":  {"Teig ausrollen."},
		"ingredient_id": {ids[0], ids[1]},
		"amount":        {"500", "1"},
		"unit":          {"Gramm", "Prise"},
	}, alice)
	require.Equal(t, http.StatusFound, w.Code)
	location := w.Header().Get("Location")

	// the JSON API needs no session
	w = app.get("/api/recipes/" + strings.TrimPrefix(location, "/recipe/"))
	require.Equal(t, http.StatusOK, w.Code)

	var got types.RecipeDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Pizza", got.Title)
	assert.Equal(t, "Teig ausrollen.", got.Instructions)
	assert.Equal(t, "alice", got.Author)
	assert.Equal(t, []types.IngredientLine{
		{Name: "Mehl", Amount: 500, Unit: "Gramm"},
		{Name: "Salz", Amount: 1, Unit: "Prise"},
	}, got.Ingredients)
}
