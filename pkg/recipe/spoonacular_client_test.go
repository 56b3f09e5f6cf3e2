package recipe

import (
	"EcoPanier/domain"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpoonacular_SearchByIngredients(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/findByIngredients", r.URL.Path)
		assert.Equal(t, "milk,chicken", r.URL.Query().Get("ingredients"))
		assert.Equal(t, "3", r.URL.Query().Get("number"))
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))
		_, _ = w.Write([]byte(`[
			{"id": 101, "title": "Chicken Alfredo", "image": "a.jpg",
			 "usedIngredients": [{"name": "milk"}, {"name": "chicken"}],
			 "missedIngredients": [{"name": "pasta"}]}
		]`))
	}))
	defer srv.Close()

	client := NewSpoonacularClient(srv.URL, "secret", 0, srv.Client())
	got, err := client.SearchByIngredients(context.Background(), []string{"milk", "chicken"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 101, got[0].ID)
	assert.Equal(t, []string{"milk", "chicken"}, got[0].UsedIngredients)
	assert.Equal(t, []string{"pasta"}, got[0].MissedIngredients)
}

func TestSpoonacular_GetRecipeByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/101/information", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"id": 101, "title": "Chicken Alfredo", "image": "a.jpg",
			"readyInMinutes": 45, "servings": 4,
			"instructions": "Boil pasta.\nCook chicken.\n\n",
			"summary": "A <b>creamy</b> classic.",
			"extendedIngredients": [{"name": "milk", "original": "1 cup milk"}, {"name": "pasta"}]
		}`))
	}))
	defer srv.Close()

	client := NewSpoonacularClient(srv.URL, "secret", 3, srv.Client())
	got, err := client.GetRecipeByID(context.Background(), 101)
	require.NoError(t, err)
	assert.Equal(t, "Chicken Alfredo", got.Title)
	assert.Equal(t, 45, got.ReadyInMinutes)
	assert.Equal(t, "A creamy classic.", got.Summary)
	assert.Equal(t, []string{"1 cup milk", "pasta"}, got.Ingredients)
}

func TestSpoonacular_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer srv.Close()

	_, err := NewSpoonacularClient(srv.URL, "secret", 3, srv.Client()).SearchByIngredients(context.Background(), []string{"milk"})
	assert.ErrorIs(t, err, domain.ErrExternalService)

	_, err = NewSpoonacularClient(srv.URL, "", 3, srv.Client()).GetRecipeByID(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrExternalService)
}

func TestSplitInstructions(t *testing.T) {
	assert.Equal(t, []string{"Boil pasta.", "Cook chicken."}, SplitInstructions("  Boil pasta.\n\n Cook chicken. \n"))
	assert.Equal(t, []string{"Preheat oven.", "Bake 20 min."}, SplitInstructions("<ol><li>Preheat oven.</li><li>Bake 20 min.</li></ol>"))
	assert.Empty(t, SplitInstructions(""))
}
