package recipe

import (
	"EcoPanier/domain"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const generatedJSON = `{"name":"Gratin de pommes de terre","description":"Fondant et doré.","prepTime":45,"difficulty":"Facile","steps":["Éplucher","Cuire"],"ingredientsUsed":["Pommes de terre","Lait"]}`

func testItems() []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: "1", Name: "Lait", Quantity: 1.5, Unit: "L", ExpiryDate: time.Now()},
		{ID: "2", Name: "Pommes de terre", Quantity: 6, Unit: "unité", ExpiryDate: time.Now()},
	}
}

func TestBuildPrompt_ListsItemsInOrder(t *testing.T) {
	prompt := buildPrompt(testItems())
	assert.Contains(t, prompt, "Lait (1.5 L), Pommes de terre (6 unité)")
	assert.Contains(t, prompt, "ingredientsUsed")
}

func TestParseGeneratedRecipe(t *testing.T) {
	got, err := parseGeneratedRecipe("Voici la recette:\n```json\n" + generatedJSON + "\n```")
	require.NoError(t, err)
	assert.Equal(t, "Gratin de pommes de terre", got.Name)
	assert.Equal(t, 45, got.PrepTime)
	assert.Equal(t, []string{"Pommes de terre", "Lait"}, got.IngredientsUsed)

	_, err = parseGeneratedRecipe("désolé, je ne peux pas")
	assert.ErrorIs(t, err, domain.ErrAIResponseInvalid)

	_, err = parseGeneratedRecipe(`{"description": "no name"}`)
	assert.ErrorIs(t, err, domain.ErrAIResponseInvalid)
}

func TestGeminiGenerator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "key", r.URL.Query().Get("key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "contents")

		resp := map[string]any{
			"candidates": []any{
				map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": generatedJSON}}}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	got, err := NewGeminiGenerator(srv.URL, "key", "gemini-test", srv.Client()).GenerateRecipe(context.Background(), testItems())
	require.NoError(t, err)
	assert.Equal(t, "Facile", got.Difficulty)
}

func TestGeminiGenerator_Failures(t *testing.T) {
	_, err := NewGeminiGenerator("", "", "", nil).GenerateRecipe(context.Background(), testItems())
	assert.ErrorIs(t, err, domain.ErrAIKeyMissing)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err = NewGeminiGenerator(srv.URL, "key", "m", srv.Client()).GenerateRecipe(context.Background(), testItems())
	assert.ErrorIs(t, err, domain.ErrExternalService)
}

func TestOpenAIGenerator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "gpt-test",
			"choices": []any{
				map[string]any{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]any{"role": "assistant", "content": generatedJSON},
				},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	got, err := NewOpenAIGenerator("key", srv.URL+"/v1", "gpt-test").GenerateRecipe(context.Background(), testItems())
	require.NoError(t, err)
	assert.Equal(t, "Gratin de pommes de terre", got.Name)

	_, err = NewOpenAIGenerator("", srv.URL+"/v1", "").GenerateRecipe(context.Background(), testItems())
	assert.ErrorIs(t, err, domain.ErrAIKeyMissing)
}
