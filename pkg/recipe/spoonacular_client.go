package recipe

import (
	"EcoPanier/domain"
	"EcoPanier/internal/metrics"
	"EcoPanier/internal/utils"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	DefaultSpoonacularURL   = "https://api.spoonacular.com"
	DefaultSearchLimit      = 3
	spoonacularAPIKeyHeader = "x-api-key"
)

var (
	errSpoonacularKeyMissing = errors.New("SPOONACULAR_API_KEY not set")

	htmlTagPattern   = regexp.MustCompile(`<[^>]*>`)
	htmlBreakPattern = regexp.MustCompile(`(?i)</li>|<br\s*/?>|</p>`)
)

type (
	// Searcher finds recipes for a set of ingredients and fetches their details.
	Searcher interface {
		SearchByIngredients(ctx context.Context, ingredients []string) ([]domain.RecipeCandidate, error)
		GetRecipeByID(ctx context.Context, id int) (domain.RecipeDetails, error)
	}

	spoonacularClient struct {
		baseURL    string
		apiKey     string
		limit      int
		httpClient *http.Client
	}

	spoonacularIngredient struct {
		Name     string `json:"name"`
		Original string `json:"original"`
	}

	spoonacularCandidate struct {
		ID                int                     `json:"id"`
		Title             string                  `json:"title"`
		Image             string                  `json:"image"`
		UsedIngredients   []spoonacularIngredient `json:"usedIngredients"`
		MissedIngredients []spoonacularIngredient `json:"missedIngredients"`
	}

	spoonacularInformation struct {
		ID                  int                     `json:"id"`
		Title               string                  `json:"title"`
		Image               string                  `json:"image"`
		ReadyInMinutes      int                     `json:"readyInMinutes"`
		Servings            int                     `json:"servings"`
		Instructions        string                  `json:"instructions"`
		Summary             string                  `json:"summary"`
		SourceURL           string                  `json:"sourceUrl"`
		ExtendedIngredients []spoonacularIngredient `json:"extendedIngredients"`
	}
)

func NewSpoonacularClient(baseURL, apiKey string, limit int, httpClient *http.Client) Searcher {
	if baseURL == "" {
		baseURL = DefaultSpoonacularURL
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &spoonacularClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		limit:      limit,
		httpClient: httpClient,
	}
}

func NewSpoonacularClientFromConfig() Searcher {
	return NewSpoonacularClient(
		utils.GetConfig("SPOONACULAR_BASE_URL"),
		utils.GetConfig("SPOONACULAR_API_KEY"),
		utils.GetConfigInt("SPOONACULAR_SEARCH_LIMIT", DefaultSearchLimit),
		nil,
	)
}

func (c *spoonacularClient) get(ctx context.Context, path string, query url.Values, out any) (err error) {
	defer func() {
		metrics.ObserveExternal(metrics.ServiceSpoonacular, err)
		if err != nil {
			err = domain.ExternalError(metrics.ServiceSpoonacular, err)
		}
	}()

	if c.apiKey == "" {
		return errSpoonacularKeyMissing
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set(spoonacularAPIKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("spoonacular API error: %s - %s", resp.Status, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *spoonacularClient) SearchByIngredients(ctx context.Context, ingredients []string) ([]domain.RecipeCandidate, error) {
	query := url.Values{}
	query.Set("ingredients", strings.Join(ingredients, ","))
	query.Set("number", fmt.Sprint(c.limit))

	var payload []spoonacularCandidate
	if err := c.get(ctx, "/recipes/findByIngredients", query, &payload); err != nil {
		return nil, err
	}

	candidates := make([]domain.RecipeCandidate, 0, len(payload))
	for _, p := range payload {
		candidates = append(candidates, domain.RecipeCandidate{
			ID:                p.ID,
			Title:             p.Title,
			Image:             p.Image,
			UsedIngredients:   ingredientNames(p.UsedIngredients),
			MissedIngredients: ingredientNames(p.MissedIngredients),
		})
	}
	return candidates, nil
}

func (c *spoonacularClient) GetRecipeByID(ctx context.Context, id int) (domain.RecipeDetails, error) {
	var info spoonacularInformation
	if err := c.get(ctx, fmt.Sprintf("/recipes/%d/information", id), nil, &info); err != nil {
		return domain.RecipeDetails{}, err
	}

	ingredients := make([]string, 0, len(info.ExtendedIngredients))
	for _, ing := range info.ExtendedIngredients {
		line := ing.Original
		if line == "" {
			line = ing.Name
		}
		ingredients = append(ingredients, line)
	}

	return domain.RecipeDetails{
		ID:             info.ID,
		Title:          info.Title,
		Image:          info.Image,
		ReadyInMinutes: info.ReadyInMinutes,
		Servings:       info.Servings,
		Instructions:   info.Instructions,
		Ingredients:    ingredients,
		Summary:        StripHTML(info.Summary),
		SourceURL:      info.SourceURL,
	}, nil
}

func ingredientNames(in []spoonacularIngredient) []string {
	out := make([]string, 0, len(in))
	for _, ing := range in {
		out = append(out, ing.Name)
	}
	return out
}

// StripHTML removes tags and trims the result.
func StripHTML(s string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(s, ""))
}

// SplitInstructions turns free-form instructions into trimmed, non-empty
// steps. List items and line breaks end a step.
func SplitInstructions(s string) []string {
	s = htmlBreakPattern.ReplaceAllString(s, "\n")
	s = htmlTagPattern.ReplaceAllString(s, "")

	var steps []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			steps = append(steps, line)
		}
	}
	return steps
}
