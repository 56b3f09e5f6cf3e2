package product

import (
	"EcoPanier/domain"
	"EcoPanier/internal/metrics"
	"EcoPanier/internal/utils"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultOpenFoodFactsURL = "https://world.openfoodfacts.org"
	DefaultProductName      = "Produit"
)

type (
	// Lookup resolves a barcode to product facts.
	Lookup interface {
		LookupBarcode(ctx context.Context, barcode string) (domain.ProductLookupResult, error)
	}

	openFoodFactsClient struct {
		baseURL    string
		httpClient *http.Client
	}

	openFoodFactsResponse struct {
		Status  int `json:"status"`
		Product struct {
			ProductName        string   `json:"product_name"`
			ImageFrontSmallURL string   `json:"image_front_small_url"`
			Quantity           string   `json:"quantity"`
			CategoriesTags     []string `json:"categories_tags"`
		} `json:"product"`
	}
)

func NewOpenFoodFactsClient(baseURL string, httpClient *http.Client) Lookup {
	if baseURL == "" {
		baseURL = DefaultOpenFoodFactsURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &openFoodFactsClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func NewOpenFoodFactsClientFromConfig() Lookup {
	return NewOpenFoodFactsClient(utils.GetConfig("OPENFOODFACTS_BASE_URL"), nil)
}

func (c *openFoodFactsClient) LookupBarcode(ctx context.Context, barcode string) (domain.ProductLookupResult, error) {
	res, err := c.lookup(ctx, barcode)
	metrics.ObserveExternal(metrics.ServiceOpenFoodFacts, err)
	if err != nil {
		return domain.ProductLookupResult{}, domain.ExternalError(metrics.ServiceOpenFoodFacts, err)
	}
	return res, nil
}

func (c *openFoodFactsClient) lookup(ctx context.Context, barcode string) (domain.ProductLookupResult, error) {
	endpoint := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, url.PathEscape(strings.TrimSpace(barcode)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.ProductLookupResult{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.ProductLookupResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ProductLookupResult{Found: false}, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.ProductLookupResult{}, fmt.Errorf("open food facts error: %s - %s", resp.Status, string(body))
	}

	var payload openFoodFactsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.ProductLookupResult{}, err
	}
	if payload.Status != 1 {
		return domain.ProductLookupResult{Found: false}, nil
	}

	name := strings.TrimSpace(payload.Product.ProductName)
	if name == "" {
		name = DefaultProductName
	}

	return domain.ProductLookupResult{
		Found:        true,
		Name:         name,
		Category:     CategoryFromTags(payload.Product.CategoriesTags),
		ImageURL:     payload.Product.ImageFrontSmallURL,
		QuantityText: strings.TrimSpace(payload.Product.Quantity),
	}, nil
}

// CategoryFromTags turns the first Open Food Facts tag ("en:dairy-products")
// into a readable category ("dairy products").
func CategoryFromTags(tags []string) string {
	if len(tags) == 0 {
		return domain.DefaultCategory
	}
	tag := strings.TrimPrefix(tags[0], "fr:")
	tag = strings.TrimPrefix(tag, "en:")
	tag = strings.TrimSpace(strings.ReplaceAll(tag, "-", " "))
	if tag == "" {
		return domain.DefaultCategory
	}
	return tag
}
