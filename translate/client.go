// Package translate proxies text to the Google Translate API.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/hellenika/hellenika/config"
)

const defaultBaseURL = "https://translation.googleapis.com/language/translate/v2"

// Language codes used by the API surface.
const (
	LanguageGreek   = "el"
	LanguageEnglish = "en"
)

// ErrMissingAPIKey is returned when no provider credential is configured.
var ErrMissingAPIKey = errors.New("translation API key is not configured")

// Client represents a Google Translate API client. Successful translations
// are cached so repeated lookups of the same phrase skip the provider.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	cache   *gocache.Cache
}

// New creates a new translation client.
func New(cfg *config.TranslationConfig) *Client {
	ttl := time.Duration(cfg.CacheTTLMinutes) * time.Minute
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: gocache.New(ttl, 2*ttl),
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// Translate translates text into the target language.
func (c *Client) Translate(ctx context.Context, text, target string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	cacheKey := target + "\x00" + text
	if cached, found := c.cache.Get(cacheKey); found {
		return cached.(string), nil
	}

	jsonBody, err := json.Marshal(translateRequest{
		Q:      text,
		Target: target,
		Format: "text",
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal translation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"?key="+c.apiKey, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create translation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("translation provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var result translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode translation response: %w", err)
	}
	if len(result.Data.Translations) == 0 {
		return "", errors.New("translation provider returned no translations")
	}

	translated := result.Data.Translations[0].TranslatedText
	c.cache.SetDefault(cacheKey, translated)
	return translated, nil
}

// ToGreek translates text to Greek.
func (c *Client) ToGreek(ctx context.Context, text string) (string, error) {
	return c.Translate(ctx, text, LanguageGreek)
}

// ToEnglish translates text to English.
func (c *Client) ToEnglish(ctx context.Context, text string) (string, error) {
	return c.Translate(ctx, text, LanguageEnglish)
}
