package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// translateRequest is the proxy's wire contract.
type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
}

type translateResponse struct {
	Translated string `json:"translated"`
}

// TranslateClient calls the translation proxy. Output cleanup (quote
// stripping, length capping) is the proxy's contract, not the caller's
// concern.
type TranslateClient struct {
	baseURL    string
	httpClient *http.Client
	breaker    *Breaker
}

func NewTranslateClient(baseURL string) *TranslateClient {
	return &TranslateClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		breaker:    NewBreaker(5, 30*time.Second),
	}
}

// Translate returns text translated from sourceLang to targetLang.
func (c *TranslateClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	var translated string
	err := c.breaker.Execute(func() error {
		body, err := json.Marshal(translateRequest{Text: text, SourceLang: sourceLang, TargetLang: targetLang})
		if err != nil {
			return fmt.Errorf("translate: marshal request: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/translate", bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("translate: create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("translate: proxy unreachable: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("translate: proxy returned %d", resp.StatusCode)
		}

		var result translateResponse
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("translate: decode response: %w", err)
		}
		translated = result.Translated
		return nil
	})
	return translated, err
}
