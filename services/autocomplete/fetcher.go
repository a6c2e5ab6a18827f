package autocomplete

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"eventhub/models"
)

// HTTPFetcher calls GET /api/search/suggestions on an eventhub server.
type HTTPFetcher struct {
	BaseURL string
	Limit   int
	Client  *http.Client
}

type suggestionsEnvelope struct {
	Success bool                `json:"success"`
	Data    []models.Suggestion `json:"data"`
	Error   string              `json:"error"`
}

func (f *HTTPFetcher) Fetch(ctx context.Context, query string) ([]models.Suggestion, error) {
	params := url.Values{"q": {query}}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	endpoint := strings.TrimRight(f.BaseURL, "/") + "/api/search/suggestions?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build suggestions request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env suggestionsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode suggestions (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode/100 != 2 || !env.Success {
		return nil, fmt.Errorf("suggestions request failed with status %d: %s", resp.StatusCode, env.Error)
	}
	if env.Data == nil {
		env.Data = []models.Suggestion{}
	}
	return env.Data, nil
}
