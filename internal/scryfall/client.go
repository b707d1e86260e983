package scryfall

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/hashicorp/go-cleanhttp"

	"cardmirror/internal/models"
	"cardmirror/internal/providers"
	"cardmirror/internal/structures"
)

// ClientInterface is the raw external card API: exact/fuzzy named lookup,
// paginated search and autocomplete. Every call passes the Pacer first.
// No call is retried; a network failure surfaces to the caller as-is.
type ClientInterface interface {
	NamedExact(ctx context.Context, name string) (*models.ScryfallCard, error)
	NamedFuzzy(ctx context.Context, name string) (*models.ScryfallCard, error)
	Search(ctx context.Context, query string, page int) (*models.ScryfallList, error)
	Autocomplete(ctx context.Context, query string) ([]string, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	pacer      *Pacer
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
}

func NewClient(conf *structures.Config, pacer *Pacer, logger providers.Logger, metrics providers.MetricsProviderInterface) ClientInterface {
	httpClient := cleanhttp.DefaultPooledClient()
	if conf.Scryfall.Timeout > 0 {
		httpClient.Timeout = conf.Scryfall.Timeout
	}
	return &Client{
		baseURL:    conf.Scryfall.BaseURL,
		httpClient: httpClient,
		pacer:      pacer,
		logger:     logger,
		metrics:    metrics,
	}
}

// get issues one gated request. A 404 yields (nil, nil, 404) so callers can
// map "not found" to their own empty result.
func (c *Client) get(ctx context.Context, endpoint string, path string, query url.Values) ([]byte, int, error) {
	if err := c.pacer.Gate(ctx); err != nil {
		return nil, 0, err
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")

	c.metrics.IncAPICall(endpoint)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("card api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, http.StatusNotFound, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, &FetchError{Status: resp.StatusCode, URL: reqURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

func (c *Client) named(ctx context.Context, endpoint, param, name string) (*models.ScryfallCard, error) {
	query := url.Values{param: {name}}
	body, status, err := c.get(ctx, endpoint, "/cards/named", query)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}

	var card models.ScryfallCard
	if err := json.Unmarshal(body, &card); err != nil {
		return nil, fmt.Errorf("cannot decode card response: %w", err)
	}
	return &card, nil
}

func (c *Client) NamedExact(ctx context.Context, name string) (*models.ScryfallCard, error) {
	return c.named(ctx, "named_exact", "exact", name)
}

func (c *Client) NamedFuzzy(ctx context.Context, name string) (*models.ScryfallCard, error) {
	return c.named(ctx, "named_fuzzy", "fuzzy", name)
}

func (c *Client) Search(ctx context.Context, query string, page int) (*models.ScryfallList, error) {
	params := url.Values{"q": {query}}
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}
	body, status, err := c.get(ctx, "search", "/cards/search", params)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		// upstream reports an empty result set as 404
		return &models.ScryfallList{Data: []models.ScryfallCard{}}, nil
	}

	var list models.ScryfallList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("cannot decode search response: %w", err)
	}
	return &list, nil
}

func (c *Client) Autocomplete(ctx context.Context, query string) ([]string, error) {
	params := url.Values{"q": {query}}
	body, status, err := c.get(ctx, "autocomplete", "/cards/autocomplete", params)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}

	var catalog models.ScryfallCatalog
	if err := json.Unmarshal(body, &catalog); err != nil {
		return nil, fmt.Errorf("cannot decode autocomplete response: %w", err)
	}
	return catalog.Data, nil
}
