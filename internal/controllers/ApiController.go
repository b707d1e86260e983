package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"

	"cardmirror/internal/decklist"
	"cardmirror/internal/models"
	"cardmirror/internal/providers"
	"cardmirror/internal/scryfall"
	"cardmirror/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger providers.Logger
	cards  services.CardServiceInterface
	cache  services.CardCacheServiceInterface
	resp   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, cards services.CardServiceInterface, cache services.CardCacheServiceInterface, resp providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger: logger,
		cards:  cards,
		cache:  cache,
		resp:   resp,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

// writeFetchErr maps a fetch failure to the HTTP surface: upstream trouble
// is a gateway problem, not ours.
func (ac *ApiController) writeFetchErr(w http.ResponseWriter, err error) {
	var fe *scryfall.FetchError
	if errors.As(err, &fe) {
		ac.logger.Errorf(providers.TypeGet, "Upstream returned %d", fe.Status)
	} else {
		ac.logger.Errorf(providers.TypeGet, "Upstream request failed: %s", err)
	}
	http.Error(w, "Bad Gateway", http.StatusBadGateway)
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.resp.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		ac.writeFetchErr(w, err)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.resp.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// GetCard looks a card up by name. Query params: name (required),
// fuzzy=1 for nearest-name matching, refresh=1 to bypass the cache.
func (ac *ApiController) GetCard(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "missing name parameter", http.StatusBadRequest)
		return
	}
	fuzzy := r.URL.Query().Get("fuzzy") == "1"
	refresh := r.URL.Query().Get("refresh") == "1"

	var card *models.Card
	var err error
	if fuzzy {
		card, err = ac.cards.FetchFuzzy(r.Context(), name, refresh)
	} else {
		card, err = ac.cards.FetchExact(r.Context(), name, refresh)
	}
	if err != nil {
		ac.writeFetchErr(w, err)
		return
	}
	if card == nil {
		http.Error(w, "card not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// Search proxies the paginated upstream search. Responses are held briefly
// in the response cache; the card-data cache is never involved.
func (ac *ApiController) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "missing q parameter", http.StatusBadRequest)
		return
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	ac.serveFromCacheOrCompute(w, "search:"+strconv.Itoa(page)+":"+query, func() (any, error) {
		return ac.cards.Search(r.Context(), query, page)
	})
}

func (ac *ApiController) Autocomplete(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	ac.serveFromCacheOrCompute(w, "ac:"+query, func() (any, error) {
		return ac.cards.Autocomplete(r.Context(), query), nil
	})
}

type importResponse struct {
	Entries []services.EnrichedEntry `json:"entries"`
}

// Import parses a raw deck list. Query params: format=csv|arena|text,
// enrich=1 to resolve entries through the fetch client. Unenriched rows
// keep placeholder metadata and are tagged enriched=false.
func (ac *ApiController) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var parsed []models.DeckCardEntry
	switch r.URL.Query().Get("format") {
	case "csv":
		for _, e := range decklist.ParseCSV(string(body)) {
			parsed = append(parsed, decklist.PlaceholderEntry(e))
		}
	case "arena":
		for _, e := range decklist.ParseArena(string(body)) {
			parsed = append(parsed, decklist.PlaceholderEntry(e))
		}
	case "text":
		parsed = decklist.ParseFreeText(string(body))
	default:
		http.Error(w, "unknown format", http.StatusBadRequest)
		return
	}

	var entries []services.EnrichedEntry
	if r.URL.Query().Get("enrich") == "1" {
		entries = ac.cards.EnrichEntries(r.Context(), parsed)
	} else {
		entries = make([]services.EnrichedEntry, 0, len(parsed))
		for _, e := range parsed {
			entries = append(entries, services.EnrichedEntry{DeckCardEntry: e, Enriched: false})
		}
	}
	writeJSON(w, http.StatusOK, importResponse{Entries: entries})
}

// Export serializes a deck posted as JSON into the requested dialect.
func (ac *ApiController) Export(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var deck models.Deck
	if err := json.NewDecoder(r.Body).Decode(&deck); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var out string
	switch r.URL.Query().Get("format") {
	case "csv":
		out = decklist.ToCSV(&deck)
	case "text":
		out = decklist.ToPlainText(&deck)
	case "arena":
		out = decklist.ToArena(&deck)
	default:
		http.Error(w, "unknown format", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(out))
}

// Invalidate drops one name from both cache tracks, or clears both tracks
// when no name is given.
func (ac *ApiController) Invalidate(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		ac.cache.InvalidateAll()
		ac.logger.Infof(providers.TypePost, "Cache cleared")
	} else {
		ac.cache.Invalidate(name)
		ac.logger.Infof(providers.TypePost, "Cache invalidated for %q", name)
	}
	w.WriteHeader(http.StatusNoContent)
}
