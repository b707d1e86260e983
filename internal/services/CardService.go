package services

import (
	"context"

	json "github.com/goccy/go-json"

	"cardmirror/internal/models"
	"cardmirror/internal/providers"
	"cardmirror/internal/scryfall"
)

// EnrichedEntry is the tagged result of an enrichment pass. Enriched is
// false when the external lookup could not resolve the name and the entry
// still carries its placeholder metadata; downstream logic can retry those
// instead of persisting indistinguishable placeholders.
type EnrichedEntry struct {
	models.DeckCardEntry
	Enriched bool `json:"enriched"`
}

type CardServiceInterface interface {
	FetchExact(ctx context.Context, name string, forceRefresh bool) (*models.Card, error)
	FetchFuzzy(ctx context.Context, name string, forceRefresh bool) (*models.Card, error)
	Search(ctx context.Context, query string, page int) (*models.ScryfallList, error)
	Autocomplete(ctx context.Context, query string) []string
	EnrichEntries(ctx context.Context, entries []models.DeckCardEntry) []EnrichedEntry
}

// CardService is the cache-first lookup path. A cache hit returns without
// touching the network or the rate gate; a miss goes through the gated
// client and split-stores the result into both cache tracks, keyed by the
// canonical returned name rather than the input string.
type CardService struct {
	cache  CardCacheServiceInterface
	client scryfall.ClientInterface
	logger providers.Logger
}

func NewCardService(cache CardCacheServiceInterface, client scryfall.ClientInterface, logger providers.Logger) CardServiceInterface {
	return &CardService{
		cache:  cache,
		client: client,
		logger: logger,
	}
}

// cached reassembles a Card from the two tracks. The card track holds the
// non-price snapshot; prices are attached only while the price track entry
// is still live.
func (cs *CardService) cached(name string) *models.Card {
	raw, ok := cs.cache.Get(TrackCard, name)
	if !ok {
		return nil
	}
	var card models.Card
	if err := json.Unmarshal(raw, &card); err != nil {
		cs.logger.Warnf(providers.TypeApp, "Dropping malformed cache entry for %q: %s", name, err)
		cs.cache.Invalidate(name)
		return nil
	}
	if rawPrices, ok := cs.cache.Get(TrackPrice, name); ok {
		var prices map[string]string
		if err := json.Unmarshal(rawPrices, &prices); err == nil {
			card.Prices = prices
		}
	}
	return &card
}

// storeFetched split-stores a freshly fetched card under each given key.
func (cs *CardService) storeFetched(card *models.Card, keys ...string) {
	for _, key := range keys {
		cs.cache.Put(TrackCard, key, card.WithoutPrices())
		if len(card.Prices) > 0 {
			cs.cache.Put(TrackPrice, key, card.Prices)
		}
	}
}

func (cs *CardService) FetchExact(ctx context.Context, name string, forceRefresh bool) (*models.Card, error) {
	if !forceRefresh {
		if card := cs.cached(name); card != nil {
			return card, nil
		}
	}

	wire, err := cs.client.NamedExact(ctx, name)
	if err != nil {
		return nil, err
	}
	if wire == nil {
		return nil, nil
	}

	card := wire.ToCard()
	cs.storeFetched(&card, card.Name)
	return &card, nil
}

func (cs *CardService) FetchFuzzy(ctx context.Context, name string, forceRefresh bool) (*models.Card, error) {
	if !forceRefresh {
		if card := cs.cached(name); card != nil {
			return card, nil
		}
	}

	wire, err := cs.client.NamedFuzzy(ctx, name)
	if err != nil {
		return nil, err
	}
	if wire == nil {
		return nil, nil
	}

	card := wire.ToCard()
	keys := []string{card.Name}
	if NormalizeName(name) != NormalizeName(card.Name) {
		// key the misspelling too, so repeating it becomes a cache hit
		keys = append(keys, name)
	}
	cs.storeFetched(&card, keys...)
	return &card, nil
}

func (cs *CardService) Search(ctx context.Context, query string, page int) (*models.ScryfallList, error) {
	return cs.client.Search(ctx, query, page)
}

// Autocomplete is a best-effort UX affordance: any failure collapses to an
// empty list.
func (cs *CardService) Autocomplete(ctx context.Context, query string) []string {
	names, err := cs.client.Autocomplete(ctx, query)
	if err != nil {
		cs.logger.Debugf(providers.TypeApp, "Autocomplete for %q failed: %s", query, err)
		return []string{}
	}
	if names == nil {
		return []string{}
	}
	return names
}

// EnrichEntries resolves placeholder entries from a free-text import
// through the fuzzy lookup. Entries the API cannot resolve keep their
// placeholder metadata and are tagged Enriched=false.
func (cs *CardService) EnrichEntries(ctx context.Context, entries []models.DeckCardEntry) []EnrichedEntry {
	out := make([]EnrichedEntry, 0, len(entries))
	for _, entry := range entries {
		card, err := cs.FetchFuzzy(ctx, entry.Name, false)
		if err != nil || card == nil {
			if err != nil {
				cs.logger.Warnf(providers.TypeApp, "Enrichment for %q failed: %s", entry.Name, err)
			}
			out = append(out, EnrichedEntry{DeckCardEntry: entry, Enriched: false})
			continue
		}
		out = append(out, EnrichedEntry{
			DeckCardEntry: models.DeckCardEntry{Card: *card, Quantity: entry.Quantity},
			Enriched:      true,
		})
	}
	return out
}
