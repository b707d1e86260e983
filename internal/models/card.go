package models

import "time"

// Card is an immutable snapshot of one printed card as of fetch time.
// Power and Toughness stay strings: the upstream data carries non-numeric
// values such as "*" or "1+*".
type Card struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	ManaCost        string            `json:"mana_cost,omitempty"`
	Cmc             float64           `json:"cmc"`
	TypeLine        string            `json:"type_line"`
	OracleText      string            `json:"oracle_text,omitempty"`
	Colors          []string          `json:"colors,omitempty"`
	ColorIdentity   []string          `json:"color_identity,omitempty"`
	Power           string            `json:"power,omitempty"`
	Toughness       string            `json:"toughness,omitempty"`
	Rarity          string            `json:"rarity"`
	SetCode         string            `json:"set"`
	SetName         string            `json:"set_name"`
	CollectorNumber string            `json:"collector_number"`
	ImageURI        string            `json:"image_uri,omitempty"`
	ScryfallID      string            `json:"scryfall_id"`
	Legalities      map[string]string `json:"legalities,omitempty"`
	Prices          map[string]string `json:"prices,omitempty"`
}

// Copy returns an independent deep copy of the card.
func (c *Card) Copy() Card {
	out := *c
	out.Colors = append([]string(nil), c.Colors...)
	out.ColorIdentity = append([]string(nil), c.ColorIdentity...)
	if c.Legalities != nil {
		out.Legalities = make(map[string]string, len(c.Legalities))
		for k, v := range c.Legalities {
			out.Legalities[k] = v
		}
	}
	if c.Prices != nil {
		out.Prices = make(map[string]string, len(c.Prices))
		for k, v := range c.Prices {
			out.Prices[k] = v
		}
	}
	return out
}

// WithoutPrices returns a copy of the card with the volatile price map
// stripped; the price track carries prices under its own TTL.
func (c *Card) WithoutPrices() Card {
	out := c.Copy()
	out.Prices = nil
	return out
}

// DeckCardEntry is a card plus how many copies a list holds.
// Quantity is the only field mutated after creation.
type DeckCardEntry struct {
	Card
	Quantity int `json:"quantity"`
}

// Collection is a flat quantified card list.
type Collection struct {
	Cards        []DeckCardEntry `json:"cards"`
	LastModified time.Time       `json:"last_modified"`
}

// Add merges by card name, incrementing quantity for a name already present.
func (c *Collection) Add(card Card, qty int) {
	if qty <= 0 {
		return
	}
	for i := range c.Cards {
		if c.Cards[i].Name == card.Name {
			c.Cards[i].Quantity += qty
			c.LastModified = time.Now()
			return
		}
	}
	c.Cards = append(c.Cards, DeckCardEntry{Card: card, Quantity: qty})
	c.LastModified = time.Now()
}
