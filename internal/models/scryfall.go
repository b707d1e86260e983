package models

// ScryfallCard is the wire shape of a single card object as returned by the
// external API. Only the fields the mirror keeps are decoded.
type ScryfallCard struct {
	ID              string            `json:"id"`
	OracleID        string            `json:"oracle_id"`
	Name            string            `json:"name"`
	ManaCost        string            `json:"mana_cost"`
	Cmc             float64           `json:"cmc"`
	TypeLine        string            `json:"type_line"`
	OracleText      string            `json:"oracle_text"`
	Colors          []string          `json:"colors"`
	ColorIdentity   []string          `json:"color_identity"`
	Power           string            `json:"power"`
	Toughness       string            `json:"toughness"`
	Rarity          string            `json:"rarity"`
	Set             string            `json:"set"`
	SetName         string            `json:"set_name"`
	CollectorNumber string            `json:"collector_number"`
	Legalities      map[string]string `json:"legalities"`
	Prices          map[string]string `json:"prices"`
	ImageUris       struct {
		Small  string `json:"small"`
		Normal string `json:"normal"`
		Large  string `json:"large"`
	} `json:"image_uris"`
	CardFaces []struct {
		ImageUris struct {
			Normal string `json:"normal"`
		} `json:"image_uris"`
	} `json:"card_faces"`
}

// ScryfallList is the paginated search envelope.
type ScryfallList struct {
	TotalCards int            `json:"total_cards"`
	HasMore    bool           `json:"has_more"`
	Data       []ScryfallCard `json:"data"`
}

// ScryfallCatalog is the autocomplete envelope.
type ScryfallCatalog struct {
	Data []string `json:"data"`
}

// ToCard flattens the wire record into the canonical Card snapshot.
func (sc *ScryfallCard) ToCard() Card {
	image := sc.ImageUris.Normal
	if image == "" && len(sc.CardFaces) > 0 {
		// double-faced prints carry images per face
		image = sc.CardFaces[0].ImageUris.Normal
	}
	prices := make(map[string]string)
	for k, v := range sc.Prices {
		if v != "" {
			prices[k] = v
		}
	}
	if len(prices) == 0 {
		prices = nil
	}
	return Card{
		ID:              sc.OracleID,
		Name:            sc.Name,
		ManaCost:        sc.ManaCost,
		Cmc:             sc.Cmc,
		TypeLine:        sc.TypeLine,
		OracleText:      sc.OracleText,
		Colors:          sc.Colors,
		ColorIdentity:   sc.ColorIdentity,
		Power:           sc.Power,
		Toughness:       sc.Toughness,
		Rarity:          sc.Rarity,
		SetCode:         sc.Set,
		SetName:         sc.SetName,
		CollectorNumber: sc.CollectorNumber,
		ImageURI:        image,
		ScryfallID:      sc.ID,
		Legalities:      sc.Legalities,
		Prices:          prices,
	}
}
