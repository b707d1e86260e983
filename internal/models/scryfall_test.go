package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScryfallCard_ToCard(t *testing.T) {
	sc := ScryfallCard{
		ID:              "sc1",
		OracleID:        "o1",
		Name:            "Lightning Bolt",
		ManaCost:        "{R}",
		Cmc:             1,
		TypeLine:        "Instant",
		OracleText:      "Lightning Bolt deals 3 damage to any target.",
		Colors:          []string{"R"},
		Rarity:          "common",
		Set:             "m21",
		SetName:         "Core Set 2021",
		CollectorNumber: "159",
		Prices:          map[string]string{"usd": "1.50", "tix": ""},
	}
	sc.ImageUris.Normal = "https://img.example/bolt.jpg"

	card := sc.ToCard()
	assert.Equal(t, "o1", card.ID)
	assert.Equal(t, "sc1", card.ScryfallID)
	assert.Equal(t, "m21", card.SetCode)
	assert.Equal(t, "https://img.example/bolt.jpg", card.ImageURI)
	// empty price strings are dropped
	assert.Equal(t, map[string]string{"usd": "1.50"}, card.Prices)
}

func TestScryfallCard_ToCardDoubleFacedImage(t *testing.T) {
	var sc ScryfallCard
	sc.Name = "Delver of Secrets"
	sc.CardFaces = append(sc.CardFaces, struct {
		ImageUris struct {
			Normal string `json:"normal"`
		} `json:"image_uris"`
	}{})
	sc.CardFaces[0].ImageUris.Normal = "https://img.example/front.jpg"

	card := sc.ToCard()
	assert.Equal(t, "https://img.example/front.jpg", card.ImageURI)
}

func TestScryfallCard_ToCardNoPrices(t *testing.T) {
	sc := ScryfallCard{Name: "Lightning Bolt"}
	card := sc.ToCard()
	assert.Nil(t, card.Prices)
}
