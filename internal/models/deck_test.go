package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeck_AddCardMergesByName(t *testing.T) {
	d := NewDeck("Burn", "modern")
	d.AddCard(Mainboard, Card{Name: "Lightning Bolt"}, 2)
	d.AddCard(Mainboard, Card{Name: "Lightning Bolt"}, 2)

	require.Len(t, d.Main, 1)
	assert.Equal(t, 4, d.Main[0].Quantity)
}

func TestDeck_BoardsAreIndependent(t *testing.T) {
	d := NewDeck("Burn", "modern")
	d.AddCard(Mainboard, Card{Name: "Lightning Bolt"}, 4)
	d.AddCard(Sideboard, Card{Name: "Lightning Bolt"}, 2)

	assert.Len(t, d.Main, 1)
	assert.Len(t, d.Side, 1)
	assert.Equal(t, 4, d.Main[0].Quantity)
	assert.Equal(t, 2, d.Side[0].Quantity)
}

func TestDeck_NonPositiveAddIgnored(t *testing.T) {
	d := NewDeck("Burn", "modern")
	d.AddCard(Mainboard, Card{Name: "Lightning Bolt"}, 0)
	d.AddCard(Mainboard, Card{Name: "Mountain"}, -3)

	assert.Empty(t, d.Main)
}

func TestDeck_SetQuantityZeroRemovesEntry(t *testing.T) {
	d := NewDeck("Burn", "modern")
	d.AddCard(Mainboard, Card{Name: "Lightning Bolt"}, 4)

	d.SetQuantity(Mainboard, "Lightning Bolt", 0)
	assert.Empty(t, d.Main)
}

func TestDeck_SetQuantityUpdates(t *testing.T) {
	d := NewDeck("Burn", "modern")
	d.AddCard(Mainboard, Card{Name: "Lightning Bolt"}, 4)

	d.SetQuantity(Mainboard, "Lightning Bolt", 2)
	require.Len(t, d.Main, 1)
	assert.Equal(t, 2, d.Main[0].Quantity)
}

func TestDeck_Size(t *testing.T) {
	d := NewDeck("Burn", "modern")
	d.AddCard(Mainboard, Card{Name: "Lightning Bolt"}, 4)
	d.AddCard(Mainboard, Card{Name: "Mountain"}, 20)

	assert.Equal(t, 24, d.Size(Mainboard))
	assert.Equal(t, 0, d.Size(Sideboard))
}

func TestDeck_CopyIsIndependent(t *testing.T) {
	d := NewDeck("Burn", "modern")
	d.AddCard(Mainboard, Card{Name: "Lightning Bolt", Colors: []string{"R"}, Prices: map[string]string{"usd": "1.50"}}, 4)

	cp := d.Copy()
	assert.NotEqual(t, d.ID, cp.ID)
	require.Len(t, cp.Main, 1)

	cp.Main[0].Quantity = 1
	cp.Main[0].Colors[0] = "U"
	cp.Main[0].Prices["usd"] = "9.99"

	assert.Equal(t, 4, d.Main[0].Quantity)
	assert.Equal(t, "R", d.Main[0].Colors[0])
	assert.Equal(t, "1.50", d.Main[0].Prices["usd"])
}

func TestCollection_AddMergesByName(t *testing.T) {
	var c Collection
	c.Add(Card{Name: "Lightning Bolt"}, 2)
	c.Add(Card{Name: "Lightning Bolt"}, 1)
	c.Add(Card{Name: "Mountain"}, 8)

	require.Len(t, c.Cards, 2)
	assert.Equal(t, 3, c.Cards[0].Quantity)
	assert.False(t, c.LastModified.IsZero())
}

func TestCard_WithoutPricesStripsOnlyPrices(t *testing.T) {
	card := Card{
		Name:   "Lightning Bolt",
		Prices: map[string]string{"usd": "1.50"},
		Colors: []string{"R"},
	}

	bare := card.WithoutPrices()
	assert.Nil(t, bare.Prices)
	assert.Equal(t, "Lightning Bolt", bare.Name)
	assert.Equal(t, []string{"R"}, bare.Colors)
	assert.Equal(t, "1.50", card.Prices["usd"])
}
