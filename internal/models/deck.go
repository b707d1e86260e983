package models

import (
	"time"

	"github.com/google/uuid"
)

// Board selects one of the two entry lists of a deck.
type Board int

const (
	Mainboard Board = iota
	Sideboard
)

// Deck owns its two entry lists by value. Names are unique within a list:
// adding an existing name increments its quantity instead of appending.
type Deck struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Format       string          `json:"format,omitempty"`
	Main         []DeckCardEntry `json:"mainboard"`
	Side         []DeckCardEntry `json:"sideboard"`
	LastModified time.Time       `json:"last_modified"`
}

func NewDeck(name, format string) *Deck {
	return &Deck{
		ID:           uuid.NewString(),
		Name:         name,
		Format:       format,
		LastModified: time.Now(),
	}
}

func (d *Deck) board(b Board) *[]DeckCardEntry {
	if b == Sideboard {
		return &d.Side
	}
	return &d.Main
}

// AddCard adds qty copies of card to the given board, merging with an
// existing entry of the same name.
func (d *Deck) AddCard(b Board, card Card, qty int) {
	if qty <= 0 {
		return
	}
	list := d.board(b)
	for i := range *list {
		if (*list)[i].Name == card.Name {
			(*list)[i].Quantity += qty
			d.LastModified = time.Now()
			return
		}
	}
	*list = append(*list, DeckCardEntry{Card: card, Quantity: qty})
	d.LastModified = time.Now()
}

// SetQuantity sets the quantity of the named entry. A quantity of zero or
// less removes the entry; an entry is never kept at quantity zero.
func (d *Deck) SetQuantity(b Board, name string, qty int) {
	list := d.board(b)
	for i := range *list {
		if (*list)[i].Name != name {
			continue
		}
		if qty <= 0 {
			*list = append((*list)[:i], (*list)[i+1:]...)
		} else {
			(*list)[i].Quantity = qty
		}
		d.LastModified = time.Now()
		return
	}
}

// RemoveCard deletes the named entry from the given board.
func (d *Deck) RemoveCard(b Board, name string) {
	d.SetQuantity(b, name, 0)
}

// Size returns the number of physical cards on the given board.
func (d *Deck) Size(b Board) int {
	total := 0
	for _, e := range *d.board(b) {
		total += e.Quantity
	}
	return total
}

// Copy returns an independent deck with a fresh id. Entry lists are copied
// by value, never shared.
func (d *Deck) Copy() *Deck {
	out := &Deck{
		ID:           uuid.NewString(),
		Name:         d.Name,
		Format:       d.Format,
		LastModified: time.Now(),
	}
	out.Main = copyEntries(d.Main)
	out.Side = copyEntries(d.Side)
	return out
}

func copyEntries(in []DeckCardEntry) []DeckCardEntry {
	if in == nil {
		return nil
	}
	out := make([]DeckCardEntry, len(in))
	for i := range in {
		out[i] = DeckCardEntry{Card: in[i].Card.Copy(), Quantity: in[i].Quantity}
	}
	return out
}
