package decklist

import (
	"fmt"
	"strings"

	"cardmirror/internal/models"
)

// csvEscape wraps a field in double quotes, doubling any embedded quotes,
// per RFC4180 so the output stays importable by spreadsheet tools.
func csvEscape(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// ToCSV serializes a deck as Quantity,Name,Type,Section rows, mainboard
// first, then sideboard.
func ToCSV(d *models.Deck) string {
	var b strings.Builder
	b.WriteString("Quantity,Name,Type,Section\n")
	writeCSVRows(&b, d.Main, "Mainboard")
	writeCSVRows(&b, d.Side, "Sideboard")
	return b.String()
}

func writeCSVRows(b *strings.Builder, entries []models.DeckCardEntry, section string) {
	for _, e := range entries {
		fmt.Fprintf(b, "%d,%s,%s,%s\n", e.Quantity, csvEscape(e.Name), csvEscape(e.TypeLine), section)
	}
}

// ToPlainText serializes a deck as a readable "qty name" list with
// Mainboard and Sideboard sections.
func ToPlainText(d *models.Deck) string {
	var b strings.Builder
	b.WriteString(d.Name)
	b.WriteString("\n\nMainboard:\n")
	for _, e := range d.Main {
		fmt.Fprintf(&b, "%d %s\n", e.Quantity, e.Name)
	}
	if len(d.Side) > 0 {
		b.WriteString("\nSideboard:\n")
		for _, e := range d.Side {
			fmt.Fprintf(&b, "%d %s\n", e.Quantity, e.Name)
		}
	}
	return b.String()
}

// ToArena serializes a deck in the Arena dialect: a "Deck" header, spells
// first, a blank line, then basic lands, and a trailing "Sideboard" block
// when one exists. Set code and collector number are sourced from the live
// card and omitted when absent.
//
// When a card carries neither set code nor collector number the line keeps
// a trailing space after the name. Existing consumers of the format expect
// that byte shape, so it is preserved deliberately.
func ToArena(d *models.Deck) string {
	var b strings.Builder
	b.WriteString("Deck\n")

	lands := make([]models.DeckCardEntry, 0)
	spells := make([]models.DeckCardEntry, 0, len(d.Main))
	for _, e := range d.Main {
		if strings.Contains(strings.ToLower(e.TypeLine), "basic land") {
			lands = append(lands, e)
		} else {
			spells = append(spells, e)
		}
	}

	for _, e := range spells {
		writeArenaLine(&b, e)
	}
	b.WriteString("\n")
	for _, e := range lands {
		writeArenaLine(&b, e)
	}

	if len(d.Side) > 0 {
		b.WriteString("\nSideboard\n")
		for _, e := range d.Side {
			writeArenaLine(&b, e)
		}
	}
	return b.String()
}

func writeArenaLine(b *strings.Builder, e models.DeckCardEntry) {
	suffix := ""
	if e.SetCode != "" {
		suffix = "(" + strings.ToUpper(e.SetCode) + ")"
	}
	if e.CollectorNumber != "" {
		if suffix != "" {
			suffix += " "
		}
		suffix += e.CollectorNumber
	}
	fmt.Fprintf(b, "%d %s %s\n", e.Quantity, e.Name, suffix)
}
