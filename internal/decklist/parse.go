// Package decklist translates between canonical deck data and the three
// human-authored text dialects: simple CSV, the line-oriented Arena format
// and free-text "quantity name" lists. Parsing is per-line best-effort —
// a line that fails its grammar is dropped, never a document-level error.
package decklist

import (
	"regexp"
	"strconv"
	"strings"

	"cardmirror/internal/models"
)

// Entry is the minimal parsed record: a card name and how many copies.
// Arena set codes and collector numbers are recognized but not retained,
// so an Arena parse followed by an Arena export is not byte-lossless —
// those decorations are re-sourced from the live card data on export.
type Entry struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

var (
	arenaLineRe    = regexp.MustCompile(`^(\d+)\s+(.+?)(?:\s+\(([0-9A-Za-z]+)\)\s+(\S+))?$`)
	freeTextLineRe = regexp.MustCompile(`^(\d+)\s+(.+)$`)
)

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// stripQuotes removes one pair of surrounding double quotes and collapses
// doubled inner quotes.
func stripQuotes(field string) string {
	field = strings.TrimSpace(field)
	if len(field) >= 2 && strings.HasPrefix(field, `"`) && strings.HasSuffix(field, `"`) {
		field = strings.ReplaceAll(field[1:len(field)-1], `""`, `"`)
	}
	return field
}

// ParseCSV reads a simple comma-separated list: one card per line, name
// first, optional quantity second. The first line is treated as a header
// and skipped when its first field mentions "card" or "name". A quantity
// field that is not an integer defaults to 1; a line that still yields a
// quantity of zero or less is dropped.
func ParseCSV(text string) []Entry {
	lines := splitLines(text)
	entries := make([]Entry, 0, len(lines))

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, ",")
		first := strings.ToLower(stripQuotes(fields[0]))
		if i == 0 && (strings.Contains(first, "card") || strings.Contains(first, "name")) {
			continue
		}

		name := stripQuotes(fields[0])
		if name == "" {
			continue
		}
		qty := 1
		if len(fields) >= 2 {
			if n, err := strconv.Atoi(stripQuotes(fields[1])); err == nil {
				qty = n
			}
		}
		if qty <= 0 {
			continue
		}
		entries = append(entries, Entry{Name: name, Quantity: qty})
	}
	return entries
}

// ParseArena reads the Arena dialect: "<qty> <name> [(SET) <collector>]".
// Comment lines start with "//". Section headers, blanks and anything else
// that does not match the grammar are silently skipped. The optional set
// and collector suffix is recognized and discarded.
func ParseArena(text string) []Entry {
	lines := splitLines(text)
	entries := make([]Entry, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		m := arenaLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		qty, err := strconv.Atoi(m[1])
		if err != nil || qty <= 0 {
			continue
		}
		entries = append(entries, Entry{Name: m[2], Quantity: qty})
	}
	return entries
}

// ParseFreeText reads clipboard-style "<qty> <name>" lines into entries
// with placeholder metadata. Non-matching lines are skipped. The caller is
// expected to run an enrichment pass through the fetch client to replace
// the placeholders with full card data.
func ParseFreeText(text string) []models.DeckCardEntry {
	entries := parseFreeText(text)
	out := make([]models.DeckCardEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, PlaceholderEntry(e))
	}
	return out
}

// PlaceholderEntry wraps a bare (name, quantity) pair in the placeholder
// card shape used before enrichment.
func PlaceholderEntry(e Entry) models.DeckCardEntry {
	return models.DeckCardEntry{
		Card: models.Card{
			Name:     e.Name,
			TypeLine: "Unknown",
			ManaCost: "",
			Colors:   []string{},
		},
		Quantity: e.Quantity,
	}
}

func parseFreeText(text string) []Entry {
	lines := splitLines(text)
	entries := make([]Entry, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		m := freeTextLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		qty, err := strconv.Atoi(m[1])
		if err != nil || qty <= 0 {
			continue
		}
		entries = append(entries, Entry{Name: m[2], Quantity: qty})
	}
	return entries
}
