package scryfall

import "fmt"

// FetchError is a non-2xx, non-404 response from the external API. A 404
// is not an error anywhere in this package: it surfaces as an absent card
// or an empty result set.
type FetchError struct {
	Status int
	URL    string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("card api returned status %d for %s", e.Status, e.URL)
}
