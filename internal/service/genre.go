package service

import "github.com/roastify/api/internal/model"

// FallbackGenre is used when no artist carries any genre tag.
const FallbackGenre = "Pop"

// TopGenre returns the most frequent genre tag across the given artists.
// Ties are broken toward the lexicographically greatest tag so the result is
// deterministic for a fixed input. Returns FallbackGenre when no tags exist.
func TopGenre(artists []model.SpotifyArtist) string {
	counts := make(map[string]int)
	for _, artist := range artists {
		for _, genre := range artist.Genres {
			if genre == "" {
				continue
			}
			counts[genre]++
		}
	}

	top := ""
	best := 0
	for genre, count := range counts {
		if count > best || (count == best && genre > top) {
			top = genre
			best = count
		}
	}

	if top == "" {
		return FallbackGenre
	}
	return top
}
