package service

import (
	"testing"

	"github.com/roastify/api/internal/model"
)

func artistWithGenres(name string, genres ...string) model.SpotifyArtist {
	return model.SpotifyArtist{Name: name, Genres: genres}
}

func TestTopGenre_Plurality(t *testing.T) {
	artists := []model.SpotifyArtist{
		artistWithGenres("X", "pop", "pop", "rock"),
	}

	if got := TopGenre(artists); got != "pop" {
		t.Errorf("expected pop, got %q", got)
	}
}

func TestTopGenre_AcrossArtists(t *testing.T) {
	artists := []model.SpotifyArtist{
		artistWithGenres("A", "indie rock", "shoegaze"),
		artistWithGenres("B", "indie rock", "dream pop"),
		artistWithGenres("C", "indie rock"),
	}

	if got := TopGenre(artists); got != "indie rock" {
		t.Errorf("expected indie rock, got %q", got)
	}
}

func TestTopGenre_Deterministic(t *testing.T) {
	artists := []model.SpotifyArtist{
		artistWithGenres("A", "techno", "house"),
		artistWithGenres("B", "house", "techno"),
	}

	first := TopGenre(artists)
	for i := 0; i < 50; i++ {
		if got := TopGenre(artists); got != first {
			t.Fatalf("run %d: got %q, want %q", i, got, first)
		}
	}

	// Ties resolve toward the lexicographically greatest tag.
	if first != "techno" {
		t.Errorf("tie-break: expected techno, got %q", first)
	}
}

func TestTopGenre_Fallback(t *testing.T) {
	if got := TopGenre(nil); got != FallbackGenre {
		t.Errorf("empty list: expected %q, got %q", FallbackGenre, got)
	}

	artists := []model.SpotifyArtist{
		artistWithGenres("A"),
		artistWithGenres("B"),
	}
	if got := TopGenre(artists); got != FallbackGenre {
		t.Errorf("genre-less artists: expected %q, got %q", FallbackGenre, got)
	}
}

func TestTopGenre_IgnoresEmptyTags(t *testing.T) {
	artists := []model.SpotifyArtist{
		artistWithGenres("A", "", "", ""),
	}
	if got := TopGenre(artists); got != FallbackGenre {
		t.Errorf("empty tags only: expected %q, got %q", FallbackGenre, got)
	}

	artists = []model.SpotifyArtist{
		artistWithGenres("A", "", "", "rock"),
	}
	if got := TopGenre(artists); got != "rock" {
		t.Errorf("expected rock to beat empty tags, got %q", got)
	}
}
