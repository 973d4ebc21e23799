package model

// Spotify Web API response types, based on
// https://developer.spotify.com/documentation/web-api/reference/

// SpotifyImage represents an image resource.
type SpotifyImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// SpotifyProfile represents the authenticated user's profile.
type SpotifyProfile struct {
	ID          string         `json:"id"`
	DisplayName string         `json:"display_name"`
	Country     string         `json:"country"`
	Product     string         `json:"product"`
	Images      []SpotifyImage `json:"images"`
}

// SpotifyArtist represents a Spotify artist with its genre tags.
type SpotifyArtist struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Genres []string       `json:"genres"`
	Images []SpotifyImage `json:"images"`
}

// SpotifyAlbum represents the album a track belongs to.
type SpotifyAlbum struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Images []SpotifyImage `json:"images"`
}

// TrackArtist is the simplified artist object embedded in track responses;
// the top-tracks endpoint omits genres and images there.
type TrackArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SpotifyTrack represents a Spotify track.
type SpotifyTrack struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Artists []TrackArtist `json:"artists"`
	Album   SpotifyAlbum  `json:"album"`
}

// PrimaryArtistName returns the name of the track's first credited artist.
func (t SpotifyTrack) PrimaryArtistName() string {
	if len(t.Artists) == 0 {
		return ""
	}
	return t.Artists[0].Name
}

// SpotifyTopArtists is the paginated /me/top/artists response.
type SpotifyTopArtists struct {
	Items []SpotifyArtist `json:"items"`
	Total int             `json:"total"`
}

// SpotifyTopTracks is the paginated /me/top/tracks response.
type SpotifyTopTracks struct {
	Items []SpotifyTrack `json:"items"`
	Total int            `json:"total"`
}

// ListeningData bundles the three Spotify reads the roast pipeline runs on.
// It is assembled once per request and never mutated afterwards.
type ListeningData struct {
	Profile    SpotifyProfile
	TopArtists []SpotifyArtist
	TopTracks  []SpotifyTrack
	TopGenre   string
}
