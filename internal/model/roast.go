package model

// RoastRequest represents the request body for roast generation.
type RoastRequest struct {
	Code string `json:"code" validate:"required,min=1"`
}

// FinalVerdict is the closing judgement of a roast. Score is a pointer so a
// missing field is distinguishable from a legitimate zero.
type FinalVerdict struct {
	Score   *int   `json:"score" validate:"required,gte=0,lte=100"`
	Title   string `json:"title" validate:"required"`
	Summary string `json:"summary" validate:"required"`
}

// RoastContent is the structured output the language model must produce.
// Every field is required; a response missing any of them is malformed.
type RoastContent struct {
	Intro        string       `json:"intro" validate:"required"`
	GenreRoast   string       `json:"genre_roast" validate:"required"`
	ArtistRoast  string       `json:"artist_roast" validate:"required"`
	TrackRoast   string       `json:"track_roast" validate:"required"`
	StatsRoast   string       `json:"stats_roast"`
	FinalVerdict FinalVerdict `json:"final_verdict" validate:"required"`
}

// RoastData is the listening-history subset returned alongside the roast so
// the slide show can render artwork and names without refetching.
type RoastData struct {
	User       SpotifyProfile  `json:"user"`
	TopGenre   string          `json:"topGenre"`
	TopArtist  SpotifyArtist   `json:"topArtist"`
	TopTracks  []SpotifyTrack  `json:"topTracks"`
	AllArtists []SpotifyArtist `json:"allArtists"`
}

// RoastResponse is the payload handed to the UI: the AI content plus the raw
// data it was derived from.
type RoastResponse struct {
	Content RoastContent `json:"content"`
	Data    RoastData    `json:"data"`
}
