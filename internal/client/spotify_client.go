package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/roastify/api/internal/config"
	"github.com/roastify/api/internal/model"
)

const (
	spotifyAuthURL    = "https://accounts.spotify.com/authorize"
	spotifyTokenURL   = "https://accounts.spotify.com/api/token"
	spotifyAPIBaseURL = "https://api.spotify.com/v1"

	// Windows and limits for the top-item reads. Artists use a wider window
	// than tracks so the genre picture is less skewed by the past week.
	topArtistsQuery = "/me/top/artists?limit=10&time_range=medium_term"
	topTracksQuery  = "/me/top/tracks?limit=10&time_range=short_term"
)

// Scopes requested during authorization; top-item reads need both.
var spotifyScopes = []string{"user-top-read", "user-read-private"}

// SpotifyClient handles the Spotify authorization-code flow and the Web API
// reads the roast pipeline depends on.
type SpotifyClient struct {
	oauth      *oauth2.Config
	httpClient *http.Client
	apiBaseURL string
}

// NewSpotifyClient creates a Spotify client against the production endpoints.
func NewSpotifyClient(cfg *config.SpotifyConfig) *SpotifyClient {
	return NewSpotifyClientWithEndpoints(cfg, spotifyAuthURL, spotifyTokenURL, spotifyAPIBaseURL)
}

// NewSpotifyClientWithEndpoints creates a Spotify client against alternate
// endpoints. Tests use it to point the client at local fakes.
func NewSpotifyClientWithEndpoints(cfg *config.SpotifyConfig, authURL, tokenURL, apiBaseURL string) *SpotifyClient {
	return &SpotifyClient{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       spotifyScopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  authURL,
				TokenURL: tokenURL,
			},
		},
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		apiBaseURL: apiBaseURL,
	}
}

// AuthURL returns the authorization URL the browser is redirected to.
func (c *SpotifyClient) AuthURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// Exchange trades a single-use authorization code for an access token.
// Codes cannot be replayed, so there is no retry here.
func (c *SpotifyClient) Exchange(ctx context.Context, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("token exchange failed: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}
	return token.AccessToken, nil
}

// TopArtists retrieves the user's top artists (medium term, at most 10).
func (c *SpotifyClient) TopArtists(ctx context.Context, accessToken string) ([]model.SpotifyArtist, error) {
	var page model.SpotifyTopArtists
	if err := c.doGet(ctx, topArtistsQuery, accessToken, &page); err != nil {
		return nil, fmt.Errorf("fetching top artists: %w", err)
	}
	return page.Items, nil
}

// TopTracks retrieves the user's top tracks (short term, at most 10).
func (c *SpotifyClient) TopTracks(ctx context.Context, accessToken string) ([]model.SpotifyTrack, error) {
	var page model.SpotifyTopTracks
	if err := c.doGet(ctx, topTracksQuery, accessToken, &page); err != nil {
		return nil, fmt.Errorf("fetching top tracks: %w", err)
	}
	return page.Items, nil
}

// Profile retrieves the authenticated user's profile.
func (c *SpotifyClient) Profile(ctx context.Context, accessToken string) (model.SpotifyProfile, error) {
	var profile model.SpotifyProfile
	if err := c.doGet(ctx, "/me", accessToken, &profile); err != nil {
		return model.SpotifyProfile{}, fmt.Errorf("fetching profile: %w", err)
	}
	return profile, nil
}

// doGet performs an authenticated GET against the Spotify Web API. A non-2xx
// status is an error; the body is never decoded in that case.
func (c *SpotifyClient) doGet(ctx context.Context, endpoint, accessToken string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("spotify API error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// IsConfigured returns true if the client has valid configuration
func (c *SpotifyClient) IsConfigured() bool {
	return c.oauth.ClientID != "" && c.oauth.ClientSecret != ""
}
