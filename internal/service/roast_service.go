package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/roastify/api/internal/model"
)

// SpotifyAPI is the slice of the Spotify client the roast pipeline uses.
type SpotifyAPI interface {
	Exchange(ctx context.Context, code string) (string, error)
	TopArtists(ctx context.Context, accessToken string) ([]model.SpotifyArtist, error)
	TopTracks(ctx context.Context, accessToken string) ([]model.SpotifyTrack, error)
	Profile(ctx context.Context, accessToken string) (model.SpotifyProfile, error)
}

// ChatCompleter is the AI backend boundary. Defined here so tests can swap in
// a scripted completer without touching the Groq client.
type ChatCompleter interface {
	ChatCompletion(ctx context.Context, system, user string) (string, error)
}

// RoastService runs the roast pipeline: code exchange, listening-data
// aggregation, genre inference, prompt compilation, and AI generation.
type RoastService struct {
	spotify  SpotifyAPI
	ai       ChatCompleter
	validate *validator.Validate
}

// NewRoastService creates a roast service over the given backends.
func NewRoastService(spotify SpotifyAPI, ai ChatCompleter, validate *validator.Validate) *RoastService {
	return &RoastService{
		spotify:  spotify,
		ai:       ai,
		validate: validate,
	}
}

// GenerateRoast runs the full pipeline for one authorization code. The steps
// are strictly sequential except the three-way Spotify fetch; each failure
// maps to one sentinel error and no partial payload is ever returned.
func (s *RoastService) GenerateRoast(ctx context.Context, code string) (*model.RoastResponse, error) {
	accessToken, err := s.spotify.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}

	data, err := s.aggregate(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpotifyUnavailable, err)
	}

	// Sufficiency guard: without at least one top artist there is nothing to
	// roast, and no AI call is made.
	if len(data.TopArtists) == 0 {
		return nil, ErrInsufficientData
	}

	data.TopGenre = TopGenre(data.TopArtists)

	prompt := CompileRoastPrompt(data)

	raw, err := s.ai.ChatCompletion(ctx, prompt.System, prompt.User)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAIGeneration, err)
	}

	content, err := s.parseRoast(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAIGeneration, err)
	}

	return &model.RoastResponse{
		Content: *content,
		Data: model.RoastData{
			User:       data.Profile,
			TopGenre:   data.TopGenre,
			TopArtist:  data.TopArtists[0],
			TopTracks:  firstN(data.TopTracks, maxPromptItems),
			AllArtists: firstN(data.TopArtists, maxPromptItems),
		},
	}, nil
}

// aggregate issues the three Spotify reads concurrently and joins on all of
// them; a single failure fails the whole aggregation.
func (s *RoastService) aggregate(ctx context.Context, accessToken string) (*model.ListeningData, error) {
	data := &model.ListeningData{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		artists, err := s.spotify.TopArtists(gctx, accessToken)
		if err != nil {
			return err
		}
		data.TopArtists = artists
		return nil
	})
	g.Go(func() error {
		tracks, err := s.spotify.TopTracks(gctx, accessToken)
		if err != nil {
			return err
		}
		data.TopTracks = tracks
		return nil
	})
	g.Go(func() error {
		profile, err := s.spotify.Profile(gctx, accessToken)
		if err != nil {
			return err
		}
		data.Profile = profile
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

// parseRoast decodes the model output and enforces the roast schema locally
// rather than trusting the prompt contract alone.
func (s *RoastService) parseRoast(raw string) (*model.RoastContent, error) {
	raw = extractJSON(raw)

	var content model.RoastContent
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		return nil, fmt.Errorf("invalid JSON response: %v", err)
	}

	if err := s.validate.Struct(&content); err != nil {
		return nil, fmt.Errorf("response missing required fields: %v", err)
	}

	return &content, nil
}

// extractJSON attempts to extract JSON from a response that may contain extra text
func extractJSON(s string) string {
	// Find the first { and last }
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")

	if start != -1 && end != -1 && end > start {
		return s[start : end+1]
	}
	return s
}

func firstN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
