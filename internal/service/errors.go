package service

import "errors"

// Pipeline failure conditions. Each step of the roast pipeline maps its
// failure onto exactly one of these, so handlers can pick a status code with
// errors.Is and never leak upstream details to the caller.
var (
	// ErrAuthFailed means the code exchange did not yield an access token
	// (expired, invalid, or already-used authorization code).
	ErrAuthFailed = errors.New("spotify authentication failed")

	// ErrSpotifyUnavailable means one of the listening-data reads failed.
	ErrSpotifyUnavailable = errors.New("spotify data fetch failed")

	// ErrInsufficientData means the user has no top artists to roast.
	ErrInsufficientData = errors.New("not enough listening data")

	// ErrAIGeneration means the completion call failed or its output was not
	// a valid roast. The model is untrusted; malformed output is not repaired.
	ErrAIGeneration = errors.New("ai generation failed")
)
