package handler

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const stateCookie = "spotify_auth_state"

// AuthorizeURLBuilder builds the provider authorization URL for a state token.
type AuthorizeURLBuilder interface {
	AuthURL(state string) string
}

// AuthHandler serves the OAuth boundary: the redirect into Spotify's consent
// page and the callback that hands the authorization code to the frontend.
type AuthHandler struct {
	spotify     AuthorizeURLBuilder
	frontendURL string
}

func NewAuthHandler(spotify AuthorizeURLBuilder, frontendURL string) *AuthHandler {
	return &AuthHandler{
		spotify:     spotify,
		frontendURL: frontendURL,
	}
}

// Login handles GET /api/login. Issues a random state token in a short-lived
// cookie and redirects the browser to Spotify's authorization page.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	state := uuid.NewString()

	c.Cookie(&fiber.Cookie{
		Name:     stateCookie,
		Value:    state,
		MaxAge:   int((10 * time.Minute).Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect(h.spotify.AuthURL(state), fiber.StatusFound)
}

// Callback handles GET /callback. When the state matches and a code is
// present, the browser is forwarded to the frontend with the code attached;
// otherwise it is forwarded with no code and the frontend stays on the login
// screen. The code itself is only consumed later by POST /api/roast.
func (h *AuthHandler) Callback(c *fiber.Ctx) error {
	state := c.Query("state")
	code := c.Query("code")
	expected := c.Cookies(stateCookie)

	c.ClearCookie(stateCookie)

	if code == "" || state == "" || state != expected {
		return c.Redirect(h.frontendURL, fiber.StatusFound)
	}

	return c.Redirect(h.frontendURL+"/?code="+url.QueryEscape(code), fiber.StatusFound)
}
