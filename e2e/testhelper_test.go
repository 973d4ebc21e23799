package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/roastify/api/internal/client"
	"github.com/roastify/api/internal/config"
	"github.com/roastify/api/internal/server"
)

const testFrontendURL = "http://localhost:3000"

const validRoastContent = `{
	"intro": "Namaste Arjun, showed this playlist to the IT Cell and they resigned.",
	"genre_roast": "genre burn",
	"artist_roast": "artist burn",
	"track_roast": "track burn",
	"stats_roast": "stats burn",
	"final_verdict": {"score": 23, "title": "The NPC", "summary": "Touch grass. Emotional damage."}
}`

// fixtures scripts the fake Spotify and Groq backends for one test.
type fixtures struct {
	mu sync.Mutex

	tokenStatus int
	tokenBody   string

	artistsStatus int
	artistsBody   string
	tracksBody    string
	profileBody   string

	groqStatus  int
	groqContent string

	spotifyAPIHits int
	groqHits       int
}

func defaultFixtures() *fixtures {
	return &fixtures{
		tokenStatus:   http.StatusOK,
		tokenBody:     `{"access_token":"test-token","token_type":"Bearer","expires_in":3600}`,
		artistsStatus: http.StatusOK,
		artistsBody:   `{"items":[{"name":"X","genres":["pop","pop","rock"]}],"total":1}`,
		tracksBody:    `{"items":[{"name":"Hit Song","artists":[{"name":"X"}],"album":{"name":"Album"}}],"total":1}`,
		profileBody:   `{"id":"u1","display_name":"Arjun"}`,
		groqStatus:    http.StatusOK,
		groqContent:   validRoastContent,
	}
}

func (f *fixtures) recordSpotifyHit() {
	f.mu.Lock()
	f.spotifyAPIHits++
	f.mu.Unlock()
}

func (f *fixtures) spotifyHits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.spotifyAPIHits
}

func (f *fixtures) aiHits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.groqHits
}

// testApp holds the assembled Fiber app and its scripted backends.
type testApp struct {
	app *fiber.App
	fx  *fixtures
}

// setupApp assembles the app the same way main.go does, but pointed at
// httptest fakes of Spotify and Groq.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	fx := defaultFixtures()

	spotifySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/api/token":
			w.WriteHeader(fx.tokenStatus)
			io.WriteString(w, fx.tokenBody)
		case r.URL.Path == "/v1/me/top/artists":
			fx.recordSpotifyHit()
			w.WriteHeader(fx.artistsStatus)
			io.WriteString(w, fx.artistsBody)
		case r.URL.Path == "/v1/me/top/tracks":
			fx.recordSpotifyHit()
			io.WriteString(w, fx.tracksBody)
		case r.URL.Path == "/v1/me":
			fx.recordSpotifyHit()
			io.WriteString(w, fx.profileBody)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(spotifySrv.Close)

	groqSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fx.mu.Lock()
		fx.groqHits++
		fx.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if fx.groqStatus != http.StatusOK {
			w.WriteHeader(fx.groqStatus)
			io.WriteString(w, `{"error":{"message":"upstream error"}}`)
			return
		}

		content, _ := json.Marshal(fx.groqContent)
		io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":`+string(content)+`}}]}`)
	}))
	t.Cleanup(groqSrv.Close)

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:        "8000",
			Env:         "test",
			LogLevel:    "info",
			FrontendURL: testFrontendURL,
		},
		Spotify: config.SpotifyConfig{
			ClientID:     "test-client-id",
			ClientSecret: "test-client-secret",
			RedirectURI:  "http://localhost:8000/callback",
		},
		Groq: config.GroqConfig{
			APIKey:  "test-groq-key",
			BaseURL: groqSrv.URL,
			Model:   "llama-3.3-70b-versatile",
		},
	}

	spotifyClient := client.NewSpotifyClientWithEndpoints(&cfg.Spotify,
		spotifySrv.URL+"/authorize", spotifySrv.URL+"/api/token", spotifySrv.URL+"/v1")
	groqClient := client.NewGroqClient(&cfg.Groq)

	app := server.New(cfg, spotifyClient, groqClient, validator.New())

	return &testApp{app: app, fx: fx}
}

// doRequest performs an HTTP request against the in-process app.
func doRequest(app *fiber.App, method, path, body string, headers map[string]string) (*http.Response, error) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return app.Test(req, 10000)
}

// parseJSON decodes a response body into a generic map.
func parseJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response body: %v", err)
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("parsing response body %q: %v", string(data), err)
	}
	return result
}

// assertStatus fails the test if the response status doesn't match.
func assertStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status = %d, want %d", resp.StatusCode, want)
	}
}

// errorCode extracts the machine-readable code from an error body.
func errorCode(t *testing.T, result map[string]interface{}) string {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got %v", result)
	}
	code, _ := errObj["code"].(string)
	return code
}
