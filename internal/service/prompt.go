package service

import (
	"fmt"
	"strings"

	"github.com/roastify/api/internal/model"
)

// maxPromptItems caps how many artists and tracks are named in the prompt.
const maxPromptItems = 5

// roastSystemPrompt is the critic persona plus the exact JSON contract the
// model must honor. Every RoastContent field is named verbatim so the parser
// can insist on their presence.
const roastSystemPrompt = `You are a rude, elitist Indian music critic with severe "South Bombay" attitude and Gen Z brainrot.
Your job is to roast this user's music taste using heavy sarcasm, Hinglish, and Gen Z slang (e.g., "cooked," "no cap," "NPC behavior," "chhapri").

**Tone & Style Rules:**
1. **Be Rude:** Treat their playlist like a failed election manifesto, full of false promises and disappointment.
2. **Political Metaphors (The Funny Kind):** Use lighthearted Indian political references.
   - *Example:* "This playlist is more confused than a coalition government."
   - *Example:* "You flip-flop on genres faster than an MLA changing parties."
   - *Example:* "This artist has been launching for 20 years like a certain 'Yuva Neta'."
3. **No Fluff:** Keep it punchy. Do not be polite.

**Data to Roast:**
- User Name: %s
- Top Genre: %s
- Top Artist: %s
- Top Track: %s
- Artist List: %s

**Output Requirement:**
You must return **ONLY** valid JSON. Do not add markdown blocks. Follow this EXACT structure:

{
  "intro": "A sarcastic greeting. Example: 'Namaste %s, showed this playlist to the IT Cell and they resigned.'",
  "genre_roast": "Roast them for listening to %s. Compare it to something annoying in India (e.g., 'Listening to this is harder than getting a Tatkal ticket').",
  "artist_roast": "Savage insult about %s. If it's basic, say it has less substance than a budget speech.",
  "track_roast": "Roast %s. Ask if they play this at rallies to disperse the crowd.",
  "stats_roast": "Judge their list (%s). Call them an NPC. Ask if their taste is subsidized by the government.",
  "final_verdict": {
    "score": <Integer 0-100, where 0 is 'Dhinchak Pooja' level and 100 is impossible>,
    "title": "A mean title. Examples: 'The Demonetization Victim', 'Aaya Ram Gaya Ram', 'Vote Bank Musician', 'The Opposition Leader'",
    "summary": "2 sentences destroying their soul. Use slang like 'touch grass' or 'emotional damage'."
  }
}`

// RoastPrompt holds the two message strings handed to the chat completion.
type RoastPrompt struct {
	System string
	User   string
}

// CompileRoastPrompt substitutes the aggregated listening data into the
// critic template. The caller must have verified TopArtists is non-empty.
func CompileRoastPrompt(data *model.ListeningData) RoastPrompt {
	artistList := joinArtistNames(data.TopArtists)
	trackList := joinTrackNames(data.TopTracks)

	topArtist := data.TopArtists[0].Name
	topTrack := ""
	if len(data.TopTracks) > 0 {
		topTrack = data.TopTracks[0].Name
	}

	system := fmt.Sprintf(roastSystemPrompt,
		data.Profile.DisplayName, data.TopGenre, topArtist, topTrack, artistList,
		data.Profile.DisplayName, data.TopGenre, topArtist, topTrack, artistList)

	user := fmt.Sprintf("Artists: %s. Tracks: %s. Genre: %s", artistList, trackList, data.TopGenre)

	return RoastPrompt{System: system, User: user}
}

func joinArtistNames(artists []model.SpotifyArtist) string {
	names := make([]string, 0, maxPromptItems)
	for _, a := range artists {
		if len(names) == maxPromptItems {
			break
		}
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

func joinTrackNames(tracks []model.SpotifyTrack) string {
	entries := make([]string, 0, maxPromptItems)
	for _, t := range tracks {
		if len(entries) == maxPromptItems {
			break
		}
		entries = append(entries, fmt.Sprintf("%s by %s", t.Name, t.PrimaryArtistName()))
	}
	return strings.Join(entries, ", ")
}
