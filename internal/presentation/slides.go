// Package presentation models the roast slide show as an explicit state
// machine instead of an index into a component array. The frontend mirrors
// these stages; keeping the transitions here gives them a tested contract.
package presentation

// Stage identifies one slide of the roast presentation.
type Stage string

const (
	StageIntro   Stage = "intro"
	StageGenre   Stage = "genre"
	StageArtist  Stage = "artist"
	StageTracks  Stage = "tracks"
	StageVerdict Stage = "verdict"
)

// order is the fixed walk through the show. The verdict is terminal.
var order = []Stage{StageIntro, StageGenre, StageArtist, StageTracks, StageVerdict}

// Show tracks the user's position in the slide sequence.
type Show struct {
	stage Stage
}

// NewShow starts a show at the intro slide.
func NewShow() *Show {
	return &Show{stage: StageIntro}
}

// Stage returns the current slide.
func (s *Show) Stage() Stage {
	return s.stage
}

// Done reports whether the show has reached the verdict slide.
func (s *Show) Done() bool {
	return s.stage == StageVerdict
}

// Advance moves to the next slide. Advancing past the verdict is a no-op.
func (s *Show) Advance() Stage {
	for i, st := range order {
		if st == s.stage && i < len(order)-1 {
			s.stage = order[i+1]
			break
		}
	}
	return s.stage
}

// Restart rewinds the show to the intro slide.
func (s *Show) Restart() Stage {
	s.stage = StageIntro
	return s.stage
}

// Stages returns the full slide sequence in presentation order.
func Stages() []Stage {
	out := make([]Stage, len(order))
	copy(out, order)
	return out
}
