package huddle

import (
	"fmt"
	"strings"
)

// ResearchState holds the working set of one research run: the team identity,
// the accumulated profile (nil until the first merge), the remaining
// candidate pool, and how many articles have been read so far.
type ResearchState struct {
	TeamName     string
	TeamID       int
	Profile      *TeamProfile
	Pool         []Article
	ArticlesRead int
}

func newResearchState(teamName string, teamID int) *ResearchState {
	return &ResearchState{TeamName: strings.TrimSpace(teamName), TeamID: teamID}
}

// removeArticle drops an article from the candidate pool by ID, guaranteeing
// it is never handed to the fetcher or extractor again.
func (s *ResearchState) removeArticle(id int) {
	kept := s.Pool[:0]
	for _, a := range s.Pool {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.Pool = kept
}

// Snapshot renders the state for debug logging.
func (s *ResearchState) Snapshot() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Team: %s (id %d)\n", s.TeamName, s.TeamID)
	fmt.Fprintf(&b, "Articles read: %d, candidates remaining: %d\n", s.ArticlesRead, len(s.Pool))
	b.WriteString("Profile:\n")
	if s.Profile == nil {
		b.WriteString("(none yet)")
		return b.String()
	}
	fmt.Fprintf(&b, "  coaching summary: %d chars\n", len(s.Profile.CoachingSummary))
	fmt.Fprintf(&b, "  injuries: %v\n", s.Profile.Injuries)
	fmt.Fprintf(&b, "  strengths: %v\n", s.Profile.Strengths)
	fmt.Fprintf(&b, "  problem areas: %v\n", s.Profile.ProblemAreas)
	fmt.Fprintf(&b, "  relevant players: %v", s.Profile.RelevantPlayers)
	return b.String()
}
