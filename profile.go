package huddle

import (
	"slices"
	"strings"
)

// TeamProfile is cumulative knowledge about one team, built up across
// iterations of the research loop. Name is set once and never changes. The
// list fields only ever grow during merges, and CoachingSummary only ever
// grows by concatenation.
type TeamProfile struct {
	Name            string   `json:"name"`
	CoachingSummary string   `json:"coaching_summary,omitempty"`
	Injuries        []string `json:"injuries,omitempty"`
	Strengths       []string `json:"strengths,omitempty"`
	ProblemAreas    []string `json:"problem_areas,omitempty"`
	RelevantPlayers []string `json:"relevant_players,omitempty"`
}

// PartialProfile is one iteration's freshly extracted facts, pre-merge. Every
// field may be empty, meaning the extractor found nothing new for it.
type PartialProfile struct {
	Name            string   `json:"name"`
	CoachingSummary string   `json:"coaching_summary,omitempty"`
	Injuries        []string `json:"injuries,omitempty"`
	Strengths       []string `json:"strengths,omitempty"`
	ProblemAreas    []string `json:"problem_areas,omitempty"`
	RelevantPlayers []string `json:"relevant_players,omitempty"`
}

// empty reports whether the partial carries no facts at all. Name alone does
// not count; the loop fills that in regardless.
func (p PartialProfile) empty() bool {
	return strings.TrimSpace(p.CoachingSummary) == "" &&
		len(p.Injuries) == 0 &&
		len(p.Strengths) == 0 &&
		len(p.ProblemAreas) == 0 &&
		len(p.RelevantPlayers) == 0
}

// Complete reports whether the profile satisfies the completeness criteria:
// a coaching summary plus at least one entry in each of the four lists.
func (p *TeamProfile) Complete() bool {
	if p == nil {
		return false
	}
	return strings.TrimSpace(p.CoachingSummary) != "" &&
		len(p.Injuries) > 0 &&
		len(p.Strengths) > 0 &&
		len(p.ProblemAreas) > 0 &&
		len(p.RelevantPlayers) > 0
}

func (p *TeamProfile) clone() *TeamProfile {
	if p == nil {
		return nil
	}
	return &TeamProfile{
		Name:            p.Name,
		CoachingSummary: p.CoachingSummary,
		Injuries:        slices.Clone(p.Injuries),
		Strengths:       slices.Clone(p.Strengths),
		ProblemAreas:    slices.Clone(p.ProblemAreas),
		RelevantPlayers: slices.Clone(p.RelevantPlayers),
	}
}

// mergeProfile folds one iteration's partial facts into the accumulated
// profile and returns the merged copy. The inputs are not modified, so a
// merge is atomic: callers either commit the returned profile or keep the
// old one.
//
// Rules, applied per field:
//   - old == nil: the partial becomes the initial profile verbatim.
//   - empty incoming values are skipped; whatever old holds is preserved.
//   - list fields: items not already present are appended after old's items,
//     in the partial's order. Existing order is never disturbed.
//   - the narrative field is concatenated with a blank-line separator unless
//     old already ends with the incoming text.
//
// Name is fixed at creation; later partials never change it.
func mergeProfile(old *TeamProfile, partial PartialProfile) *TeamProfile {
	if old == nil {
		return &TeamProfile{
			Name:            partial.Name,
			CoachingSummary: partial.CoachingSummary,
			Injuries:        slices.Clone(partial.Injuries),
			Strengths:       slices.Clone(partial.Strengths),
			ProblemAreas:    slices.Clone(partial.ProblemAreas),
			RelevantPlayers: slices.Clone(partial.RelevantPlayers),
		}
	}

	merged := old.clone()
	merged.CoachingSummary = appendNarrative(merged.CoachingSummary, partial.CoachingSummary)
	merged.Injuries = appendMissing(merged.Injuries, partial.Injuries)
	merged.Strengths = appendMissing(merged.Strengths, partial.Strengths)
	merged.ProblemAreas = appendMissing(merged.ProblemAreas, partial.ProblemAreas)
	merged.RelevantPlayers = appendMissing(merged.RelevantPlayers, partial.RelevantPlayers)
	return merged
}

// appendMissing returns existing followed by every incoming item not already
// present, preserving both orders. Comparison is exact and case-sensitive.
func appendMissing(existing, incoming []string) []string {
	if len(incoming) == 0 {
		return existing
	}
	out := slices.Clone(existing)
	for _, item := range incoming {
		if !slices.Contains(out, item) {
			out = append(out, item)
		}
	}
	return out
}

// appendNarrative grows a narrative field by blank-line concatenation. The
// suffix check keeps repeated application of the same partial from
// duplicating text.
func appendNarrative(existing, incoming string) string {
	if incoming == "" {
		return existing
	}
	if existing == "" {
		return incoming
	}
	if existing == incoming || strings.HasSuffix(existing, "\n\n"+incoming) {
		return existing
	}
	return existing + "\n\n" + incoming
}
