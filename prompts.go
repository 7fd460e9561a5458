package huddle

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const rankerSystemPrompt = `You are a senior NFL sports analyst.

Your task is to evaluate article relevance when researching an NFL team in order to build a holistic understanding of the team and predict its next game.

Choose the single article that is most likely to provide high-value information.

Relevance guidelines:
- Favor the most recent information over older information.
- Favor articles that predict the future outcome of the team's next game rather than articles analyzing previous games.
- Prioritize articles that focus on the specific team or its upcoming matchup.
- Articles covering all teams or league-wide previews are still valuable, especially if they include analysis of the team's next opponent or upcoming week.
- Prefer content that improves understanding of roster changes, injuries, coaching decisions, strategy, form, or matchup context.
- Prefer articles that add new or complementary information rather than repeating known facts.
- If several articles are equally relevant, choose the one listed first.

Constraints:
- Select exactly one article.
- Do not explain your reasoning.
- Respond with JSON: {"article_id": <id>}`

const extractorSystemPrompt = `You are a senior NFL analyst extracting prediction-relevant facts from an article about a specific NFL team.

Your goal is to capture only information that materially affects near-term game outcomes for the given team.

Guidelines:
- Focus on the specified team only. Ignore other teams unless they directly affect this team's next game or matchup.
- Prefer recent, concrete, and actionable information: injuries and player availability, recent performance trends, scheme or lineup changes, matchup-specific advantages or weaknesses.
- Avoid historical trivia, long-term milestones, morale anecdotes, or league-wide context unless they clearly affect upcoming performance.
- Extract facts stated or clearly supported by the article. Do not speculate or invent causal conclusions.
- Each fact should be specific, verifiable, and tied to game impact.
- Omit any field the article says nothing new about.

Respond with a single JSON object using this schema:
{"name": string, "coaching_summary": string, "injuries": [string], "strengths": [string], "problem_areas": [string], "relevant_players": [string]}`

func buildRankerUserPrompt(teamName string, candidates []Article) string {
	var b strings.Builder
	b.WriteString("Team name: ")
	b.WriteString(teamName)
	b.WriteString("\nThe articles are:\n")
	for _, a := range candidates {
		b.WriteString(a.Digest())
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func buildExtractorUserPrompt(teamName, articleText string) string {
	var b strings.Builder
	b.WriteString("The team name is: ")
	b.WriteString(teamName)
	b.WriteString(". The article content is:\n")
	b.WriteString(articleText)
	return b.String()
}

var articleIDRegex = regexp.MustCompile(`-?\d+`)
var thinkRegex = regexp.MustCompile(`(?s)<think>.*?</think>`)

// StripThinkBlocks removes <think>...</think> blocks from LLM responses.
// Some models (like qwen3) output reasoning in these blocks.
func StripThinkBlocks(s string) string {
	return strings.TrimSpace(thinkRegex.ReplaceAllString(s, ""))
}

// getContent extracts usable text from an LLM response. If Text is empty
// after stripping <think> blocks (e.g. thinking models that put everything
// in reasoning tokens), falls back to the Reasoning field.
func getContent(resp LLMResponse) string {
	text := StripThinkBlocks(resp.Text)
	if text != "" {
		return text
	}
	return StripThinkBlocks(resp.Reasoning)
}

// parseRankerResponse reads the ranker output. It accepts the requested
// {"article_id": N} shape and falls back to the first integer in the text
// for models that skip the JSON format.
func parseRankerResponse(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty ranker output", ErrMalformedResponse)
	}

	if obj := extractJSONObject(trimmed); obj != "" {
		var parsed struct {
			ArticleID *int `json:"article_id"`
		}
		if err := json.Unmarshal([]byte(obj), &parsed); err == nil && parsed.ArticleID != nil {
			return *parsed.ArticleID, nil
		}
	}

	if m := articleIDRegex.FindString(trimmed); m != "" {
		id, err := strconv.Atoi(m)
		if err == nil {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: no article id in ranker output %q", ErrMalformedResponse, raw)
}

// parseExtractorResponse reads the extractor output into a PartialProfile.
func parseExtractorResponse(raw string) (PartialProfile, error) {
	obj := extractJSONObject(strings.TrimSpace(raw))
	if obj == "" {
		return PartialProfile{}, fmt.Errorf("%w: no JSON object in extractor output", ErrMalformedResponse)
	}
	var partial PartialProfile
	if err := json.Unmarshal([]byte(obj), &partial); err != nil {
		return PartialProfile{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return partial, nil
}

// extractJSONObject returns the outermost {...} span in s, tolerating prose
// or code fences around it. Returns "" when no balanced object is found.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
