package huddle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRankerResponse(t *testing.T) {
	id, err := parseRankerResponse(`{"article_id": 42}`)
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	// prose around the JSON
	id, err = parseRankerResponse("The best pick is:\n```json\n{\"article_id\": 7}\n```")
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	// bare integer fallback for models that skip the format
	id, err = parseRankerResponse("Article 12345 is the most relevant.")
	require.NoError(t, err)
	assert.Equal(t, 12345, id)

	_, err = parseRankerResponse("none of these look relevant")
	assert.ErrorIs(t, err, ErrMalformedResponse)

	_, err = parseRankerResponse("")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestParseExtractorResponse(t *testing.T) {
	raw := "Here are the facts:\n" +
		`{"name":"Eagles","coaching_summary":"Aggressive.","injuries":["A"],"relevant_players":["B"]}`
	partial, err := parseExtractorResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Eagles", partial.Name)
	assert.Equal(t, "Aggressive.", partial.CoachingSummary)
	assert.Equal(t, []string{"A"}, partial.Injuries)
	assert.Equal(t, []string{"B"}, partial.RelevantPlayers)
	assert.Empty(t, partial.Strengths)

	_, err = parseExtractorResponse("no json here")
	assert.ErrorIs(t, err, ErrMalformedResponse)

	_, err = parseExtractorResponse(`{"injuries": "not a list"}`)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestStripThinkBlocks(t *testing.T) {
	raw := "<think>hmm, article 3 maybe?\nno, 5</think>{\"article_id\": 5}"
	assert.Equal(t, `{"article_id": 5}`, StripThinkBlocks(raw))
}

func TestGetContentFallsBackToReasoning(t *testing.T) {
	resp := LLMResponse{Text: "<think>all of it</think>", Reasoning: "actual content"}
	assert.Equal(t, "actual content", getContent(resp))
}

func TestExtractJSONObject(t *testing.T) {
	assert.Equal(t, `{"a":{"b":1}}`, extractJSONObject(`junk {"a":{"b":1}} trailing`))
	// braces inside strings are not structure
	assert.Equal(t, `{"s":"}{"}`, extractJSONObject(`{"s":"}{"}`))
	assert.Equal(t, "", extractJSONObject("no object"))
	assert.Equal(t, "", extractJSONObject("{unbalanced"))
}

func TestRankerUserPromptListsCandidates(t *testing.T) {
	published := time.Date(2026, 1, 4, 12, 0, 0, 0, time.UTC)
	prompt := buildRankerUserPrompt("Eagles", []Article{
		{ID: 1, Headline: "First", Description: "one", Published: published},
		{ID: 2, Headline: "Second", Published: published},
	})

	assert.Contains(t, prompt, "Team name: Eagles")
	assert.Contains(t, prompt, "Article ID: 1, Headline: First, Description: one")
	assert.Contains(t, prompt, "Article ID: 2, Headline: Second")
	assert.Contains(t, prompt, "2026-01-04T12:00:00Z")
}
