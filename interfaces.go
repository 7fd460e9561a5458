package huddle

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Article is a single candidate news item about a team. Articles are
// immutable: sources create them, the selector and fetcher only read them.
type Article struct {
	ID          int
	Headline    string
	Description string
	Published   time.Time
	URL         string

	// Category tags carried over from the source, when available.
	Teams   []string
	Players []string
}

// Digest renders the article metadata handed to the ranker for scoring.
func (a Article) Digest() string {
	return fmt.Sprintf("Article ID: %d, Headline: %s, Description: %s, Published: %s",
		a.ID, strings.TrimSpace(a.Headline), strings.TrimSpace(a.Description),
		a.Published.Format(time.RFC3339))
}

// ArticleSource lists candidate articles for a team and retrieves their
// content. Implementations may cache and rate-limit internally; they must be
// safe for use by concurrent research runs.
type ArticleSource interface {
	// ListArticles returns the candidate pool for a team, most recent first.
	// Failure to list at all is reported by wrapping ErrSourceUnavailable.
	ListArticles(ctx context.Context, teamID int) ([]Article, error)

	// FetchContent retrieves the main textual content of an article,
	// truncated deterministically at maxLength characters. It must be
	// idempotent per URL within a run. Failures wrap ErrContentUnavailable.
	FetchContent(ctx context.Context, url string, maxLength int) (string, error)
}

// TextRanker scores a candidate set and returns the ID of the single most
// relevant article. Ties break toward the first candidate in input order.
// May fail with ErrRateLimited (transient) or ErrMalformedResponse.
type TextRanker interface {
	SelectMostRelevant(ctx context.Context, teamName string, candidates []Article) (int, error)
}

// StructuredExtractor pulls a sparse PartialProfile out of article text.
// May fail with ErrRateLimited (transient) or ErrMalformedResponse.
type StructuredExtractor interface {
	Extract(ctx context.Context, teamName, articleText string) (PartialProfile, error)
}

// LLMResponse is returned by LLMProvider.Generate.
type LLMResponse struct {
	Text      string
	Reasoning string
}

// LLMProvider is implemented by user-supplied language model clients.
// Implementations should return ErrRateLimited (wrapped) when the backend
// reports a rate-limit condition so the library can back off and retry.
type LLMProvider interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (LLMResponse, error)
}

// TerminationReason explains why a research run stopped.
type TerminationReason string

const (
	// ReasonComplete: the profile satisfied the completeness criteria.
	ReasonComplete TerminationReason = "complete"
	// ReasonExhausted: the candidate pool ran out of articles.
	ReasonExhausted TerminationReason = "exhausted"
	// ReasonCapReached: the article cap was hit before completeness.
	ReasonCapReached TerminationReason = "cap-reached"
	// ReasonCancelled: the run's context was cancelled between iterations.
	ReasonCancelled TerminationReason = "cancelled"
)

// Result is returned by Researcher.ResearchTeam. Profile may be structurally
// incomplete when the run stopped at the article cap or was cancelled.
type Result struct {
	Profile      *TeamProfile
	ArticlesRead int
	Reason       TerminationReason
}

// ResearchOption configures a single call to ResearchTeam.
type ResearchOption func(*researchConfig)

type researchConfig struct {
	initialArticles []Article
}

// WithInitialArticles supplies a pre-populated candidate pool, skipping the
// initial listing call. Useful for replaying a captured article set or for
// callers that already hold the source response.
func WithInitialArticles(articles []Article) ResearchOption {
	return func(c *researchConfig) { c.initialArticles = articles }
}
