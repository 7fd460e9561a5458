package huddle

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Researcher coordinates the article source, relevance selector, fact
// extractor, and profile merger. Construct one with New and reuse it across
// runs; independent teams can be researched concurrently, while iterations
// within a single run are strictly sequential.
type Researcher struct {
	source    ArticleSource
	ranker    TextRanker
	extractor StructuredExtractor

	selector *RelevanceSelector
	facts    *FactExtractor

	minArticles      int
	maxArticles      int
	maxContentLength int
	executionBudget  int
	logger           *slog.Logger
}

// New constructs a Researcher with optional configuration.
func New(opts ...Option) *Researcher {
	r := &Researcher{
		minArticles:      defaultMinArticles,
		maxArticles:      defaultMaxArticles,
		maxContentLength: defaultMaxContentLength,
		executionBudget:  defaultExecutionBudget,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.ranker != nil {
		r.selector = NewRelevanceSelector(r.ranker)
	}
	if r.extractor != nil {
		r.facts = NewFactExtractor(r.extractor)
	}
	return r
}

// ResearchTeam runs the research loop for one team until the profile is
// plausibly complete, the candidate pool is exhausted, or the article cap is
// reached. The returned Result carries the accumulated profile and the
// reason the loop stopped.
//
// On context cancellation the profile accumulated so far is still returned
// alongside the context error; no iteration is left half-merged.
func (r *Researcher) ResearchTeam(ctx context.Context, teamName string, teamID int, opts ...ResearchOption) (Result, error) {
	var cfg researchConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if strings.TrimSpace(teamName) == "" {
		return Result{}, errors.New("team name is empty")
	}
	if r.selector == nil {
		return Result{}, errors.New("ranker is not configured")
	}
	if r.facts == nil {
		return Result{}, errors.New("extractor is not configured")
	}
	if r.source == nil {
		return Result{}, errors.New("article source is not configured")
	}

	logger := r.logger.With("run_id", uuid.NewString(), "team", teamName)

	st := newResearchState(teamName, teamID)
	initial := stateFetchingList
	if cfg.initialArticles != nil {
		st.Pool = slices.Clone(cfg.initialArticles)
		initial = stateSelecting
	}

	logger.Info("starting research run", "team_id", teamID,
		"min_articles", r.minArticles, "max_articles", r.maxArticles)
	res, err := r.run(ctx, logger, st, initial)
	if err != nil {
		logger.Warn("research run failed", "articles_read", res.ArticlesRead, "err", err)
		return res, err
	}
	logger.Info("research run finished",
		"articles_read", res.ArticlesRead, "reason", string(res.Reason),
		"complete", res.Profile.Complete())
	return res, nil
}
