package huddle

import "log/slog"

const (
	defaultMinArticles      = 5
	defaultMaxArticles      = 10
	defaultMaxContentLength = 5000

	// defaultExecutionBudget caps total state transitions per run. A safety
	// valve against runaway loops, not a semantic parameter: the article cap
	// always fires long before this does.
	defaultExecutionBudget = 100
)

// Option configures a Researcher.
type Option func(*Researcher)

// WithArticleSource sets the article listing/content collaborator.
func WithArticleSource(source ArticleSource) Option {
	return func(r *Researcher) { r.source = source }
}

// WithRanker sets the relevance ranking implementation directly.
func WithRanker(ranker TextRanker) Option {
	return func(r *Researcher) { r.ranker = ranker }
}

// WithRankerModel backs relevance ranking with a generic language model,
// using the built-in prompt and parser.
func WithRankerModel(m LLMProvider) Option {
	return func(r *Researcher) { r.ranker = NewLLMRanker(m) }
}

// WithExtractor sets the fact extraction implementation directly.
func WithExtractor(extractor StructuredExtractor) Option {
	return func(r *Researcher) { r.extractor = extractor }
}

// WithExtractorModel backs fact extraction with a generic language model,
// using the built-in prompt and schema.
func WithExtractorModel(m LLMProvider) Option {
	return func(r *Researcher) { r.extractor = NewLLMExtractor(m) }
}

// WithMinArticles sets the number of articles always read before the
// completeness criteria are consulted.
func WithMinArticles(n int) Option {
	return func(r *Researcher) {
		if n > 0 {
			r.minArticles = n
		}
	}
}

// WithMaxArticles sets the article cap: once the count exceeds it, the run
// terminates regardless of completeness.
func WithMaxArticles(n int) Option {
	return func(r *Researcher) {
		if n > 0 {
			r.maxArticles = n
		}
	}
}

// WithMaxContentLength sets the truncation length passed to FetchContent.
func WithMaxContentLength(n int) Option {
	return func(r *Researcher) {
		if n > 0 {
			r.maxContentLength = n
		}
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Researcher) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithExecutionBudget overrides the internal transition safety valve.
func WithExecutionBudget(n int) Option {
	return func(r *Researcher) {
		if n > 0 {
			r.executionBudget = n
		}
	}
}
