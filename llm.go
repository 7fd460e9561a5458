package huddle

import "context"

// LLMRanker implements TextRanker on top of any LLMProvider, using the
// built-in relevance prompt and response parsing. Parse failures surface as
// ErrMalformedResponse; transport-level failures (including ErrRateLimited)
// pass through from the provider untouched.
type LLMRanker struct {
	model LLMProvider
}

// NewLLMRanker constructs a ranker backed by the given model.
func NewLLMRanker(model LLMProvider) *LLMRanker {
	return &LLMRanker{model: model}
}

// SelectMostRelevant asks the model for the single most relevant article ID.
func (r *LLMRanker) SelectMostRelevant(ctx context.Context, teamName string, candidates []Article) (int, error) {
	resp, err := r.model.Generate(ctx, rankerSystemPrompt, buildRankerUserPrompt(teamName, candidates))
	if err != nil {
		return 0, err
	}
	return parseRankerResponse(getContent(resp))
}

// LLMExtractor implements StructuredExtractor on top of any LLMProvider,
// using the built-in extraction prompt and JSON schema.
type LLMExtractor struct {
	model LLMProvider
}

// NewLLMExtractor constructs an extractor backed by the given model.
func NewLLMExtractor(model LLMProvider) *LLMExtractor {
	return &LLMExtractor{model: model}
}

// Extract asks the model for a sparse partial profile for the team.
func (e *LLMExtractor) Extract(ctx context.Context, teamName, articleText string) (PartialProfile, error) {
	resp, err := e.model.Generate(ctx, extractorSystemPrompt, buildExtractorUserPrompt(teamName, articleText))
	if err != nil {
		return PartialProfile{}, err
	}
	return parseExtractorResponse(getContent(resp))
}
