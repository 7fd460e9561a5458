package huddle

import (
	"context"
	"log/slog"
)

// FactExtractor wraps a StructuredExtractor with the library's rate-limit
// retry behavior. The extractor's output is trusted as-is; factual accuracy
// is an offline evaluation concern.
type FactExtractor struct {
	extractor StructuredExtractor
	retry     retryPolicy
}

// NewFactExtractor wraps a StructuredExtractor.
func NewFactExtractor(extractor StructuredExtractor) *FactExtractor {
	return &FactExtractor{extractor: extractor, retry: defaultRetryPolicy}
}

// Extract pulls a partial profile out of article text, retrying rate-limited
// calls with backoff.
func (e *FactExtractor) Extract(ctx context.Context, logger *slog.Logger, teamName, articleText string) (PartialProfile, error) {
	var partial PartialProfile
	err := e.retry.do(ctx, logger, "extract facts", func() error {
		var exErr error
		partial, exErr = e.extractor.Extract(ctx, teamName, articleText)
		return exErr
	})
	return partial, err
}
