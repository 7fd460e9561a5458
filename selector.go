package huddle

import (
	"context"
	"errors"
	"log/slog"
)

// RelevanceSelector picks the next article to read. It is stateless: the
// caller removes the chosen article from future candidate pools, which keeps
// selection independently testable.
type RelevanceSelector struct {
	ranker TextRanker
	retry  retryPolicy
}

// NewRelevanceSelector wraps a TextRanker with the library's retry and
// validation behavior.
func NewRelevanceSelector(ranker TextRanker) *RelevanceSelector {
	return &RelevanceSelector{ranker: ranker, retry: defaultRetryPolicy}
}

// Select returns the most relevant candidate, or nil when the pool is empty.
// An empty pool never invokes the ranker. A ranker ID that matches no
// candidate, or output that cannot be parsed into an ID, is a
// *SelectionError: silently picking a different article would corrupt the
// profile, so the violation is surfaced instead.
func (s *RelevanceSelector) Select(ctx context.Context, logger *slog.Logger, teamName string, candidates []Article) (*Article, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	var id int
	err := s.retry.do(ctx, logger, "select article", func() error {
		var rankErr error
		id, rankErr = s.ranker.SelectMostRelevant(ctx, teamName, candidates)
		return rankErr
	})
	if err != nil {
		if errors.Is(err, ErrMalformedResponse) {
			return nil, &SelectionError{Cause: err}
		}
		return nil, err
	}

	for _, a := range candidates {
		if a.ID == id {
			chosen := a
			return &chosen, nil
		}
	}
	return nil, &SelectionError{ID: id}
}
