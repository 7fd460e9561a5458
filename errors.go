package huddle

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure taxonomy. Collaborator implementations wrap
// these so the loop can classify failures with errors.Is.
var (
	// ErrRateLimited marks a transient rate-limit condition from an external
	// model call. The library retries it with exponential backoff.
	ErrRateLimited = errors.New("rate limited")

	// ErrMalformedResponse marks model output that could not be parsed
	// against the expected contract.
	ErrMalformedResponse = errors.New("malformed model response")

	// ErrContentUnavailable marks a failed or empty content fetch for a
	// single article. Non-fatal: the iteration contributes no facts.
	ErrContentUnavailable = errors.New("article content unavailable")

	// ErrSourceUnavailable marks a failure to list articles at all.
	// Fatal at loop start; there is no partial profile to return.
	ErrSourceUnavailable = errors.New("article source unavailable")

	// ErrExtractionUnavailable marks a model call that stayed rate-limited
	// through every retry attempt.
	ErrExtractionUnavailable = errors.New("extraction unavailable")

	// ErrNoArticles is returned when the source listed zero candidates, so
	// research could not proceed at all. Distinct from a run that read
	// articles and exhausted the pool, which terminates normally.
	ErrNoArticles = errors.New("no articles found for team")
)

// SelectionError reports a contract violation by the ranker: it returned an
// article ID that is not in the candidate set, or output that could not be
// parsed into an ID at all. Fatal for the run — retrying against the same
// candidate set risks repeating the same invalid response.
type SelectionError struct {
	ID    int   // the invalid ID, when one was parsed
	Cause error // parse failure, when no ID was recovered
}

func (e *SelectionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("article selection failed: %v", e.Cause)
	}
	return fmt.Sprintf("selector returned article id %d which is not in the candidate set", e.ID)
}

func (e *SelectionError) Unwrap() error { return e.Cause }
