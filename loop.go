package huddle

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
)

// loopState enumerates the research loop's states. Modeling the loop as an
// explicit machine keeps every transition and its guard independently
// testable.
type loopState int

const (
	stateFetchingList loopState = iota
	stateSelecting
	stateFetchingContent
	stateExtracting
	stateMerging
	stateEvaluating
	stateDone
)

func (s loopState) String() string {
	switch s {
	case stateFetchingList:
		return "fetching-list"
	case stateSelecting:
		return "selecting"
	case stateFetchingContent:
		return "fetching-content"
	case stateExtracting:
		return "extracting"
	case stateMerging:
		return "merging"
	case stateEvaluating:
		return "evaluating"
	case stateDone:
		return "done"
	}
	return fmt.Sprintf("loopState(%d)", int(s))
}

// run drives the state machine to completion. Per-article failures are
// absorbed: a fetch or extraction error means the iteration merges nothing
// but still counts as an article read. Per-run failures (source down, no
// candidates ever, ranker contract violation) propagate as typed errors so
// callers can tell "nothing found" from "could not proceed".
func (r *Researcher) run(ctx context.Context, logger *slog.Logger, st *ResearchState, state loopState) (Result, error) {
	var (
		selected *Article
		content  string
		partial  *PartialProfile
		reason   TerminationReason
	)

	for step := 0; state != stateDone; step++ {
		if step >= r.executionBudget {
			// Safety valve; with sane min/max settings this is unreachable.
			logger.Warn("execution budget exhausted", "steps", step)
			reason = ReasonCapReached
			break
		}

		switch state {
		case stateFetchingList:
			articles, err := r.source.ListArticles(ctx, st.TeamID)
			if err != nil {
				return Result{}, fmt.Errorf("list articles for team %d: %w", st.TeamID, err)
			}
			logger.Debug("listed candidate articles", "count", len(articles))
			// The pool is consumed destructively as articles are selected, so
			// the loop must own its own copy; sources may cache and re-serve
			// the listing they returned.
			st.Pool = slices.Clone(articles)
			state = stateSelecting

		case stateSelecting:
			// Cancellation is honored between iterations only; the profile
			// accumulated so far remains a valid result.
			if ctxErr := ctx.Err(); ctxErr != nil {
				return Result{Profile: st.Profile, ArticlesRead: st.ArticlesRead, Reason: ReasonCancelled}, ctxErr
			}
			selected, content, partial = nil, "", nil

			chosen, err := r.selector.Select(ctx, logger, st.TeamName, st.Pool)
			if err != nil {
				return Result{Profile: st.Profile, ArticlesRead: st.ArticlesRead}, err
			}
			if chosen == nil {
				if st.ArticlesRead == 0 {
					return Result{}, fmt.Errorf("%w: team %d", ErrNoArticles, st.TeamID)
				}
				reason = ReasonExhausted
				state = stateDone
				continue
			}
			st.removeArticle(chosen.ID)
			selected = chosen
			logger.Debug("selected article", "article_id", chosen.ID, "headline", chosen.Headline)
			state = stateFetchingContent

		case stateFetchingContent:
			text, err := r.source.FetchContent(ctx, selected.URL, r.maxContentLength)
			if err != nil {
				logger.Warn("content fetch failed, skipping article",
					"article_id", selected.ID, "url", selected.URL, "err", err)
				state = stateMerging
				continue
			}
			content = text
			state = stateExtracting

		case stateExtracting:
			p, err := r.facts.Extract(ctx, logger, st.TeamName, content)
			if err != nil {
				logger.Warn("fact extraction failed, skipping article",
					"article_id", selected.ID, "err", err)
			} else if !p.empty() {
				// A factless extraction merges nothing; the profile stays nil
				// until an article actually contributes something.
				partial = &p
			}
			state = stateMerging

		case stateMerging:
			if partial != nil {
				st.Profile = mergeProfile(st.Profile, *partial)
				if st.Profile.Name == "" {
					st.Profile.Name = st.TeamName
				}
			}
			// The read counts whether or not it contributed facts.
			st.ArticlesRead++
			logger.Debug("merged article facts",
				"article_id", selected.ID, "articles_read", st.ArticlesRead,
				"merged", partial != nil)
			state = stateEvaluating

		case stateEvaluating:
			state, reason = r.evaluate(st)
			if state == stateDone {
				logger.Debug("stop condition met", "reason", string(reason))
			}
		}
	}

	return Result{Profile: st.Profile, ArticlesRead: st.ArticlesRead, Reason: reason}, nil
}

// evaluate applies the stop policy, in order: always continue below the
// minimum read count, always stop above the cap, otherwise stop only once
// the profile is plausibly complete.
func (r *Researcher) evaluate(st *ResearchState) (loopState, TerminationReason) {
	if st.ArticlesRead < r.minArticles {
		return stateSelecting, ""
	}
	if st.ArticlesRead > r.maxArticles {
		return stateDone, ReasonCapReached
	}
	if st.Profile.Complete() {
		return stateDone, ReasonComplete
	}
	return stateSelecting, ""
}
