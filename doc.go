// Package huddle researches an NFL team by iteratively reading news articles
// and merging structured facts into a cumulative team profile.
//
// Each iteration selects the most relevant unread article, fetches its
// content, extracts a sparse PartialProfile with a language model, and merges
// it into the accumulated TeamProfile. The loop stops once the profile is
// plausibly complete, the candidate pool runs out, or the article cap is hit.
//
// # Architecture
//
// The loop is an explicit state machine:
//
//	fetch list → select → fetch content → extract → merge → evaluate → {select | done}
//
//  1. An ArticleSource lists candidate articles for the team.
//  2. The RelevanceSelector asks a TextRanker for the single best candidate;
//     the chosen article is removed from the pool so it is never read twice.
//  3. The source fetches and truncates the article's main text.
//  4. A StructuredExtractor pulls out prediction-relevant facts.
//  5. The merge is per-field and monotonic: lists only grow (insertion-stable,
//     deduplicated), and the coaching summary grows by concatenation. Merging
//     the same facts twice changes nothing.
//
// A single bad article never stops a run: fetch and extraction failures are
// logged, counted, and skipped. Contract violations — the ranker naming an
// article that is not in the pool, or a source that cannot list at all —
// surface as typed errors instead.
//
// # Basic Usage
//
//	researcher := huddle.New(
//	    huddle.WithArticleSource(espn.NewSource()),
//	    huddle.WithRankerModel(myLLM),
//	    huddle.WithExtractorModel(myLLM),
//	)
//
//	result, err := researcher.ResearchTeam(ctx, "Eagles", 21)
//	fmt.Println(result.Profile.CoachingSummary)
//	fmt.Printf("read %d articles (%s)\n", result.ArticlesRead, result.Reason)
//
// # Interfaces
//
// Implement LLMProvider to connect any language model:
//
//	type LLMProvider interface {
//	    Generate(ctx context.Context, systemPrompt, userPrompt string) (LLMResponse, error)
//	}
//
// Providers should wrap ErrRateLimited on rate-limit responses; the library
// retries those with exponential backoff. Custom rankers and extractors can
// replace the built-in prompt-based ones via WithRanker and WithExtractor.
//
// Independent teams (for example both sides of a matchup) can be researched
// concurrently with the same Researcher; iterations within one run are
// strictly sequential.
//
// The espn, rss, and fetch subpackages provide ready-made article sources and
// a content fetcher. See examples/basic for a complete program.
package huddle
