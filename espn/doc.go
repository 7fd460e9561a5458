// Package espn provides a huddle.ArticleSource backed by ESPN's public site
// API.
//
// The source lists team news articles, resolves team names to ESPN team IDs,
// and fetches article content through the fetch package. Responses are cached
// in an explicitly constructed TTL cache that can be shared between sources
// and cleared between test runs, and outgoing API requests are paced through
// a per-source gate.
//
// # Example
//
//	source := espn.NewSource()
//	teamID, err := source.TeamID(ctx, "Eagles")
//	articles, err := source.ListArticles(ctx, teamID)
//
// Pass the source to a Researcher:
//
//	researcher := huddle.New(huddle.WithArticleSource(source), ...)
package espn
