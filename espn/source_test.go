package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smhanov/huddle"
)

const newsPayload = `{
  "header": "Philadelphia Eagles News",
  "articles": [
    {
      "id": 101,
      "headline": "Eagles injury report",
      "description": "Status updates ahead of Sunday",
      "published": "2026-01-03T15:04:05Z",
      "links": {"web": {"href": "https://example.com/101"}},
      "categories": [
        {"type": "team", "description": "Philadelphia Eagles"},
        {"type": "athlete", "description": "Jalen Hurts"}
      ]
    },
    {
      "id": 102,
      "headline": "Week 18 preview",
      "published": "2026-01-02T10:00:00Z",
      "links": {"web": {"href": "https://example.com/102"}},
      "categories": []
    }
  ]
}`

const teamsPayload = `{
  "sports": [{"leagues": [{"teams": [
    {"team": {"id": "21", "name": "Eagles", "displayName": "Philadelphia Eagles", "abbreviation": "PHI", "location": "Philadelphia"}},
    {"team": {"id": "6", "name": "Cowboys", "displayName": "Dallas Cowboys", "abbreviation": "DAL", "location": "Dallas"}}
  ]}]}]
}`

func newTestSource(t *testing.T, handler http.Handler) (*Source, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	source := NewSource(WithHTTPClient(server.Client()))
	source.siteAPIURL = server.URL
	source.gate = newHostGate(0)
	return source, server
}

func TestListArticles(t *testing.T) {
	hits := 0
	source, _ := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "/news", r.URL.Path)
		assert.Equal(t, "21", r.URL.Query().Get("team"))
		w.Write([]byte(newsPayload))
	}))

	articles, err := source.ListArticles(context.Background(), 21)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	first := articles[0]
	assert.Equal(t, 101, first.ID)
	assert.Equal(t, "Eagles injury report", first.Headline)
	assert.Equal(t, "https://example.com/101", first.URL)
	assert.Equal(t, []string{"Philadelphia Eagles"}, first.Teams)
	assert.Equal(t, []string{"Jalen Hurts"}, first.Players)
	assert.Equal(t, 2026, first.Published.Year())

	// second listing is served from cache
	_, err = source.ListArticles(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, 1, hits)

	// clearing the cache forces a fresh request
	source.cache.Clear()
	_, err = source.ListArticles(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}

// Callers own the slices they are handed. Mutating one must not bleed into
// what the cache serves to the next caller.
func TestListArticlesCallersGetCopies(t *testing.T) {
	source, _ := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(newsPayload))
	}))

	first, err := source.ListArticles(context.Background(), 21)
	require.NoError(t, err)
	require.Len(t, first, 2)
	first[0], first[1] = huddle.Article{}, huddle.Article{}

	second, err := source.ListArticles(context.Background(), 21)
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, 101, second[0].ID)
	assert.Equal(t, 102, second[1].ID)
}

func TestListArticlesServerError(t *testing.T) {
	source, _ := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := source.ListArticles(context.Background(), 21)
	assert.ErrorIs(t, err, huddle.ErrSourceUnavailable)
}

// A cancelled caller is not an ESPN outage; the cancellation must stay
// matchable and not be reported as a source failure.
func TestListArticlesCancelledContext(t *testing.T) {
	source, _ := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(newsPayload))
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.ListArticles(ctx, 21)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, huddle.ErrSourceUnavailable)
}

func TestTeamID(t *testing.T) {
	hits := 0
	source, _ := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "/teams", r.URL.Path)
		w.Write([]byte(teamsPayload))
	}))

	for _, name := range []string{"Eagles", "philadelphia eagles", "PHI", "Philadelphia"} {
		id, err := source.TeamID(context.Background(), name)
		require.NoError(t, err, "lookup %q", name)
		assert.Equal(t, 21, id, "lookup %q", name)
	}
	assert.Equal(t, 1, hits, "team listing should be cached")

	id, err := source.TeamID(context.Background(), "DAL")
	require.NoError(t, err)
	assert.Equal(t, 6, id)

	_, err = source.TeamID(context.Background(), "Sharks")
	assert.ErrorContains(t, err, "unknown team")
}

func TestSharedCacheAcrossSources(t *testing.T) {
	hits := 0
	cache := NewCache()
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.Write([]byte(newsPayload))
	})

	a, server := newTestSource(t, handler)
	a.cache = cache

	b := NewSource(WithHTTPClient(server.Client()), WithCache(cache))
	b.siteAPIURL = server.URL
	b.gate = newHostGate(0)

	_, err := a.ListArticles(context.Background(), 21)
	require.NoError(t, err)
	_, err = b.ListArticles(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}
