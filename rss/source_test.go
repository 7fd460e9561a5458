package rss

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smhanov/huddle"
)

const feedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Eagles News</title>
  <item>
    <title>Injury report ahead of Sunday</title>
    <link>https://example.com/articles/1</link>
    <guid>eagles-1</guid>
    <description>&lt;p&gt;Status updates for the &lt;b&gt;week 18&lt;/b&gt; matchup.&lt;/p&gt;</description>
    <pubDate>Sat, 03 Jan 2026 15:04:05 GMT</pubDate>
    <category>Philadelphia Eagles</category>
  </item>
  <item>
    <title>Practice notes</title>
    <link>https://example.com/articles/2</link>
    <guid>eagles-2</guid>
    <pubDate>Fri, 02 Jan 2026 10:00:00 GMT</pubDate>
  </item>
</channel>
</rss>`

func TestListArticles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(feedXML))
	}))
	defer server.Close()

	source := NewSourceWithClient(server.URL, server.Client())
	articles, err := source.ListArticles(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	first := articles[0]
	assert.Equal(t, "Injury report ahead of Sunday", first.Headline)
	assert.Equal(t, "https://example.com/articles/1", first.URL)
	assert.Equal(t, "Status updates for the week 18 matchup.", first.Description)
	assert.Equal(t, []string{"Philadelphia Eagles"}, first.Teams)
	assert.Equal(t, 2026, first.Published.Year())
	assert.NotZero(t, first.ID)

	// IDs are stable across listings and distinct per item
	again, err := source.ListArticles(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again[0].ID)
	assert.NotEqual(t, articles[0].ID, articles[1].ID)
}

func TestListArticlesBadFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not a feed"))
	}))
	defer server.Close()

	source := NewSourceWithClient(server.URL, server.Client())
	_, err := source.ListArticles(context.Background(), 0)
	assert.ErrorIs(t, err, huddle.ErrSourceUnavailable)
}

var _ huddle.ArticleSource = (*Source)(nil)
