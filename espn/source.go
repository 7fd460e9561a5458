package espn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/smhanov/huddle"
	"github.com/smhanov/huddle/fetch"
)

const defaultSiteAPIURL = "https://site.api.espn.com/apis/site/v2/sports/football/nfl"

const (
	newsTTL  = 5 * time.Minute
	teamsTTL = 1 * time.Hour
)

// Source implements huddle.ArticleSource against ESPN's site API. A Source
// is safe for concurrent research runs; its cache and request gate are
// shared across them.
type Source struct {
	siteAPIURL string
	client     *http.Client
	cache      *Cache
	gate       *hostGate
	fetcher    *fetch.HTTPFetcher
}

// Option configures a Source.
type Option func(*Source)

// WithHTTPClient overrides the HTTP client used for API calls and article
// content fetching.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Source) { s.client = client }
}

// WithCache supplies a cache, typically to share one between sources or to
// control it from tests.
func WithCache(cache *Cache) Option {
	return func(s *Source) { s.cache = cache }
}

// NewSource constructs an ESPN article source.
func NewSource(opts ...Option) *Source {
	s := &Source{
		siteAPIURL: defaultSiteAPIURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		gate:       newHostGate(250 * time.Millisecond),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = NewCache()
	}
	s.fetcher = fetch.NewHTTPWithClient(s.client)
	return s
}

// newsResponse mirrors the site API news payload.
type newsResponse struct {
	Articles []struct {
		ID          int    `json:"id"`
		Headline    string `json:"headline"`
		Description string `json:"description"`
		Published   string `json:"published"`
		Links       struct {
			Web struct {
				Href string `json:"href"`
			} `json:"web"`
		} `json:"links"`
		Categories []struct {
			Type        string `json:"type"`
			Description string `json:"description"`
		} `json:"categories"`
	} `json:"articles"`
}

// ListArticles returns the current news listing for a team, most recent
// first, as ordered by ESPN. Listings are cached for a few minutes.
func (s *Source) ListArticles(ctx context.Context, teamID int) ([]huddle.Article, error) {
	key := "news/" + strconv.Itoa(teamID)
	if v, ok := s.cache.get(key); ok {
		// Callers get their own slice; the cached listing must survive
		// whatever they do with theirs.
		return slices.Clone(v.([]huddle.Article)), nil
	}

	url := fmt.Sprintf("%s/news?team=%d&limit=50", s.siteAPIURL, teamID)
	var payload newsResponse
	if err := s.getJSON(ctx, url, &payload); err != nil {
		return nil, sourceErr(err)
	}

	articles := make([]huddle.Article, 0, len(payload.Articles))
	for _, raw := range payload.Articles {
		a := huddle.Article{
			ID:          raw.ID,
			Headline:    raw.Headline,
			Description: raw.Description,
			URL:         raw.Links.Web.Href,
		}
		if t, err := time.Parse(time.RFC3339, raw.Published); err == nil {
			a.Published = t
		}
		for _, cat := range raw.Categories {
			switch cat.Type {
			case "team":
				if cat.Description != "" {
					a.Teams = append(a.Teams, cat.Description)
				}
			case "athlete":
				if cat.Description != "" {
					a.Players = append(a.Players, cat.Description)
				}
			}
		}
		articles = append(articles, a)
	}

	s.cache.put(key, articles, newsTTL)
	return slices.Clone(articles), nil
}

// FetchContent retrieves and normalizes an article's main text.
func (s *Source) FetchContent(ctx context.Context, url string, maxLength int) (string, error) {
	return s.fetcher.Fetch(ctx, url, maxLength)
}

// teamsResponse mirrors the site API team listing payload.
type teamsResponse struct {
	Sports []struct {
		Leagues []struct {
			Teams []struct {
				Team struct {
					ID           string `json:"id"`
					Name         string `json:"name"`
					DisplayName  string `json:"displayName"`
					Abbreviation string `json:"abbreviation"`
					Location     string `json:"location"`
				} `json:"team"`
			} `json:"teams"`
		} `json:"leagues"`
	} `json:"sports"`
}

// TeamID resolves a team name ("Eagles", "Philadelphia Eagles", "PHI") to an
// ESPN team ID. The league team listing is cached for an hour.
func (s *Source) TeamID(ctx context.Context, name string) (int, error) {
	const key = "teams"
	payload, ok := s.cache.get(key)
	if !ok {
		var fresh teamsResponse
		if err := s.getJSON(ctx, s.siteAPIURL+"/teams", &fresh); err != nil {
			return 0, sourceErr(err)
		}
		payload = fresh
		s.cache.put(key, fresh, teamsTTL)
	}

	want := strings.ToLower(strings.TrimSpace(name))
	teams := payload.(teamsResponse)
	for _, sport := range teams.Sports {
		for _, league := range sport.Leagues {
			for _, entry := range league.Teams {
				t := entry.Team
				if want == strings.ToLower(t.Name) ||
					want == strings.ToLower(t.DisplayName) ||
					want == strings.ToLower(t.Abbreviation) ||
					want == strings.ToLower(t.Location) {
					id, err := strconv.Atoi(t.ID)
					if err != nil {
						return 0, fmt.Errorf("%w: bad team id %q", huddle.ErrSourceUnavailable, t.ID)
					}
					return id, nil
				}
			}
		}
	}
	return 0, fmt.Errorf("unknown team %q", name)
}

// sourceErr classifies a request failure. Context cancellation is the
// caller's doing, not ESPN's, so it passes through unwrapped and stays
// matchable with errors.Is(err, context.Canceled).
func sourceErr(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %v", huddle.ErrSourceUnavailable, err)
}

func (s *Source) getJSON(ctx context.Context, url string, out any) error {
	if err := s.gate.wait(ctx); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("espn http %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
