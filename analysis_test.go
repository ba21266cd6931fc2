package radar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

const searchBody = `{
	"query": "dark patterns",
	"version": "1.7",
	"search_quality": "strong",
	"total_found": 4,
	"suggestion": {"infringement_id": "dp_01", "infringement_name": "Forced continuity", "confidence": "high", "score": 80},
	"results": [
		{"infringement_id": "dp_01", "infringement_name": "Forced continuity", "category_id": "dp", "category_name": "Dark Patterns", "relevance_score": 80, "description": "Subscriptions that are hard to cancel", "matched_terms": ["dark", "patterns"], "matched_observables": ["cancellation flow hidden"]},
		{"infringement_id": "dp_02", "infringement_name": "Confirmshaming", "category_id": "dp", "category_name": "Dark Patterns", "relevance_score": 60, "matched_terms": ["patterns"]},
		{"infringement_id": "tr_01", "infringement_name": "Hidden ad labels", "category_id": "tr", "category_name": "Transparency", "relevance_score": 35, "matched_terms": ["dark"]},
		{"infringement_id": "mod_01", "infringement_name": "Silent takedowns", "category_id": "mod", "category_name": "Moderation", "relevance_score": 20, "matched_terms": ["dark"]}
	]
}`

func TestSearchAndAnalyze(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(searchBody), nil
	})
	c := New("http://example.com", "https://example.com/contact",
		WithHTTPClient(&http.Client{Transport: rt}))

	analysis, err := c.SearchAndAnalyze(context.Background(), "dark patterns", false, "")
	if err != nil {
		t.Fatalf("SearchAndAnalyze: %v", err)
	}
	if analysis.Query != "dark patterns" || analysis.Version != "1.7" || analysis.Quality != "strong" || analysis.TotalFound != 4 {
		t.Fatalf("unexpected analysis header: %+v", analysis)
	}
	if analysis.Suggestion == nil || analysis.Suggestion.InfringementName != "Forced continuity" {
		t.Fatalf("suggestion not carried: %+v", analysis.Suggestion)
	}
	if len(analysis.TopMatches) != 3 {
		t.Fatalf("expected top matches capped at 3, got %d", len(analysis.TopMatches))
	}
	first := analysis.TopMatches[0]
	if first.ID != "dp_01" || first.Name != "Forced continuity" || first.Category != "Dark Patterns" || first.Score != 80 {
		t.Fatalf("unexpected first match: %+v", first)
	}
	if first.Description != "" || first.MatchedTerms != nil || first.Observables != nil {
		t.Fatalf("verbose fields set on non-verbose analysis: %+v", first)
	}
}

func TestSearchAndAnalyze_Verbose(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(searchBody), nil
	})
	c := New("http://example.com", "https://example.com/contact",
		WithHTTPClient(&http.Client{Transport: rt}))

	analysis, err := c.SearchAndAnalyze(context.Background(), "dark patterns", true, "")
	if err != nil {
		t.Fatalf("SearchAndAnalyze: %v", err)
	}
	first := analysis.TopMatches[0]
	if first.Description != "Subscriptions that are hard to cancel" {
		t.Fatalf("description not carried: %+v", first)
	}
	if len(first.MatchedTerms) != 2 || first.MatchedTerms[0] != "dark" {
		t.Fatalf("matched terms not carried: %+v", first)
	}
	if len(first.Observables) != 1 || first.Observables[0] != "cancellation flow hidden" {
		t.Fatalf("matched observables not carried: %+v", first)
	}
}

func TestSearchAndAnalyze_UnknownQuality(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(`{"query": "x", "total_found": 0, "results": []}`), nil
	})
	c := New("http://example.com", "https://example.com/contact",
		WithHTTPClient(&http.Client{Transport: rt}))

	analysis, err := c.SearchAndAnalyze(context.Background(), "x", false, "")
	if err != nil {
		t.Fatalf("SearchAndAnalyze: %v", err)
	}
	if analysis.Quality != "unknown" {
		t.Fatalf("quality = %q, want unknown fallback", analysis.Quality)
	}
	if len(analysis.TopMatches) != 0 {
		t.Fatalf("unexpected matches: %+v", analysis.TopMatches)
	}
}

func TestSearchAndAnalyze_PassesVersion(t *testing.T) {
	var captured *http.Request
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		captured = r
		return jsonResponse(searchBody), nil
	})
	c := New("http://example.com", "https://example.com/contact",
		WithHTTPClient(&http.Client{Transport: rt}))

	if _, err := c.SearchAndAnalyze(context.Background(), "dark patterns", false, "1.4"); err != nil {
		t.Fatalf("SearchAndAnalyze: %v", err)
	}
	if got := captured.URL.Query().Get("version"); got != "1.4" {
		t.Fatalf("version param = %q", got)
	}
}

func TestGetInfringementFull(t *testing.T) {
	var paths []string
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/api/v1/infringements/dp_01":
			return jsonResponse(`{"id": "dp_01", "name": "Forced continuity", "category": {"id": "dp", "name": "Dark Patterns"}, "observables": ["a", "b"]}`), nil
		case "/api/v1/categories/dp":
			return jsonResponse(`{"id": "dp", "name": "Dark Patterns", "description": "Deceptive interface design", "infringement_count": 2}`), nil
		}
		return &http.Response{StatusCode: http.StatusNotFound, Header: make(http.Header), Body: http.NoBody}, nil
	})
	c := New("http://example.com", "https://example.com/contact",
		WithHTTPClient(&http.Client{Transport: rt}))

	full, err := c.GetInfringementFull(context.Background(), "dp_01", "")
	if err != nil {
		t.Fatalf("GetInfringementFull: %v", err)
	}
	if len(paths) != 2 || paths[1] != "/api/v1/categories/dp" {
		t.Fatalf("unexpected request sequence: %v", paths)
	}
	if full.ID != "dp_01" || len(full.Observables) != 2 {
		t.Fatalf("infringement fields lost: %+v", full)
	}
	if full.CategoryFull == nil ||
		full.CategoryFull.ID != "dp" ||
		full.CategoryFull.Name != "Dark Patterns" ||
		full.CategoryFull.Description != "Deceptive interface design" {
		t.Fatalf("unexpected category summary: %+v", full.CategoryFull)
	}
}

func TestGetInfringementFull_NoCategoryReference(t *testing.T) {
	var calls int
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		return jsonResponse(`{"id": "dp_01", "name": "Forced continuity"}`), nil
	})
	c := New("http://example.com", "https://example.com/contact",
		WithHTTPClient(&http.Client{Transport: rt}))

	full, err := c.GetInfringementFull(context.Background(), "dp_01", "")
	if err != nil {
		t.Fatalf("GetInfringementFull: %v", err)
	}
	if full.CategoryFull != nil {
		t.Fatalf("category summary for a payload without category: %+v", full.CategoryFull)
	}
	if calls != 1 {
		t.Fatalf("expected a single request, got %d", calls)
	}
}

func TestGetInfringementFull_CategoryLookupFails(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		if r.URL.Path == "/api/v1/infringements/dp_01" {
			return jsonResponse(`{"id": "dp_01", "name": "Forced continuity", "category": {"id": "dp"}}`), nil
		}
		return &http.Response{StatusCode: http.StatusInternalServerError, Header: make(http.Header), Body: http.NoBody}, nil
	})
	c := New("http://example.com", "https://example.com/contact",
		WithHTTPClient(&http.Client{Transport: rt}))

	if _, err := c.GetInfringementFull(context.Background(), "dp_01", ""); !IsAPIError(err) {
		t.Fatalf("expected APIError from category lookup, got %v", err)
	}
}

func TestQuickSearch(t *testing.T) {
	var captured *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"query":       "dark patterns",
			"total_found": 1,
			"results": []map[string]any{
				{"infringement_id": "dp_01", "infringement_name": "Forced continuity", "category_name": "Dark Patterns", "relevance_score": 80},
			},
		})
	}))
	defer srv.Close()

	results, err := QuickSearch(context.Background(), srv.URL, "https://example.com/contact", "dark patterns", "1.6")
	if err != nil {
		t.Fatalf("QuickSearch: %v", err)
	}
	if len(results) != 1 || results[0].InfringementID != "dp_01" {
		t.Fatalf("unexpected results: %+v", results)
	}
	if captured.URL.Path != "/api/v1/infringements/search" {
		t.Fatalf("unexpected path %s", captured.URL.Path)
	}
	q := captured.URL.Query()
	if q.Get("q") != "dark patterns" || q.Get("version") != "1.6" {
		t.Fatalf("unexpected query: %q", captured.URL.RawQuery)
	}
	if got, want := captured.Header.Get("User-Agent"), "RADAR-Go-Client/2.0.0 (https://example.com/contact)"; got != want {
		t.Fatalf("User-Agent = %q, want %q", got, want)
	}
}
