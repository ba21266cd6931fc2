// Package radartest provides an in-memory RADAR Framework API server for
// testing clients without a live deployment. It serves fixture taxonomy
// data over the same routes and JSON shapes as the real service, resolves
// the version query parameter against the fixture versions, and supports
// failure injection for exercising error paths.
package radartest

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	radar "github.com/CheckFirstHQ/RADAR-API-client"
)

// Version is one published framework snapshot served by the fake API.
type Version struct {
	Version       string
	Date          string
	Categories    []radar.Category
	Infringements []radar.Infringement
}

// Server serves fixture taxonomy data over HTTP. Create one with New, point
// a client at s.URL and Close it when done.
type Server struct {
	*httptest.Server

	mu           sync.Mutex
	versions     []Version // most recent first
	failPaths    map[string]int
	failVersions map[string]int
	hits         map[string]int
}

// New starts a Server publishing the given versions, ordered most recent
// first. With no versions every version-scoped endpoint answers 404.
func New(versions ...Version) *Server {
	s := &Server{
		versions:     versions,
		failPaths:    map[string]int{},
		failVersions: map[string]int{},
		hits:         map[string]int{},
	}

	router := mux.NewRouter()
	router.Use(s.observe)

	router.HandleFunc("/api/v1", s.handleAPIInfo).Methods("GET")
	router.HandleFunc("/api/v1/versions", s.handleVersions).Methods("GET")
	router.HandleFunc("/api/v1/framework", s.handleFramework).Methods("GET")
	router.HandleFunc("/api/v1/categories", s.handleCategories).Methods("GET")
	router.HandleFunc("/api/v1/categories/{categoryId}", s.handleCategory).Methods("GET")
	router.HandleFunc("/api/v1/categories/{categoryId}/infringements", s.handleCategoryInfringements).Methods("GET")
	router.HandleFunc("/api/v1/infringements", s.handleInfringements).Methods("GET")
	// Registered before the {infringementId} route so "search" is not taken for an ID.
	router.HandleFunc("/api/v1/infringements/search", s.handleSearch).Methods("GET")
	router.HandleFunc("/api/v1/infringements/{infringementId}", s.handleInfringement).Methods("GET")
	router.HandleFunc("/api/v1/dsa-articles", s.handleDSAArticles).Methods("GET")
	router.HandleFunc("/api/v1/stats", s.handleStats).Methods("GET")
	router.HandleFunc("/api/v1/health", s.handleHealth).Methods("GET")

	s.Server = httptest.NewServer(router)
	return s
}

// FailPath forces every request for the exact path to fail with status.
func (s *Server) FailPath(path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failPaths[path] = status
}

// FailVersion forces every request that explicitly selects the given
// framework version to fail with status.
func (s *Server) FailVersion(version string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failVersions[version] = status
}

// Requests returns how many requests have hit the exact path so far.
func (s *Server) Requests(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// observe counts requests, applies failure injection and logs the request.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[r.URL.Path]++
		failStatus := s.failPaths[r.URL.Path]
		if failStatus == 0 {
			if v := r.URL.Query().Get("version"); v != "" {
				failStatus = s.failVersions[v]
			}
		}
		s.mu.Unlock()

		log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Str("query", r.URL.RawQuery).Msg("radartest request")

		if failStatus != 0 {
			writeError(w, failStatus, "injected failure")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// resolve picks the fixture version addressed by the request: the explicit
// version parameter when present, the most recent version otherwise.
func (s *Server) resolve(r *http.Request) (*Version, bool) {
	want := r.URL.Query().Get("version")
	if want == "" {
		if len(s.versions) == 0 {
			return nil, false
		}
		return &s.versions[0], true
	}
	for i := range s.versions {
		if s.versions[i].Version == want {
			return &s.versions[i], true
		}
	}
	return nil, false
}

func (s *Server) handleAPIInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, radar.APIInfo{
		Name:        "RADAR Framework API",
		Version:     "1.0",
		Description: "Versioned taxonomy of DSA infringements",
		Endpoints: map[string]string{
			"versions":      "/api/v1/versions",
			"framework":     "/api/v1/framework",
			"categories":    "/api/v1/categories",
			"infringements": "/api/v1/infringements",
			"search":        "/api/v1/infringements/search",
			"dsa_articles":  "/api/v1/dsa-articles",
			"stats":         "/api/v1/stats",
			"health":        "/api/v1/health",
		},
	})
}

func (s *Server) handleVersions(w http.ResponseWriter, r *http.Request) {
	info := radar.VersionInfo{Versions: []radar.VersionEntry{}}
	for _, v := range s.versions {
		info.Versions = append(info.Versions, radar.VersionEntry{Version: v.Version, Date: v.Date})
	}
	if len(s.versions) > 0 {
		info.CurrentVersion = s.versions[0].Version
		info.LatestVersion = s.versions[0].Version
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleFramework(w http.ResponseWriter, r *http.Request) {
	ver, ok := s.resolve(r)
	if !ok {
		writeNotFound(w, "unknown version")
		return
	}
	writeJSON(w, http.StatusOK, radar.Framework{
		Name:        "RADAR",
		Version:     ver.Version,
		Date:        ver.Date,
		Description: "Regulatory Assessment for Digital service Act Risks",
		Categories:  s.categoriesWithCounts(ver),
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	ver, ok := s.resolve(r)
	if !ok {
		writeNotFound(w, "unknown version")
		return
	}
	cats := s.categoriesWithCounts(ver)
	writeJSON(w, http.StatusOK, radar.CategoryList{
		Version:    ver.Version,
		Categories: cats,
		Total:      len(cats),
	})
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	ver, ok := s.resolve(r)
	if !ok {
		writeNotFound(w, "unknown version")
		return
	}
	id := mux.Vars(r)["categoryId"]
	for _, cat := range s.categoriesWithCounts(ver) {
		if cat.ID == id {
			writeJSON(w, http.StatusOK, cat)
			return
		}
	}
	writeNotFound(w, "unknown category")
}

func (s *Server) handleCategoryInfringements(w http.ResponseWriter, r *http.Request) {
	ver, ok := s.resolve(r)
	if !ok {
		writeNotFound(w, "unknown version")
		return
	}
	id := mux.Vars(r)["categoryId"]
	cat := findCategory(ver, id)
	if cat == nil {
		writeNotFound(w, "unknown category")
		return
	}
	infs := []radar.Infringement{}
	for _, inf := range ver.Infringements {
		if inf.Category != nil && inf.Category.ID == id {
			infs = append(infs, inf)
		}
	}
	writeJSON(w, http.StatusOK, radar.CategoryInfringements{
		Version:       ver.Version,
		Category:      &radar.CategoryRef{ID: cat.ID, Name: cat.Name},
		Infringements: infs,
		Total:         len(infs),
	})
}

func (s *Server) handleInfringement(w http.ResponseWriter, r *http.Request) {
	ver, ok := s.resolve(r)
	if !ok {
		writeNotFound(w, "unknown version")
		return
	}
	id := mux.Vars(r)["infringementId"]
	for _, inf := range ver.Infringements {
		if inf.ID == id {
			writeJSON(w, http.StatusOK, inf)
			return
		}
	}
	writeNotFound(w, "unknown infringement")
}

func (s *Server) handleInfringements(w http.ResponseWriter, r *http.Request) {
	ver, ok := s.resolve(r)
	if !ok {
		writeNotFound(w, "unknown version")
		return
	}
	category := r.URL.Query().Get("category")
	dsaArticle := r.URL.Query().Get("dsa_article")
	page := intParam(r, "page", 1)
	perPage := intParam(r, "per_page", 20)

	filtered := []radar.Infringement{}
	for _, inf := range ver.Infringements {
		if category != "" && (inf.Category == nil || inf.Category.ID != category) {
			continue
		}
		if dsaArticle != "" && !contains(inf.DSAArticles, dsaArticle) {
			continue
		}
		filtered = append(filtered, inf)
	}

	start := (page - 1) * perPage
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + perPage
	if end > len(filtered) {
		end = len(filtered)
	}

	writeJSON(w, http.StatusOK, radar.InfringementList{
		Version:       ver.Version,
		Infringements: filtered[start:end],
		Page:          page,
		PerPage:       perPage,
		Total:         len(filtered),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	ver, ok := s.resolve(r)
	if !ok {
		writeNotFound(w, "unknown version")
		return
	}
	query := strings.ToLower(r.URL.Query().Get("q"))
	limit := intParam(r, "limit", 10)
	threshold := floatParam(r, "threshold", 15.0)

	results := []radar.SearchResult{}
	for _, inf := range ver.Infringements {
		score, terms, observables := scoreInfringement(inf, query)
		if score < threshold {
			continue
		}
		res := radar.SearchResult{
			InfringementID:     inf.ID,
			InfringementName:   inf.Name,
			RelevanceScore:     score,
			Description:        inf.Description,
			MatchedTerms:       terms,
			MatchedObservables: observables,
		}
		if inf.Category != nil {
			res.CategoryID = inf.Category.ID
			if cat := findCategory(ver, inf.Category.ID); cat != nil {
				res.CategoryName = cat.Name
			}
		}
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].RelevanceScore != results[j].RelevanceScore {
			return results[i].RelevanceScore > results[j].RelevanceScore
		}
		return results[i].InfringementID < results[j].InfringementID
	})
	if len(results) > limit {
		results = results[:limit]
	}

	resp := radar.SearchResponse{
		Query:         r.URL.Query().Get("q"),
		Version:       ver.Version,
		SearchQuality: "none",
		TotalFound:    len(results),
		Results:       results,
	}
	if len(results) > 0 {
		resp.SearchQuality = "partial"
		if top := results[0]; top.RelevanceScore >= 60 {
			resp.SearchQuality = "strong"
			resp.Suggestion = &radar.Suggestion{
				InfringementID:   top.InfringementID,
				InfringementName: top.InfringementName,
				Confidence:       "high",
				Score:            top.RelevanceScore,
			}
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDSAArticles(w http.ResponseWriter, r *http.Request) {
	ver, ok := s.resolve(r)
	if !ok {
		writeNotFound(w, "unknown version")
		return
	}
	counts := map[string]int{}
	for _, inf := range ver.Infringements {
		for _, article := range inf.DSAArticles {
			counts[article]++
		}
	}
	articles := []radar.DSAArticle{}
	for article, count := range counts {
		articles = append(articles, radar.DSAArticle{
			Article:           article,
			Title:             dsaTitles[article],
			InfringementCount: count,
		})
	}
	sort.Slice(articles, func(i, j int) bool {
		a, _ := strconv.Atoi(articles[i].Article)
		b, _ := strconv.Atoi(articles[j].Article)
		return a < b
	})
	writeJSON(w, http.StatusOK, radar.DSAArticleList{
		Version:     ver.Version,
		DSAArticles: articles,
		Total:       len(articles),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	ver, ok := s.resolve(r)
	if !ok {
		writeNotFound(w, "unknown version")
		return
	}
	writeJSON(w, http.StatusOK, radar.Statistics{
		Version: ver.Version,
		Totals:  totals(ver),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	current := ""
	if len(s.versions) > 0 {
		current = s.versions[0].Version
	}
	writeJSON(w, http.StatusOK, radar.Health{
		Status:            "healthy",
		Framework:         "RADAR",
		CurrentVersion:    current,
		AvailableVersions: len(s.versions),
	})
}

// categoriesWithCounts returns the version's categories with their
// infringement counts filled in.
func (s *Server) categoriesWithCounts(ver *Version) []radar.Category {
	counts := map[string]int{}
	for _, inf := range ver.Infringements {
		if inf.Category != nil {
			counts[inf.Category.ID]++
		}
	}
	cats := make([]radar.Category, 0, len(ver.Categories))
	for _, cat := range ver.Categories {
		cat.InfringementCount = counts[cat.ID]
		cats = append(cats, cat)
	}
	return cats
}

func findCategory(ver *Version, id string) *radar.Category {
	for i := range ver.Categories {
		if ver.Categories[i].ID == id {
			return &ver.Categories[i]
		}
	}
	return nil
}

// scoreInfringement gives term hits in the name more weight than hits in
// the description or observables, mirroring how the real service ranks.
func scoreInfringement(inf radar.Infringement, query string) (float64, []string, []string) {
	var score float64
	var terms []string
	var observables []string
	seen := map[string]bool{}
	for _, term := range strings.Fields(query) {
		hit := false
		if strings.Contains(strings.ToLower(inf.Name), term) {
			score += 40
			hit = true
		}
		if strings.Contains(strings.ToLower(inf.Description), term) {
			score += 20
			hit = true
		}
		for _, obs := range inf.Observables {
			if strings.Contains(strings.ToLower(obs), term) {
				score += 10
				hit = true
				if !seen[obs] {
					seen[obs] = true
					observables = append(observables, obs)
				}
			}
		}
		if hit {
			terms = append(terms, term)
		}
	}
	return score, terms, observables
}

func totals(ver *Version) radar.StatsTotals {
	observables := 0
	articles := map[string]bool{}
	for _, inf := range ver.Infringements {
		observables += len(inf.Observables)
		for _, a := range inf.DSAArticles {
			articles[a] = true
		}
	}
	return radar.StatsTotals{
		Categories:    len(ver.Categories),
		Infringements: len(ver.Infringements),
		Observables:   observables,
		DSAArticles:   len(articles),
	}
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}

func intParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func floatParam(r *http.Request, name string, fallback float64) float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return f
}
