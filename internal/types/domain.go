package types

// ------------------------------
// Core Taxonomy Entities
// ------------------------------

// VersionEntry is one published framework release.
type VersionEntry struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
}

// Category groups related infringements (e.g. "Dark Patterns").
type Category struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	InfringementCount int    `json:"infringement_count,omitempty"`
}

// CategoryRef is the short category reference embedded in other payloads.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Infringement is a cataloged regulatory violation pattern.
type Infringement struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Category    *CategoryRef `json:"category,omitempty"`
	Observables []string     `json:"observables,omitempty"`
	// The service emits this one field in camelCase.
	DSAArticles []string `json:"dsaArticles,omitempty"`
	Examples    []string `json:"examples,omitempty"`
}

// DSAArticle is a Digital Services Act article referenced by the framework.
type DSAArticle struct {
	Article           string `json:"article"`
	Title             string `json:"title,omitempty"`
	InfringementCount int    `json:"infringement_count,omitempty"`
}

// SearchResult is a single scored hit from the search endpoint.
type SearchResult struct {
	InfringementID     string   `json:"infringement_id"`
	InfringementName   string   `json:"infringement_name"`
	CategoryID         string   `json:"category_id,omitempty"`
	CategoryName       string   `json:"category_name"`
	RelevanceScore     float64  `json:"relevance_score"`
	Description        string   `json:"description,omitempty"`
	MatchedTerms       []string `json:"matched_terms,omitempty"`
	MatchedObservables []string `json:"matched_observables,omitempty"`
}

// Suggestion is the server's best-guess match when a search is ambiguous.
type Suggestion struct {
	InfringementID   string  `json:"infringement_id,omitempty"`
	InfringementName string  `json:"infringement_name"`
	Confidence       string  `json:"confidence"`
	Score            float64 `json:"score"`
}

// StatsTotals holds the per-version entity counts reported by the stats
// endpoint.
type StatsTotals struct {
	Categories    int `json:"categories"`
	Infringements int `json:"infringements"`
	Observables   int `json:"observables"`
	DSAArticles   int `json:"dsa_articles"`
}
