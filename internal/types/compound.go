package types

// ------------------------------
// Compound Operation Results
// ------------------------------
// Shapes assembled client-side from two or more primitive calls.

// SearchMatch is one condensed entry in a SearchAnalysis. The verbose fields
// are only populated when the analysis was requested verbose.
type SearchMatch struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Score        float64  `json:"score"`
	Description  string   `json:"description,omitempty"`
	MatchedTerms []string `json:"matched_terms,omitempty"`
	Observables  []string `json:"observables,omitempty"`
}

// SearchAnalysis condenses a search response into its strongest matches.
type SearchAnalysis struct {
	Query      string        `json:"query"`
	Version    string        `json:"version"`
	Quality    string        `json:"quality"`
	TotalFound int           `json:"total_found"`
	Suggestion *Suggestion   `json:"suggestion"`
	TopMatches []SearchMatch `json:"top_matches"`
}

// CategorySummary is the trimmed category attached by GetInfringementFull.
// All three fields are always present.
type CategorySummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// InfringementWithCategory is an infringement enriched with a summary of its
// parent category. CategoryFull is nil when the infringement payload carried
// no category reference.
type InfringementWithCategory struct {
	Infringement
	CategoryFull *CategorySummary `json:"category_full,omitempty"`
}

// StatsDelta holds per-entity count differences between two versions.
type StatsDelta struct {
	Categories    int `json:"categories"`
	Infringements int `json:"infringements"`
	Observables   int `json:"observables"`
	DSAArticles   int `json:"dsa_articles"`
}

// ComparisonTotals carries the raw totals both compared versions reported.
type ComparisonTotals struct {
	Version1 StatsTotals `json:"version1"`
	Version2 StatsTotals `json:"version2"`
}

// VersionComparison is the result of diffing statistics between two
// framework versions. Changes are version2 minus version1.
type VersionComparison struct {
	Version1 string           `json:"version1"`
	Version2 string           `json:"version2"`
	Changes  StatsDelta       `json:"changes"`
	Stats    ComparisonTotals `json:"stats"`
}

// VersionSearchResult is one version's outcome inside a cross-version
// search. Error is set, and the other fields left zero, when the search
// against that version failed.
type VersionSearchResult struct {
	TotalFound int            `json:"total_found"`
	Suggestion *Suggestion    `json:"suggestion,omitempty"`
	TopResults []SearchResult `json:"top_results,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// CrossVersionSearch aggregates per-version search outcomes.
type CrossVersionSearch struct {
	Query            string                         `json:"query"`
	VersionsSearched []string                       `json:"versions_searched"`
	ResultsByVersion map[string]VersionSearchResult `json:"results_by_version"`
}

// InfringementVersionStatus records whether, and in what form, an
// infringement exists in one framework version.
type InfringementVersionStatus struct {
	Exists          bool     `json:"exists"`
	Name            string   `json:"name,omitempty"`
	Description     string   `json:"description,omitempty"`
	ObservableCount int      `json:"observable_count,omitempty"`
	DSAArticles     []string `json:"dsa_articles,omitempty"`
}

// InfringementEvolution tracks one infringement across framework versions.
type InfringementEvolution struct {
	InfringementID string                               `json:"infringement_id"`
	Versions       map[string]InfringementVersionStatus `json:"versions"`
}
