package types

// ------------------------------
// Response Types
// ------------------------------

// VersionInfo mirrors the /versions endpoint. Versions are ordered most
// recent first.
type VersionInfo struct {
	CurrentVersion string         `json:"current_version"`
	LatestVersion  string         `json:"latest_version"`
	Versions       []VersionEntry `json:"versions"`
}

// APIInfo describes the API itself and its endpoints.
type APIInfo struct {
	Name          string            `json:"name"`
	Version       string            `json:"version,omitempty"`
	Description   string            `json:"description,omitempty"`
	Documentation string            `json:"documentation,omitempty"`
	Endpoints     map[string]string `json:"endpoints,omitempty"`
}

// Framework is the metadata and category overview of one framework version.
type Framework struct {
	Name        string     `json:"name"`
	Version     string     `json:"version"`
	Date        string     `json:"date,omitempty"`
	Description string     `json:"description,omitempty"`
	Categories  []Category `json:"categories,omitempty"`
}

// CategoryList wraps the category listing endpoint.
type CategoryList struct {
	Version    string     `json:"version,omitempty"`
	Categories []Category `json:"categories"`
	Total      int        `json:"total"`
}

// CategoryInfringements wraps a category's infringement listing.
type CategoryInfringements struct {
	Version       string         `json:"version,omitempty"`
	Category      *CategoryRef   `json:"category,omitempty"`
	Infringements []Infringement `json:"infringements"`
	Total         int            `json:"total"`
}

// InfringementList wraps the paginated infringement listing.
type InfringementList struct {
	Version       string         `json:"version,omitempty"`
	Infringements []Infringement `json:"infringements"`
	Page          int            `json:"page"`
	PerPage       int            `json:"per_page"`
	Total         int            `json:"total"`
}

// SearchResponse wraps the search endpoint.
type SearchResponse struct {
	Query         string         `json:"query,omitempty"`
	Version       string         `json:"version,omitempty"`
	SearchQuality string         `json:"search_quality,omitempty"`
	TotalFound    int            `json:"total_found"`
	Suggestion    *Suggestion    `json:"suggestion,omitempty"`
	Results       []SearchResult `json:"results"`
}

// DSAArticleList wraps the DSA article listing.
type DSAArticleList struct {
	Version     string       `json:"version,omitempty"`
	DSAArticles []DSAArticle `json:"dsa_articles"`
	Total       int          `json:"total"`
}

// Statistics wraps the stats endpoint.
type Statistics struct {
	Version string      `json:"version,omitempty"`
	Totals  StatsTotals `json:"totals"`
}

// Health mirrors the health endpoint.
type Health struct {
	Status            string `json:"status"`
	Framework         string `json:"framework,omitempty"`
	CurrentVersion    string `json:"current_version,omitempty"`
	AvailableVersions int    `json:"available_versions,omitempty"`
}
