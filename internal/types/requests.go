package types

// ------------------------------
// Request Types
// ------------------------------
// These carry query parameters, not JSON bodies. Zero values fall back to
// the documented defaults before the request goes out.

// ListInfringementsRequest filters the infringement listing.
type ListInfringementsRequest struct {
	Category   string // filter by category ID
	DSAArticle string // filter by DSA article number
	Page       int    // 1-based, default 1
	PerPage    int    // default 20, server caps at 100
	Version    string // framework version, empty means the client default
}

// SearchRequest parameterizes an infringement search.
type SearchRequest struct {
	Query     string
	Limit     int     // default 10, server caps at 100
	Threshold float64 // minimum relevance score, default 15
	Version   string  // framework version, empty means the client default
}

// SearchAcrossVersionsRequest parameterizes a multi-version search. A nil
// Versions slice means the three most recent published versions.
type SearchAcrossVersionsRequest struct {
	Query     string
	Versions  []string
	Limit     int     // per-version result cap, default 5
	Threshold float64 // minimum relevance score, default 15
}
