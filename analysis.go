package radar

import "context"

// Convenience operations that compose primitive calls and reshape the
// results locally. No network primitives beyond the ones in client.go.

// SearchAndAnalyze runs a search and condenses the response into at most
// the three strongest matches. verbose adds description, matched terms and
// matched observables to each entry; without it those fields stay empty.
// version overrides the client default when non-empty.
func (c *Client) SearchAndAnalyze(ctx context.Context, query string, verbose bool, version string) (*SearchAnalysis, error) {
	sr, err := c.SearchInfringements(ctx, SearchRequest{Query: query, Version: version})
	if err != nil {
		return nil, err
	}

	quality := sr.SearchQuality
	if quality == "" {
		quality = "unknown"
	}
	analysis := &SearchAnalysis{
		Query:      query,
		Version:    sr.Version,
		Quality:    quality,
		TotalFound: sr.TotalFound,
		Suggestion: sr.Suggestion,
	}

	top := sr.Results
	if len(top) > 3 {
		top = top[:3]
	}
	for _, r := range top {
		match := SearchMatch{
			ID:       r.InfringementID,
			Name:     r.InfringementName,
			Category: r.CategoryName,
			Score:    r.RelevanceScore,
		}
		if verbose {
			match.Description = r.Description
			match.MatchedTerms = r.MatchedTerms
			match.Observables = r.MatchedObservables
		}
		analysis.TopMatches = append(analysis.TopMatches, match)
	}
	return analysis, nil
}

// GetInfringementFull fetches an infringement and, when the payload
// references a parent category, fetches that category too and attaches a
// trimmed summary. Errors from either fetch propagate unchanged.
func (c *Client) GetInfringementFull(ctx context.Context, infringementID, version string) (*InfringementWithCategory, error) {
	inf, err := c.GetInfringement(ctx, infringementID, version)
	if err != nil {
		return nil, err
	}

	full := &InfringementWithCategory{Infringement: *inf}
	if inf.Category != nil {
		category, err := c.GetCategory(ctx, inf.Category.ID, version)
		if err != nil {
			return nil, err
		}
		full.CategoryFull = &CategorySummary{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
		}
	}
	return full, nil
}

// QuickSearch performs a one-shot infringement search without keeping a
// client around. version pins the framework version and may be empty.
func QuickSearch(ctx context.Context, baseURL, contactURL, query, version string) ([]SearchResult, error) {
	c := New(baseURL, contactURL, WithDefaultVersion(version))
	sr, err := c.SearchInfringements(ctx, SearchRequest{Query: query})
	if err != nil {
		return nil, err
	}
	return sr.Results, nil
}
