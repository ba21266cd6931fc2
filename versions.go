package radar

import (
	"context"
	"errors"
)

// Version selection state and the multi-version convenience operations.

// SetDefaultVersion changes the framework version injected into every
// subsequent request that does not carry an explicit one. An empty string
// clears the default, returning version selection to the server.
func (c *Client) SetDefaultVersion(version string) {
	c.defaultVersion = version
}

// DefaultVersion returns the version currently injected into requests, or
// "" when the server default applies.
func (c *Client) DefaultVersion() string { return c.defaultVersion }

// GetCurrentVersion reports the framework version in effect for this
// client: the default version when one is set, otherwise the service's
// current version. Version info is fetched once and memoized for the
// client's lifetime; call RefreshVersions to re-fetch.
func (c *Client) GetCurrentVersion(ctx context.Context) (string, error) {
	if c.versionInfo == nil {
		vi, err := c.GetVersions(ctx)
		if err != nil {
			return "", err
		}
		c.versionInfo = vi
	}
	if c.defaultVersion != "" {
		return c.defaultVersion, nil
	}
	return c.versionInfo.CurrentVersion, nil
}

// RefreshVersions re-fetches version info and replaces the memoized copy
// used by GetCurrentVersion.
func (c *Client) RefreshVersions(ctx context.Context) (*VersionInfo, error) {
	vi, err := c.GetVersions(ctx)
	if err != nil {
		return nil, err
	}
	c.versionInfo = vi
	return vi, nil
}

// CompareVersions diffs framework statistics between two versions. Deltas
// in Changes are version2 minus version1.
func (c *Client) CompareVersions(ctx context.Context, version1, version2 string) (*VersionComparison, error) {
	stats1, err := c.GetStatistics(ctx, version1)
	if err != nil {
		return nil, err
	}
	stats2, err := c.GetStatistics(ctx, version2)
	if err != nil {
		return nil, err
	}

	return &VersionComparison{
		Version1: version1,
		Version2: version2,
		Changes: StatsDelta{
			Categories:    stats2.Totals.Categories - stats1.Totals.Categories,
			Infringements: stats2.Totals.Infringements - stats1.Totals.Infringements,
			Observables:   stats2.Totals.Observables - stats1.Totals.Observables,
			DSAArticles:   stats2.Totals.DSAArticles - stats1.Totals.DSAArticles,
		},
		Stats: ComparisonTotals{
			Version1: stats1.Totals,
			Version2: stats2.Totals,
		},
	}, nil
}

// SearchAcrossVersions runs the same search against several framework
// versions sequentially. A nil Versions slice means the three most recent
// published versions. A version whose search fails with an API error is
// recorded with an error marker; one bad version never fails the batch.
func (c *Client) SearchAcrossVersions(ctx context.Context, req SearchAcrossVersionsRequest) (*CrossVersionSearch, error) {
	versions := req.Versions
	if versions == nil {
		vi, err := c.GetVersions(ctx)
		if err != nil {
			return nil, err
		}
		recent := vi.Versions
		if len(recent) > 3 {
			recent = recent[:3]
		}
		for _, v := range recent {
			versions = append(versions, v.Version)
		}
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 5
	}
	threshold := req.Threshold
	if threshold <= 0 {
		threshold = 15.0
	}

	out := &CrossVersionSearch{
		Query:            req.Query,
		VersionsSearched: versions,
		ResultsByVersion: make(map[string]VersionSearchResult, len(versions)),
	}
	for _, version := range versions {
		sr, err := c.SearchInfringements(ctx, SearchRequest{
			Query:     req.Query,
			Limit:     limit,
			Threshold: threshold,
			Version:   version,
		})
		if err != nil {
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				out.ResultsByVersion[version] = VersionSearchResult{Error: "failed to search this version"}
				continue
			}
			return nil, err
		}
		top := sr.Results
		if len(top) > 3 {
			top = top[:3]
		}
		out.ResultsByVersion[version] = VersionSearchResult{
			TotalFound: sr.TotalFound,
			Suggestion: sr.Suggestion,
			TopResults: top,
		}
	}
	return out, nil
}

// GetInfringementEvolution reports how an infringement changed across
// framework versions. A nil versions slice means every published version.
// Versions where the lookup fails with an API error are recorded with
// Exists=false; one bad version never fails the batch.
func (c *Client) GetInfringementEvolution(ctx context.Context, infringementID string, versions []string) (*InfringementEvolution, error) {
	if versions == nil {
		vi, err := c.GetVersions(ctx)
		if err != nil {
			return nil, err
		}
		for _, v := range vi.Versions {
			versions = append(versions, v.Version)
		}
	}

	evolution := &InfringementEvolution{
		InfringementID: infringementID,
		Versions:       make(map[string]InfringementVersionStatus, len(versions)),
	}
	for _, version := range versions {
		inf, err := c.GetInfringement(ctx, infringementID, version)
		if err != nil {
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				evolution.Versions[version] = InfringementVersionStatus{Exists: false}
				continue
			}
			return nil, err
		}
		evolution.Versions[version] = InfringementVersionStatus{
			Exists:          true,
			Name:            inf.Name,
			Description:     inf.Description,
			ObservableCount: len(inf.Observables),
			DSAArticles:     inf.DSAArticles,
		}
	}
	return evolution, nil
}
