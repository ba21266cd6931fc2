package api

import (
	"context"
	"net/http"

	"github.com/CheckFirstHQ/RADAR-API-client/internal/types"
)

// GetStatistics retrieves framework-wide entity counts.
func GetStatistics(ctx context.Context, httpClient *http.Client, baseURL, version string) (*types.Statistics, error) {
	var stats types.Statistics
	if err := get(ctx, httpClient, baseURL, "/api/v1/stats", versionParams(version), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
