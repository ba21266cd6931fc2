package api

import (
	"context"
	"net/http"

	"github.com/CheckFirstHQ/RADAR-API-client/internal/types"
)

// HealthCheck queries the API health endpoint.
func HealthCheck(ctx context.Context, httpClient *http.Client, baseURL, version string) (*types.Health, error) {
	var h types.Health
	if err := get(ctx, httpClient, baseURL, "/api/v1/health", versionParams(version), &h); err != nil {
		return nil, err
	}
	return &h, nil
}
