package api

import (
	"context"
	"net/http"

	"github.com/CheckFirstHQ/RADAR-API-client/internal/types"
)

// GetAPIInfo retrieves API metadata and the endpoint directory.
func GetAPIInfo(ctx context.Context, httpClient *http.Client, baseURL, version string) (*types.APIInfo, error) {
	var info types.APIInfo
	if err := get(ctx, httpClient, baseURL, "/api/v1", versionParams(version), &info); err != nil {
		return nil, err
	}
	return &info, nil
}
