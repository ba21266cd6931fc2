package api

import (
	"context"
	"net/http"

	"github.com/CheckFirstHQ/RADAR-API-client/internal/types"
)

// GetFramework retrieves the framework metadata and category overview.
func GetFramework(ctx context.Context, httpClient *http.Client, baseURL, version string) (*types.Framework, error) {
	var fw types.Framework
	if err := get(ctx, httpClient, baseURL, "/api/v1/framework", versionParams(version), &fw); err != nil {
		return nil, err
	}
	return &fw, nil
}
