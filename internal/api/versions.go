package api

import (
	"context"
	"net/http"

	"github.com/CheckFirstHQ/RADAR-API-client/internal/types"
)

// GetVersions lists every published framework version.
func GetVersions(ctx context.Context, httpClient *http.Client, baseURL, version string) (*types.VersionInfo, error) {
	var vi types.VersionInfo
	if err := get(ctx, httpClient, baseURL, "/api/v1/versions", versionParams(version), &vi); err != nil {
		return nil, err
	}
	return &vi, nil
}
