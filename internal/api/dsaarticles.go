package api

import (
	"context"
	"net/http"

	"github.com/CheckFirstHQ/RADAR-API-client/internal/types"
)

// ListDSAArticles retrieves every DSA article referenced by the framework.
func ListDSAArticles(ctx context.Context, httpClient *http.Client, baseURL, version string) (*types.DSAArticleList, error) {
	var dl types.DSAArticleList
	if err := get(ctx, httpClient, baseURL, "/api/v1/dsa-articles", versionParams(version), &dl); err != nil {
		return nil, err
	}
	return &dl, nil
}
