package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/CheckFirstHQ/RADAR-API-client/internal/types"
)

// SearchInfringements runs a relevance-scored search. Limit and Threshold
// default to 10 and 15 when unset.
func SearchInfringements(ctx context.Context, httpClient *http.Client, baseURL string, req types.SearchRequest) (*types.SearchResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	threshold := req.Threshold
	if threshold <= 0 {
		threshold = 15.0
	}

	params := versionParams(req.Version)
	params.Set("q", req.Query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("threshold", strconv.FormatFloat(threshold, 'f', -1, 64))

	var sr types.SearchResponse
	if err := get(ctx, httpClient, baseURL, "/api/v1/infringements/search", params, &sr); err != nil {
		return nil, err
	}
	return &sr, nil
}
