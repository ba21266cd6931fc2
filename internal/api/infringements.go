package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/CheckFirstHQ/RADAR-API-client/internal/types"
)

// GetInfringement retrieves a single infringement by ID.
func GetInfringement(ctx context.Context, httpClient *http.Client, baseURL, infringementID, version string) (*types.Infringement, error) {
	var inf types.Infringement
	path := fmt.Sprintf("/api/v1/infringements/%s", infringementID)
	if err := get(ctx, httpClient, baseURL, path, versionParams(version), &inf); err != nil {
		return nil, err
	}
	return &inf, nil
}

// ListInfringements retrieves infringements with optional filtering and
// pagination. Page and PerPage always go out on the wire, defaulted to 1
// and 20 when unset.
func ListInfringements(ctx context.Context, httpClient *http.Client, baseURL string, req types.ListInfringementsRequest) (*types.InfringementList, error) {
	page := req.Page
	if page <= 0 {
		page = 1
	}
	perPage := req.PerPage
	if perPage <= 0 {
		perPage = 20
	}

	params := versionParams(req.Version)
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	if req.Category != "" {
		params.Set("category", req.Category)
	}
	if req.DSAArticle != "" {
		params.Set("dsa_article", req.DSAArticle)
	}

	var list types.InfringementList
	if err := get(ctx, httpClient, baseURL, "/api/v1/infringements", params, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
