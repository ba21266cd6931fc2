package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/CheckFirstHQ/RADAR-API-client/internal/types"
)

// ListCategories retrieves all categories of one framework version.
func ListCategories(ctx context.Context, httpClient *http.Client, baseURL, version string) (*types.CategoryList, error) {
	var cl types.CategoryList
	if err := get(ctx, httpClient, baseURL, "/api/v1/categories", versionParams(version), &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

// GetCategory retrieves a single category by ID.
func GetCategory(ctx context.Context, httpClient *http.Client, baseURL, categoryID, version string) (*types.Category, error) {
	var cat types.Category
	path := fmt.Sprintf("/api/v1/categories/%s", categoryID)
	if err := get(ctx, httpClient, baseURL, path, versionParams(version), &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// GetCategoryInfringements retrieves all infringements belonging to a category.
func GetCategoryInfringements(ctx context.Context, httpClient *http.Client, baseURL, categoryID, version string) (*types.CategoryInfringements, error) {
	var ci types.CategoryInfringements
	path := fmt.Sprintf("/api/v1/categories/%s/infringements", categoryID)
	if err := get(ctx, httpClient, baseURL, path, versionParams(version), &ci); err != nil {
		return nil, err
	}
	return &ci, nil
}
