package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/CheckFirstHQ/RADAR-API-client/internal/types"
)

// get performs a GET against baseURL+path with the given query parameters
// and decodes the JSON body into out. Transport failures, non-2xx statuses
// and undecodable bodies are all reported as *types.APIError; a context that
// is already done is returned as-is.
func get(ctx context.Context, httpClient *http.Client, baseURL, path string, params url.Values, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u := baseURL + path
	if len(params) > 0 {
		u = fmt.Sprintf("%s?%s", u, params.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return &types.APIError{Method: http.MethodGet, URL: u, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &types.APIError{Method: http.MethodGet, URL: u, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &types.APIError{Method: http.MethodGet, URL: u, StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}

// versionParams returns query parameters carrying the version selector, or
// empty parameters when no version applies.
func versionParams(version string) url.Values {
	params := url.Values{}
	if version != "" {
		params.Set("version", version)
	}
	return params
}
