package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CheckFirstHQ/RADAR-API-client/internal/types"
)

func TestGetFramework_Success(t *testing.T) {
	t.Parallel()
	resp := types.Framework{
		Name:       "RADAR",
		Version:    "1.7",
		Date:       "2025-06-30",
		Categories: []types.Category{{ID: "dp", Name: "Dark Patterns"}},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/framework" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()
	got, err := GetFramework(context.Background(), srv.Client(), srv.URL, "")
	if err != nil || got == nil || got.Version != "1.7" || len(got.Categories) != 1 {
		t.Fatalf("GetFramework unexpected: got=%+v err=%v", got, err)
	}
}

func TestGetFramework_UnknownVersion(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unknown version"})
	}))
	defer srv.Close()
	_, err := GetFramework(context.Background(), srv.Client(), srv.URL, "9.9")
	var apiErr *types.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("want APIError with status 404, got %v", err)
	}
}
