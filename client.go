package radar

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CheckFirstHQ/RADAR-API-client/internal/api"
)

// Errors live in errors.go, functional options in options.go.

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to a RADAR Framework API instance. It is a thin wrapper: all
// taxonomy data and search logic live on the server, the client only builds
// requests, injects the configured version selector and decodes responses.
//
// A Client performs strictly sequential, blocking calls and is meant for
// single-goroutine use; the default version and the memoized version info
// are plain fields without locking.
type Client struct {
	baseURL        string
	contactURL     string
	defaultVersion string
	http           *http.Client

	versionInfo *VersionInfo // memoized by GetCurrentVersion, see versions.go
}

// New constructs a Client for the given API base URL. contactURL must point
// at a page where the operator can reach you; the service requires it inside
// the User-Agent header of every request.
// Additional options can be provided via functional arguments.
func New(baseURL, contactURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}
	if contactURL == "" {
		panic("contactURL cannot be empty")
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		contactURL: contactURL,
		http:       &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	// Wrap the transport so identity headers and metrics apply to all requests.
	c.wrapTransportWithIdentity()

	return c
}

// wrapTransportWithIdentity wraps the HTTP client's transport so that every
// outgoing request carries the mandatory identity headers and is counted by
// the client metrics.
func (c *Client) wrapTransportWithIdentity() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &identityTransport{
		base:      &metricsTransport{base: baseTransport},
		userAgent: userAgent(c.contactURL),
	}
}

// identityTransport wraps an http.RoundTripper to stamp the headers the
// service requires plus a per-request correlation ID.
type identityTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *identityTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("User-Agent", t.userAgent)
	cloned.Header.Set("Accept", "application/json")
	cloned.Header.Set("X-Request-ID", uuid.NewString())
	return t.base.RoundTrip(cloned)
}

// effectiveVersion resolves the version selector for one request: an
// explicit per-call version wins, otherwise the client default applies.
// Empty means the server decides.
func (c *Client) effectiveVersion(version string) string {
	if version != "" {
		return version
	}
	return c.defaultVersion
}

// --------------------------------------------------------------------
// Version and API metadata operations - delegated to internal/api
// --------------------------------------------------------------------

// GetVersions lists every published framework version, most recent first.
func (c *Client) GetVersions(ctx context.Context) (*VersionInfo, error) {
	return api.GetVersions(ctx, c.http, c.baseURL, c.defaultVersion)
}

// GetAPIInfo retrieves API metadata and the endpoint directory.
func (c *Client) GetAPIInfo(ctx context.Context) (*APIInfo, error) {
	return api.GetAPIInfo(ctx, c.http, c.baseURL, c.defaultVersion)
}

// GetFramework retrieves framework metadata and the category overview.
// version overrides the client default when non-empty.
func (c *Client) GetFramework(ctx context.Context, version string) (*Framework, error) {
	return api.GetFramework(ctx, c.http, c.baseURL, c.effectiveVersion(version))
}

// HealthCheck queries the API health endpoint.
func (c *Client) HealthCheck(ctx context.Context) (*Health, error) {
	return api.HealthCheck(ctx, c.http, c.baseURL, c.defaultVersion)
}

// --------------------------------------------------------------------
// Category operations - delegated to internal/api
// --------------------------------------------------------------------

// ListCategories retrieves all categories.
// version overrides the client default when non-empty.
func (c *Client) ListCategories(ctx context.Context, version string) (*CategoryList, error) {
	return api.ListCategories(ctx, c.http, c.baseURL, c.effectiveVersion(version))
}

// GetCategory retrieves a single category by ID (e.g. "dp" for Dark Patterns).
func (c *Client) GetCategory(ctx context.Context, categoryID, version string) (*Category, error) {
	return api.GetCategory(ctx, c.http, c.baseURL, categoryID, c.effectiveVersion(version))
}

// GetCategoryInfringements retrieves all infringements of one category.
func (c *Client) GetCategoryInfringements(ctx context.Context, categoryID, version string) (*CategoryInfringements, error) {
	return api.GetCategoryInfringements(ctx, c.http, c.baseURL, categoryID, c.effectiveVersion(version))
}

// --------------------------------------------------------------------
// Infringement operations - delegated to internal/api
// --------------------------------------------------------------------

// GetInfringement retrieves a single infringement by ID (e.g. "dp_01").
func (c *Client) GetInfringement(ctx context.Context, infringementID, version string) (*Infringement, error) {
	return api.GetInfringement(ctx, c.http, c.baseURL, infringementID, c.effectiveVersion(version))
}

// ListInfringements retrieves infringements with optional filtering and
// pagination.
func (c *Client) ListInfringements(ctx context.Context, req ListInfringementsRequest) (*InfringementList, error) {
	req.Version = c.effectiveVersion(req.Version)
	return api.ListInfringements(ctx, c.http, c.baseURL, req)
}

// SearchInfringements runs a relevance-scored search over the taxonomy.
func (c *Client) SearchInfringements(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	req.Version = c.effectiveVersion(req.Version)
	return api.SearchInfringements(ctx, c.http, c.baseURL, req)
}

// --------------------------------------------------------------------
// Reference data operations - delegated to internal/api
// --------------------------------------------------------------------

// ListDSAArticles retrieves every DSA article referenced by the framework.
func (c *Client) ListDSAArticles(ctx context.Context, version string) (*DSAArticleList, error) {
	return api.ListDSAArticles(ctx, c.http, c.baseURL, c.effectiveVersion(version))
}

// GetStatistics retrieves framework-wide entity counts.
func (c *Client) GetStatistics(ctx context.Context, version string) (*Statistics, error) {
	return api.GetStatistics(ctx, c.http, c.baseURL, c.effectiveVersion(version))
}
