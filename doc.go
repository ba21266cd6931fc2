// Package radar is a Go client for the RADAR (Regulatory Assessment for
// Digital service Act Risks) Framework API. The API serves a versioned
// taxonomy of regulatory infringements grouped into categories and mapped
// to DSA articles; the client wraps its REST endpoints, injects the
// configured framework version, and exposes a few convenience operations
// that combine primitive calls, such as cross-version search and version
// diffing.
//
// # Client Creation
//
// A client needs the API base URL and a contact URL. The contact URL is
// mandatory: the service's usage policy requires every client to identify
// its operator in the User-Agent header.
//
//	client := radar.New(
//		"http://api.radar.checkfirst.network",
//		"https://yourcompany.com/contact",
//		radar.WithDefaultVersion("1.7"),
//	)
//
//	versions, err := client.GetVersions(ctx)
//	results, err := client.SearchInfringements(ctx, radar.SearchRequest{Query: "dark patterns"})
//
// [NewFromEnv] builds a client from RADAR_* environment variables instead.
//
// # Version Selection
//
// Most operations accept an explicit framework version. When it is empty,
// the client's default version (set at construction or via
// [Client.SetDefaultVersion]) is injected as the version query parameter;
// when that is unset too, the server answers with its current version.
//
// # Error Handling
//
// Every failed request returns a single error kind, [APIError], whether
// the cause was a connection failure, a timeout, a non-2xx status, or an
// undecodable body. Check it with errors.As, or use the [IsAPIError] and
// [IsNotFound] helpers. The multi-version operations convert per-version
// API errors into inline markers instead of failing the whole batch.
//
// # Concurrency
//
// A Client issues strictly sequential, blocking calls and keeps its default
// version and memoized version info in unsynchronized fields. Use one
// Client per goroutine.
package radar
