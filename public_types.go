package radar

import "github.com/CheckFirstHQ/RADAR-API-client/internal/types"

// Public type aliases so SDK consumers can import only the radar package.
type (
	// Requests
	ListInfringementsRequest    = types.ListInfringementsRequest
	SearchRequest               = types.SearchRequest
	SearchAcrossVersionsRequest = types.SearchAcrossVersionsRequest

	// Domain entities
	VersionEntry = types.VersionEntry
	Category     = types.Category
	CategoryRef  = types.CategoryRef
	Infringement = types.Infringement
	DSAArticle   = types.DSAArticle
	SearchResult = types.SearchResult
	Suggestion   = types.Suggestion
	StatsTotals  = types.StatsTotals

	// Responses
	VersionInfo           = types.VersionInfo
	APIInfo               = types.APIInfo
	Framework             = types.Framework
	CategoryList          = types.CategoryList
	CategoryInfringements = types.CategoryInfringements
	InfringementList      = types.InfringementList
	SearchResponse        = types.SearchResponse
	DSAArticleList        = types.DSAArticleList
	Statistics            = types.Statistics
	Health                = types.Health

	// Compound operation results
	SearchMatch               = types.SearchMatch
	SearchAnalysis            = types.SearchAnalysis
	CategorySummary           = types.CategorySummary
	InfringementWithCategory  = types.InfringementWithCategory
	StatsDelta                = types.StatsDelta
	ComparisonTotals          = types.ComparisonTotals
	VersionComparison         = types.VersionComparison
	VersionSearchResult       = types.VersionSearchResult
	CrossVersionSearch        = types.CrossVersionSearch
	InfringementVersionStatus = types.InfringementVersionStatus
	InfringementEvolution     = types.InfringementEvolution
)

// Errors re-exported in errors.go
