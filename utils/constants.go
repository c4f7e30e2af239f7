package utils

// Application constants
const (
	// Application name
	AppName = "Dil2Deal"

	// Default port
	DefaultPort = "8080"

	// Default database host
	DefaultDBHost = "localhost"

	// Default database port
	DefaultDBPort = "5432"

	// Default database name
	DefaultDBName = "dil2deal"

	// Default database user
	DefaultDBUser = "postgres"

	// Default database password
	DefaultDBPassword = "postgres"

	// Default page size for deal listings
	DefaultDealPageSize = 20

	// Maximum page size accepted from clients
	MaxPageSize = 100

	// Cache lifetime for the category list, in seconds
	CategoryCacheMaxAge = 3600

	// Shared-cache lifetime for the category list, in seconds
	CategoryCacheSharedMaxAge = 7200
)
