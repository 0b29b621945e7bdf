// File: utils/constants.go
package utils

import "time"

// CatalogCacheKey is the Redis key holding the active rule/bundle snapshot.
const CatalogCacheKey = "pricing:catalog"

// CatalogCacheTTL is the time-to-live for the catalog snapshot.
const CatalogCacheTTL = 5 * time.Minute
