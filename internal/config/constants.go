package config

const (
	// DefaultDBMaxConns is the default size of the pgx connection pool
	DefaultDBMaxConns = 25

	// DefaultCaseCacheSize is the default number of case definitions held in
	// the catalog LRU cache
	DefaultCaseCacheSize = 256

	// DefaultCaseCacheTTLSeconds is the default TTL for cached case
	// definitions
	DefaultCaseCacheTTLSeconds = 60
)
