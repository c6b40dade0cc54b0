package constants

import (
	"time"
)

// Redis cache keys and TTL values.
// Pattern: cinepass:{module}:{operation}:{identifier}

const CachePrefix = "cinepass"

// TTL tiers
const (
	TTLStatic     = 6 * time.Hour    // genres, role sets
	TTLSemiStatic = 15 * time.Minute // movie listings
	TTLDynamic    = 5 * time.Minute  // showtime listings
	TTLRealtime   = 30 * time.Second // seat maps
)

// Movie cache keys
const (
	CacheKeyMoviesActive = CachePrefix + ":movies:active"
	CacheKeyMovieDetail  = CachePrefix + ":movies:detail:uuid:" // + movie-id
	CacheKeyMoviesGenre  = CachePrefix + ":movies:genre:"       // + genre-name
)

// Genre cache keys
const (
	CacheKeyGenresAll = CachePrefix + ":genres:all"
)

// Showtime and seat cache keys
const (
	CacheKeyShowtimesDate = CachePrefix + ":showtimes:date:"      // + YYYY-MM-DD
	CacheKeySeatMap       = CachePrefix + ":seats:showtime:uuid:" // + showtime-id
)

// Invalidation patterns
const (
	PatternInvalidateMovies    = CachePrefix + ":movies:*"
	PatternInvalidateGenres    = CachePrefix + ":genres:*"
	PatternInvalidateShowtimes = CachePrefix + ":showtimes:*"
)

func BuildMovieDetailKey(movieID string) string {
	return CacheKeyMovieDetail + movieID
}

func BuildMoviesByGenreKey(genre string) string {
	return CacheKeyMoviesGenre + genre
}

func BuildShowtimesByDateKey(date string) string {
	return CacheKeyShowtimesDate + date
}

func BuildSeatMapKey(showtimeID string) string {
	return CacheKeySeatMap + showtimeID
}
