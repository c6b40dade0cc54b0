package reports

import (
	"time"
)

// RevenueByStatus aggregates revenue and counts per reservation status
type RevenueByStatus struct {
	Status           string  `json:"status"`
	TotalRevenue     float64 `json:"total_revenue"`
	ReservationCount int64   `json:"reservation_count"`
}

// TopMovie ranks movies by confirmed reservation volume
type TopMovie struct {
	MovieID          string  `json:"movie_id"`
	Title            string  `json:"title"`
	ReservationCount int64   `json:"reservation_count"`
	TotalRevenue     float64 `json:"total_revenue"`
}

// TheaterOccupancy reports the average seat fill rate per theater
type TheaterOccupancy struct {
	Theater       int     `json:"theater"`
	OccupancyRate float64 `json:"occupancy_rate"` // percentage, 0-100
}

// SummaryReport bundles all report sections over one date range
type SummaryReport struct {
	StartDate        time.Time          `json:"start_date"`
	EndDate          time.Time          `json:"end_date"`
	RevenueByStatus  []RevenueByStatus  `json:"revenue_by_status"`
	TopMovies        []TopMovie         `json:"top_movies"`
	TheaterOccupancy []TheaterOccupancy `json:"theater_occupancy"`
}
