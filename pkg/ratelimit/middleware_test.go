package ratelimit

import "testing"

func TestGetRateLimitType(t *testing.T) {
	cases := []struct {
		path string
		want RateLimitType
	}{
		{"/health", RateLimitTypeHealth},
		{"/ping", RateLimitTypeHealth},
		{"/status", RateLimitTypeHealth},
		{"/api/v1/auth/signin", RateLimitTypeAuth},
		{"/api/v1/auth/signup", RateLimitTypeAuth},
		{"/api/v1/admin/reservations/reports", RateLimitTypeReports},
		{"/api/v1/admin/reservations/reports/revenue", RateLimitTypeReports},
		{"/api/v1/admin/movies", RateLimitTypeAdmin},
		{"/api/v1/admin/users/:id/promote", RateLimitTypeAdmin},
		{"/api/v1/reservations", RateLimitTypeBooking},
		{"/api/v1/showtimes/:id/seats", RateLimitTypeBooking},
		{"/api/v1/movies/active", RateLimitTypePublic},
		{"/api/v1/genres", RateLimitTypePublic},
		{"/api/v1/showtimes/date/:date", RateLimitTypePublic},
		{"/api/v1/users/profile", RateLimitTypeDefault},
	}

	for _, tc := range cases {
		if got := getRateLimitType(tc.path); got != tc.want {
			t.Errorf("getRateLimitType(%q) = %s, want %s", tc.path, got, tc.want)
		}
	}
}

func TestGetLimitPerType(t *testing.T) {
	limiter := NewRateLimiter(nil, &Config{
		DefaultRequests: 100,
		PublicRequests:  200,
		AuthRequests:    10,
		BookingRequests: 20,
		AdminRequests:   300,
		ReportRequests:  30,
	})

	cases := []struct {
		limitType RateLimitType
		want      int
	}{
		{RateLimitTypeDefault, 100},
		{RateLimitTypePublic, 200},
		{RateLimitTypeAuth, 10},
		{RateLimitTypeBooking, 20},
		{RateLimitTypeAdmin, 300},
		{RateLimitTypeReports, 30},
		{RateLimitTypeHealth, 200},
	}

	for _, tc := range cases {
		if got := limiter.getLimit(tc.limitType); got != tc.want {
			t.Errorf("getLimit(%s) = %d, want %d", tc.limitType, got, tc.want)
		}
	}
}
