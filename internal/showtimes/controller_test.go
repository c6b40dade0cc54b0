package showtimes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRespondErrorStatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	controller := NewController(nil)

	now := time.Now()
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"theater double-booking", &ConflictError{Theater: 1, ShowtimeID: uuid.New(), StartTime: now, EndTime: now.Add(2 * time.Hour)}, http.StatusBadRequest},
		{"showtime not found", ErrShowtimeNotFound, http.StatusNotFound},
		{"movie not found", ErrMovieNotFound, http.StatusNotFound},
		{"invalid time range", ErrInvalidTimeRange, http.StatusBadRequest},
		{"invalid date", ErrInvalidDate, http.StatusBadRequest},
		{"unknown error", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)

			controller.respondError(ctx, tc.err, "fallback")

			if recorder.Code != tc.want {
				t.Errorf("expected status %d, got %d", tc.want, recorder.Code)
			}
		})
	}
}
