// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"cinepass/internal/auth"
	"cinepass/internal/genres"
	"cinepass/internal/movies"
	"cinepass/internal/notifications"
	"cinepass/internal/reports"
	"cinepass/internal/reservations"
	"cinepass/internal/seats"
	"cinepass/internal/shared/config"
	"cinepass/internal/shared/database"
	"cinepass/internal/showtimes"
	"cinepass/internal/users"
	"cinepass/pkg/cache"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config       *config.Config
	db           *database.DB
	producer     notifications.Producer
	cacheService cache.Service
	genreService genres.Service
	seatService  seats.Service
}

// NewRouter creates a new router instance. The producer may be nil when
// Kafka notifications are disabled.
func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer) *Router {
	return &Router{
		config:       cfg,
		db:           db,
		producer:     producer,
		cacheService: cache.NewService(db.GetRedisClient()),
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupUserRoutes(api)

		// Genre routes come first so the genre service can be injected into movies
		r.setupGenreRoutes(api)
		r.setupMovieRoutes(api)

		// Showtimes own seat generation, so the seat service is built here
		r.setupShowtimeRoutes(api)
		r.setupReservationRoutes(api)
		r.setupReportRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "cinepass-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "cinepass-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config.JWT)
	authController := auth.NewController(authService)

	auth.SetupAuthRoutes(rg, authController)
}

func (r *Router) setupUserRoutes(rg *gin.RouterGroup) {
	userRepo := users.NewRepository(r.db.GetPostgreSQL())
	userService := users.NewService(userRepo)
	userController := users.NewController(userService)

	SetupUserRoutes(rg, userController)
}

func (r *Router) setupGenreRoutes(rg *gin.RouterGroup) {
	genreRepo := genres.NewRepository(r.db.GetPostgreSQL())
	genreService := genres.NewService(genreRepo)
	genreController := genres.NewController(genreService)

	// Stored so movies can resolve and assign genres
	r.genreService = genreService

	genres.SetupGenreRoutes(rg, genreController)
}

func (r *Router) setupMovieRoutes(rg *gin.RouterGroup) {
	movieRepo := movies.NewRepository(r.db.GetPostgreSQL())
	movieService := movies.NewService(movieRepo, r.genreService, r.cacheService)
	movieController := movies.NewController(movieService)

	movies.SetupMovieRoutes(rg, movieController)
}

func (r *Router) setupShowtimeRoutes(rg *gin.RouterGroup) {
	seatRepo := seats.NewRepository(r.db.GetPostgreSQL())
	r.seatService = seats.NewService(seatRepo, r.cacheService)

	showtimeRepo := showtimes.NewRepository(r.db.GetPostgreSQL())
	movieRepo := movies.NewRepository(r.db.GetPostgreSQL())
	showtimeService := showtimes.NewService(showtimeRepo, movieRepo, r.seatService, r.cacheService)
	showtimeController := showtimes.NewController(showtimeService)

	showtimes.SetupShowtimeRoutes(rg, showtimeController)
}

func (r *Router) setupReservationRoutes(rg *gin.RouterGroup) {
	reservationRepo := reservations.NewRepository(r.db.GetPostgreSQL())
	reservationService := reservations.NewService(reservationRepo, r.seatService, r.producer)
	reservationController := reservations.NewController(reservationService)

	reservations.SetupReservationRoutes(rg, reservationController)
}

func (r *Router) setupReportRoutes(rg *gin.RouterGroup) {
	reportRepo := reports.NewRepository(r.db.GetPostgreSQL())
	reportService := reports.NewService(reportRepo)
	reportController := reports.NewController(reportService)

	reports.SetupReportRoutes(rg, reportController)
}
