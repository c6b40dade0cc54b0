package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"cinepass/internal/genres"
	"cinepass/internal/movies"
	"cinepass/internal/seats"
	"cinepass/internal/shared/config"
	"cinepass/internal/shared/database"
	"cinepass/internal/showtimes"
	"cinepass/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting CinePass Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"reservation_seats",
		"reservations",
		"seats",
		"showtimes",
		"movie_genres",
		"movies",
		"genres",
		"user_roles",
		"users",
		"roles",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds roles, users, genres, movies and showtimes with seat maps
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	roleIDs, err := s.SeedRoles()
	if err != nil {
		return fmt.Errorf("failed to seed roles: %w", err)
	}

	if err := s.SeedUsers(roleIDs); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	genreIDs, err := s.SeedGenres()
	if err != nil {
		return fmt.Errorf("failed to seed genres: %w", err)
	}

	movieIDs, err := s.SeedMovies(genreIDs)
	if err != nil {
		return fmt.Errorf("failed to seed movies: %w", err)
	}

	if err := s.SeedShowtimes(movieIDs); err != nil {
		return fmt.Errorf("failed to seed showtimes: %w", err)
	}

	// Drop any stale cache entries from previous runs
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedRoles recreates the role rows wiped by CleanDatabase
func (s *Seeder) SeedRoles() (map[users.RoleName]uuid.UUID, error) {
	fmt.Println("  🔑 Seeding roles...")

	roleIDs := make(map[users.RoleName]uuid.UUID)
	for _, name := range users.AllRoleNames() {
		role := users.Role{
			ID:        uuid.New(),
			Name:      name,
			CreatedAt: time.Now(),
		}
		if err := s.db.PostgreSQL.Create(&role).Error; err != nil {
			return nil, fmt.Errorf("failed to create role %s: %w", name, err)
		}
		roleIDs[name] = role.ID
		fmt.Printf("    ✅ Created role: %s\n", name)
	}

	return roleIDs, nil
}

// SeedUsers creates 1 admin and 2 regular users, password "qwerty" for all
func (s *Seeder) SeedUsers(roleIDs map[users.RoleName]uuid.UUID) error {
	fmt.Println("  👤 Seeding users...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		username  string
		email     string
		firstName string
		lastName  string
		roles     []users.RoleName
	}{
		{"admin", "admin@cinepass.io", "Admin", "User", []users.RoleName{users.RoleUser, users.RoleAdmin}},
		{"alice", "alice@example.com", "Alice", "Nguyen", []users.RoleName{users.RoleUser}},
		{"bob", "bob@example.com", "Bob", "Carter", []users.RoleName{users.RoleUser}},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.New(),
			Username:  userData.username,
			Email:     userData.email,
			Password:  string(hashedPassword),
			FirstName: userData.firstName,
			LastName:  userData.lastName,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		for _, roleName := range userData.roles {
			user.Roles = append(user.Roles, users.Role{ID: roleIDs[roleName], Name: roleName})
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		fmt.Printf("    ✅ Created user: %s (%v)\n", user.Email, user.RoleNames())
	}

	return nil
}

// SeedGenres creates the base genre catalog
func (s *Seeder) SeedGenres() (map[string]uuid.UUID, error) {
	fmt.Println("  🏷️ Seeding genres...")

	genreIDs := make(map[string]uuid.UUID)
	names := []string{"Action", "Comedy", "Drama", "Horror", "Sci-Fi", "Animation"}

	for _, name := range names {
		genre := genres.Genre{
			ID:        uuid.New(),
			Name:      name,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.db.PostgreSQL.Create(&genre).Error; err != nil {
			return nil, fmt.Errorf("failed to create genre %s: %w", name, err)
		}
		genreIDs[name] = genre.ID
		fmt.Printf("    ✅ Created genre: %s\n", name)
	}

	return genreIDs, nil
}

// SeedMovies creates sample movies linked to genres
func (s *Seeder) SeedMovies(genreIDs map[string]uuid.UUID) ([]uuid.UUID, error) {
	fmt.Println("  🎬 Seeding movies...")

	var movieIDs []uuid.UUID

	moviesData := []struct {
		title       string
		description string
		duration    int
		releaseDate time.Time
		genreNames  []string
	}{
		{
			title:       "Edge of the Void",
			description: "A deep-space salvage crew discovers their ship is not as empty as it seems.",
			duration:    128,
			releaseDate: time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC),
			genreNames:  []string{"Sci-Fi", "Horror"},
		},
		{
			title:       "The Last Stand-Up",
			description: "A washed-up comedian gets one final night to win back the crowd that made him.",
			duration:    102,
			releaseDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			genreNames:  []string{"Comedy", "Drama"},
		},
		{
			title:       "Ironclad Protocol",
			description: "An ex-operative races across three continents to stop a rogue AI weapons network.",
			duration:    141,
			releaseDate: time.Date(2026, 7, 21, 0, 0, 0, 0, time.UTC),
			genreNames:  []string{"Action", "Sci-Fi"},
		},
		{
			title:       "Paper Lanterns",
			description: "Three generations of a family reunite for one last festival in their hometown.",
			duration:    115,
			releaseDate: time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC),
			genreNames:  []string{"Drama"},
		},
		{
			title:       "Whisker Patrol",
			description: "A band of alley cats takes on the neighborhood's most notorious dog gang.",
			duration:    94,
			releaseDate: time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC),
			genreNames:  []string{"Animation", "Comedy"},
		},
	}

	for _, movieData := range moviesData {
		movie := movies.Movie{
			ID:          uuid.New(),
			Title:       movieData.title,
			Description: movieData.description,
			Duration:    movieData.duration,
			ReleaseDate: movieData.releaseDate,
			IsActive:    true,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&movie).Error; err != nil {
			return nil, fmt.Errorf("failed to create movie %s: %w", movie.Title, err)
		}
		movieIDs = append(movieIDs, movie.ID)
		fmt.Printf("    ✅ Created movie: %s\n", movie.Title)

		for _, genreName := range movieData.genreNames {
			genreID, ok := genreIDs[genreName]
			if !ok {
				continue
			}
			link := genres.MovieGenre{
				ID:        uuid.New(),
				MovieID:   movie.ID,
				GenreID:   genreID,
				CreatedAt: time.Now(),
			}
			if err := s.db.PostgreSQL.Create(&link).Error; err != nil {
				return nil, fmt.Errorf("failed to link genre %s to movie %s: %w", genreName, movie.Title, err)
			}
		}
	}

	return movieIDs, nil
}

// SeedShowtimes schedules screenings over the next days and generates each
// showtime's seat map
func (s *Seeder) SeedShowtimes(movieIDs []uuid.UUID) error {
	fmt.Println("  🕒 Seeding showtimes...")

	showtimesData := []struct {
		movieIndex  int
		daysFromNow int
		hour        int
		theater     int
		ticketPrice float64
		totalSeats  int
	}{
		{0, 1, 18, 1, 12.50, 50},
		{0, 2, 21, 1, 14.00, 50},
		{1, 1, 19, 2, 10.00, 40},
		{2, 3, 20, 3, 15.00, 80},
		{3, 2, 17, 2, 11.00, 40},
		{4, 1, 15, 4, 9.50, 60},
	}

	for _, showtimeData := range showtimesData {
		if showtimeData.movieIndex >= len(movieIDs) {
			continue
		}

		start := time.Now().AddDate(0, 0, showtimeData.daysFromNow).Truncate(time.Hour)
		start = time.Date(start.Year(), start.Month(), start.Day(), showtimeData.hour, 0, 0, 0, start.Location())

		showtime := showtimes.Showtime{
			ID:          uuid.New(),
			MovieID:     movieIDs[showtimeData.movieIndex],
			StartTime:   start,
			EndTime:     start.Add(150 * time.Minute),
			Theater:     showtimeData.theater,
			TicketPrice: showtimeData.ticketPrice,
			TotalSeats:  showtimeData.totalSeats,
			IsActive:    true,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&showtime).Error; err != nil {
			return fmt.Errorf("failed to create showtime: %w", err)
		}

		layout := seats.GenerateLayout(showtime.ID, showtime.TotalSeats)
		if err := s.db.PostgreSQL.CreateInBatches(layout, 100).Error; err != nil {
			return fmt.Errorf("failed to create seats for showtime: %w", err)
		}

		fmt.Printf("    ✅ Created showtime: theater %d at %s (%d seats)\n",
			showtime.Theater, start.Format(time.RFC3339), len(layout))
	}

	return nil
}
