package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/postgres"
	"moviecatalog/user"

	_ "github.com/lib/pq"
)

// Seeds the catalog from a CSV (title,genre,duration) and/or creates a user
// with a freshly generated API key. Movies and users have no HTTP mutation
// surface; this is the admin path.
func main() {
	var (
		csvPath  string
		username string
		email    string
		limit    int
	)

	flag.StringVar(&csvPath, "csv", "", "Path to movies csv (title,genre,duration)")
	flag.StringVar(&username, "username", "", "Create a user with this username")
	flag.StringVar(&email, "email", "", "Email for the created user")
	flag.IntVar(&limit, "limit", 0, "Limit number of movies to import (0 = all)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if csvPath == "" && username == "" {
		slog.Error("nothing to do: pass -csv and/or -username")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     fmt.Sprintf("%d", cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		slog.Error("cannot open postgres connection", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if csvPath != "" {
		total, err := importMovies(ctx, postgres.NewMovieRepository(db), csvPath, limit)
		if err != nil {
			slog.Error("movie import failed", "error", err)
			os.Exit(1)
		}
		slog.Info("imported movies", "total", total)
	}

	if username != "" {
		created, err := user.NewUsecase(postgres.NewUserRepository(db)).Register(ctx, username, email)
		if err != nil {
			slog.Error("user creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("created user", "id", created.ID, "username", created.Username)
		// The key is shown once; only its owner should ever see it again.
		fmt.Printf("API key for %s: %s\n", created.Username, created.APIKey)
	}
}

func importMovies(ctx context.Context, repo *postgres.MovieRepository, path string, limit int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3

	total := 0
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return total, err
		}

		title := strings.TrimSpace(record[0])
		if total == 0 && strings.EqualFold(title, "title") {
			continue // header row
		}

		duration, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil {
			return total, fmt.Errorf("bad duration for %q: %w", title, err)
		}

		_, err = repo.CreateMovie(ctx, movie.Movie{
			Title:    title,
			Genre:    strings.TrimSpace(record[1]),
			Duration: duration,
		})
		if err != nil {
			return total, err
		}

		total++
		if limit > 0 && total >= limit {
			break
		}
	}
	return total, nil
}
