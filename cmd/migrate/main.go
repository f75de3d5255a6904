package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		log.Fatal("DB_URL is required")
	}
	// The pgx migrate driver registers its own scheme.
	dbURL = strings.Replace(dbURL, "postgres://", "pgx5://", 1)

	dir, err := findMigrationsDir()
	if err != nil {
		log.Fatalf("migrations: %v", err)
	}

	m, err := migrate.New("file://"+dir, dbURL)
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}
	defer m.Close()

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "drop":
		err = m.Drop()
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil {
			log.Fatalf("version: %v", verr)
		}
		log.Printf("version %d (dirty=%v)", version, dirty)
		return
	default:
		log.Fatalf("unknown command %q (want up, down, drop or version)", command)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("%s: %v", command, err)
	}
	log.Printf("%s: done", command)
}

// findMigrationsDir walks up from the working directory so the runner works
// from the repo root and from cmd/migrate alike.
func findMigrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, "migrations")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no migrations directory found above %s", dir)
		}
		dir = parent
	}
}
