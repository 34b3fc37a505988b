// Command migrate applies the schema and seed migrations for the store service.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	var (
		path = flag.String("path", "migrations", "path to the migration files")
		dsn  = flag.String("database", os.Getenv("STORE_DATABASE_URL"), "database URL (defaults to STORE_DATABASE_URL)")
	)
	flag.Parse()

	if err := run(flag.Arg(0), *path, *dsn); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}

func run(command, path, dsn string) error {
	if dsn == "" {
		return fmt.Errorf("database URL is not configured")
	}

	m, err := migrate.New("file://"+path, dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize migrator: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Printf("WARN: error closing migrator: source=%v database=%v", srcErr, dbErr)
		}
	}()

	switch command {
	case "", "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "drop":
		err = m.Drop()
	case "version":
		version, dirty, vErr := m.Version()
		if vErr != nil {
			return fmt.Errorf("failed to read migration version: %w", vErr)
		}
		log.Printf("version=%d dirty=%t", version, dirty)
		return nil
	default:
		return fmt.Errorf("unknown command %q (expected up, down, drop or version)", command)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Println("no migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("migrations applied")
	return nil
}
