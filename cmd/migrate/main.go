package main

import (
	"errors"
	"flag"
	"log"

	"travel/cfg"
	"travel/pkg/db"
	"travel/pkg/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	dir := flag.String("dir", "file://db/migrations", "migration source URL")
	down := flag.Bool("down", false, "roll back one migration instead of applying all")
	flag.Parse()

	// ============
	// Load config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// Build Postgres DSN from config
	// ============
	pg := config.Postgres
	pgDSN := db.PostgresConfig{
		Host:     pg.Host,
		Port:     pg.Port,
		User:     pg.User,
		Password: pg.Password,
		DBName:   pg.DBName,
		SSLMode:  pg.SSLMode,
	}.DSN()

	// =========
	// Migrate
	// =========
	m, err := migrate.New(*dir, pgDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	if *down {
		err = m.Steps(-1)
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal(err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		log.Fatal(err)
	}
	zlogger.Info("migrations applied",
		logger.Field{Key: "version", Value: uint64(version)},
		logger.Field{Key: "dirty", Value: dirty},
	)
}
