package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/linkhub-net/linkhub/internal/storage/postgres"
)

var opts = struct {
	Postgres           string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMigrations string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`
}{}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "dbcheck"
	parser.LongDescription = "Database connectivity and schema smoke check"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	logrus.Info("dbcheck started")
	logrus.Infof("%+v", opts)

	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}
	logrus.Info("postgres is reachable")

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
		if d {
			logrus.Fatal("database is dirty, fix it before running the service")
		}
	case migrate.ErrNilVersion:
		logrus.Warn("database has no migrations applied")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	s := postgres.New(db)

	stats, err := s.GetPlatformStats(context.Background())
	if err != nil {
		logrus.WithError(err).Fatal("failed to query platform stats, schema is likely broken")
	}

	spew.Dump(stats)

	logrus.Info("dbcheck finished")
}
