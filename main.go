package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stefanreuther/c2ng-sub017/api"
	db "github.com/stefanreuther/c2ng-sub017/db/sqlc"
	"github.com/stefanreuther/c2ng-sub017/util"
	"golang.org/x/sync/errgroup"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if err := setupValidator(); err != nil {
		log.Fatal().Err(err).Msg("cannot register validators")
	}

	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	store, err := openStore(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open link database")
	}

	service, err := newRenderService(config, store)
	if err != nil {
		store.Shutdown()
		log.Fatal().Err(err).Msg("cannot create render service")
	}

	waitGroup, ctx := errgroup.WithContext(ctx)
	runRenderServer(ctx, waitGroup, config, service, store)

	if err := waitGroup.Wait(); err != nil {
		log.Fatal().Err(err).Msg("render server failed")
	}
}

// setupValidator makes gin's binding report json field names and know "renderformat".
func setupValidator() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return api.RegisterValidators(v)
}

// openStore connects to Postgres and brings the lookup schema up to date.
func openStore(ctx context.Context, config util.Config) (db.Store, error) {
	pool, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		return nil, err
	}

	if err := runDBMigration(config.MigrationURL, config.DBSource); err != nil {
		pool.Close()
		return nil, err
	}

	return db.NewStore(pool), nil
}

func runDBMigration(migrationURL string, dbSource string) error {
	mig, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		return err
	}

	if err = mig.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	log.Info().Str("source", migrationURL).Msg("link database schema is up to date")
	return nil
}
