package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stefanreuther/c2ng-sub017/api"
	"github.com/stefanreuther/c2ng-sub017/cache"
	db "github.com/stefanreuther/c2ng-sub017/db/sqlc"
	"github.com/stefanreuther/c2ng-sub017/token"
	"github.com/stefanreuther/c2ng-sub017/util"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds how long in-flight renders may take after a stop signal.
const shutdownTimeout = 5 * time.Second

// newRenderService wires the Redis render cache and the token maker into the HTTP service.
func newRenderService(config util.Config, store db.Store) (*api.Service, error) {
	tokenMaker, err := token.NewJWTMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, err
	}

	return api.NewService(config, store, tokenMaker, cache.NewStore(&config))
}

// runRenderServer serves HTTP until ctx is done, then shuts the server down
// and releases the link database.
func runRenderServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	service *api.Service,
	store db.Store,
) {
	waitGroup.Go(func() error {
		log.Info().Msgf("render server listening at %s", config.HTTPServerAddress)

		err := service.Start()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		if err != nil {
			log.Error().Err(err).Msg("render server stopped unexpectedly")
		}
		return err
	})

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("render server: draining requests")

		toCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := service.Shutdown(toCtx)
		if err != nil {
			log.Error().Err(err).Msg("render server did not drain in time")
		}

		store.Shutdown()
		log.Info().Msg("render server is stopped")
		return err
	})
}
