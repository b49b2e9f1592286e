package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/stefanreuther/c2ng-sub017/util"
)

// testStore is nil when no database is reachable; tests needing it call requireDB.
var testStore *SQLStore

func TestMain(m *testing.M) {
	config, err := util.LoadConfig("../../")
	if err != nil {
		log.Warn().Err(err).Msg("cannot read the config, database tests are skipped")
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	connPool, err := pgxpool.New(ctx, config.DBSource)
	if err == nil {
		err = connPool.Ping(ctx)
	}
	if err != nil {
		log.Warn().Err(err).Msg("cannot connect to the database, database tests are skipped")
	} else {
		testStore = NewStore(connPool).(*SQLStore)
	}

	os.Exit(m.Run())
}

func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() || testStore == nil {
		t.Skip("needs database")
	}
}
