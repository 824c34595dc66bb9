package sqlc

import (
	"context"
	"database/sql"
	"time"

	"github.com/sqlc-dev/pqtype"
)

const QuerierCtxTimeout = time.Second * 10

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

type Querier interface {
	AnalyticsIncrementGamesCreatedCount(ctx context.Context, serverIp pqtype.Inet) error
	AnalyticsIncrementRematchCalledCount(ctx context.Context, serverIp pqtype.Inet) error
	AnalyticsGetGamesCreatedCount(ctx context.Context, serverIp pqtype.Inet) (int64, error)
	AnalyticsGetRematchCalledCount(ctx context.Context, serverIp pqtype.Inet) (int64, error)
}

type Queries struct {
	db DBTX
}

var _ Querier = (*Queries)(nil)

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

const analyticsIncrementGamesCreatedCount = `INSERT INTO game_server_analytics (server_ip, games_created)
VALUES ($1, 1)
ON CONFLICT (server_ip) DO UPDATE
SET games_created = game_server_analytics.games_created + 1, updated_at = NOW()`

func (q *Queries) AnalyticsIncrementGamesCreatedCount(ctx context.Context, serverIp pqtype.Inet) error {
	_, err := q.db.ExecContext(ctx, analyticsIncrementGamesCreatedCount, serverIp)
	return err
}

const analyticsIncrementRematchCalledCount = `INSERT INTO game_server_analytics (server_ip, rematch_called)
VALUES ($1, 1)
ON CONFLICT (server_ip) DO UPDATE
SET rematch_called = game_server_analytics.rematch_called + 1, updated_at = NOW()`

func (q *Queries) AnalyticsIncrementRematchCalledCount(ctx context.Context, serverIp pqtype.Inet) error {
	_, err := q.db.ExecContext(ctx, analyticsIncrementRematchCalledCount, serverIp)
	return err
}

const analyticsGetGamesCreatedCount = `SELECT games_created FROM game_server_analytics WHERE server_ip = $1`

func (q *Queries) AnalyticsGetGamesCreatedCount(ctx context.Context, serverIp pqtype.Inet) (int64, error) {
	row := q.db.QueryRowContext(ctx, analyticsGetGamesCreatedCount, serverIp)
	var gamesCreated int64
	err := row.Scan(&gamesCreated)
	return gamesCreated, err
}

const analyticsGetRematchCalledCount = `SELECT rematch_called FROM game_server_analytics WHERE server_ip = $1`

func (q *Queries) AnalyticsGetRematchCalledCount(ctx context.Context, serverIp pqtype.Inet) (int64, error) {
	row := q.db.QueryRowContext(ctx, analyticsGetRematchCalledCount, serverIp)
	var rematchCalled int64
	err := row.Scan(&rematchCalled)
	return rematchCalled, err
}
