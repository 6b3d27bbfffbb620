package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Flarenzy/rdap-registry/internal/bootstrap"
)

var _ bootstrap.RedirectStore = (*RedirectRepository)(nil)

type RedirectRepository struct {
	pool *pgxpool.Pool
}

func NewRedirectRepository(pool *pgxpool.Pool) *RedirectRepository {
	return &RedirectRepository{pool: pool}
}

// SaveNetworkRedirects writes all redirects in one transaction.
func (r *RedirectRepository) SaveNetworkRedirects(ctx context.Context, redirects []bootstrap.NetworkRedirect) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, redirect := range redirects {
			batch.Queue(insertNetworkRedirect, redirect.Key, redirect.Family.String(), redirect.Param.StartHex, redirect.Param.EndHex, redirect.URLs)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
}
