package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selin/acadcore/internal/db"
)

// querier returns the ambient transaction when the context carries one,
// otherwise the shared pool. This lets the same repository methods run
// standalone or inside a service-level transaction scope.
func querier(ctx context.Context, pool *pgxpool.Pool) db.DBTX {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return pool
}
