package bootstrap

import (
	"context"
	"log/slog"

	"flexin/db/migrations"
	"flexin/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies pending schema migrations on startup. goose works on
// *sql.DB, so the pgx pool is wrapped via the stdlib adapter.
func RunMigrations(pool *pgxpool.Pool) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return errs.Wrap(err, "failed to set migration dialect")
	}
	goose.SetBaseFS(migrations.FS)

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Warn("マイグレーション用接続のクローズに失敗しました", "error", err.Error())
		}
	}()

	if err := goose.UpContext(context.Background(), sqlDB, "."); err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return errs.Wrap(err, "failed to read migration version")
	}
	slog.Info("マイグレーションを適用しました", "version", version)
	return nil
}
