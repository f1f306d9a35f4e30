package pgdb

import (
	"context"
	"errors"

	"github.com/altiguard/altiguard/internal/domain"
	errorsUtils "github.com/altiguard/altiguard/pkg/errors"
	"github.com/altiguard/altiguard/pkg/postgres"
	"github.com/jackc/pgx/v5"
)

type LogRepo struct {
	*postgres.Postgres
}

func NewLogRepo(pg *postgres.Postgres) *LogRepo {
	return &LogRepo{pg}
}

func (r *LogRepo) Store(ctx context.Context, record *domain.LogRecord) (*domain.LogRecord, error) {
	sql, args, _ := r.Builder.
		Insert("logs").
		Columns("api_key", "input", "output").
		Values(record.ApiKey, record.Input, record.Output).
		Suffix("RETURNING id, api_key, input, output, created_at").
		ToSql()

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	stored, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.LogRecord])
	if err != nil {
		// The insert was acknowledged but no row came back. Callers
		// decide whether to treat this as success.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errorsUtils.WrapPathErr(err)
	}

	return &stored, nil
}

func (r *LogRepo) Recent(ctx context.Context, limit int) ([]domain.LogRecord, error) {
	query := r.Builder.
		Select("id", "api_key", "input", "output", "created_at").
		From("logs").
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	sql, args, _ := query.ToSql()
	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)

	if err != nil {
		return []domain.LogRecord{}, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	logs, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.LogRecord])

	if err != nil {
		return []domain.LogRecord{}, errorsUtils.WrapPathErr(err)
	}

	return logs, nil
}
