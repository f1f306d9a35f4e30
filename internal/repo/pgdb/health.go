package pgdb

import (
	"context"

	"github.com/altiguard/altiguard/internal/domain"
	errorsUtils "github.com/altiguard/altiguard/pkg/errors"
	"github.com/altiguard/altiguard/pkg/postgres"
)

type HealthMetricRepo struct {
	*postgres.Postgres
}

func NewHealthMetricRepo(pg *postgres.Postgres) *HealthMetricRepo {
	return &HealthMetricRepo{pg}
}

func (r *HealthMetricRepo) Store(ctx context.Context, metric *domain.HealthMetric) error {
	sql, args, _ := r.Builder.
		Insert("health_metrics").
		Columns("api_key", "metric_type", "score", "status").
		Values(metric.ApiKey, metric.MetricType, metric.Score, string(metric.Status)).
		ToSql()

	_, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}
