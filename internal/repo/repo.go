package repo

import (
	"context"

	"github.com/altiguard/altiguard/internal/domain"
	"github.com/altiguard/altiguard/internal/repo/pgdb"
	"github.com/altiguard/altiguard/pkg/postgres"
)

type Log interface {
	// Store appends one record and returns the stored row. A nil row
	// with a nil error means the store acknowledged the insert without
	// returning a payload.
	Store(ctx context.Context, record *domain.LogRecord) (*domain.LogRecord, error)
	// Recent returns up to limit records across all tenants, newest first.
	Recent(ctx context.Context, limit int) ([]domain.LogRecord, error)
}

type HealthMetric interface {
	Store(ctx context.Context, metric *domain.HealthMetric) error
}

type Repositories struct {
	Log
	HealthMetric
}

func NewRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		Log:          pgdb.NewLogRepo(pg),
		HealthMetric: pgdb.NewHealthMetricRepo(pg),
	}
}
