package service

import (
	"context"

	"github.com/altiguard/altiguard/internal/broker"
	"github.com/altiguard/altiguard/internal/domain"
	"github.com/altiguard/altiguard/internal/metrics"
	"github.com/altiguard/altiguard/internal/notifier"
	"github.com/altiguard/altiguard/internal/repo"
)

type Log interface {
	Ingest(ctx context.Context, record *domain.LogRecord) (*domain.LogRecord, error)
}

type Drift interface {
	RunCycle(ctx context.Context) error
}

type Services struct {
	Log
	Drift
}

type ServicesDependencies struct {
	Repos      *repo.Repositories
	Counters   *metrics.Counters
	Notifier   notifier.Notifier
	Producer   broker.Producer
	WindowSize int
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Log: NewLogService(deps.Repos.Log, deps.Counters),
		Drift: NewDriftService(
			deps.Repos.Log,
			deps.Repos.HealthMetric,
			deps.Notifier,
			deps.Producer,
			deps.Counters,
			deps.WindowSize,
		),
	}
}
