package service

import (
	"context"

	"github.com/altiguard/altiguard/internal/domain"
	"github.com/altiguard/altiguard/internal/metrics"
	"github.com/altiguard/altiguard/internal/repo"
	errorsUtils "github.com/altiguard/altiguard/pkg/errors"
)

type LogService struct {
	logRepo  repo.Log
	counters *metrics.Counters
}

func NewLogService(lr repo.Log, cnt *metrics.Counters) *LogService {
	return &LogService{
		logRepo:  lr,
		counters: cnt,
	}
}

func (s *LogService) Ingest(ctx context.Context, record *domain.LogRecord) (*domain.LogRecord, error) {
	stored, err := s.logRepo.Store(ctx, record)
	if err != nil {
		s.counters.LogsIngested.Inc("failed")
		return nil, errorsUtils.WrapPathErr(ErrCannotStoreLog)
	}

	if stored == nil {
		s.counters.LogsIngested.Inc("ambiguous")
		return nil, ErrAmbiguousWriteAck
	}

	s.counters.LogsIngested.Inc("ok")
	return stored, nil
}
