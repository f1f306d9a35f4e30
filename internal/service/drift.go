package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/altiguard/altiguard/internal/broker"
	"github.com/altiguard/altiguard/internal/domain"
	"github.com/altiguard/altiguard/internal/metrics"
	"github.com/altiguard/altiguard/internal/notifier"
	"github.com/altiguard/altiguard/internal/repo"
	errorsUtils "github.com/altiguard/altiguard/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// UnknownTenantKey buckets records whose api_key is empty so they are
// scored instead of dropped.
const UnknownTenantKey = "unknown"

// CriticalThreshold is the refusal rate above which a tenant is critical.
const CriticalThreshold = 0.2

var refusalKeywords = []string{"cannot", "sorry", "unable", "can't"}

// PartitionByTenant groups a fetched window by api_key, preserving the
// relative order of each tenant's records.
func PartitionByTenant(records []domain.LogRecord) map[string][]domain.LogRecord {
	pile := make(map[string][]domain.LogRecord)
	for _, record := range records {
		key := record.ApiKey
		if key == "" {
			key = UnknownTenantKey
		}
		pile[key] = append(pile[key], record)
	}
	return pile
}

// Score classifies each output as a refusal by case-insensitive
// substring match and returns the refusal fraction with its status.
// It is pure: no state survives between calls.
func Score(records []domain.LogRecord) (float64, domain.Status) {
	if len(records) == 0 {
		return 0.0, domain.StatusNoData
	}

	refusals := 0
	for _, record := range records {
		output := strings.ToLower(record.Output)
		for _, keyword := range refusalKeywords {
			if strings.Contains(output, keyword) {
				refusals++
				break
			}
		}
	}

	score := float64(refusals) / float64(len(records))
	if score > CriticalThreshold {
		return score, domain.StatusCritical
	}
	return score, domain.StatusHealthy
}

type DriftService struct {
	logRepo    repo.Log
	metricRepo repo.HealthMetric
	notifier   notifier.Notifier
	producer   broker.Producer
	counters   *metrics.Counters
	windowSize int
}

func NewDriftService(
	lr repo.Log,
	mr repo.HealthMetric,
	nt notifier.Notifier,
	p broker.Producer,
	cnt *metrics.Counters,
	windowSize int,
) *DriftService {
	return &DriftService{
		logRepo:    lr,
		metricRepo: mr,
		notifier:   nt,
		producer:   p,
		counters:   cnt,
		windowSize: windowSize,
	}
}

// RunCycle executes one fetch-partition-score-persist-alert pass.
// A fetch failure fails the cycle; everything after the fetch is
// isolated per tenant, so one tenant's bad write cannot block another's.
func (s *DriftService) RunCycle(ctx context.Context) error {
	logs, err := s.logRepo.Recent(ctx, s.windowSize)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	for key, batch := range PartitionByTenant(logs) {
		score, status := Score(batch)

		metric := &domain.HealthMetric{
			ApiKey:     key,
			MetricType: domain.MetricTypeRefusalScore,
			Score:      score,
			Status:     status,
		}

		if err := s.metricRepo.Store(ctx, metric); err != nil {
			log.WithFields(log.Fields{
				"api_key": key,
				"error":   err,
			}).Error("Failed to store health metric")
			continue
		}

		s.publish(ctx, metric)

		if status == domain.StatusCritical {
			if err := s.notifier.Notify(ctx, metric); err != nil {
				s.counters.AlertsSent.Inc("failed")
				log.WithFields(log.Fields{
					"api_key": key,
					"error":   err,
				}).Error("Failed to deliver alert")
			} else {
				s.counters.AlertsSent.Inc("ok")
			}
		}
	}

	return nil
}

func (s *DriftService) publish(ctx context.Context, metric *domain.HealthMetric) {
	value, err := json.Marshal(metric)
	if err != nil {
		log.Errorf("Failed to encode observation: %v", err)
		return
	}
	// Delivery is best-effort. The producer logs its own failures.
	_ = s.producer.SendMessage(ctx, value)
}
