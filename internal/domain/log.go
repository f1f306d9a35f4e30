package domain

import "time"

// Status is the categorical health of a tenant's sampled window.
type Status string

const (
	StatusNoData   Status = "nodata"
	StatusHealthy  Status = "healthy"
	StatusCritical Status = "critical"
)

// MetricTypeRefusalScore is the only metric type produced today.
const MetricTypeRefusalScore = "refusal_score"

// LogRecord is one ingested request/response pair. Records are
// append-only: created_at is assigned by the store and rows are never
// updated or deleted by this service.
type LogRecord struct {
	Id        int64     `db:"id" json:"id"`
	ApiKey    string    `db:"api_key" json:"api_key"`
	Input     string    `db:"input" json:"input"`
	Output    string    `db:"output" json:"output"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// HealthMetric is one tenant's scored observation for one worker cycle.
type HealthMetric struct {
	Id         int64     `db:"id" json:"id"`
	ApiKey     string    `db:"api_key" json:"api_key"`
	MetricType string    `db:"metric_type" json:"metric_type"`
	Score      float64   `db:"score" json:"score"`
	Status     Status    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
