package notifier

import (
	"context"

	"github.com/altiguard/altiguard/internal/domain"
)

// Notifier delivers an out-of-band alert for one scored observation.
type Notifier interface {
	Notify(ctx context.Context, metric *domain.HealthMetric) error
}

// Nop is the notifier used when no webhook URL is configured.
type Nop struct{}

func (Nop) Notify(ctx context.Context, metric *domain.HealthMetric) error {
	return nil
}
