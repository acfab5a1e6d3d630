package movement

import (
	"context"
	"time"

	"github.com/movements/backend/internal/domain/shared"
)

// ManualMovementRepository is the persistence contract for movements
type ManualMovementRepository interface {
	shared.Repository[ManualMovement]

	// FindByMonthYear returns movements of one accounting period
	FindByMonthYear(ctx context.Context, month, year int, filter shared.Filter) (shared.Paginated[ManualMovement], error)
	// FindByPeriod returns movements whose date falls in [from, to]
	FindByPeriod(ctx context.Context, from, to time.Time, filter shared.Filter) (shared.Paginated[ManualMovement], error)
	// NextLaunchNumber returns max(existing)+1 for the period, 1 when empty
	NextLaunchNumber(ctx context.Context, month, year int) (int, error)
}
