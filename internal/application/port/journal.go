package port

import (
	"context"
	"time"

	"github.com/bnema/jumpkey/internal/domain/entity"
)

//go:generate mockgen -source=journal.go -destination=mocks/mock_journal.go -package=mocks

// ActivationJournal persists shortcut presses for the history command.
type ActivationJournal interface {
	Record(ctx context.Context, activation *entity.Activation) error
	Recent(ctx context.Context, limit int) ([]*entity.Activation, error)
	Stats(ctx context.Context) ([]*entity.ActivationStats, error)
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
