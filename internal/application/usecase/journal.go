package usecase

import (
	"context"
	"time"

	"github.com/bnema/jumpkey/internal/application/port"
	"github.com/bnema/jumpkey/internal/domain/entity"
	"github.com/bnema/jumpkey/internal/logging"
)

// JournalUseCase reads and prunes the activation journal.
type JournalUseCase struct {
	journal port.ActivationJournal
	now     func() time.Time
}

// NewJournalUseCase creates a new journal use case.
func NewJournalUseCase(journal port.ActivationJournal) *JournalUseCase {
	return &JournalUseCase{journal: journal, now: time.Now}
}

// Recent returns the latest activations, newest first.
func (uc *JournalUseCase) Recent(ctx context.Context, limit int) ([]*entity.Activation, error) {
	if limit <= 0 {
		limit = 50
	}
	return uc.journal.Recent(ctx, limit)
}

// Stats returns per-shortcut press counts.
func (uc *JournalUseCase) Stats(ctx context.Context) ([]*entity.ActivationStats, error) {
	return uc.journal.Stats(ctx)
}

// Prune deletes entries older than retentionDays. Zero keeps everything.
func (uc *JournalUseCase) Prune(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	cutoff := uc.now().AddDate(0, 0, -retentionDays)
	removed, err := uc.journal.PruneBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		logging.FromContext(ctx).Info().
			Int64("removed", removed).
			Time("cutoff", cutoff).
			Msg("pruned activation journal")
	}
	return removed, nil
}
